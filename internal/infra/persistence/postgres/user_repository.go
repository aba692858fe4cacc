// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"gorm.io/gorm"

	"learnhub/internal/domain/entity"
	domainerrors "learnhub/internal/domain/errors"
	"learnhub/internal/domain/repository"
	"learnhub/internal/errors"
	"learnhub/internal/infra/persistence/model"
)

// legacyIDNumber matches records whose id number was never set.
const legacyIDNumber = "(id_number IS NULL OR id_number = '')"

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user. Unique index violations are reported as duplicate errors.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	userM.ID = newID()

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if dupErr := duplicateUserError(err); dupErr != nil {
			return dupErr
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID.String()
	user.CreatedAt = userM.CreatedAt

	return nil
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	return repo.findOne(ctx, "id = ?", uid)
}

// FindByPhone retrieves a user by normalized phone.
func (repo *userRepository) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	return repo.findOne(ctx, "phone = ?", phone)
}

// FindByIDNumber retrieves a user by id number.
func (repo *userRepository) FindByIDNumber(ctx context.Context, idNumber string) (*entity.User, error) {
	return repo.findOne(ctx, "id_number = ?", idNumber)
}

// FindByCredentials retrieves the user matching the full identity triple.
func (repo *userRepository) FindByCredentials(ctx context.Context, name, phone, idNumber string) (*entity.User, error) {
	return repo.findOne(ctx, "name = ? AND phone = ? AND id_number = ?", name, phone, idNumber)
}

// FindLegacy retrieves a user matching name and any of phones that has no id number yet.
func (repo *userRepository) FindLegacy(ctx context.Context, name string, phones []string) (*entity.User, error) {
	return repo.findOne(ctx, "name = ? AND phone IN ? AND "+legacyIDNumber, name, phones)
}

// MigrateLegacy back-fills the id number of a legacy record and normalizes its phone.
// The filter requires the column to still be unset so the write happens at most once.
func (repo *userRepository) MigrateLegacy(ctx context.Context, id, phone, idNumber string) error {
	uid, err := parseID(id)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND "+legacyIDNumber, uid).
		Updates(map[string]any{"phone": phone, "id_number": idNumber})
	if result.Error != nil {
		if dupErr := duplicateUserError(result.Error); dupErr != nil {
			return dupErr
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to migrate legacy user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// List returns one page of users.
func (repo *userRepository) List(ctx context.Context, page entity.PageRequest) (*entity.Page[*entity.User], error) {
	var users []model.UserModel
	total, err := paginate(repo.db.WithContext(ctx).Model(&model.UserModel{}), page, &users)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list users")
	}

	return toPage(users, total, page, toUserDomain), nil
}

func (repo *userRepository) findOne(ctx context.Context, query string, args ...any) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where(query, args...).Take(&userM).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if isRecordNotFound(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

// duplicateUserError maps a unique violation on users to the repository sentinel.
// A translated error without a constraint name is attributed to the phone index.
func duplicateUserError(err error) error {
	name, ok := uniqueConstraintName(err)
	if !ok {
		return nil
	}

	if name == uniqUsersIDNumber {
		return errors.WithStack(repository.ErrDuplicateIDNumber)
	}

	return errors.WithStack(repository.ErrDuplicatePhone)
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:        data.ID.String(),
		Name:      data.Name,
		Phone:     data.Phone,
		CreatedAt: data.CreatedAt,
	}
	if data.IDNumber != nil {
		user.IDNumber = *data.IDNumber
	}

	return user
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
// An empty id number is stored as NULL.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	userM := &model.UserModel{
		Name:      data.Name,
		Phone:     data.Phone,
		CreatedAt: data.CreatedAt,
	}
	if data.IDNumber != "" {
		idNumber := data.IDNumber
		userM.IDNumber = &idNumber
	}

	return userM
}
