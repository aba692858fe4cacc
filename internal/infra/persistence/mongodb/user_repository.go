package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"learnhub/internal/domain/entity"
	domainerrors "learnhub/internal/domain/errors"
	"learnhub/internal/domain/repository"
	"learnhub/internal/errors"
)

// legacyIDNumber matches documents whose id_number is missing, null or empty.
var legacyIDNumber = bson.M{"$in": bson.A{nil, ""}}

type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository creates a MongoDB backed repository.UserRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{coll: db.Collection(usersCollection)}
}

// Create inserts a new user. Unique index violations are reported as duplicate errors.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	doc := &userDocument{
		ID:        primitive.NewObjectID(),
		Name:      user.Name,
		Phone:     user.Phone,
		IDNumber:  user.IDNumber,
		CreatedAt: storedTime(user.CreatedAt),
	}

	if _, err := repo.coll.InsertOne(ctx, doc); err != nil {
		if dupErr := duplicateUserError(err); dupErr != nil {
			return dupErr
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = doc.ID.Hex()
	user.CreatedAt = doc.CreatedAt

	return nil
}

func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	return repo.findOne(ctx, bson.M{"_id": oid})
}

func (repo *userRepository) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"phone": phone})
}

func (repo *userRepository) FindByIDNumber(ctx context.Context, idNumber string) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"id_number": idNumber})
}

func (repo *userRepository) FindByCredentials(ctx context.Context, name, phone, idNumber string) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"name": name, "phone": phone, "id_number": idNumber})
}

func (repo *userRepository) FindLegacy(ctx context.Context, name string, phones []string) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"name": name, "phone": bson.M{"$in": phones}, "id_number": legacyIDNumber})
}

// MigrateLegacy back-fills the id number of a legacy record and normalizes its phone.
// The filter requires the field to still be unset so the write happens at most once.
func (repo *userRepository) MigrateLegacy(ctx context.Context, id, phone, idNumber string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	filter := bson.M{"_id": oid, "id_number": legacyIDNumber}
	result, err := repo.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"phone": phone, "id_number": idNumber}})
	if err != nil {
		if dupErr := duplicateUserError(err); dupErr != nil {
			return dupErr
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to migrate legacy user")
	}

	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (repo *userRepository) List(ctx context.Context, page entity.PageRequest) (*entity.Page[*entity.User], error) {
	docs, total, err := findPage[userDocument](ctx, repo.coll, bson.M{}, page)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list users")
	}

	return toPage(docs, total, page, (*userDocument).toEntity), nil
}

func (repo *userRepository) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var doc userDocument
	if err := repo.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return doc.toEntity(), nil
}
