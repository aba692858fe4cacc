// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/fx"

	deliverycontext "learnhub/internal/delivery/context"
	"learnhub/internal/domain/entity"
	domainerrors "learnhub/internal/domain/errors"
	"learnhub/internal/domain/repository"
	"learnhub/internal/domain/service"
	"learnhub/internal/errors"
	"learnhub/internal/usecase"
)

// identityMatch is the outcome of looking up a login triple.
type identityMatch int

const (
	noMatch identityMatch = iota
	exactMatch
	legacyMatch
)

func (m identityMatch) String() string {
	switch m {
	case exactMatch:
		return "exact"
	case legacyMatch:
		return "legacy"
	default:
		return "none"
	}
}

// identityService implements the IdentityUsecase interface.
type identityService struct {
	userRepo     repository.UserRepository
	tokenService service.TokenService
	logger       *slog.Logger
	now          func() time.Time
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewIdentityService is the constructor for identityService. It receives all dependencies as interfaces.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOrDefault(ctx, srv.logger)
}

// Register creates a new user and issues an access token for it.
// Phone and id number are checked independently so the conflict names the clashing field.
func (srv *identityService) Register(ctx context.Context, input usecase.IdentityInput) (*usecase.TokenOutput, error) {
	user, err := entity.NewUser(input.Name, input.Phone, input.IDNumber, srv.now())
	if err != nil {
		return nil, validationError(err)
	}

	if err := srv.ensureUnique(ctx, user); err != nil {
		return nil, err
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicatePhone) || errors.Is(err, repository.ErrDuplicateIDNumber) {
			srv.log(ctx).Info("Registration lost a uniqueness race", slog.Any("error", err))

			return nil, translateRepoError(err, domainerrors.ErrUserNotFound, "failed to create user")
		}
		srv.log(ctx).Error("Failed to create user", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUserCreationFailed, err.Error())
	}

	srv.log(ctx).Info("User registered", slog.String("user_id", user.ID))

	return srv.issueToken(user)
}

func (srv *identityService) ensureUnique(ctx context.Context, user *entity.User) error {
	_, err := srv.userRepo.FindByPhone(ctx, user.Phone)
	switch {
	case err == nil:
		return errors.WithStack(domainerrors.ErrPhoneAlreadyRegistered)
	case !errors.Is(err, repository.ErrUserNotFound):
		return errors.Wrap(err, "failed to check phone uniqueness")
	}

	_, err = srv.userRepo.FindByIDNumber(ctx, user.IDNumber)
	switch {
	case err == nil:
		return errors.WithStack(domainerrors.ErrIDNumberAlreadyRegistered)
	case !errors.Is(err, repository.ErrUserNotFound):
		return errors.Wrap(err, "failed to check id number uniqueness")
	}

	return nil
}

// Login authenticates the identity triple. A legacy record matching name and phone
// receives the supplied id number once, and later logins must present that value.
func (srv *identityService) Login(ctx context.Context, input usecase.IdentityInput) (*usecase.TokenOutput, error) {
	phone, err := entity.ValidateIdentity(input.Name, input.Phone, input.IDNumber)
	if err != nil {
		return nil, validationError(err)
	}

	user, match, err := srv.matchIdentity(ctx, input.Name, input.Phone, phone, input.IDNumber)
	if err != nil {
		return nil, err
	}

	switch match {
	case exactMatch:
	case legacyMatch:
		user, err = srv.upgradeLegacy(ctx, user, phone, input.IDNumber)
		if err != nil {
			return nil, err
		}
	default:
		srv.log(ctx).Info("Login rejected, no matching user")

		return nil, errors.WithStack(domainerrors.ErrUserNotFound)
	}

	srv.log(ctx).Info("User logged in", slog.String("user_id", user.ID), slog.String("match", match.String()))

	return srv.issueToken(user)
}

// matchIdentity looks up the exact triple first. Legacy records are matched on name
// and either the normalized or the raw phone, since older records kept it as typed.
func (srv *identityService) matchIdentity(ctx context.Context, name, rawPhone, phone, idNumber string) (*entity.User, identityMatch, error) {
	user, err := srv.userRepo.FindByCredentials(ctx, name, phone, idNumber)
	if err == nil {
		return user, exactMatch, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, noMatch, errors.Wrap(err, "failed to find user by credentials")
	}

	user, err = srv.userRepo.FindLegacy(ctx, name, entity.LegacyPhones(rawPhone, phone))
	if err == nil {
		if !user.IsLegacy() {
			return nil, noMatch, nil
		}

		return user, legacyMatch, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, noMatch, errors.Wrap(err, "failed to find legacy user")
	}

	return nil, noMatch, nil
}

// upgradeLegacy back-fills the id number, stores the normalized phone and re-reads the
// record. When a concurrent login upgraded the record first, the stored value decides the outcome.
func (srv *identityService) upgradeLegacy(ctx context.Context, user *entity.User, phone, idNumber string) (*entity.User, error) {
	err := srv.userRepo.MigrateLegacy(ctx, user.ID, phone, idNumber)
	switch {
	case err == nil:
		srv.log(ctx).Info("Legacy user migrated", slog.String("user_id", user.ID))
	case errors.Is(err, repository.ErrUserNotFound):
		srv.log(ctx).Info("Legacy user already migrated", slog.String("user_id", user.ID))
	default:
		return nil, translateRepoError(err, domainerrors.ErrUserNotFound, "failed to migrate legacy user")
	}

	upgraded, err := srv.userRepo.FindByID(ctx, user.ID)
	if err != nil {
		return nil, translateRepoError(err, domainerrors.ErrUserNotFound, "failed to reload migrated user")
	}

	if upgraded.IDNumber != idNumber {
		return nil, domainerrors.ErrUserNotFound.WrapMessage("legacy user was migrated with another id number")
	}

	return upgraded, nil
}

func (srv *identityService) issueToken(user *entity.User) (*usecase.TokenOutput, error) {
	token, expiresAt, err := srv.tokenService.GenerateToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.TokenOutput{
		AccessToken: token,
		TokenType:   usecase.TokenTypeBearer,
		ExpiresAt:   expiresAt,
		UserID:      user.ID,
		Name:        user.Name,
		IDNumber:    user.IDNumber,
	}, nil
}

// VerifyToken returns the user id carried by a valid access token.
func (srv *identityService) VerifyToken(ctx context.Context, token string) (string, error) {
	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		srv.log(ctx).Debug("Token rejected", slog.Any("error", err))

		return "", errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return claims.UserID, nil
}

// GetProfile returns a single user.
func (srv *identityService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, translateRepoError(err, domainerrors.ErrUserNotFound, "failed to get user profile")
	}

	return user, nil
}

// ListUsers returns one page of users, newest first unless requested otherwise.
func (srv *identityService) ListUsers(ctx context.Context, page entity.PageRequest) (*entity.Page[*entity.User], error) {
	page = page.Normalize(entity.SortFieldCreatedAt, entity.SortDesc, entity.SortFieldName, entity.SortFieldCreatedAt)

	users, err := srv.userRepo.List(ctx, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}
