package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"learnhub/internal/domain/entity"
	domainerrors "learnhub/internal/domain/errors"
	"learnhub/internal/domain/repository"
	"learnhub/internal/domain/service"
	"learnhub/internal/errors"
	"learnhub/internal/infra/auth"
	mockRepo "learnhub/internal/mocks/repository"
	mockSvc "learnhub/internal/mocks/service"
	"learnhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// identityServiceFixtures holds all test dependencies for identity service tests.
type identityServiceFixtures struct {
	service      *identityService
	userRepo     *mockRepo.MockUserRepository
	tokenService *mockSvc.MockTokenService
}

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func createTestIdentityService(t *testing.T) identityServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	tokenService := mockSvc.NewMockTokenService(t)

	srv := NewIdentityService(IdentityServiceParams{
		UserRepo:     userRepo,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	}).(*identityService)
	srv.now = func() time.Time { return fixedNow }

	return identityServiceFixtures{
		service:      srv,
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

func TestIdentityService_Register_Success(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()
	expiresAt := fixedNow.Add(30 * time.Minute)

	fx.userRepo.EXPECT().FindByPhone(ctx, "0501234567").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().FindByIDNumber(ctx, "123456789").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, "Ana", user.Name)
			assert.Equal(t, "0501234567", user.Phone)
			assert.Equal(t, "123456789", user.IDNumber)
			assert.Equal(t, fixedNow, user.CreatedAt)
			user.ID = "user-1"
		}).
		Return(nil)
	fx.tokenService.EXPECT().GenerateToken("user-1").Return("signed-token", expiresAt, nil)

	out, err := fx.service.Register(ctx, usecase.IdentityInput{
		Name:     "Ana",
		Phone:    "050-123 4567",
		IDNumber: "123456789",
	})

	require.NoError(t, err)
	assert.Equal(t, &usecase.TokenOutput{
		AccessToken: "signed-token",
		TokenType:   usecase.TokenTypeBearer,
		ExpiresAt:   expiresAt,
		UserID:      "user-1",
		Name:        "Ana",
		IDNumber:    "123456789",
	}, out)
}

func TestIdentityService_Register_ValidationFailed(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.IdentityInput
	}{
		{name: "name too short", input: usecase.IdentityInput{Name: "A", Phone: "0501234567", IDNumber: "123456789"}},
		{name: "name too long", input: usecase.IdentityInput{Name: strings.Repeat("a", 51), Phone: "0501234567", IDNumber: "123456789"}},
		{name: "phone with letters", input: usecase.IdentityInput{Name: "Ana", Phone: "05012345ab", IDNumber: "123456789"}},
		{name: "phone too short", input: usecase.IdentityInput{Name: "Ana", Phone: "12345678", IDNumber: "123456789"}},
		{name: "phone too long", input: usecase.IdentityInput{Name: "Ana", Phone: "0123456789012345", IDNumber: "123456789"}},
		{name: "id number too short", input: usecase.IdentityInput{Name: "Ana", Phone: "0501234567", IDNumber: "1234"}},
		{name: "id number too long", input: usecase.IdentityInput{Name: "Ana", Phone: "0501234567", IDNumber: "1234567890123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestIdentityService(t)

			out, err := fx.service.Register(context.Background(), tt.input)

			require.Error(t, err)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestIdentityService_Register_Conflicts(t *testing.T) {
	t.Run("phone already registered", func(t *testing.T) {
		fx := createTestIdentityService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByPhone(ctx, "0501234567").Return(&entity.User{ID: "other"}, nil)

		_, err := fx.service.Register(ctx, usecase.IdentityInput{Name: "Ana", Phone: "0501234567", IDNumber: "123456789"})

		assert.ErrorIs(t, err, domainerrors.ErrPhoneAlreadyRegistered)
	})

	t.Run("id number already registered", func(t *testing.T) {
		fx := createTestIdentityService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByPhone(ctx, "0501234567").Return(nil, repository.ErrUserNotFound)
		fx.userRepo.EXPECT().FindByIDNumber(ctx, "123456789").Return(&entity.User{ID: "other"}, nil)

		_, err := fx.service.Register(ctx, usecase.IdentityInput{Name: "Ana", Phone: "0501234567", IDNumber: "123456789"})

		assert.ErrorIs(t, err, domainerrors.ErrIDNumberAlreadyRegistered)
	})

	t.Run("unique index rejects concurrent insert", func(t *testing.T) {
		fx := createTestIdentityService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByPhone(ctx, "0501234567").Return(nil, repository.ErrUserNotFound)
		fx.userRepo.EXPECT().FindByIDNumber(ctx, "123456789").Return(nil, repository.ErrUserNotFound)
		fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateIDNumber)

		_, err := fx.service.Register(ctx, usecase.IdentityInput{Name: "Ana", Phone: "0501234567", IDNumber: "123456789"})

		assert.ErrorIs(t, err, domainerrors.ErrIDNumberAlreadyRegistered)
	})
}

func TestIdentityService_Register_StoreFailure(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()
	storeErr := domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "insert user")

	fx.userRepo.EXPECT().FindByPhone(ctx, "0501234567").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().FindByIDNumber(ctx, "123456789").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(storeErr)

	_, err := fx.service.Register(ctx, usecase.IdentityInput{Name: "Ana", Phone: "0501234567", IDNumber: "123456789"})

	assert.ErrorIs(t, err, domainerrors.ErrUserCreationFailed)
}

func TestIdentityService_Register_LookupFailure(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()
	storeErr := errors.New("server selection timeout")

	fx.userRepo.EXPECT().FindByPhone(ctx, "0501234567").Return(nil, storeErr)

	_, err := fx.service.Register(ctx, usecase.IdentityInput{Name: "Ana", Phone: "0501234567", IDNumber: "123456789"})

	assert.ErrorIs(t, err, storeErr)
}

func TestIdentityService_Login_ExactMatch(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()
	user := &entity.User{ID: "user-1", Name: "Ana", Phone: "0501234567", IDNumber: "123456789"}

	fx.userRepo.EXPECT().FindByCredentials(ctx, "Ana", "0501234567", "123456789").Return(user, nil)
	fx.tokenService.EXPECT().GenerateToken("user-1").Return("signed-token", fixedNow, nil)

	out, err := fx.service.Login(ctx, usecase.IdentityInput{Name: "Ana", Phone: "050 123 4567", IDNumber: "123456789"})

	require.NoError(t, err)
	assert.Equal(t, "user-1", out.UserID)
	assert.Equal(t, "123456789", out.IDNumber)
	assert.Equal(t, usecase.TokenTypeBearer, out.TokenType)
}

func TestIdentityService_Login_MigratesLegacyUser(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()
	legacy := &entity.User{ID: "user-1", Name: "Ana", Phone: "0501234567"}
	upgraded := &entity.User{ID: "user-1", Name: "Ana", Phone: "0501234567", IDNumber: "123456789"}

	fx.userRepo.EXPECT().FindByCredentials(ctx, "Ana", "0501234567", "123456789").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().FindLegacy(ctx, "Ana", []string{"0501234567"}).Return(legacy, nil)
	fx.userRepo.EXPECT().MigrateLegacy(ctx, "user-1", "0501234567", "123456789").Return(nil)
	fx.userRepo.EXPECT().FindByID(ctx, "user-1").Return(upgraded, nil)
	fx.tokenService.EXPECT().GenerateToken("user-1").Return("signed-token", fixedNow, nil)

	out, err := fx.service.Login(ctx, usecase.IdentityInput{Name: "Ana", Phone: "0501234567", IDNumber: "123456789"})

	require.NoError(t, err)
	assert.Equal(t, "123456789", out.IDNumber)
}

func TestIdentityService_Login_LegacyUpgradedConcurrently(t *testing.T) {
	t.Run("same id number wins", func(t *testing.T) {
		fx := createTestIdentityService(t)
		ctx := context.Background()
		legacy := &entity.User{ID: "user-1", Name: "Ana", Phone: "0501234567"}

		fx.userRepo.EXPECT().FindByCredentials(ctx, "Ana", "0501234567", "123456789").Return(nil, repository.ErrUserNotFound)
		fx.userRepo.EXPECT().FindLegacy(ctx, "Ana", []string{"0501234567"}).Return(legacy, nil)
		fx.userRepo.EXPECT().MigrateLegacy(ctx, "user-1", "0501234567", "123456789").Return(repository.ErrUserNotFound)
		fx.userRepo.EXPECT().FindByID(ctx, "user-1").
			Return(&entity.User{ID: "user-1", Name: "Ana", Phone: "0501234567", IDNumber: "123456789"}, nil)
		fx.tokenService.EXPECT().GenerateToken("user-1").Return("signed-token", fixedNow, nil)

		out, err := fx.service.Login(ctx, usecase.IdentityInput{Name: "Ana", Phone: "0501234567", IDNumber: "123456789"})

		require.NoError(t, err)
		assert.Equal(t, "user-1", out.UserID)
	})

	t.Run("different id number loses", func(t *testing.T) {
		fx := createTestIdentityService(t)
		ctx := context.Background()
		legacy := &entity.User{ID: "user-1", Name: "Ana", Phone: "0501234567"}

		fx.userRepo.EXPECT().FindByCredentials(ctx, "Ana", "0501234567", "123456789").Return(nil, repository.ErrUserNotFound)
		fx.userRepo.EXPECT().FindLegacy(ctx, "Ana", []string{"0501234567"}).Return(legacy, nil)
		fx.userRepo.EXPECT().MigrateLegacy(ctx, "user-1", "0501234567", "123456789").Return(repository.ErrUserNotFound)
		fx.userRepo.EXPECT().FindByID(ctx, "user-1").
			Return(&entity.User{ID: "user-1", Name: "Ana", Phone: "0501234567", IDNumber: "999999999"}, nil)

		_, err := fx.service.Login(ctx, usecase.IdentityInput{Name: "Ana", Phone: "0501234567", IDNumber: "123456789"})

		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
		assert.ErrorContains(t, err, "migrated with another id number")
	})

	t.Run("id number taken by another user", func(t *testing.T) {
		fx := createTestIdentityService(t)
		ctx := context.Background()
		legacy := &entity.User{ID: "user-1", Name: "Ana", Phone: "0501234567"}

		fx.userRepo.EXPECT().FindByCredentials(ctx, "Ana", "0501234567", "123456789").Return(nil, repository.ErrUserNotFound)
		fx.userRepo.EXPECT().FindLegacy(ctx, "Ana", []string{"0501234567"}).Return(legacy, nil)
		fx.userRepo.EXPECT().MigrateLegacy(ctx, "user-1", "0501234567", "123456789").Return(repository.ErrDuplicateIDNumber)

		_, err := fx.service.Login(ctx, usecase.IdentityInput{Name: "Ana", Phone: "0501234567", IDNumber: "123456789"})

		assert.ErrorIs(t, err, domainerrors.ErrIDNumberAlreadyRegistered)
	})
}

func TestIdentityService_Login_LegacyRawPhone(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()
	legacy := &entity.User{ID: "user-1", Name: "Ana", Phone: "050-123-4567"}
	upgraded := &entity.User{ID: "user-1", Name: "Ana", Phone: "0501234567", IDNumber: "123456789"}

	fx.userRepo.EXPECT().FindByCredentials(ctx, "Ana", "0501234567", "123456789").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().FindLegacy(ctx, "Ana", []string{"0501234567", "050-123-4567"}).Return(legacy, nil)
	fx.userRepo.EXPECT().MigrateLegacy(ctx, "user-1", "0501234567", "123456789").Return(nil)
	fx.userRepo.EXPECT().FindByID(ctx, "user-1").Return(upgraded, nil)
	fx.tokenService.EXPECT().GenerateToken("user-1").Return("signed-token", fixedNow, nil)

	out, err := fx.service.Login(ctx, usecase.IdentityInput{Name: "Ana", Phone: "050-123-4567", IDNumber: "123456789"})

	require.NoError(t, err)
	assert.Equal(t, "user-1", out.UserID)
}

func TestIdentityService_Login_LegacyLookupReturnsMigratedRecord(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()
	migrated := &entity.User{ID: "user-1", Name: "Ana", Phone: "0501234567", IDNumber: "999999999"}

	fx.userRepo.EXPECT().FindByCredentials(ctx, "Ana", "0501234567", "123456789").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().FindLegacy(ctx, "Ana", []string{"0501234567"}).Return(migrated, nil)

	_, err := fx.service.Login(ctx, usecase.IdentityInput{Name: "Ana", Phone: "0501234567", IDNumber: "123456789"})

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestIdentityService_Login_NoMatch(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByCredentials(ctx, "Ana", "0501234567", "123456789").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().FindLegacy(ctx, "Ana", []string{"0501234567"}).Return(nil, repository.ErrUserNotFound)

	out, err := fx.service.Login(ctx, usecase.IdentityInput{Name: "Ana", Phone: "0501234567", IDNumber: "123456789"})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestIdentityService_Login_ValidationFailed(t *testing.T) {
	fx := createTestIdentityService(t)

	_, err := fx.service.Login(context.Background(), usecase.IdentityInput{Name: "Ana", Phone: "0501234567", IDNumber: ""})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestIdentityService_VerifyToken(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		fx := createTestIdentityService(t)
		fx.tokenService.EXPECT().ValidateToken("good").
			Return(&service.Claims{UserID: "user-1", Type: service.TokenTypeAccess}, nil)

		userID, err := fx.service.VerifyToken(context.Background(), "good")

		require.NoError(t, err)
		assert.Equal(t, "user-1", userID)
	})

	t.Run("invalid token", func(t *testing.T) {
		fx := createTestIdentityService(t)
		fx.tokenService.EXPECT().ValidateToken("bad").Return(nil, auth.ErrInvalidToken)

		userID, err := fx.service.VerifyToken(context.Background(), "bad")

		assert.Empty(t, userID)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})
}

func TestIdentityService_GetProfile(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr *domainerrors.BaseError
	}{
		{name: "found"},
		{name: "not found", repoErr: repository.ErrUserNotFound, wantErr: domainerrors.ErrUserNotFound},
		{name: "malformed id", repoErr: repository.ErrInvalidID, wantErr: domainerrors.ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestIdentityService(t)
			ctx := context.Background()
			var found *entity.User
			if tt.repoErr == nil {
				found = &entity.User{ID: "user-1", Name: "Ana"}
			}
			fx.userRepo.EXPECT().FindByID(ctx, "user-1").Return(found, tt.repoErr)

			user, err := fx.service.GetProfile(ctx, "user-1")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, found, user)
		})
	}
}

func TestIdentityService_ListUsers_NormalizesPage(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()
	want := entity.PageRequest{Page: 1, Limit: entity.MaxPageLimit, SortBy: entity.SortFieldCreatedAt, Order: entity.SortDesc}
	result := &entity.Page[*entity.User]{Page: 1, Limit: entity.MaxPageLimit}

	fx.userRepo.EXPECT().List(ctx, want).Return(result, nil)

	page, err := fx.service.ListUsers(ctx, entity.PageRequest{Page: 0, Limit: 500, SortBy: "phone", Order: "sideways"})

	require.NoError(t, err)
	assert.Same(t, result, page)
}

// newScenarioService wires the identity service to an in-memory store and real JWT signing.
func newScenarioService(t *testing.T) (usecase.IdentityUsecase, *fakeUserStore) {
	t.Helper()

	tokens, err := auth.NewJWTService(newTestConfig())
	require.NoError(t, err)

	store := &fakeUserStore{}
	srv := NewIdentityService(IdentityServiceParams{
		UserRepo:     store,
		TokenService: tokens,
		Logger:       newDiscardLogger(),
	})

	return srv, store
}

func TestIdentityScenario_RegisterThenLogin(t *testing.T) {
	srv, _ := newScenarioService(t)
	ctx := context.Background()
	input := usecase.IdentityInput{Name: "Ana", Phone: "0501234567", IDNumber: "123456789"}

	registered, err := srv.Register(ctx, input)
	require.NoError(t, err)
	assert.NotEmpty(t, registered.AccessToken)
	assert.Equal(t, "Ana", registered.Name)
	assert.Equal(t, "123456789", registered.IDNumber)

	subject, err := srv.VerifyToken(ctx, registered.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, subject)

	loggedIn, err := srv.Login(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, loggedIn.UserID)

	_, err = srv.Login(ctx, usecase.IdentityInput{Name: "Ana", Phone: "0501234567", IDNumber: "987654321"})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)

	_, err = srv.Register(ctx, usecase.IdentityInput{Name: "Bob", Phone: "0501234567", IDNumber: "555555555"})
	assert.ErrorIs(t, err, domainerrors.ErrPhoneAlreadyRegistered)

	_, err = srv.Register(ctx, usecase.IdentityInput{Name: "Bob", Phone: "0509999999", IDNumber: "123456789"})
	assert.ErrorIs(t, err, domainerrors.ErrIDNumberAlreadyRegistered)
}

func TestIdentityScenario_LegacyMigratesOnce(t *testing.T) {
	srv, store := newScenarioService(t)
	ctx := context.Background()
	legacyID := store.seedLegacy("Ana", "0501234567")

	first, err := srv.Login(ctx, usecase.IdentityInput{Name: "Ana", Phone: "0501234567", IDNumber: "123456789"})
	require.NoError(t, err)
	assert.Equal(t, legacyID, first.UserID)
	assert.Equal(t, "123456789", first.IDNumber)

	stored, err := store.FindByID(ctx, legacyID)
	require.NoError(t, err)
	assert.False(t, stored.IsLegacy())

	again, err := srv.Login(ctx, usecase.IdentityInput{Name: "Ana", Phone: "0501234567", IDNumber: "123456789"})
	require.NoError(t, err)
	assert.Equal(t, legacyID, again.UserID)

	_, err = srv.Login(ctx, usecase.IdentityInput{Name: "Ana", Phone: "0501234567", IDNumber: "000011112"})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestIdentityScenario_LegacyRawPhoneIsNormalizedOnMigration(t *testing.T) {
	srv, store := newScenarioService(t)
	ctx := context.Background()
	legacyID := store.seedLegacy("Ana", "050-123-4567")

	first, err := srv.Login(ctx, usecase.IdentityInput{Name: "Ana", Phone: "050-123-4567", IDNumber: "123456789"})
	require.NoError(t, err)
	assert.Equal(t, legacyID, first.UserID)

	stored, err := store.FindByID(ctx, legacyID)
	require.NoError(t, err)
	assert.Equal(t, "0501234567", stored.Phone)
	assert.Equal(t, "123456789", stored.IDNumber)

	again, err := srv.Login(ctx, usecase.IdentityInput{Name: "Ana", Phone: "0501234567", IDNumber: "123456789"})
	require.NoError(t, err)
	assert.Equal(t, legacyID, again.UserID)
}
