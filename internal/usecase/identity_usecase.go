// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"learnhub/internal/domain/entity"
)

// TokenTypeBearer is the token_type reported with every issued token.
const TokenTypeBearer = "bearer"

// --- Input DTOs ---

// IdentityInput is the (name, phone, id number) triple used to register and to log in.
type IdentityInput struct {
	Name     string
	Phone    string
	IDNumber string
}

// --- Output DTOs ---

// TokenOutput is returned by a successful registration or login.
type TokenOutput struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
	UserID      string
	Name        string
	IDNumber    string
}

// IdentityUsecase defines user registration, login and token verification.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type IdentityUsecase interface {
	Register(ctx context.Context, input IdentityInput) (*TokenOutput, error)
	Login(ctx context.Context, input IdentityInput) (*TokenOutput, error)

	// VerifyToken returns the user id bound to a valid access token.
	VerifyToken(ctx context.Context, token string) (string, error)

	GetProfile(ctx context.Context, userID string) (*entity.User, error)
	ListUsers(ctx context.Context, page entity.PageRequest) (*entity.Page[*entity.User], error)
}
