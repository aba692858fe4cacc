// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"learnhub/internal/domain/entity"
	"learnhub/internal/errors"
)

// Errors shared by every store implementation.
var (
	// ErrInvalidID is returned when an id does not have the format the store assigns.
	ErrInvalidID = errors.New("invalid id")

	// ErrUserNotFound is a domain-specific error returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicatePhone is returned when a write hits the unique phone index.
	ErrDuplicatePhone = errors.New("phone already exists")

	// ErrDuplicateIDNumber is returned when a write hits the unique id number index.
	ErrDuplicateIDNumber = errors.New("id number already exists")
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// Create persists a new user and sets its ID and CreatedAt.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByPhone retrieves a user by normalized phone number.
	FindByPhone(ctx context.Context, phone string) (*entity.User, error)

	// FindByIDNumber retrieves a user by national id number.
	FindByIDNumber(ctx context.Context, idNumber string) (*entity.User, error)

	// FindByCredentials retrieves the user matching name, phone and id number exactly.
	FindByCredentials(ctx context.Context, name, phone, idNumber string) (*entity.User, error)

	// FindLegacy retrieves a user matching name and any of phones whose id number is not set.
	// Legacy records may hold the phone as it was typed, so callers pass every accepted spelling.
	FindLegacy(ctx context.Context, name string, phones []string) (*entity.User, error)

	// MigrateLegacy sets the id number of a legacy user and rewrites its phone in normalized
	// form. The write only applies while the stored id number is still unset; otherwise
	// ErrUserNotFound is returned.
	MigrateLegacy(ctx context.Context, id, phone, idNumber string) error

	// List returns one page of users.
	List(ctx context.Context, page entity.PageRequest) (*entity.Page[*entity.User], error)
}
