// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"userreg/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is returned when no account matches a lookup.
var ErrAccountNotFound = errors.New("account not found")

// ErrUsernameTaken is returned by Insert when the unique username constraint rejects the row.
var ErrUsernameTaken = errors.New("username already taken")

// AccountRepository persists the Account -> PersonalInfo -> Address aggregate.
// Every read returns the aggregate with PersonalInfo and Address loaded.
type AccountRepository interface {
	// FindByUsername retrieves an account by its exact username.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)

	// FindByID retrieves an account by id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// ListAll returns every account ordered by username.
	ListAll(ctx context.Context) ([]*entity.Account, error)

	// Insert creates the account, its PersonalInfo and its Address atomically.
	Insert(ctx context.Context, account *entity.Account) error

	// UpdatePersonalInfo writes only the PersonalInfo row of the aggregate.
	UpdatePersonalInfo(ctx context.Context, account *entity.Account) error

	// UpdateAddress writes only the Address row of the aggregate.
	UpdateAddress(ctx context.Context, account *entity.Account) error

	// UpdateRole changes the role of an account. Used for out-of-band provisioning.
	UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) error

	// DeleteByID removes the account together with its PersonalInfo and Address.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
