// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"userreg/internal/domain/entity"
)

// RegisterInput carries an already validated registration request.
type RegisterInput struct {
	Username string
	Password string

	FirstName                    string
	Surname                      string
	PersonalIdentificationNumber string
	PhoneNumber                  string
	Email                        string
	ProfilePicture               []byte // Processed image bytes, required.

	City            string
	Street          string
	HouseNumber     string
	ApartmentNumber string
}

// AuthUsecase covers self-registration and credential checks.
type AuthUsecase interface {
	// Register creates a new "User" account aggregate. Fails with ErrDuplicateUsername before any hashing
	// when the username is taken.
	Register(ctx context.Context, input *RegisterInput) (*entity.Account, error)

	// Login returns the account when username and password match, ErrInvalidCredentials otherwise.
	// The error does not reveal which factor failed.
	Login(ctx context.Context, username, password string) (*entity.Account, error)
}
