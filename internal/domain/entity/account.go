// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the aggregate root. It owns exactly one PersonalInfo, which owns exactly one Address.
// PasswordHash and Salt never leave the service boundary.
type Account struct {
	ID           uuid.UUID     // Immutable identifier assigned at registration.
	Username     string        // Globally unique, compared case-sensitively as stored.
	PasswordHash []byte        // HMAC-SHA-512 of the password keyed by Salt.
	Salt         []byte        // Per-account random key for the password hash.
	Role         Role          // Authorization level.
	PersonalInfo *PersonalInfo // Always present on a loaded aggregate.
	CreatedAt    time.Time     // Timestamp of when this account was created.
	UpdatedAt    time.Time     // Timestamp of the last modification to this account row.
}

// PersonalInfo holds the account holder's personal and contact data.
type PersonalInfo struct {
	ID                           uuid.UUID // Immutable identifier assigned at registration.
	AccountID                    uuid.UUID // Foreign key to the owning Account.
	FirstName                    string
	Surname                      string
	PersonalIdentificationNumber string
	PhoneNumber                  string
	Email                        string
	ProfilePicture               []byte   // Encoded image bytes, nil when no picture was uploaded.
	Address                      *Address // Always present on a loaded aggregate.
}

// Address is the postal address attached to a PersonalInfo.
type Address struct {
	ID              uuid.UUID // Immutable identifier assigned at registration.
	PersonalInfoID  uuid.UUID // Foreign key to the owning PersonalInfo.
	City            string
	Street          string
	HouseNumber     string
	ApartmentNumber string
}

// NewAccount assembles a full aggregate with fresh ids and consistent foreign keys.
func NewAccount(username string, passwordHash, salt []byte, role Role, info PersonalInfo, address Address) *Account {
	account := &Account{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		Salt:         salt,
		Role:         role,
	}

	info.ID = uuid.New()
	info.AccountID = account.ID
	address.ID = uuid.New()
	address.PersonalInfoID = info.ID
	info.Address = &address
	account.PersonalInfo = &info

	return account
}

// IsComplete reports whether the aggregate carries both owned sub-entities.
func (a *Account) IsComplete() bool {
	return a != nil && a.PersonalInfo != nil && a.PersonalInfo.Address != nil
}
