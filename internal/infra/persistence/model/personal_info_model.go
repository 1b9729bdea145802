package model

import (
	"time"

	"github.com/google/uuid"
)

// PersonalInfoModel mirrors the 'personal_infos' table. AccountID references accounts.id (1:1).
type PersonalInfoModel struct {
	ID                           uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID                    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	FirstName                    string    `gorm:"type:varchar(150);not null"`
	Surname                      string    `gorm:"type:varchar(150);not null"`
	PersonalIdentificationNumber string    `gorm:"type:varchar(50);not null"`
	PhoneNumber                  string    `gorm:"type:varchar(20);not null"`
	Email                        string    `gorm:"type:varchar(100);not null"`
	ProfilePicture               []byte    `gorm:"type:bytea;not null"`
	CreatedAt                    time.Time
	UpdatedAt                    time.Time

	Address *AddressModel `gorm:"foreignKey:PersonalInfoID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (PersonalInfoModel) TableName() string {
	return "personal_infos"
}
