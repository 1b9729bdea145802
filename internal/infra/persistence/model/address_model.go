package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel mirrors the 'addresses' table. PersonalInfoID references personal_infos.id (1:1).
type AddressModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	PersonalInfoID  uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	City            string    `gorm:"type:varchar(100);not null"`
	Street          string    `gorm:"type:varchar(100);not null"`
	HouseNumber     string    `gorm:"type:varchar(100);not null"`
	ApartmentNumber string    `gorm:"type:varchar(100);not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
