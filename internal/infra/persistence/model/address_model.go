package model

import (
	"time"

	"github.com/google/uuid"
)

// CityModel mirrors the 'cities' reference table.
type CityModel struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name  string    `gorm:"type:varchar(100);not null;index"`
	State string    `gorm:"type:char(2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (CityModel) TableName() string {
	return "cities"
}

// AddressModel mirrors the 'addresses' table.
type AddressModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StoreID      *uuid.UUID `gorm:"type:uuid;index"`
	Street       string     `gorm:"type:varchar(200);not null"`
	Number       string     `gorm:"type:varchar(20)"`
	Complement   string     `gorm:"type:varchar(100)"`
	Neighborhood string     `gorm:"type:varchar(100)"`
	ZipCode      string     `gorm:"type:varchar(12);not null"`
	CityID       uuid.UUID  `gorm:"type:uuid;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
