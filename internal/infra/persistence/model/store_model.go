package model

import (
	"time"

	"github.com/google/uuid"
)

// StoreModel mirrors the 'stores' table. Slug, tax id and WhatsApp carry
// unique indexes backing the application-level pre-checks.
type StoreModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name           string    `gorm:"type:varchar(100);not null"`
	Slug           string    `gorm:"type:varchar(100);unique;not null"`
	CnpjCpf        string    `gorm:"column:cnpj_cpf;type:varchar(18);unique;not null"`
	Whatsapp       string    `gorm:"type:varchar(20);unique;not null"`
	LogoURL        string    `gorm:"type:text"`
	BannerURL      string    `gorm:"type:text"`
	PrimaryColor   string    `gorm:"type:varchar(9)"`
	SecondaryColor string    `gorm:"type:varchar(9)"`
	CityID         uuid.UUID `gorm:"type:uuid;not null"`
	OwnerID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Status         string    `gorm:"type:varchar(20);not null;default:'PENDING'"`
	IsPaid         bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Branches  []StoreBranchModel `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE"`
	Addresses []AddressModel     `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}

// StoreBranchModel mirrors the 'store_branches' table.
type StoreBranchModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StoreID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name      string     `gorm:"type:varchar(100);not null"`
	Whatsapp  string     `gorm:"type:varchar(20)"`
	AddressID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreBranchModel) TableName() string {
	return "store_branches"
}
