package entity

import (
	"time"

	"github.com/google/uuid"
)

// StoreStatus is the lifecycle state of a storefront.
type StoreStatus string

const (
	StoreStatusActive   StoreStatus = "ACTIVE"
	StoreStatusInactive StoreStatus = "INACTIVE"
	StoreStatusPending  StoreStatus = "PENDING"
)

// Store is a tenant's storefront: branding, contact and billing state.
// Slug, tax id and WhatsApp number are each globally unique across the platform.
type Store struct {
	ID             uuid.UUID
	Name           string
	Slug           string // URL-safe unique identifier used by the public storefront.
	CnpjCpf        string // Brazilian tax id (CNPJ or CPF).
	Whatsapp       string
	LogoURL        string
	BannerURL      string
	PrimaryColor   string
	SecondaryColor string
	CityID         uuid.UUID
	OwnerID        uuid.UUID
	Status         StoreStatus
	IsPaid         bool // True while a PAID subscription covers the current period.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// StoreBranch is a physical location belonging to a store, with its own
// address and contact metadata.
type StoreBranch struct {
	ID        uuid.UUID
	StoreID   uuid.UUID
	Name      string
	Whatsapp  string
	AddressID *uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}
