package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a postal address optionally attached to a store or a branch.
type Address struct {
	ID           uuid.UUID
	StoreID      *uuid.UUID // Set when the address belongs to the store's primary record.
	Street       string
	Number       string
	Complement   string
	Neighborhood string
	ZipCode      string
	CityID       uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
