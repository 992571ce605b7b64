// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a platform account: an administrator, a store owner,
// or an employee attached to an owner's store.
type User struct {
	ID           uuid.UUID  // The Global Unique Identifier (GUID) for the user.
	Name         string     // Display name.
	Email        string     // Primary contact email, used as the login identifier.
	PasswordHash string     // Bcrypt hash of the password; empty for delegated (OAuth) accounts.
	Role         Role       // Access role within the platform.
	StoreID      *uuid.UUID // Store this account belongs to; nil for users without a store yet.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RefreshToken is a persisted, revocable token backing the refresh flow.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string // SHA-256 of the opaque token handed to the client.
	ExpiresAt time.Time
	CreatedAt time.Time
}
