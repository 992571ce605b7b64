package entity

import "github.com/google/uuid"

// City is a reference row stores and addresses point at.
type City struct {
	ID    uuid.UUID
	Name  string
	State string // Two-letter state code, e.g. "SP".
}
