package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	Role         UserRole
	PasswordHash string
	LastActiveAt *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
