package entity

import (
	"time"

	"github.com/google/uuid"
)

// Operator roles.
const (
	RoleAdmin    = "admin"
	RoleMarketer = "marketer"
)

// Operator is a dashboard user.
type Operator struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
