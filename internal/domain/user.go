package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account identified by the external (identity provider) id
// carried in the auth headers.
type User struct {
	ID         uuid.UUID `json:"id"`
	ExternalID string    `json:"externalId"`
	Email      *string   `json:"email,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// HealthResponse is returned by the authenticated health check.
type HealthResponse struct {
	OK     bool      `json:"ok" example:"true"`
	UserID uuid.UUID `json:"userId" example:"550e8400-e29b-41d4-a716-446655440000"`
}
