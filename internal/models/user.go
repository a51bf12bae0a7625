package models

import (
	"time"

	"github.com/google/uuid"
)

// ProviderInvite marks a passwordless user shell created by a direct
// email invite. Such users have no credentials until they sign in through
// a real provider with the same email.
const ProviderInvite = "invite"

type User struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	AvatarURL  *string   `json:"avatar_url,omitempty"`
	Provider   string    `json:"provider"`
	ProviderID string    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
