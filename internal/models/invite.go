package models

import (
	"time"

	"github.com/google/uuid"
)

// Invite is a single-use membership code. UsedBy stays nil until the code
// is claimed; once set, the invite is terminal and the row is kept as an
// audit trail.
type Invite struct {
	ID        uuid.UUID  `json:"id"`
	Code      string     `json:"code"`
	TripID    uuid.UUID  `json:"trip_id"`
	Role      string     `json:"role"`
	UsedBy    *uuid.UUID `json:"used_by,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	ClaimedAt *time.Time `json:"claimed_at,omitempty"`
}
