package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateInviteResponse struct {
	Code     string `json:"code"`
	ClaimURL string `json:"claim_url"`
}

type ClaimInviteRequest struct {
	Code string `json:"code"`
}

type ClaimInviteResponse struct {
	TripID uuid.UUID `json:"trip_id"`
}

type InviteResponse struct {
	ID        uuid.UUID  `json:"id"`
	Code      string     `json:"code"`
	TripID    uuid.UUID  `json:"trip_id"`
	Role      string     `json:"role"`
	UsedBy    *uuid.UUID `json:"used_by,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	ClaimedAt *time.Time `json:"claimed_at,omitempty"`
}
