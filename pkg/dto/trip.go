package dto

import "github.com/google/uuid"

type CreateTripRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type UpdateTripRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type TripResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	OwnerID     *uuid.UUID `json:"owner_id,omitempty"`
	Role        string     `json:"role"`
}

type TripMemberResponse struct {
	ID     uuid.UUID    `json:"id"`
	UserID uuid.UUID    `json:"user_id"`
	Role   string       `json:"role"`
	User   UserResponse `json:"user"`
}

type InviteByEmailRequest struct {
	Email string `json:"email"`
}

type InviteByEmailResponse struct {
	UserID uuid.UUID `json:"uid"`
}
