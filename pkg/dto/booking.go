package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	Title         string  `json:"title"`
	Kind          string  `json:"kind"`
	BookedFor     *string `json:"booked_for"` // "2006-01-02"
	ReferenceCode string  `json:"reference_code"`
	URL           string  `json:"url"`
	Notes         string  `json:"notes"`
}

type UpdateBookingRequest struct {
	Title         string  `json:"title"`
	Kind          string  `json:"kind"`
	BookedFor     *string `json:"booked_for"`
	ReferenceCode string  `json:"reference_code"`
	URL           string  `json:"url"`
	Notes         string  `json:"notes"`
}

type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Kind          string    `json:"kind"`
	BookedFor     *string   `json:"booked_for,omitempty"`
	ReferenceCode string    `json:"reference_code,omitempty"`
	URL           string    `json:"url,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
