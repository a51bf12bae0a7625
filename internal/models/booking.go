package models

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	ID            uuid.UUID  `json:"id"`
	TripID        uuid.UUID  `json:"trip_id"`
	Title         string     `json:"title"`
	Kind          string     `json:"kind"`
	BookedFor     *time.Time `json:"booked_for,omitempty"`
	ReferenceCode string     `json:"reference_code,omitempty"`
	URL           string     `json:"url,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

const (
	BookingFlight  = "flight"
	BookingLodging = "lodging"
	BookingTicket  = "ticket"
	BookingOther   = "other"
)
