package models

import (
	"time"

	"github.com/google/uuid"
)

// Region is a user-defined grouping within a trip. Its id is chosen by the
// caller (historically a slug of the name, but not reliably so) and is
// unique only within the trip.
type Region struct {
	TripID    uuid.UUID `json:"trip_id"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
