package models

import (
	"time"

	"github.com/google/uuid"
)

// WishlistItem is a candidate destination. RegionID is a weak reference:
// it may name a region that was deleted or never existed under that id,
// and readers must tolerate that (see services.WishlistService and
// services.RegionDisplayName).
type WishlistItem struct {
	ID          uuid.UUID `json:"id"`
	TripID      uuid.UUID `json:"trip_id"`
	Title       string    `json:"title"`
	Votes       int       `json:"votes"`
	Link        string    `json:"link,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Description string    `json:"description,omitempty"`
	RegionID    *string   `json:"region_id,omitempty"`
	Planned     bool      `json:"planned"`
	CreatedAt   time.Time `json:"created_at"`
}
