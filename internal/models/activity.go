package models

import (
	"time"

	"github.com/google/uuid"
)

// Activity is one scheduled itinerary entry. RegionID and WishlistItemID
// are weak references, same rules as WishlistItem.RegionID.
type Activity struct {
	ID             uuid.UUID  `json:"id"`
	TripID         uuid.UUID  `json:"trip_id"`
	Title          string     `json:"title"`
	Day            time.Time  `json:"day"`
	StartTime      *string    `json:"start_time,omitempty"` // "15:04", no date component
	Notes          string     `json:"notes,omitempty"`
	RegionID       *string    `json:"region_id,omitempty"`
	WishlistItemID *uuid.UUID `json:"wishlist_item_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}
