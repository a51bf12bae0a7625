package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateActivityRequest struct {
	Title          string     `json:"title"`
	Day            string     `json:"day"` // "2006-01-02"
	StartTime      *string    `json:"start_time"`
	Notes          string     `json:"notes"`
	RegionID       *string    `json:"region_id"`
	WishlistItemID *uuid.UUID `json:"wishlist_item_id"`
}

type UpdateActivityRequest struct {
	Title          string     `json:"title"`
	Day            string     `json:"day"`
	StartTime      *string    `json:"start_time"`
	Notes          string     `json:"notes"`
	RegionID       *string    `json:"region_id"`
	WishlistItemID *uuid.UUID `json:"wishlist_item_id"`
}

type ActivityResponse struct {
	ID             uuid.UUID  `json:"id"`
	Title          string     `json:"title"`
	Day            string     `json:"day"`
	StartTime      *string    `json:"start_time,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	RegionID       *string    `json:"region_id,omitempty"`
	WishlistItemID *uuid.UUID `json:"wishlist_item_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}
