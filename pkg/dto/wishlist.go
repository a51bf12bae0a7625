package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateWishlistItemRequest struct {
	Title       string  `json:"title"`
	Link        string  `json:"link"`
	ImageURL    string  `json:"image_url"`
	Description string  `json:"description"`
	RegionID    *string `json:"region_id"`
	Planned     bool    `json:"planned"`
}

type UpdateWishlistItemRequest struct {
	Title       string  `json:"title"`
	Link        string  `json:"link"`
	ImageURL    string  `json:"image_url"`
	Description string  `json:"description"`
	RegionID    *string `json:"region_id"`
	Planned     bool    `json:"planned"`
}

type WishlistItemResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Votes       int       `json:"votes"`
	Link        string    `json:"link,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Description string    `json:"description,omitempty"`
	RegionID    *string   `json:"region_id,omitempty"`
	Planned     bool      `json:"planned"`
	CreatedAt   time.Time `json:"created_at"`
}

// WishlistGroupResponse is one region bucket of the grouped wishlist view.
// RegionName is always printable: a dangling region id gets a humanized
// form of the id itself.
type WishlistGroupResponse struct {
	RegionID   *string                `json:"region_id,omitempty"`
	RegionName string                 `json:"region_name"`
	Items      []WishlistItemResponse `json:"items"`
}
