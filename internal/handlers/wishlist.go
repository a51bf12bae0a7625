package handlers

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"

	"github.com/vracar/tripfolio/internal/middleware"
	"github.com/vracar/tripfolio/internal/models"
	"github.com/vracar/tripfolio/internal/services"
	"github.com/vracar/tripfolio/pkg/dto"
)

type WishlistHandler struct {
	wishlistService WishlistServiceInterface
	regionService   RegionServiceInterface
	tripService     TripServiceInterface
	hub             HubInterface
}

func NewWishlistHandler(
	wishlistService WishlistServiceInterface,
	regionService RegionServiceInterface,
	tripService TripServiceInterface,
	hub HubInterface,
) *WishlistHandler {
	return &WishlistHandler{
		wishlistService: wishlistService,
		regionService:   regionService,
		tripService:     tripService,
		hub:             hub,
	}
}

func (h *WishlistHandler) Create(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	tripID, err := uuid.Parse(c.Param("tripId"))
	if err != nil {
		c.BadRequest("invalid trip id")
		return
	}

	ctx := context.Background()

	isMember, err := h.tripService.IsMember(ctx, tripID, userID)
	if err != nil || !isMember {
		c.NotFound("trip not found")
		return
	}

	var req dto.CreateWishlistItemRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Title == "" {
		c.BadRequest("title is required")
		return
	}

	item, err := h.wishlistService.Create(ctx, models.WishlistItem{
		TripID:      tripID,
		Title:       req.Title,
		Link:        req.Link,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		RegionID:    req.RegionID,
		Planned:     req.Planned,
	})
	if err != nil {
		c.InternalServerError("failed to create wishlist item")
		return
	}

	_ = c.JSON(201, itemResponse(item))
}

func (h *WishlistHandler) List(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	tripID, err := uuid.Parse(c.Param("tripId"))
	if err != nil {
		c.BadRequest("invalid trip id")
		return
	}

	ctx := context.Background()

	isMember, err := h.tripService.IsMember(ctx, tripID, userID)
	if err != nil || !isMember {
		c.NotFound("trip not found")
		return
	}

	items, err := h.wishlistService.List(ctx, tripID)
	if err != nil {
		c.InternalServerError("failed to get wishlist")
		return
	}

	response := make([]dto.WishlistItemResponse, len(items))
	for i := range items {
		response[i] = itemResponse(&items[i])
	}

	_ = c.JSON(200, response)
}

// Grouped returns the wishlist bucketed by region, in the order regions
// were created, with unassigned items last. Group headers always render:
// a dangling region id falls back to a humanized form of the id.
func (h *WishlistHandler) Grouped(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	tripID, err := uuid.Parse(c.Param("tripId"))
	if err != nil {
		c.BadRequest("invalid trip id")
		return
	}

	ctx := context.Background()

	isMember, err := h.tripService.IsMember(ctx, tripID, userID)
	if err != nil || !isMember {
		c.NotFound("trip not found")
		return
	}

	regions, err := h.regionService.List(ctx, tripID)
	if err != nil {
		c.InternalServerError("failed to get regions")
		return
	}

	items, err := h.wishlistService.List(ctx, tripID)
	if err != nil {
		c.InternalServerError("failed to get wishlist")
		return
	}

	buckets := make(map[string][]dto.WishlistItemResponse)
	var unassigned []dto.WishlistItemResponse
	var danglingOrder []string
	for i := range items {
		resp := itemResponse(&items[i])
		if items[i].RegionID == nil {
			unassigned = append(unassigned, resp)
			continue
		}
		id := *items[i].RegionID
		if _, seen := buckets[id]; !seen {
			danglingOrder = append(danglingOrder, id)
		}
		buckets[id] = append(buckets[id], resp)
	}

	var response []dto.WishlistGroupResponse
	for _, r := range regions {
		group, ok := buckets[r.ID]
		if !ok {
			continue
		}
		delete(buckets, r.ID)
		id := r.ID
		response = append(response, dto.WishlistGroupResponse{
			RegionID:   &id,
			RegionName: r.Name,
			Items:      group,
		})
	}
	for _, id := range danglingOrder {
		group, ok := buckets[id]
		if !ok {
			continue
		}
		rid := id
		response = append(response, dto.WishlistGroupResponse{
			RegionID:   &rid,
			RegionName: services.RegionDisplayName(id, regions),
			Items:      group,
		})
	}
	if len(unassigned) > 0 {
		response = append(response, dto.WishlistGroupResponse{
			RegionName: "Unassigned",
			Items:      unassigned,
		})
	}

	_ = c.JSON(200, response)
}

func (h *WishlistHandler) Update(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	tripID, err := uuid.Parse(c.Param("tripId"))
	if err != nil {
		c.BadRequest("invalid trip id")
		return
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		c.BadRequest("invalid item id")
		return
	}

	ctx := context.Background()

	isMember, err := h.tripService.IsMember(ctx, tripID, userID)
	if err != nil || !isMember {
		c.NotFound("trip not found")
		return
	}

	var req dto.UpdateWishlistItemRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Title == "" {
		c.BadRequest("title is required")
		return
	}

	item, err := h.wishlistService.Update(ctx, models.WishlistItem{
		ID:          itemID,
		TripID:      tripID,
		Title:       req.Title,
		Link:        req.Link,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		RegionID:    req.RegionID,
		Planned:     req.Planned,
	})
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			c.NotFound("wishlist item not found")
			return
		}
		c.InternalServerError("failed to update wishlist item")
		return
	}

	_ = c.JSON(200, itemResponse(item))
}

func (h *WishlistHandler) Delete(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	tripID, err := uuid.Parse(c.Param("tripId"))
	if err != nil {
		c.BadRequest("invalid trip id")
		return
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		c.BadRequest("invalid item id")
		return
	}

	ctx := context.Background()

	isMember, err := h.tripService.IsMember(ctx, tripID, userID)
	if err != nil || !isMember {
		c.NotFound("trip not found")
		return
	}

	if err := h.wishlistService.Delete(ctx, tripID, itemID); err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			c.NotFound("wishlist item not found")
			return
		}
		c.InternalServerError("failed to delete wishlist item")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "wishlist item deleted"})
}

func (h *WishlistHandler) Vote(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	tripID, err := uuid.Parse(c.Param("tripId"))
	if err != nil {
		c.BadRequest("invalid trip id")
		return
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		c.BadRequest("invalid item id")
		return
	}

	ctx := context.Background()

	isMember, err := h.tripService.IsMember(ctx, tripID, userID)
	if err != nil || !isMember {
		c.NotFound("trip not found")
		return
	}

	item, err := h.wishlistService.Vote(ctx, tripID, itemID)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			c.NotFound("wishlist item not found")
			return
		}
		c.InternalServerError("failed to vote")
		return
	}

	h.hub.BroadcastWishlistUpdate(tripID, item.ID, item.Votes)

	_ = c.JSON(200, itemResponse(item))
}

func itemResponse(item *models.WishlistItem) dto.WishlistItemResponse {
	return dto.WishlistItemResponse{
		ID:          item.ID,
		Title:       item.Title,
		Votes:       item.Votes,
		Link:        item.Link,
		ImageURL:    item.ImageURL,
		Description: item.Description,
		RegionID:    item.RegionID,
		Planned:     item.Planned,
		CreatedAt:   item.CreatedAt,
	}
}
