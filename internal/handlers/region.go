package handlers

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"

	"github.com/vracar/tripfolio/internal/middleware"
	"github.com/vracar/tripfolio/internal/services"
	"github.com/vracar/tripfolio/pkg/dto"
)

type RegionHandler struct {
	regionService   RegionServiceInterface
	wishlistService WishlistServiceInterface
	tripService     TripServiceInterface
}

func NewRegionHandler(
	regionService RegionServiceInterface,
	wishlistService WishlistServiceInterface,
	tripService TripServiceInterface,
) *RegionHandler {
	return &RegionHandler{
		regionService:   regionService,
		wishlistService: wishlistService,
		tripService:     tripService,
	}
}

func (h *RegionHandler) Create(c *drift.Context) {
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

	var req dto.CreateRegionRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.ID == "" || req.Name == "" {
		c.BadRequest("id and name are required")
		return
	}

	region, err := h.regionService.Create(ctx, tripID, req.ID, req.Name, req.Notes)
	if err != nil {
		c.InternalServerError("failed to create region")
		return
	}

	_ = c.JSON(201, dto.RegionResponse{
		ID:    region.ID,
		Name:  region.Name,
		Notes: region.Notes,
	})
}

// List returns the trip's regions. Listing doubles as the reconciliation
// point: wishlist items carrying a stale region id get repaired here, so
// the next wishlist read is already consistent.
func (h *RegionHandler) List(c *drift.Context) {
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

	h.wishlistService.ReconcileRegions(ctx, tripID, regions)

	response := make([]dto.RegionResponse, len(regions))
	for i, r := range regions {
		response[i] = dto.RegionResponse{
			ID:    r.ID,
			Name:  r.Name,
			Notes: r.Notes,
		}
	}

	_ = c.JSON(200, response)
}

func (h *RegionHandler) Update(c *drift.Context) {
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

	regionID := c.Param("regionId")
	if regionID == "" {
		c.BadRequest("invalid region id")
		return
	}

	ctx := context.Background()

	isMember, err := h.tripService.IsMember(ctx, tripID, userID)
	if err != nil || !isMember {
		c.NotFound("trip not found")
		return
	}

	var req dto.UpdateRegionRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Name == "" {
		c.BadRequest("name is required")
		return
	}

	region, err := h.regionService.Update(ctx, tripID, regionID, req.Name, req.Notes)
	if err != nil {
		if errors.Is(err, services.ErrRegionNotFound) {
			c.NotFound("region not found")
			return
		}
		c.InternalServerError("failed to update region")
		return
	}

	_ = c.JSON(200, dto.RegionResponse{
		ID:    region.ID,
		Name:  region.Name,
		Notes: region.Notes,
	})
}

func (h *RegionHandler) Delete(c *drift.Context) {
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

	regionID := c.Param("regionId")
	if regionID == "" {
		c.BadRequest("invalid region id")
		return
	}

	ctx := context.Background()

	isMember, err := h.tripService.IsMember(ctx, tripID, userID)
	if err != nil || !isMember {
		c.NotFound("trip not found")
		return
	}

	if err := h.regionService.Delete(ctx, tripID, regionID); err != nil {
		if errors.Is(err, services.ErrRegionNotFound) {
			c.NotFound("region not found")
			return
		}
		c.InternalServerError("failed to delete region")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "region deleted"})
}
