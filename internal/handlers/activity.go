package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"

	"github.com/vracar/tripfolio/internal/middleware"
	"github.com/vracar/tripfolio/internal/models"
	"github.com/vracar/tripfolio/internal/services"
	"github.com/vracar/tripfolio/pkg/dto"
)

const dayFormat = "2006-01-02"

type ActivityHandler struct {
	activityService ActivityServiceInterface
	tripService     TripServiceInterface
	hub             HubInterface
}

func NewActivityHandler(
	activityService ActivityServiceInterface,
	tripService TripServiceInterface,
	hub HubInterface,
) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
		tripService:     tripService,
		hub:             hub,
	}
}

func (h *ActivityHandler) Create(c *drift.Context) {
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

	var req dto.CreateActivityRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Title == "" {
		c.BadRequest("title is required")
		return
	}

	day, err := time.Parse(dayFormat, req.Day)
	if err != nil {
		c.BadRequest("day must be formatted as YYYY-MM-DD")
		return
	}

	activity, err := h.activityService.Create(ctx, models.Activity{
		TripID:         tripID,
		Title:          req.Title,
		Day:            day,
		StartTime:      req.StartTime,
		Notes:          req.Notes,
		RegionID:       req.RegionID,
		WishlistItemID: req.WishlistItemID,
	})
	if err != nil {
		c.InternalServerError("failed to create activity")
		return
	}

	h.hub.BroadcastItineraryUpdate(tripID, activity.ID)

	_ = c.JSON(201, activityResponse(activity))
}

func (h *ActivityHandler) List(c *drift.Context) {
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

	activities, err := h.activityService.List(ctx, tripID)
	if err != nil {
		c.InternalServerError("failed to get activities")
		return
	}

	response := make([]dto.ActivityResponse, len(activities))
	for i := range activities {
		response[i] = activityResponse(&activities[i])
	}

	_ = c.JSON(200, response)
}

func (h *ActivityHandler) Update(c *drift.Context) {
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

	activityID, err := uuid.Parse(c.Param("activityId"))
	if err != nil {
		c.BadRequest("invalid activity id")
		return
	}

	ctx := context.Background()

	isMember, err := h.tripService.IsMember(ctx, tripID, userID)
	if err != nil || !isMember {
		c.NotFound("trip not found")
		return
	}

	var req dto.UpdateActivityRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Title == "" {
		c.BadRequest("title is required")
		return
	}

	day, err := time.Parse(dayFormat, req.Day)
	if err != nil {
		c.BadRequest("day must be formatted as YYYY-MM-DD")
		return
	}

	activity, err := h.activityService.Update(ctx, models.Activity{
		ID:             activityID,
		TripID:         tripID,
		Title:          req.Title,
		Day:            day,
		StartTime:      req.StartTime,
		Notes:          req.Notes,
		RegionID:       req.RegionID,
		WishlistItemID: req.WishlistItemID,
	})
	if err != nil {
		if errors.Is(err, services.ErrActivityNotFound) {
			c.NotFound("activity not found")
			return
		}
		c.InternalServerError("failed to update activity")
		return
	}

	h.hub.BroadcastItineraryUpdate(tripID, activity.ID)

	_ = c.JSON(200, activityResponse(activity))
}

func (h *ActivityHandler) Delete(c *drift.Context) {
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

	activityID, err := uuid.Parse(c.Param("activityId"))
	if err != nil {
		c.BadRequest("invalid activity id")
		return
	}

	ctx := context.Background()

	isMember, err := h.tripService.IsMember(ctx, tripID, userID)
	if err != nil || !isMember {
		c.NotFound("trip not found")
		return
	}

	if err := h.activityService.Delete(ctx, tripID, activityID); err != nil {
		if errors.Is(err, services.ErrActivityNotFound) {
			c.NotFound("activity not found")
			return
		}
		c.InternalServerError("failed to delete activity")
		return
	}

	h.hub.BroadcastItineraryUpdate(tripID, activityID)

	_ = c.JSON(200, map[string]string{"message": "activity deleted"})
}

func activityResponse(activity *models.Activity) dto.ActivityResponse {
	return dto.ActivityResponse{
		ID:             activity.ID,
		Title:          activity.Title,
		Day:            activity.Day.Format(dayFormat),
		StartTime:      activity.StartTime,
		Notes:          activity.Notes,
		RegionID:       activity.RegionID,
		WishlistItemID: activity.WishlistItemID,
		CreatedAt:      activity.CreatedAt,
	}
}
