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

type TripHandler struct {
	tripService TripServiceInterface
}

func NewTripHandler(tripService TripServiceInterface) *TripHandler {
	return &TripHandler{tripService: tripService}
}

func (h *TripHandler) Create(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	var req dto.CreateTripRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Title == "" {
		c.BadRequest("title is required")
		return
	}

	trip, err := h.tripService.Create(context.Background(), req.Title, req.Description, userID)
	if err != nil {
		c.InternalServerError("failed to create trip")
		return
	}

	_ = c.JSON(201, dto.TripResponse{
		ID:          trip.ID,
		Title:       trip.Title,
		Description: trip.Description,
		OwnerID:     trip.OwnerID,
		Role:        "owner",
	})
}

func (h *TripHandler) List(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	trips, roles, err := h.tripService.GetUserTrips(context.Background(), userID)
	if err != nil {
		c.InternalServerError("failed to get trips")
		return
	}

	response := make([]dto.TripResponse, len(trips))
	for i, t := range trips {
		response[i] = dto.TripResponse{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			OwnerID:     t.OwnerID,
			Role:        roles[i],
		}
	}

	_ = c.JSON(200, response)
}

func (h *TripHandler) Get(c *drift.Context) {
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

	trip, err := h.tripService.GetByID(ctx, tripID)
	if err != nil {
		c.NotFound("trip not found")
		return
	}

	role := "member"
	if trip.OwnerID != nil && *trip.OwnerID == userID {
		role = "owner"
	}

	_ = c.JSON(200, dto.TripResponse{
		ID:          trip.ID,
		Title:       trip.Title,
		Description: trip.Description,
		OwnerID:     trip.OwnerID,
		Role:        role,
	})
}

func (h *TripHandler) Update(c *drift.Context) {
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

	if err := h.tripService.CanAdminister(ctx, tripID, userID); err != nil {
		if errors.Is(err, services.ErrForbidden) {
			c.Forbidden("not the trip owner")
			return
		}
		c.InternalServerError("failed to check trip access")
		return
	}

	var req dto.UpdateTripRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Title == "" {
		c.BadRequest("title is required")
		return
	}

	trip, err := h.tripService.Update(ctx, tripID, req.Title, req.Description)
	if err != nil {
		c.InternalServerError("failed to update trip")
		return
	}

	role := "member"
	if trip.OwnerID != nil && *trip.OwnerID == userID {
		role = "owner"
	}

	_ = c.JSON(200, dto.TripResponse{
		ID:          trip.ID,
		Title:       trip.Title,
		Description: trip.Description,
		OwnerID:     trip.OwnerID,
		Role:        role,
	})
}

func (h *TripHandler) Delete(c *drift.Context) {
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

	if err := h.tripService.CanAdminister(ctx, tripID, userID); err != nil {
		if errors.Is(err, services.ErrForbidden) {
			c.Forbidden("not the trip owner")
			return
		}
		c.InternalServerError("failed to check trip access")
		return
	}

	if err := h.tripService.Delete(ctx, tripID); err != nil {
		c.InternalServerError("failed to delete trip")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "trip deleted"})
}

func (h *TripHandler) GetMembers(c *drift.Context) {
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

	members, err := h.tripService.GetMembers(ctx, tripID)
	if err != nil {
		c.InternalServerError("failed to get members")
		return
	}

	response := make([]dto.TripMemberResponse, len(members))
	for i, m := range members {
		response[i] = dto.TripMemberResponse{
			ID:     m.ID,
			UserID: m.UserID,
			Role:   m.Role,
		}
		if m.User != nil {
			response[i].User = dto.UserResponse{
				ID:        m.User.ID,
				Email:     m.User.Email,
				Name:      m.User.Name,
				AvatarURL: m.User.AvatarURL,
				Provider:  m.User.Provider,
			}
		}
	}

	_ = c.JSON(200, response)
}

func (h *TripHandler) RemoveMember(c *drift.Context) {
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

	memberID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.BadRequest("invalid user id")
		return
	}

	ctx := context.Background()

	if err := h.tripService.CanAdminister(ctx, tripID, userID); err != nil {
		if errors.Is(err, services.ErrForbidden) {
			c.Forbidden("not the trip owner")
			return
		}
		c.InternalServerError("failed to check trip access")
		return
	}

	if err := h.tripService.RemoveMember(ctx, tripID, memberID); err != nil {
		switch {
		case errors.Is(err, services.ErrMemberNotFound):
			c.NotFound("member not found")
		case errors.Is(err, services.ErrCannotRemoveOwner):
			c.BadRequest("cannot remove the trip owner")
		default:
			c.InternalServerError("failed to remove member")
		}
		return
	}

	_ = c.JSON(200, map[string]string{"message": "member removed"})
}

func (h *TripHandler) Leave(c *drift.Context) {
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

	if err := h.tripService.RemoveMember(context.Background(), tripID, userID); err != nil {
		switch {
		case errors.Is(err, services.ErrMemberNotFound):
			c.NotFound("not a member of this trip")
		case errors.Is(err, services.ErrCannotRemoveOwner):
			c.BadRequest("the owner cannot leave the trip")
		default:
			c.InternalServerError("failed to leave trip")
		}
		return
	}

	_ = c.JSON(200, map[string]string{"message": "left trip"})
}
