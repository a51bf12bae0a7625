package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"

	"github.com/vracar/tripfolio/internal/config"
	"github.com/vracar/tripfolio/internal/middleware"
	"github.com/vracar/tripfolio/internal/services"
	"github.com/vracar/tripfolio/pkg/dto"
)

type InviteHandler struct {
	cfg           *config.Config
	inviteService InviteServiceInterface
	tripService   TripServiceInterface
	userService   UserServiceInterface
	emailService  EmailServiceInterface
	hub           HubInterface
}

func NewInviteHandler(
	cfg *config.Config,
	inviteService InviteServiceInterface,
	tripService TripServiceInterface,
	userService UserServiceInterface,
	emailService EmailServiceInterface,
	hub HubInterface,
) *InviteHandler {
	return &InviteHandler{
		cfg:           cfg,
		inviteService: inviteService,
		tripService:   tripService,
		userService:   userService,
		emailService:  emailService,
		hub:           hub,
	}
}

// CreateInvite issues a fresh single-use code for the trip. Only the trip
// owner may issue codes; for trips without a recorded owner any member may.
func (h *InviteHandler) CreateInvite(c *drift.Context) {
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
			c.Forbidden("not allowed to invite to this trip")
			return
		}
		c.InternalServerError("failed to check trip access")
		return
	}

	invite, err := h.inviteService.Create(ctx, tripID)
	if err != nil {
		c.InternalServerError("failed to create invite")
		return
	}

	_ = c.JSON(201, dto.CreateInviteResponse{
		Code:     invite.Code,
		ClaimURL: fmt.Sprintf("%s/claim/%s", h.cfg.BaseURL, invite.Code),
	})
}

func (h *InviteHandler) ListInvites(c *drift.Context) {
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
			c.Forbidden("not allowed to view invites for this trip")
			return
		}
		c.InternalServerError("failed to check trip access")
		return
	}

	invites, err := h.inviteService.GetTripInvites(ctx, tripID)
	if err != nil {
		c.InternalServerError("failed to get invites")
		return
	}

	response := make([]dto.InviteResponse, len(invites))
	for i, inv := range invites {
		response[i] = dto.InviteResponse{
			ID:        inv.ID,
			Code:      inv.Code,
			TripID:    inv.TripID,
			Role:      inv.Role,
			UsedBy:    inv.UsedBy,
			CreatedAt: inv.CreatedAt,
			ClaimedAt: inv.ClaimedAt,
		}
	}

	_ = c.JSON(200, response)
}

// Claim redeems an invite code for the authenticated user. An unknown code
// and a spent code are distinct 400s so the client can tell the difference.
func (h *InviteHandler) Claim(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	var req dto.ClaimInviteRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	code := strings.TrimSpace(req.Code)
	if code == "" {
		c.BadRequest("code is required")
		return
	}

	tripID, err := h.inviteService.Claim(context.Background(), code, userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCode):
			_ = c.JSON(400, map[string]string{"error": "Invalid code"})
		case errors.Is(err, services.ErrCodeAlreadyUsed):
			_ = c.JSON(400, map[string]string{"error": "Code already used"})
		default:
			c.InternalServerError("failed to claim invite")
		}
		return
	}

	h.hub.BroadcastMemberJoined(tripID, userID)

	_ = c.JSON(200, dto.ClaimInviteResponse{TripID: tripID})
}

// InviteByEmail adds a user to the trip directly by email address. Unknown
// addresses get a passwordless account that is upgraded on first sign-in.
func (h *InviteHandler) InviteByEmail(c *drift.Context) {
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

	var req dto.InviteByEmailRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		c.BadRequest("a valid email is required")
		return
	}

	ctx := context.Background()

	if err := h.tripService.CanAdminister(ctx, tripID, userID); err != nil {
		if errors.Is(err, services.ErrForbidden) {
			c.Forbidden("not allowed to invite to this trip")
			return
		}
		c.InternalServerError("failed to check trip access")
		return
	}

	invitee, err := h.userService.GetOrCreateByEmail(ctx, email)
	if err != nil {
		c.InternalServerError("failed to resolve invitee")
		return
	}

	if err := h.tripService.AddMember(ctx, tripID, invitee.ID); err != nil {
		c.InternalServerError("failed to add member")
		return
	}

	h.hub.BroadcastMemberJoined(tripID, invitee.ID)

	if h.emailService.IsConfigured() {
		go h.sendInviteEmail(tripID, userID, email)
	}

	_ = c.JSON(200, dto.InviteByEmailResponse{UserID: invitee.ID})
}

func (h *InviteHandler) sendInviteEmail(tripID, inviterID uuid.UUID, to string) {
	ctx := context.Background()

	trip, err := h.tripService.GetByID(ctx, tripID)
	if err != nil {
		log.Printf("invite email: failed to load trip %s: %v", tripID, err)
		return
	}

	inviterName := "Someone"
	if inviter, err := h.userService.GetByID(ctx, inviterID); err == nil {
		inviterName = inviter.Name
	}

	tripURL := fmt.Sprintf("%s/trips/%s", h.cfg.BaseURL, tripID)
	if err := h.emailService.SendTripInvite(to, trip.Title, inviterName, tripURL); err != nil {
		log.Printf("invite email: failed to send to %s: %v", to, err)
	}
}
