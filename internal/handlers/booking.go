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

var bookingKinds = map[string]bool{
	models.BookingFlight:  true,
	models.BookingLodging: true,
	models.BookingTicket:  true,
	models.BookingOther:   true,
}

type BookingHandler struct {
	bookingService BookingServiceInterface
	tripService    TripServiceInterface
}

func NewBookingHandler(bookingService BookingServiceInterface, tripService TripServiceInterface) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		tripService:    tripService,
	}
}

func (h *BookingHandler) Create(c *drift.Context) {
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

	var req dto.CreateBookingRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Title == "" {
		c.BadRequest("title is required")
		return
	}

	kind := req.Kind
	if kind == "" {
		kind = models.BookingOther
	}
	if !bookingKinds[kind] {
		c.BadRequest("unknown booking kind")
		return
	}

	bookedFor, err := parseBookedFor(req.BookedFor)
	if err != nil {
		c.BadRequest("booked_for must be formatted as YYYY-MM-DD")
		return
	}

	booking, err := h.bookingService.Create(ctx, models.Booking{
		TripID:        tripID,
		Title:         req.Title,
		Kind:          kind,
		BookedFor:     bookedFor,
		ReferenceCode: req.ReferenceCode,
		URL:           req.URL,
		Notes:         req.Notes,
	})
	if err != nil {
		c.InternalServerError("failed to create booking")
		return
	}

	_ = c.JSON(201, bookingResponse(booking))
}

func (h *BookingHandler) List(c *drift.Context) {
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

	bookings, err := h.bookingService.List(ctx, tripID)
	if err != nil {
		c.InternalServerError("failed to get bookings")
		return
	}

	response := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		response[i] = bookingResponse(&bookings[i])
	}

	_ = c.JSON(200, response)
}

func (h *BookingHandler) Update(c *drift.Context) {
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

	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		c.BadRequest("invalid booking id")
		return
	}

	ctx := context.Background()

	isMember, err := h.tripService.IsMember(ctx, tripID, userID)
	if err != nil || !isMember {
		c.NotFound("trip not found")
		return
	}

	var req dto.UpdateBookingRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Title == "" {
		c.BadRequest("title is required")
		return
	}

	if req.Kind != "" && !bookingKinds[req.Kind] {
		c.BadRequest("unknown booking kind")
		return
	}

	bookedFor, err := parseBookedFor(req.BookedFor)
	if err != nil {
		c.BadRequest("booked_for must be formatted as YYYY-MM-DD")
		return
	}

	booking, err := h.bookingService.Update(ctx, models.Booking{
		ID:            bookingID,
		TripID:        tripID,
		Title:         req.Title,
		Kind:          req.Kind,
		BookedFor:     bookedFor,
		ReferenceCode: req.ReferenceCode,
		URL:           req.URL,
		Notes:         req.Notes,
	})
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			c.NotFound("booking not found")
			return
		}
		c.InternalServerError("failed to update booking")
		return
	}

	_ = c.JSON(200, bookingResponse(booking))
}

func (h *BookingHandler) Delete(c *drift.Context) {
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

	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		c.BadRequest("invalid booking id")
		return
	}

	ctx := context.Background()

	isMember, err := h.tripService.IsMember(ctx, tripID, userID)
	if err != nil || !isMember {
		c.NotFound("trip not found")
		return
	}

	if err := h.bookingService.Delete(ctx, tripID, bookingID); err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			c.NotFound("booking not found")
			return
		}
		c.InternalServerError("failed to delete booking")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "booking deleted"})
}

func parseBookedFor(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dayFormat, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func bookingResponse(booking *models.Booking) dto.BookingResponse {
	resp := dto.BookingResponse{
		ID:            booking.ID,
		Title:         booking.Title,
		Kind:          booking.Kind,
		ReferenceCode: booking.ReferenceCode,
		URL:           booking.URL,
		Notes:         booking.Notes,
		CreatedAt:     booking.CreatedAt,
	}
	if booking.BookedFor != nil {
		s := booking.BookedFor.Format(dayFormat)
		resp.BookedFor = &s
	}
	return resp
}
