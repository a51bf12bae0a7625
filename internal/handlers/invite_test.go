package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vracar/tripfolio/internal/config"
	"github.com/vracar/tripfolio/internal/middleware"
	"github.com/vracar/tripfolio/internal/models"
	"github.com/vracar/tripfolio/internal/services"
	"github.com/vracar/tripfolio/pkg/dto"
	"github.com/vracar/tripfolio/tests/testutil"
)

type inviteTestMocks struct {
	inviteService *testutil.MockInviteService
	tripService   *testutil.MockTripService
	userService   *testutil.MockUserService
	emailService  *testutil.MockEmailService
	hub           *testutil.MockHub
}

func setupInviteTest(t *testing.T) (*inviteTestMocks, *InviteHandler) {
	t.Helper()
	m := &inviteTestMocks{
		inviteService: new(testutil.MockInviteService),
		tripService:   new(testutil.MockTripService),
		userService:   new(testutil.MockUserService),
		emailService:  new(testutil.MockEmailService),
		hub:           new(testutil.MockHub),
	}
	cfg := &config.Config{BaseURL: "http://localhost:8080"}
	handler := NewInviteHandler(cfg, m.inviteService, m.tripService, m.userService, m.emailService, m.hub)
	return m, handler
}

func TestInviteHandler_CreateInvite_Success(t *testing.T) {
	m, handler := setupInviteTest(t)
	jwtSvc := newTestJWTService()

	userID := uuid.New()
	tripID := uuid.New()

	m.tripService.On("CanAdminister", mock.Anything, tripID, userID).Return(nil)
	m.inviteService.On("Create", mock.Anything, tripID).Return(&models.Invite{
		ID:     uuid.New(),
		Code:   "K7XQ2M",
		TripID: tripID,
		Role:   models.RoleMember,
	}, nil)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Post("/trips/:tripId/invites", handler.CreateInvite)

	token := generateTestToken(t, jwtSvc, userID, "owner@example.com")
	req := httptest.NewRequest(http.MethodPost, "/trips/"+tripID.String()+"/invites", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var response dto.CreateInviteResponse
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "K7XQ2M", response.Code)
	assert.Equal(t, "http://localhost:8080/claim/K7XQ2M", response.ClaimURL)

	m.tripService.AssertExpectations(t)
	m.inviteService.AssertExpectations(t)
}

func TestInviteHandler_CreateInvite_NotAdmin(t *testing.T) {
	m, handler := setupInviteTest(t)
	jwtSvc := newTestJWTService()

	userID := uuid.New()
	tripID := uuid.New()

	m.tripService.On("CanAdminister", mock.Anything, tripID, userID).Return(services.ErrForbidden)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Post("/trips/:tripId/invites", handler.CreateInvite)

	token := generateTestToken(t, jwtSvc, userID, "member@example.com")
	req := httptest.NewRequest(http.MethodPost, "/trips/"+tripID.String()+"/invites", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "not allowed to invite")

	m.tripService.AssertExpectations(t)
	m.inviteService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestInviteHandler_CreateInvite_AccessCheckFails(t *testing.T) {
	m, handler := setupInviteTest(t)
	jwtSvc := newTestJWTService()

	userID := uuid.New()
	tripID := uuid.New()

	m.tripService.On("CanAdminister", mock.Anything, tripID, userID).Return(errors.New("database error"))

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Post("/trips/:tripId/invites", handler.CreateInvite)

	token := generateTestToken(t, jwtSvc, userID, "owner@example.com")
	req := httptest.NewRequest(http.MethodPost, "/trips/"+tripID.String()+"/invites", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "failed to check trip access")

	m.tripService.AssertExpectations(t)
}

func TestInviteHandler_CreateInvite_InvalidTripID(t *testing.T) {
	_, handler := setupInviteTest(t)
	jwtSvc := newTestJWTService()

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Post("/trips/:tripId/invites", handler.CreateInvite)

	token := generateTestToken(t, jwtSvc, uuid.New(), "owner@example.com")
	req := httptest.NewRequest(http.MethodPost, "/trips/not-a-uuid/invites", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid trip id")
}

func TestInviteHandler_Claim_Success(t *testing.T) {
	m, handler := setupInviteTest(t)
	jwtSvc := newTestJWTService()

	userID := uuid.New()
	tripID := uuid.New()

	m.inviteService.On("Claim", mock.Anything, "K7XQ2M", userID).Return(tripID, nil)
	m.hub.On("BroadcastMemberJoined", tripID, userID).Return()

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Post("/invites/claim", handler.Claim)

	body := dto.ClaimInviteRequest{Code: "K7XQ2M"}
	jsonBody, _ := json.Marshal(body)

	token := generateTestToken(t, jwtSvc, userID, "joiner@example.com")
	req := httptest.NewRequest(http.MethodPost, "/invites/claim", bytes.NewReader(jsonBody))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response dto.ClaimInviteResponse
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, tripID, response.TripID)

	m.inviteService.AssertExpectations(t)
	m.hub.AssertExpectations(t)
}

func TestInviteHandler_Claim_TrimsWhitespace(t *testing.T) {
	m, handler := setupInviteTest(t)
	jwtSvc := newTestJWTService()

	userID := uuid.New()
	tripID := uuid.New()

	m.inviteService.On("Claim", mock.Anything, "K7XQ2M", userID).Return(tripID, nil)
	m.hub.On("BroadcastMemberJoined", tripID, userID).Return()

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Post("/invites/claim", handler.Claim)

	body := dto.ClaimInviteRequest{Code: "  K7XQ2M  "}
	jsonBody, _ := json.Marshal(body)

	token := generateTestToken(t, jwtSvc, userID, "joiner@example.com")
	req := httptest.NewRequest(http.MethodPost, "/invites/claim", bytes.NewReader(jsonBody))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	m.inviteService.AssertExpectations(t)
}

func TestInviteHandler_Claim_InvalidCode(t *testing.T) {
	m, handler := setupInviteTest(t)
	jwtSvc := newTestJWTService()

	userID := uuid.New()

	m.inviteService.On("Claim", mock.Anything, "NOPE99", userID).Return(uuid.Nil, services.ErrInvalidCode)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Post("/invites/claim", handler.Claim)

	body := dto.ClaimInviteRequest{Code: "NOPE99"}
	jsonBody, _ := json.Marshal(body)

	token := generateTestToken(t, jwtSvc, userID, "joiner@example.com")
	req := httptest.NewRequest(http.MethodPost, "/invites/claim", bytes.NewReader(jsonBody))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]string
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, "Invalid code", response["error"])

	m.hub.AssertNotCalled(t, "BroadcastMemberJoined", mock.Anything, mock.Anything)
}

func TestInviteHandler_Claim_CodeAlreadyUsed(t *testing.T) {
	m, handler := setupInviteTest(t)
	jwtSvc := newTestJWTService()

	userID := uuid.New()

	m.inviteService.On("Claim", mock.Anything, "K7XQ2M", userID).Return(uuid.Nil, services.ErrCodeAlreadyUsed)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Post("/invites/claim", handler.Claim)

	body := dto.ClaimInviteRequest{Code: "K7XQ2M"}
	jsonBody, _ := json.Marshal(body)

	token := generateTestToken(t, jwtSvc, userID, "latecomer@example.com")
	req := httptest.NewRequest(http.MethodPost, "/invites/claim", bytes.NewReader(jsonBody))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]string
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, "Code already used", response["error"])
}

func TestInviteHandler_Claim_EmptyCode(t *testing.T) {
	m, handler := setupInviteTest(t)
	jwtSvc := newTestJWTService()

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Post("/invites/claim", handler.Claim)

	body := dto.ClaimInviteRequest{Code: "   "}
	jsonBody, _ := json.Marshal(body)

	token := generateTestToken(t, jwtSvc, uuid.New(), "joiner@example.com")
	req := httptest.NewRequest(http.MethodPost, "/invites/claim", bytes.NewReader(jsonBody))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "code is required")

	m.inviteService.AssertNotCalled(t, "Claim", mock.Anything, mock.Anything, mock.Anything)
}

func TestInviteHandler_Claim_NotAuthenticated(t *testing.T) {
	_, handler := setupInviteTest(t)
	jwtSvc := newTestJWTService()

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Post("/invites/claim", handler.Claim)

	body := dto.ClaimInviteRequest{Code: "K7XQ2M"}
	jsonBody, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPost, "/invites/claim", bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestInviteHandler_ListInvites_Success(t *testing.T) {
	m, handler := setupInviteTest(t)
	jwtSvc := newTestJWTService()

	userID := uuid.New()
	tripID := uuid.New()
	claimer := uuid.New()

	m.tripService.On("CanAdminister", mock.Anything, tripID, userID).Return(nil)
	m.inviteService.On("GetTripInvites", mock.Anything, tripID).Return([]models.Invite{
		{ID: uuid.New(), Code: "K7XQ2M", TripID: tripID, Role: models.RoleMember},
		{ID: uuid.New(), Code: "P3WY8N", TripID: tripID, Role: models.RoleMember, UsedBy: &claimer},
	}, nil)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Get("/trips/:tripId/invites", handler.ListInvites)

	token := generateTestToken(t, jwtSvc, userID, "owner@example.com")
	req := httptest.NewRequest(http.MethodGet, "/trips/"+tripID.String()+"/invites", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response []dto.InviteResponse
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	require.NoError(t, err)
	require.Len(t, response, 2)
	assert.Equal(t, "K7XQ2M", response[0].Code)
	assert.Nil(t, response[0].UsedBy)
	assert.Equal(t, &claimer, response[1].UsedBy)

	m.tripService.AssertExpectations(t)
	m.inviteService.AssertExpectations(t)
}

func TestInviteHandler_InviteByEmail_Success(t *testing.T) {
	m, handler := setupInviteTest(t)
	jwtSvc := newTestJWTService()

	userID := uuid.New()
	tripID := uuid.New()
	invitee := &models.User{
		ID:    uuid.New(),
		Email: "friend@example.com",
		Name:  "friend",
	}

	m.tripService.On("CanAdminister", mock.Anything, tripID, userID).Return(nil)
	m.userService.On("GetOrCreateByEmail", mock.Anything, "friend@example.com").Return(invitee, nil)
	m.tripService.On("AddMember", mock.Anything, tripID, invitee.ID).Return(nil)
	m.hub.On("BroadcastMemberJoined", tripID, invitee.ID).Return()
	m.emailService.On("IsConfigured").Return(false)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Post("/trips/:tripId/members", handler.InviteByEmail)

	body := dto.InviteByEmailRequest{Email: "  Friend@Example.com "}
	jsonBody, _ := json.Marshal(body)

	token := generateTestToken(t, jwtSvc, userID, "owner@example.com")
	req := httptest.NewRequest(http.MethodPost, "/trips/"+tripID.String()+"/members", bytes.NewReader(jsonBody))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response dto.InviteByEmailResponse
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, invitee.ID, response.UserID)

	m.tripService.AssertExpectations(t)
	m.userService.AssertExpectations(t)
	m.hub.AssertExpectations(t)
}

func TestInviteHandler_InviteByEmail_InvalidEmail(t *testing.T) {
	m, handler := setupInviteTest(t)
	jwtSvc := newTestJWTService()

	tripID := uuid.New()

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Post("/trips/:tripId/members", handler.InviteByEmail)

	body := dto.InviteByEmailRequest{Email: "not-an-email"}
	jsonBody, _ := json.Marshal(body)

	token := generateTestToken(t, jwtSvc, uuid.New(), "owner@example.com")
	req := httptest.NewRequest(http.MethodPost, "/trips/"+tripID.String()+"/members", bytes.NewReader(jsonBody))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "a valid email is required")

	m.userService.AssertNotCalled(t, "GetOrCreateByEmail", mock.Anything, mock.Anything)
}

func TestInviteHandler_InviteByEmail_NotAdmin(t *testing.T) {
	m, handler := setupInviteTest(t)
	jwtSvc := newTestJWTService()

	userID := uuid.New()
	tripID := uuid.New()

	m.tripService.On("CanAdminister", mock.Anything, tripID, userID).Return(services.ErrForbidden)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Post("/trips/:tripId/members", handler.InviteByEmail)

	body := dto.InviteByEmailRequest{Email: "friend@example.com"}
	jsonBody, _ := json.Marshal(body)

	token := generateTestToken(t, jwtSvc, userID, "member@example.com")
	req := httptest.NewRequest(http.MethodPost, "/trips/"+tripID.String()+"/members", bytes.NewReader(jsonBody))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "not allowed to invite")

	m.tripService.AssertExpectations(t)
}
