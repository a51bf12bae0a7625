package testutil

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/vracar/tripfolio/internal/models"
	"github.com/vracar/tripfolio/internal/oauth"
	"github.com/vracar/tripfolio/internal/sse"
)

// MockUserService mocks the UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) FindOrCreateFromOAuth(ctx context.Context, info *oauth.UserInfo) (*models.User, error) {
	args := m.Called(ctx, info)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) GetOrCreateByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, id uuid.UUID, name string) (*models.User, error) {
	args := m.Called(ctx, id, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockTripService mocks the TripService
type MockTripService struct {
	mock.Mock
}

func (m *MockTripService) Create(ctx context.Context, title, description string, ownerID uuid.UUID) (*models.Trip, error) {
	args := m.Called(ctx, title, description, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Trip), args.Error(1)
}

func (m *MockTripService) GetByID(ctx context.Context, tripID uuid.UUID) (*models.Trip, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Trip), args.Error(1)
}

func (m *MockTripService) GetUserTrips(ctx context.Context, userID uuid.UUID) ([]models.Trip, []string, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Trip), args.Get(1).([]string), args.Error(2)
}

func (m *MockTripService) Update(ctx context.Context, tripID uuid.UUID, title, description string) (*models.Trip, error) {
	args := m.Called(ctx, tripID, title, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Trip), args.Error(1)
}

func (m *MockTripService) Delete(ctx context.Context, tripID uuid.UUID) error {
	args := m.Called(ctx, tripID)
	return args.Error(0)
}

func (m *MockTripService) CanAdminister(ctx context.Context, tripID, userID uuid.UUID) error {
	args := m.Called(ctx, tripID, userID)
	return args.Error(0)
}

func (m *MockTripService) IsOwner(ctx context.Context, tripID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, tripID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTripService) IsMember(ctx context.Context, tripID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, tripID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTripService) GetMembers(ctx context.Context, tripID uuid.UUID) ([]models.TripMember, error) {
	args := m.Called(ctx, tripID)
	return args.Get(0).([]models.TripMember), args.Error(1)
}

func (m *MockTripService) AddMember(ctx context.Context, tripID, userID uuid.UUID) error {
	args := m.Called(ctx, tripID, userID)
	return args.Error(0)
}

func (m *MockTripService) RemoveMember(ctx context.Context, tripID, userID uuid.UUID) error {
	args := m.Called(ctx, tripID, userID)
	return args.Error(0)
}

// MockInviteService mocks the InviteService
type MockInviteService struct {
	mock.Mock
}

func (m *MockInviteService) Create(ctx context.Context, tripID uuid.UUID) (*models.Invite, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invite), args.Error(1)
}

func (m *MockInviteService) Claim(ctx context.Context, code string, userID uuid.UUID) (uuid.UUID, error) {
	args := m.Called(ctx, code, userID)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockInviteService) GetByCode(ctx context.Context, code string) (*models.Invite, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invite), args.Error(1)
}

func (m *MockInviteService) GetTripInvites(ctx context.Context, tripID uuid.UUID) ([]models.Invite, error) {
	args := m.Called(ctx, tripID)
	return args.Get(0).([]models.Invite), args.Error(1)
}

// MockRegionService mocks the RegionService
type MockRegionService struct {
	mock.Mock
}

func (m *MockRegionService) Create(ctx context.Context, tripID uuid.UUID, id, name, notes string) (*models.Region, error) {
	args := m.Called(ctx, tripID, id, name, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Region), args.Error(1)
}

func (m *MockRegionService) List(ctx context.Context, tripID uuid.UUID) ([]models.Region, error) {
	args := m.Called(ctx, tripID)
	return args.Get(0).([]models.Region), args.Error(1)
}

func (m *MockRegionService) Update(ctx context.Context, tripID uuid.UUID, id, name, notes string) (*models.Region, error) {
	args := m.Called(ctx, tripID, id, name, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Region), args.Error(1)
}

func (m *MockRegionService) Delete(ctx context.Context, tripID uuid.UUID, id string) error {
	args := m.Called(ctx, tripID, id)
	return args.Error(0)
}

// MockWishlistService mocks the WishlistService
type MockWishlistService struct {
	mock.Mock
}

func (m *MockWishlistService) Create(ctx context.Context, item models.WishlistItem) (*models.WishlistItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WishlistItem), args.Error(1)
}

func (m *MockWishlistService) List(ctx context.Context, tripID uuid.UUID) ([]models.WishlistItem, error) {
	args := m.Called(ctx, tripID)
	return args.Get(0).([]models.WishlistItem), args.Error(1)
}

func (m *MockWishlistService) Update(ctx context.Context, item models.WishlistItem) (*models.WishlistItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WishlistItem), args.Error(1)
}

func (m *MockWishlistService) Delete(ctx context.Context, tripID, itemID uuid.UUID) error {
	args := m.Called(ctx, tripID, itemID)
	return args.Error(0)
}

func (m *MockWishlistService) Vote(ctx context.Context, tripID, itemID uuid.UUID) (*models.WishlistItem, error) {
	args := m.Called(ctx, tripID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WishlistItem), args.Error(1)
}

func (m *MockWishlistService) ReconcileRegions(ctx context.Context, tripID uuid.UUID, regions []models.Region) {
	m.Called(ctx, tripID, regions)
}

// MockActivityService mocks the ActivityService
type MockActivityService struct {
	mock.Mock
}

func (m *MockActivityService) Create(ctx context.Context, activity models.Activity) (*models.Activity, error) {
	args := m.Called(ctx, activity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Activity), args.Error(1)
}

func (m *MockActivityService) List(ctx context.Context, tripID uuid.UUID) ([]models.Activity, error) {
	args := m.Called(ctx, tripID)
	return args.Get(0).([]models.Activity), args.Error(1)
}

func (m *MockActivityService) Update(ctx context.Context, activity models.Activity) (*models.Activity, error) {
	args := m.Called(ctx, activity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Activity), args.Error(1)
}

func (m *MockActivityService) Delete(ctx context.Context, tripID, activityID uuid.UUID) error {
	args := m.Called(ctx, tripID, activityID)
	return args.Error(0)
}

// MockBookingService mocks the BookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) Create(ctx context.Context, booking models.Booking) (*models.Booking, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingService) List(ctx context.Context, tripID uuid.UUID) ([]models.Booking, error) {
	args := m.Called(ctx, tripID)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingService) Update(ctx context.Context, booking models.Booking) (*models.Booking, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingService) Delete(ctx context.Context, tripID, bookingID uuid.UUID) error {
	args := m.Called(ctx, tripID, bookingID)
	return args.Error(0)
}

// MockTokenService mocks the TokenService
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) StoreRefreshToken(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiresAt)
	return args.Error(0)
}

func (m *MockTokenService) ValidateRefreshToken(ctx context.Context, tokenHash string) (uuid.UUID, error) {
	args := m.Called(ctx, tokenHash)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockTokenService) RevokeRefreshToken(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

func (m *MockTokenService) RevokeAllUserTokens(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockEmailService mocks the EmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) IsConfigured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockEmailService) SendTripInvite(to, tripTitle, inviterName, claimURL string) error {
	args := m.Called(to, tripTitle, inviterName, claimURL)
	return args.Error(0)
}

// MockHub mocks the sse.Hub
type MockHub struct {
	mock.Mock
}

func (m *MockHub) Register(client *sse.Client) {
	m.Called(client)
}

func (m *MockHub) Unregister(client *sse.Client) {
	m.Called(client)
}

func (m *MockHub) BroadcastMemberJoined(tripID, userID uuid.UUID) {
	m.Called(tripID, userID)
}

func (m *MockHub) BroadcastWishlistUpdate(tripID, itemID uuid.UUID, votes int) {
	m.Called(tripID, itemID, votes)
}

func (m *MockHub) BroadcastItineraryUpdate(tripID, activityID uuid.UUID) {
	m.Called(tripID, activityID)
}
