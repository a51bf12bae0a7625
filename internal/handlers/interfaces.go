// Package handlers contains the drift HTTP handlers. Each handler depends
// on interfaces declared here (the consumer side), so handler tests can
// inject testify mocks without a database.
package handlers

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vracar/tripfolio/internal/models"
	"github.com/vracar/tripfolio/internal/oauth"
	"github.com/vracar/tripfolio/internal/services"
	"github.com/vracar/tripfolio/internal/sse"
)

type UserServiceInterface interface {
	FindOrCreateFromOAuth(ctx context.Context, info *oauth.UserInfo) (*models.User, error)
	GetOrCreateByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, id uuid.UUID, name string) (*models.User, error)
}

type TripServiceInterface interface {
	Create(ctx context.Context, title, description string, ownerID uuid.UUID) (*models.Trip, error)
	GetByID(ctx context.Context, tripID uuid.UUID) (*models.Trip, error)
	GetUserTrips(ctx context.Context, userID uuid.UUID) ([]models.Trip, []string, error)
	Update(ctx context.Context, tripID uuid.UUID, title, description string) (*models.Trip, error)
	Delete(ctx context.Context, tripID uuid.UUID) error
	CanAdminister(ctx context.Context, tripID, userID uuid.UUID) error
	IsOwner(ctx context.Context, tripID, userID uuid.UUID) (bool, error)
	IsMember(ctx context.Context, tripID, userID uuid.UUID) (bool, error)
	GetMembers(ctx context.Context, tripID uuid.UUID) ([]models.TripMember, error)
	AddMember(ctx context.Context, tripID, userID uuid.UUID) error
	RemoveMember(ctx context.Context, tripID, userID uuid.UUID) error
}

type InviteServiceInterface interface {
	Create(ctx context.Context, tripID uuid.UUID) (*models.Invite, error)
	Claim(ctx context.Context, code string, userID uuid.UUID) (uuid.UUID, error)
	GetByCode(ctx context.Context, code string) (*models.Invite, error)
	GetTripInvites(ctx context.Context, tripID uuid.UUID) ([]models.Invite, error)
}

type RegionServiceInterface interface {
	Create(ctx context.Context, tripID uuid.UUID, id, name, notes string) (*models.Region, error)
	List(ctx context.Context, tripID uuid.UUID) ([]models.Region, error)
	Update(ctx context.Context, tripID uuid.UUID, id, name, notes string) (*models.Region, error)
	Delete(ctx context.Context, tripID uuid.UUID, id string) error
}

type WishlistServiceInterface interface {
	Create(ctx context.Context, item models.WishlistItem) (*models.WishlistItem, error)
	List(ctx context.Context, tripID uuid.UUID) ([]models.WishlistItem, error)
	Update(ctx context.Context, item models.WishlistItem) (*models.WishlistItem, error)
	Delete(ctx context.Context, tripID, itemID uuid.UUID) error
	Vote(ctx context.Context, tripID, itemID uuid.UUID) (*models.WishlistItem, error)
	ReconcileRegions(ctx context.Context, tripID uuid.UUID, regions []models.Region)
}

type ActivityServiceInterface interface {
	Create(ctx context.Context, activity models.Activity) (*models.Activity, error)
	List(ctx context.Context, tripID uuid.UUID) ([]models.Activity, error)
	Update(ctx context.Context, activity models.Activity) (*models.Activity, error)
	Delete(ctx context.Context, tripID, activityID uuid.UUID) error
}

type BookingServiceInterface interface {
	Create(ctx context.Context, booking models.Booking) (*models.Booking, error)
	List(ctx context.Context, tripID uuid.UUID) ([]models.Booking, error)
	Update(ctx context.Context, booking models.Booking) (*models.Booking, error)
	Delete(ctx context.Context, tripID, bookingID uuid.UUID) error
}

type JWTServiceInterface interface {
	GenerateTokenPair(userID uuid.UUID, email string) (*services.TokenPair, error)
	ValidateRefreshToken(tokenString string) (uuid.UUID, error)
	RefreshExpiry() time.Duration
}

type TokenServiceInterface interface {
	StoreRefreshToken(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error
	ValidateRefreshToken(ctx context.Context, tokenHash string) (uuid.UUID, error)
	RevokeRefreshToken(ctx context.Context, tokenHash string) error
	RevokeAllUserTokens(ctx context.Context, userID uuid.UUID) error
}

type HubInterface interface {
	Register(client *sse.Client)
	Unregister(client *sse.Client)
	BroadcastMemberJoined(tripID, userID uuid.UUID)
	BroadcastWishlistUpdate(tripID, itemID uuid.UUID, votes int)
	BroadcastItineraryUpdate(tripID, activityID uuid.UUID)
}

type EmailServiceInterface interface {
	IsConfigured() bool
	SendTripInvite(to, tripTitle, inviterName, claimURL string) error
}
