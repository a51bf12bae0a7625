package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vracar/tripfolio/internal/database"
	"github.com/vracar/tripfolio/internal/models"
	"github.com/vracar/tripfolio/internal/oauth"
)

// Fixtures provides factory methods for creating test data
type Fixtures struct {
	db      *database.DB
	counter int
}

// NewFixtures creates a new fixtures factory
func NewFixtures(db *database.DB) *Fixtures {
	return &Fixtures{db: db}
}

// CreateUser creates a test user with default values
func (f *Fixtures) CreateUser(t *testing.T, opts ...UserOption) *models.User {
	t.Helper()
	f.counter++

	user := &models.User{
		Email:      fmt.Sprintf("user%d@example.com", f.counter),
		Name:       fmt.Sprintf("Test User %d", f.counter),
		Provider:   "google",
		ProviderID: fmt.Sprintf("provider-%d", f.counter),
	}

	for _, opt := range opts {
		opt(user)
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO users (email, name, avatar_url, provider, provider_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, email, name, avatar_url, provider, provider_id, created_at, updated_at
	`, user.Email, user.Name, user.AvatarURL, user.Provider, user.ProviderID).Scan(
		&user.ID, &user.Email, &user.Name, &user.AvatarURL,
		&user.Provider, &user.ProviderID, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user
}

// UserOption configures a test user
type UserOption func(*models.User)

// WithEmail sets the user's email
func WithEmail(email string) UserOption {
	return func(u *models.User) {
		u.Email = email
	}
}

// WithName sets the user's name
func WithName(name string) UserOption {
	return func(u *models.User) {
		u.Name = name
	}
}

// WithProvider sets the user's OAuth provider
func WithProvider(provider, providerID string) UserOption {
	return func(u *models.User) {
		u.Provider = provider
		u.ProviderID = providerID
	}
}

// CreateTrip creates a test trip owned by the given user, with the owner
// recorded as a member
func (f *Fixtures) CreateTrip(t *testing.T, owner *models.User, opts ...TripOption) *models.Trip {
	t.Helper()
	f.counter++

	trip := &models.Trip{
		Title:   fmt.Sprintf("Test Trip %d", f.counter),
		OwnerID: &owner.ID,
	}

	for _, opt := range opts {
		opt(trip)
	}

	ctx := context.Background()
	tx, err := f.db.Pool.Begin(ctx)
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO trips (title, description, owner_id)
		VALUES ($1, $2, $3)
		RETURNING id, title, description, owner_id, created_at, updated_at
	`, trip.Title, trip.Description, trip.OwnerID).Scan(
		&trip.ID, &trip.Title, &trip.Description, &trip.OwnerID, &trip.CreatedAt, &trip.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create trip: %v", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO trip_members (trip_id, user_id, role)
		VALUES ($1, $2, $3)
	`, trip.ID, owner.ID, models.RoleOwner)
	if err != nil {
		t.Fatalf("failed to add owner as member: %v", err)
	}

	if err := tx.Commit(ctx); err != nil {
		t.Fatalf("failed to commit transaction: %v", err)
	}

	return trip
}

// TripOption configures a test trip
type TripOption func(*models.Trip)

// WithTripTitle sets the trip's title
func WithTripTitle(title string) TripOption {
	return func(tr *models.Trip) {
		tr.Title = title
	}
}

// Ownerless clears the trip's recorded owner, mimicking legacy data. The
// creating user still becomes a member.
func Ownerless() TripOption {
	return func(tr *models.Trip) {
		tr.OwnerID = nil
	}
}

// AddTripMember adds a member to a trip
func (f *Fixtures) AddTripMember(t *testing.T, trip *models.Trip, user *models.User) {
	t.Helper()
	ctx := context.Background()

	_, err := f.db.Pool.Exec(ctx, `
		INSERT INTO trip_members (trip_id, user_id, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (trip_id, user_id) DO NOTHING
	`, trip.ID, user.ID, models.RoleMember)
	if err != nil {
		t.Fatalf("failed to add trip member: %v", err)
	}
}

// CreateInvite creates an unclaimed invite with a fixed code
func (f *Fixtures) CreateInvite(t *testing.T, trip *models.Trip, code string) *models.Invite {
	t.Helper()
	ctx := context.Background()

	invite := &models.Invite{}
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO invites (code, trip_id, role)
		VALUES ($1, $2, $3)
		RETURNING id, code, trip_id, role, used_by, created_at, claimed_at
	`, code, trip.ID, models.RoleMember).Scan(
		&invite.ID, &invite.Code, &invite.TripID, &invite.Role,
		&invite.UsedBy, &invite.CreatedAt, &invite.ClaimedAt,
	)
	if err != nil {
		t.Fatalf("failed to create invite: %v", err)
	}

	return invite
}

// CreateRegion creates a region within a trip
func (f *Fixtures) CreateRegion(t *testing.T, trip *models.Trip, id, name string) *models.Region {
	t.Helper()
	ctx := context.Background()

	region := &models.Region{}
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO regions (trip_id, id, name, notes)
		VALUES ($1, $2, $3, '')
		RETURNING trip_id, id, name, notes, created_at
	`, trip.ID, id, name).Scan(
		&region.TripID, &region.ID, &region.Name, &region.Notes, &region.CreatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create region: %v", err)
	}

	return region
}

// CreateWishlistItem creates a wishlist item; regionID may be a dangling
// reference, there is no foreign key to satisfy
func (f *Fixtures) CreateWishlistItem(t *testing.T, trip *models.Trip, title string, regionID *string) *models.WishlistItem {
	t.Helper()
	ctx := context.Background()

	item := &models.WishlistItem{}
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO wishlist_items (trip_id, title, region_id)
		VALUES ($1, $2, $3)
		RETURNING id, trip_id, title, votes, link, image_url, description, region_id, planned, created_at
	`, trip.ID, title, regionID).Scan(
		&item.ID, &item.TripID, &item.Title, &item.Votes, &item.Link,
		&item.ImageURL, &item.Description, &item.RegionID, &item.Planned, &item.CreatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create wishlist item: %v", err)
	}

	return item
}

// CreateRefreshToken creates a test refresh token
func (f *Fixtures) CreateRefreshToken(t *testing.T, userID uuid.UUID, tokenHash string, expiresAt time.Time) {
	t.Helper()
	ctx := context.Background()

	_, err := f.db.Pool.Exec(ctx, `
		INSERT INTO refresh_tokens (user_id, token_hash, expires_at)
		VALUES ($1, $2, $3)
	`, userID, tokenHash, expiresAt)
	if err != nil {
		t.Fatalf("failed to create refresh token: %v", err)
	}
}

// OAuthUserInfo creates test OAuth user info
func OAuthUserInfo(email, name, provider, id string) *oauth.UserInfo {
	return &oauth.UserInfo{
		Email:     email,
		Name:      name,
		AvatarURL: "https://example.com/avatar.png",
		ID:        id,
		Provider:  provider,
	}
}
