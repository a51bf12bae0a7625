package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vracar/tripfolio/internal/database"
	"github.com/vracar/tripfolio/internal/models"
)

func setupWishlistService(t *testing.T) (*WishlistService, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	db := &database.DB{Pool: mock}
	return NewWishlistService(db), mock
}

func wishlistColumns() []string {
	return []string{"id", "trip_id", "title", "votes", "link", "image_url", "description", "region_id", "planned", "created_at"}
}

func TestWishlistService_Vote(t *testing.T) {
	svc, mock := setupWishlistService(t)
	ctx := context.Background()
	tripID := uuid.New()
	itemID := uuid.New()
	now := time.Now()

	rows := pgxmock.NewRows(wishlistColumns()).
		AddRow(itemID, tripID, "TeamLab", 3, "", "", "", nil, false, now)
	mock.ExpectQuery(`UPDATE wishlist_items SET votes = votes \+ 1`).
		WithArgs(itemID, tripID).
		WillReturnRows(rows)

	item, err := svc.Vote(ctx, tripID, itemID)

	require.NoError(t, err)
	assert.Equal(t, 3, item.Votes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWishlistService_Vote_NotFound(t *testing.T) {
	svc, mock := setupWishlistService(t)
	ctx := context.Background()
	tripID := uuid.New()
	itemID := uuid.New()

	mock.ExpectQuery(`UPDATE wishlist_items SET votes = votes \+ 1`).
		WithArgs(itemID, tripID).
		WillReturnError(pgx.ErrNoRows)

	_, err := svc.Vote(ctx, tripID, itemID)

	assert.True(t, errors.Is(err, ErrItemNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWishlistService_ReconcileRegions_RepairsLegacyID(t *testing.T) {
	svc, mock := setupWishlistService(t)
	ctx := context.Background()
	tripID := uuid.New()
	itemID := uuid.New()
	now := time.Now()

	regions := []models.Region{
		{TripID: tripID, ID: "tokyo", Name: "Greater Tokyo"},
		{TripID: tripID, ID: "kyoto", Name: "Kyoto"},
	}

	legacy := "tokyo-region"
	rows := pgxmock.NewRows(wishlistColumns()).
		AddRow(itemID, tripID, "TeamLab", 0, "", "", "", &legacy, false, now)
	mock.ExpectQuery(`SELECT .+ FROM wishlist_items WHERE trip_id`).
		WithArgs(tripID).
		WillReturnRows(rows)

	// "tokyo-region" maps to "Tokyo", which matches "Greater Tokyo".
	mock.ExpectExec(`UPDATE wishlist_items SET region_id`).
		WithArgs("tokyo", itemID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	svc.ReconcileRegions(ctx, tripID, regions)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWishlistService_ReconcileRegions_LeavesUnmappedIDs(t *testing.T) {
	svc, mock := setupWishlistService(t)
	ctx := context.Background()
	tripID := uuid.New()
	now := time.Now()

	regions := []models.Region{
		{TripID: tripID, ID: "tokyo", Name: "Tokyo"},
	}

	unknown := "somewhere-else"
	rows := pgxmock.NewRows(wishlistColumns()).
		AddRow(uuid.New(), tripID, "Mystery spot", 0, "", "", "", &unknown, false, now)
	mock.ExpectQuery(`SELECT .+ FROM wishlist_items WHERE trip_id`).
		WithArgs(tripID).
		WillReturnRows(rows)

	// No mapping for "somewhere-else": no write is issued.
	svc.ReconcileRegions(ctx, tripID, regions)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWishlistService_ReconcileRegions_SkipsValidAndUnassigned(t *testing.T) {
	svc, mock := setupWishlistService(t)
	ctx := context.Background()
	tripID := uuid.New()
	now := time.Now()

	regions := []models.Region{
		{TripID: tripID, ID: "tokyo", Name: "Tokyo"},
	}

	valid := "tokyo"
	rows := pgxmock.NewRows(wishlistColumns()).
		AddRow(uuid.New(), tripID, "Shibuya crossing", 2, "", "", "", &valid, true, now).
		AddRow(uuid.New(), tripID, "Somewhere someday", 0, "", "", "", nil, false, now)
	mock.ExpectQuery(`SELECT .+ FROM wishlist_items WHERE trip_id`).
		WithArgs(tripID).
		WillReturnRows(rows)

	svc.ReconcileRegions(ctx, tripID, regions)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWishlistService_ReconcileRegions_FailedRepairDoesNotAbort(t *testing.T) {
	svc, mock := setupWishlistService(t)
	ctx := context.Background()
	tripID := uuid.New()
	itemID1 := uuid.New()
	itemID2 := uuid.New()
	now := time.Now()

	regions := []models.Region{
		{TripID: tripID, ID: "tokyo", Name: "Tokyo"},
		{TripID: tripID, ID: "kyoto", Name: "Kyoto"},
	}

	legacyTokyo := "tokyo-region"
	legacyKyoto := "kyoto-region"
	rows := pgxmock.NewRows(wishlistColumns()).
		AddRow(itemID1, tripID, "TeamLab", 0, "", "", "", &legacyTokyo, false, now).
		AddRow(itemID2, tripID, "Fushimi Inari", 0, "", "", "", &legacyKyoto, false, now)
	mock.ExpectQuery(`SELECT .+ FROM wishlist_items WHERE trip_id`).
		WithArgs(tripID).
		WillReturnRows(rows)

	mock.ExpectExec(`UPDATE wishlist_items SET region_id`).
		WithArgs("tokyo", itemID1).
		WillReturnError(assert.AnError)

	// The second repair still runs.
	mock.ExpectExec(`UPDATE wishlist_items SET region_id`).
		WithArgs("kyoto", itemID2).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	svc.ReconcileRegions(ctx, tripID, regions)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveLegacyRegion(t *testing.T) {
	regions := []models.Region{
		{ID: "sf", Name: "San Francisco Bay"},
		{ID: "tokyo", Name: "Tokyo"},
	}

	target, ok := resolveLegacyRegion("bay-area", regions)
	require.True(t, ok)
	assert.Equal(t, "sf", target)

	_, ok = resolveLegacyRegion("unmapped-id", regions)
	assert.False(t, ok)

	// Mapped id whose fragment matches no current region name
	_, ok = resolveLegacyRegion("north-island", regions)
	assert.False(t, ok)
}
