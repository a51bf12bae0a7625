package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vracar/tripfolio/internal/models"
	"github.com/vracar/tripfolio/internal/services"
	"github.com/vracar/tripfolio/tests/testutil"
)

func TestTripService_Integration_Create(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := services.NewTripService(tdb.DB)
	ctx := context.Background()

	owner := fixtures.CreateUser(t)

	trip, err := svc.Create(ctx, "Japan 2026", "Two weeks in spring", owner.ID)

	require.NoError(t, err)
	assert.NotEmpty(t, trip.ID)
	assert.Equal(t, "Japan 2026", trip.Title)
	require.NotNil(t, trip.OwnerID)
	assert.Equal(t, owner.ID, *trip.OwnerID)

	// Creating a trip also enrolls the owner as a member
	isMember, err := svc.IsMember(ctx, trip.ID, owner.ID)
	require.NoError(t, err)
	assert.True(t, isMember)
}

func TestTripService_Integration_GetUserTrips(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := services.NewTripService(tdb.DB)
	ctx := context.Background()

	owner := fixtures.CreateUser(t)
	member := fixtures.CreateUser(t)

	_, err := svc.Create(ctx, "Trip 1", "", owner.ID)
	require.NoError(t, err)

	trip2, err := svc.Create(ctx, "Trip 2", "", owner.ID)
	require.NoError(t, err)
	err = svc.AddMember(ctx, trip2.ID, member.ID)
	require.NoError(t, err)

	ownerTrips, ownerRoles, err := svc.GetUserTrips(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, ownerTrips, 2)
	assert.Equal(t, models.RoleOwner, ownerRoles[0])
	assert.Equal(t, models.RoleOwner, ownerRoles[1])

	memberTrips, memberRoles, err := svc.GetUserTrips(ctx, member.ID)
	require.NoError(t, err)
	assert.Len(t, memberTrips, 1)
	assert.Equal(t, trip2.ID, memberTrips[0].ID)
	assert.Equal(t, models.RoleMember, memberRoles[0])
}

func TestTripService_Integration_CanAdminister(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := services.NewTripService(tdb.DB)
	ctx := context.Background()

	owner := fixtures.CreateUser(t)
	member := fixtures.CreateUser(t)
	outsider := fixtures.CreateUser(t)

	trip, err := svc.Create(ctx, "Japan 2026", "", owner.ID)
	require.NoError(t, err)
	err = svc.AddMember(ctx, trip.ID, member.ID)
	require.NoError(t, err)

	assert.NoError(t, svc.CanAdminister(ctx, trip.ID, owner.ID))
	assert.ErrorIs(t, svc.CanAdminister(ctx, trip.ID, member.ID), services.ErrForbidden)
	assert.ErrorIs(t, svc.CanAdminister(ctx, trip.ID, outsider.ID), services.ErrForbidden)
}

func TestTripService_Integration_CanAdminister_OwnerlessTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := services.NewTripService(tdb.DB)
	ctx := context.Background()

	creator := fixtures.CreateUser(t)
	outsider := fixtures.CreateUser(t)
	trip := fixtures.CreateTrip(t, creator, testutil.Ownerless())

	// Legacy trips have no recorded owner; any member administers
	assert.NoError(t, svc.CanAdminister(ctx, trip.ID, creator.ID))
	assert.ErrorIs(t, svc.CanAdminister(ctx, trip.ID, outsider.ID), services.ErrForbidden)
}

func TestTripService_Integration_RemoveMember(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := services.NewTripService(tdb.DB)
	ctx := context.Background()

	owner := fixtures.CreateUser(t)
	member := fixtures.CreateUser(t)

	trip, err := svc.Create(ctx, "Japan 2026", "", owner.ID)
	require.NoError(t, err)
	err = svc.AddMember(ctx, trip.ID, member.ID)
	require.NoError(t, err)

	err = svc.RemoveMember(ctx, trip.ID, member.ID)
	require.NoError(t, err)

	isMember, err := svc.IsMember(ctx, trip.ID, member.ID)
	require.NoError(t, err)
	assert.False(t, isMember)

	// The owner cannot be removed
	err = svc.RemoveMember(ctx, trip.ID, owner.ID)
	assert.ErrorIs(t, err, services.ErrCannotRemoveOwner)
}

func TestTripService_Integration_Delete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := services.NewTripService(tdb.DB)
	ctx := context.Background()

	owner := fixtures.CreateUser(t)

	trip, err := svc.Create(ctx, "Japan 2026", "", owner.ID)
	require.NoError(t, err)

	err = svc.Delete(ctx, trip.ID)
	require.NoError(t, err)

	_, err = svc.GetByID(ctx, trip.ID)
	assert.Error(t, err)
}
