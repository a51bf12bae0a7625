package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vracar/tripfolio/internal/models"
	"github.com/vracar/tripfolio/internal/services"
	"github.com/vracar/tripfolio/tests/testutil"
)

func TestUserService_Integration_FindOrCreateFromOAuth_CreatesNew(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewUserService(tdb.DB)
	ctx := context.Background()

	info := testutil.OAuthUserInfo("new@example.com", "New User", "google", "google-123")

	user, err := svc.FindOrCreateFromOAuth(ctx, info)
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, "google", user.Provider)

	// A second sign-in resolves to the same row
	again, err := svc.FindOrCreateFromOAuth(ctx, info)
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
}

func TestUserService_Integration_InviteShellUpgradedOnSignIn(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewUserService(tdb.DB)
	ctx := context.Background()

	// Direct email invite creates a passwordless shell
	shell, err := svc.GetOrCreateByEmail(ctx, "friend@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.ProviderInvite, shell.Provider)
	assert.Equal(t, "friend@example.com", shell.Name)

	// A second invite to the same address reuses the shell
	again, err := svc.GetOrCreateByEmail(ctx, "friend@example.com")
	require.NoError(t, err)
	assert.Equal(t, shell.ID, again.ID)

	// First real sign-in upgrades the shell in place
	info := testutil.OAuthUserInfo("friend@example.com", "Friend", "google", "google-456")
	upgraded, err := svc.FindOrCreateFromOAuth(ctx, info)
	require.NoError(t, err)
	assert.Equal(t, shell.ID, upgraded.ID)
	assert.Equal(t, "google", upgraded.Provider)
	assert.Equal(t, "Friend", upgraded.Name)
}

func TestTokenService_Integration_RefreshTokenLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := services.NewTokenService(tdb.DB)
	ctx := context.Background()

	user := fixtures.CreateUser(t)
	hash := services.HashToken("some-refresh-token")

	err := svc.StoreRefreshToken(ctx, user.ID, hash, time.Now().Add(24*time.Hour))
	require.NoError(t, err)

	userID, err := svc.ValidateRefreshToken(ctx, hash)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)

	err = svc.RevokeRefreshToken(ctx, hash)
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(ctx, hash)
	assert.Error(t, err)
}

func TestTokenService_Integration_CleanupExpired(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := services.NewTokenService(tdb.DB)
	ctx := context.Background()

	user := fixtures.CreateUser(t)
	expired := services.HashToken("expired-token")
	live := services.HashToken("live-token")

	fixtures.CreateRefreshToken(t, user.ID, expired, time.Now().Add(-time.Hour))
	fixtures.CreateRefreshToken(t, user.ID, live, time.Now().Add(time.Hour))

	err := svc.CleanupExpired(ctx)
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(ctx, expired)
	assert.Error(t, err)

	_, err = svc.ValidateRefreshToken(ctx, live)
	assert.NoError(t, err)
}
