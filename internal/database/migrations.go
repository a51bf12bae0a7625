package database

import (
	"context"
	"fmt"
)

var migrations = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,

	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		email VARCHAR(255) UNIQUE NOT NULL,
		name VARCHAR(255) NOT NULL,
		avatar_url VARCHAR(500),
		provider VARCHAR(50) NOT NULL,
		provider_id VARCHAR(255) NOT NULL DEFAULT '',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	// owner_id is nullable: trips imported from the legacy data set may
	// predate the owner column, in which case every member counts as an
	// administrator for invite purposes.
	`CREATE TABLE IF NOT EXISTS trips (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		title VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		owner_id UUID REFERENCES users(id) ON DELETE SET NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS trip_members (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		trip_id UUID NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		role VARCHAR(50) NOT NULL DEFAULT 'member',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		UNIQUE(trip_id, user_id)
	)`,

	// Invites are never deleted; claimed rows stay behind as an audit trail.
	`CREATE TABLE IF NOT EXISTS invites (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		code VARCHAR(12) UNIQUE NOT NULL,
		trip_id UUID NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
		role VARCHAR(50) NOT NULL DEFAULT 'member',
		used_by UUID REFERENCES users(id) ON DELETE SET NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		claimed_at TIMESTAMP WITH TIME ZONE
	)`,

	// Region ids are caller-chosen slugs, unique per trip, and referenced
	// from wishlist_items.region_id WITHOUT a foreign key: those references
	// are weak by design and repaired by reconciliation, never enforced.
	`CREATE TABLE IF NOT EXISTS regions (
		trip_id UUID NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
		id TEXT NOT NULL,
		name VARCHAR(255) NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		PRIMARY KEY (trip_id, id)
	)`,

	`CREATE TABLE IF NOT EXISTS wishlist_items (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		trip_id UUID NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
		title VARCHAR(255) NOT NULL,
		votes INTEGER NOT NULL DEFAULT 0 CHECK (votes >= 0),
		link VARCHAR(500) NOT NULL DEFAULT '',
		image_url VARCHAR(500) NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		region_id TEXT,
		planned BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS activities (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		trip_id UUID NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
		title VARCHAR(255) NOT NULL,
		day DATE NOT NULL,
		start_time VARCHAR(8),
		notes TEXT NOT NULL DEFAULT '',
		region_id TEXT,
		wishlist_item_id UUID,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS bookings (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		trip_id UUID NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
		title VARCHAR(255) NOT NULL,
		kind VARCHAR(50) NOT NULL DEFAULT 'other',
		booked_for DATE,
		reference_code VARCHAR(255) NOT NULL DEFAULT '',
		url VARCHAR(500) NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		token_hash VARCHAR(255) NOT NULL UNIQUE,
		expires_at TIMESTAMP WITH TIME ZONE NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_trip_members_trip_id ON trip_members(trip_id)`,
	`CREATE INDEX IF NOT EXISTS idx_trip_members_user_id ON trip_members(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_invites_trip_id ON invites(trip_id)`,
	`CREATE INDEX IF NOT EXISTS idx_wishlist_items_trip_id ON wishlist_items(trip_id)`,
	`CREATE INDEX IF NOT EXISTS idx_activities_trip_id ON activities(trip_id)`,
	`CREATE INDEX IF NOT EXISTS idx_activities_day ON activities(trip_id, day)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_trip_id ON bookings(trip_id)`,
	`CREATE INDEX IF NOT EXISTS idx_refresh_tokens_user_id ON refresh_tokens(user_id)`,
}

func (db *DB) Migrate(ctx context.Context) error {
	for i, migration := range migrations {
		if _, err := db.Pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
