package services

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/vracar/tripfolio/internal/database"
	"github.com/vracar/tripfolio/internal/models"
)

// legacyRegionNames maps region ids that older clients wrote (slugs minted
// by a since-replaced scheme) to a name fragment identifying the region
// they meant. Matching is a case-insensitive substring test against the
// current region names. This table is accumulated configuration, not
// design: entries are added when a bad id shows up in production data and
// can be dropped once no item carries the id anymore.
var legacyRegionNames = map[string]string{
	"tokyo-region": "Tokyo",
	"kyoto-region": "Kyoto",
	"osaka-area":   "Osaka",
	"bay-area":     "San Francisco",
	"north-island": "North Island",
	"south-island": "South Island",
}

type WishlistService struct {
	db *database.DB
}

func NewWishlistService(db *database.DB) *WishlistService {
	return &WishlistService{db: db}
}

func (s *WishlistService) Create(ctx context.Context, item models.WishlistItem) (*models.WishlistItem, error) {
	var created models.WishlistItem
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO wishlist_items (trip_id, title, link, image_url, description, region_id, planned)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, trip_id, title, votes, link, image_url, description, region_id, planned, created_at
	`, item.TripID, item.Title, item.Link, item.ImageURL, item.Description, item.RegionID, item.Planned).Scan(
		&created.ID, &created.TripID, &created.Title, &created.Votes, &created.Link,
		&created.ImageURL, &created.Description, &created.RegionID, &created.Planned, &created.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *WishlistService) List(ctx context.Context, tripID uuid.UUID) ([]models.WishlistItem, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, trip_id, title, votes, link, image_url, description, region_id, planned, created_at
		FROM wishlist_items WHERE trip_id = $1
		ORDER BY votes DESC, created_at
	`, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.WishlistItem
	for rows.Next() {
		var item models.WishlistItem
		if err := rows.Scan(
			&item.ID, &item.TripID, &item.Title, &item.Votes, &item.Link,
			&item.ImageURL, &item.Description, &item.RegionID, &item.Planned, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *WishlistService) Update(ctx context.Context, item models.WishlistItem) (*models.WishlistItem, error) {
	var updated models.WishlistItem
	err := s.db.Pool.QueryRow(ctx, `
		UPDATE wishlist_items
		SET title = $1, link = $2, image_url = $3, description = $4, region_id = $5, planned = $6
		WHERE id = $7 AND trip_id = $8
		RETURNING id, trip_id, title, votes, link, image_url, description, region_id, planned, created_at
	`, item.Title, item.Link, item.ImageURL, item.Description, item.RegionID, item.Planned,
		item.ID, item.TripID).Scan(
		&updated.ID, &updated.TripID, &updated.Title, &updated.Votes, &updated.Link,
		&updated.ImageURL, &updated.Description, &updated.RegionID, &updated.Planned, &updated.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *WishlistService) Delete(ctx context.Context, tripID, itemID uuid.UUID) error {
	tag, err := s.db.Pool.Exec(ctx, `
		DELETE FROM wishlist_items WHERE id = $1 AND trip_id = $2
	`, itemID, tripID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (s *WishlistService) Vote(ctx context.Context, tripID, itemID uuid.UUID) (*models.WishlistItem, error) {
	var item models.WishlistItem
	err := s.db.Pool.QueryRow(ctx, `
		UPDATE wishlist_items SET votes = votes + 1
		WHERE id = $1 AND trip_id = $2
		RETURNING id, trip_id, title, votes, link, image_url, description, region_id, planned, created_at
	`, itemID, tripID).Scan(
		&item.ID, &item.TripID, &item.Title, &item.Votes, &item.Link,
		&item.ImageURL, &item.Description, &item.RegionID, &item.Planned, &item.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ReconcileRegions repairs wishlist items whose region_id matches none of
// the trip's current regions. Known legacy ids are remapped through
// legacyRegionNames; anything else is left dangling for the display
// fallback to handle. Every repair is an independent best-effort write: a
// failed update is logged and skipped, never aborting the rest of the scan.
func (s *WishlistService) ReconcileRegions(ctx context.Context, tripID uuid.UUID, regions []models.Region) {
	known := make(map[string]bool, len(regions))
	for _, r := range regions {
		known[r.ID] = true
	}

	items, err := s.List(ctx, tripID)
	if err != nil {
		log.Printf("region reconciliation: failed to list wishlist for trip %s: %v", tripID, err)
		return
	}

	for _, item := range items {
		if item.RegionID == nil || known[*item.RegionID] {
			continue
		}

		target, ok := resolveLegacyRegion(*item.RegionID, regions)
		if !ok {
			continue
		}

		_, err := s.db.Pool.Exec(ctx, `
			UPDATE wishlist_items SET region_id = $1 WHERE id = $2
		`, target, item.ID)
		if err != nil {
			log.Printf("region reconciliation: failed to repair item %s (%s -> %s): %v",
				item.ID, *item.RegionID, target, err)
			continue
		}
	}
}

// resolveLegacyRegion finds the current region a legacy id was meant to
// name, by substring match of the mapped fragment against region names.
func resolveLegacyRegion(legacyID string, regions []models.Region) (string, bool) {
	fragment, ok := legacyRegionNames[legacyID]
	if !ok {
		return "", false
	}
	needle := strings.ToLower(fragment)
	for _, r := range regions {
		if strings.Contains(strings.ToLower(r.Name), needle) {
			return r.ID, true
		}
	}
	return "", false
}
