package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/vracar/tripfolio/internal/database"
	"github.com/vracar/tripfolio/internal/models"
)

type RegionService struct {
	db *database.DB
}

func NewRegionService(db *database.DB) *RegionService {
	return &RegionService{db: db}
}

func (s *RegionService) Create(ctx context.Context, tripID uuid.UUID, id, name, notes string) (*models.Region, error) {
	var region models.Region
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO regions (trip_id, id, name, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING trip_id, id, name, notes, created_at
	`, tripID, id, name, notes).Scan(
		&region.TripID, &region.ID, &region.Name, &region.Notes, &region.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &region, nil
}

func (s *RegionService) List(ctx context.Context, tripID uuid.UUID) ([]models.Region, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT trip_id, id, name, notes, created_at
		FROM regions WHERE trip_id = $1
		ORDER BY created_at
	`, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var regions []models.Region
	for rows.Next() {
		var region models.Region
		if err := rows.Scan(&region.TripID, &region.ID, &region.Name, &region.Notes, &region.CreatedAt); err != nil {
			return nil, err
		}
		regions = append(regions, region)
	}
	return regions, rows.Err()
}

func (s *RegionService) Update(ctx context.Context, tripID uuid.UUID, id, name, notes string) (*models.Region, error) {
	var region models.Region
	err := s.db.Pool.QueryRow(ctx, `
		UPDATE regions SET name = $1, notes = $2
		WHERE trip_id = $3 AND id = $4
		RETURNING trip_id, id, name, notes, created_at
	`, name, notes, tripID, id).Scan(
		&region.TripID, &region.ID, &region.Name, &region.Notes, &region.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, ErrRegionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &region, nil
}

// Delete removes the region row only. Wishlist items keeping the region's
// id are left dangling on purpose; reconciliation and the display fallback
// deal with them.
func (s *RegionService) Delete(ctx context.Context, tripID uuid.UUID, id string) error {
	tag, err := s.db.Pool.Exec(ctx, `
		DELETE FROM regions WHERE trip_id = $1 AND id = $2
	`, tripID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRegionNotFound
	}
	return nil
}

// RegionDisplayName is the single place that resolves a wishlist item's
// region reference to something printable. A matching region wins; a
// dangling id degrades to a humanized form of the id itself ("tokyo-region"
// → "Tokyo Region") so grouping headers are never blank or broken.
func RegionDisplayName(regionID string, regions []models.Region) string {
	for _, r := range regions {
		if r.ID == regionID {
			return r.Name
		}
	}
	return humanizeID(regionID)
}

func humanizeID(id string) string {
	words := strings.FieldsFunc(id, func(r rune) bool {
		return r == '-' || r == '_'
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
