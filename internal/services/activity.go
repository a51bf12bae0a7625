package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/vracar/tripfolio/internal/database"
	"github.com/vracar/tripfolio/internal/models"
)

type ActivityService struct {
	db *database.DB
}

func NewActivityService(db *database.DB) *ActivityService {
	return &ActivityService{db: db}
}

func (s *ActivityService) Create(ctx context.Context, activity models.Activity) (*models.Activity, error) {
	var created models.Activity
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO activities (trip_id, title, day, start_time, notes, region_id, wishlist_item_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, trip_id, title, day, start_time, notes, region_id, wishlist_item_id, created_at
	`, activity.TripID, activity.Title, activity.Day, activity.StartTime,
		activity.Notes, activity.RegionID, activity.WishlistItemID).Scan(
		&created.ID, &created.TripID, &created.Title, &created.Day, &created.StartTime,
		&created.Notes, &created.RegionID, &created.WishlistItemID, &created.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *ActivityService) List(ctx context.Context, tripID uuid.UUID) ([]models.Activity, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, trip_id, title, day, start_time, notes, region_id, wishlist_item_id, created_at
		FROM activities WHERE trip_id = $1
		ORDER BY day, start_time NULLS LAST, created_at
	`, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []models.Activity
	for rows.Next() {
		var activity models.Activity
		if err := rows.Scan(
			&activity.ID, &activity.TripID, &activity.Title, &activity.Day, &activity.StartTime,
			&activity.Notes, &activity.RegionID, &activity.WishlistItemID, &activity.CreatedAt,
		); err != nil {
			return nil, err
		}
		activities = append(activities, activity)
	}
	return activities, rows.Err()
}

func (s *ActivityService) Update(ctx context.Context, activity models.Activity) (*models.Activity, error) {
	var updated models.Activity
	err := s.db.Pool.QueryRow(ctx, `
		UPDATE activities
		SET title = $1, day = $2, start_time = $3, notes = $4, region_id = $5, wishlist_item_id = $6
		WHERE id = $7 AND trip_id = $8
		RETURNING id, trip_id, title, day, start_time, notes, region_id, wishlist_item_id, created_at
	`, activity.Title, activity.Day, activity.StartTime, activity.Notes,
		activity.RegionID, activity.WishlistItemID, activity.ID, activity.TripID).Scan(
		&updated.ID, &updated.TripID, &updated.Title, &updated.Day, &updated.StartTime,
		&updated.Notes, &updated.RegionID, &updated.WishlistItemID, &updated.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, ErrActivityNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *ActivityService) Delete(ctx context.Context, tripID, activityID uuid.UUID) error {
	tag, err := s.db.Pool.Exec(ctx, `
		DELETE FROM activities WHERE id = $1 AND trip_id = $2
	`, activityID, tripID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrActivityNotFound
	}
	return nil
}
