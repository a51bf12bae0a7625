package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/vracar/tripfolio/internal/database"
	"github.com/vracar/tripfolio/internal/models"
)

type TripService struct {
	db *database.DB
}

func NewTripService(db *database.DB) *TripService {
	return &TripService{db: db}
}

func (s *TripService) Create(ctx context.Context, title, description string, ownerID uuid.UUID) (*models.Trip, error) {
	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var trip models.Trip
	err = tx.QueryRow(ctx, `
		INSERT INTO trips (title, description, owner_id)
		VALUES ($1, $2, $3)
		RETURNING id, title, description, owner_id, created_at, updated_at
	`, title, description, ownerID).Scan(
		&trip.ID, &trip.Title, &trip.Description, &trip.OwnerID, &trip.CreatedAt, &trip.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO trip_members (trip_id, user_id, role)
		VALUES ($1, $2, $3)
	`, trip.ID, ownerID, models.RoleOwner)
	if err != nil {
		return nil, fmt.Errorf("failed to add owner as member: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &trip, nil
}

func (s *TripService) GetByID(ctx context.Context, tripID uuid.UUID) (*models.Trip, error) {
	var trip models.Trip
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, title, description, owner_id, created_at, updated_at
		FROM trips WHERE id = $1
	`, tripID).Scan(
		&trip.ID, &trip.Title, &trip.Description, &trip.OwnerID, &trip.CreatedAt, &trip.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

func (s *TripService) GetUserTrips(ctx context.Context, userID uuid.UUID) ([]models.Trip, []string, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT t.id, t.title, t.description, t.owner_id, t.created_at, t.updated_at, tm.role
		FROM trips t
		JOIN trip_members tm ON t.id = tm.trip_id
		WHERE tm.user_id = $1
		ORDER BY t.created_at DESC
	`, userID)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var trips []models.Trip
	var roles []string
	for rows.Next() {
		var trip models.Trip
		var role string
		if err := rows.Scan(
			&trip.ID, &trip.Title, &trip.Description, &trip.OwnerID,
			&trip.CreatedAt, &trip.UpdatedAt, &role,
		); err != nil {
			return nil, nil, err
		}
		trips = append(trips, trip)
		roles = append(roles, role)
	}
	return trips, roles, rows.Err()
}

func (s *TripService) Update(ctx context.Context, tripID uuid.UUID, title, description string) (*models.Trip, error) {
	var trip models.Trip
	err := s.db.Pool.QueryRow(ctx, `
		UPDATE trips SET title = $1, description = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id, title, description, owner_id, created_at, updated_at
	`, title, description, tripID).Scan(
		&trip.ID, &trip.Title, &trip.Description, &trip.OwnerID, &trip.CreatedAt, &trip.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

func (s *TripService) Delete(ctx context.Context, tripID uuid.UUID) error {
	_, err := s.db.Pool.Exec(ctx, `DELETE FROM trips WHERE id = $1`, tripID)
	return err
}

// CanAdminister reports whether userID may issue invites and manage members
// for the trip: the recorded owner may, and when the trip has no recorded
// owner (legacy data), any member may. Returns ErrForbidden for an
// authenticated caller who fails the check. A missing trip surfaces as the
// raw lookup error, not ErrTripNotFound; handlers map it to 500, matching
// the long-standing behavior clients already rely on.
func (s *TripService) CanAdminister(ctx context.Context, tripID, userID uuid.UUID) error {
	var ownerID *uuid.UUID
	err := s.db.Pool.QueryRow(ctx, `SELECT owner_id FROM trips WHERE id = $1`, tripID).Scan(&ownerID)
	if err != nil {
		return fmt.Errorf("failed to load trip: %w", err)
	}

	if ownerID != nil {
		if *ownerID == userID {
			return nil
		}
		return ErrForbidden
	}

	isMember, err := s.IsMember(ctx, tripID, userID)
	if err != nil {
		return err
	}
	if !isMember {
		return ErrForbidden
	}
	return nil
}

func (s *TripService) IsOwner(ctx context.Context, tripID, userID uuid.UUID) (bool, error) {
	var ownerID *uuid.UUID
	err := s.db.Pool.QueryRow(ctx, `SELECT owner_id FROM trips WHERE id = $1`, tripID).Scan(&ownerID)
	if err != nil {
		return false, err
	}
	return ownerID != nil && *ownerID == userID, nil
}

func (s *TripService) IsMember(ctx context.Context, tripID, userID uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.Pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM trip_members WHERE trip_id = $1 AND user_id = $2)
	`, tripID, userID).Scan(&exists)
	return exists, err
}

func (s *TripService) GetMembers(ctx context.Context, tripID uuid.UUID) ([]models.TripMember, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT tm.id, tm.trip_id, tm.user_id, tm.role, tm.created_at,
		       u.id, u.email, u.name, u.avatar_url, u.provider, u.created_at, u.updated_at
		FROM trip_members tm
		JOIN users u ON tm.user_id = u.id
		WHERE tm.trip_id = $1
		ORDER BY tm.created_at
	`, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []models.TripMember
	for rows.Next() {
		var member models.TripMember
		var user models.User
		if err := rows.Scan(
			&member.ID, &member.TripID, &member.UserID, &member.Role, &member.CreatedAt,
			&user.ID, &user.Email, &user.Name, &user.AvatarURL, &user.Provider, &user.CreatedAt, &user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		member.User = &user
		members = append(members, member)
	}
	return members, rows.Err()
}

// AddMember is an idempotent union: adding a user who is already a member
// changes nothing and returns no error.
func (s *TripService) AddMember(ctx context.Context, tripID, userID uuid.UUID) error {
	_, err := s.db.Pool.Exec(ctx, `
		INSERT INTO trip_members (trip_id, user_id, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (trip_id, user_id) DO NOTHING
	`, tripID, userID, models.RoleMember)
	return err
}

func (s *TripService) RemoveMember(ctx context.Context, tripID, userID uuid.UUID) error {
	var role string
	err := s.db.Pool.QueryRow(ctx, `
		SELECT role FROM trip_members WHERE trip_id = $1 AND user_id = $2
	`, tripID, userID).Scan(&role)
	if err == pgx.ErrNoRows {
		return ErrMemberNotFound
	}
	if err != nil {
		return err
	}
	if role == models.RoleOwner {
		return ErrCannotRemoveOwner
	}

	_, err = s.db.Pool.Exec(ctx, `
		DELETE FROM trip_members WHERE trip_id = $1 AND user_id = $2
	`, tripID, userID)
	return err
}
