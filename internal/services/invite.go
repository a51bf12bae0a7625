package services

import (
	"context"
	"crypto/rand"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/vracar/tripfolio/internal/database"
	"github.com/vracar/tripfolio/internal/models"
)

// codeAlphabet omits characters that read ambiguously on a shared screen
// or a scribbled note: I, O, 0 and 1.
const (
	codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	codeLength   = 6
)

type InviteService struct {
	db *database.DB
}

func NewInviteService(db *database.DB) *InviteService {
	return &InviteService{db: db}
}

// generateCode draws codeLength independent uniform samples from
// codeAlphabet. len(codeAlphabet) divides 256, so a byte modulo the
// alphabet size is unbiased.
func generateCode() (string, error) {
	b := make([]byte, codeLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	code := make([]byte, codeLength)
	for i, v := range b {
		code[i] = codeAlphabet[int(v)%len(codeAlphabet)]
	}
	return string(code), nil
}

// Create issues a fresh single-use invite for the trip. The code is written
// with a conditional insert; if another issuance grabbed the same code
// first, the insert affects no row and we regenerate. The loop has no
// bound: a collision needs two of the 32^6 codes to coincide, so a second
// pass is already rare and a third essentially unobserved.
func (s *InviteService) Create(ctx context.Context, tripID uuid.UUID) (*models.Invite, error) {
	for {
		code, err := generateCode()
		if err != nil {
			return nil, fmt.Errorf("failed to generate invite code: %w", err)
		}

		var invite models.Invite
		err = s.db.Pool.QueryRow(ctx, `
			INSERT INTO invites (code, trip_id, role)
			VALUES ($1, $2, $3)
			ON CONFLICT (code) DO NOTHING
			RETURNING id, code, trip_id, role, used_by, created_at, claimed_at
		`, code, tripID, models.RoleMember).Scan(
			&invite.ID, &invite.Code, &invite.TripID, &invite.Role,
			&invite.UsedBy, &invite.CreatedAt, &invite.ClaimedAt,
		)
		if err == pgx.ErrNoRows {
			// Code taken, try another.
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to store invite: %w", err)
		}
		return &invite, nil
	}
}

// Claim redeems a code for the calling user inside one transaction:
// the invite row is locked, membership is added (idempotent union), and
// used_by/claimed_at are set. The row lock serializes concurrent claims of
// the same code, so exactly one caller can ever succeed; every later
// attempt sees used_by set and fails with ErrCodeAlreadyUsed.
func (s *InviteService) Claim(ctx context.Context, code string, userID uuid.UUID) (uuid.UUID, error) {
	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var tripID uuid.UUID
	var usedBy *uuid.UUID
	err = tx.QueryRow(ctx, `
		SELECT trip_id, used_by FROM invites WHERE code = $1 FOR UPDATE
	`, code).Scan(&tripID, &usedBy)
	if err == pgx.ErrNoRows {
		return uuid.Nil, ErrInvalidCode
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to load invite: %w", err)
	}
	if usedBy != nil {
		return uuid.Nil, ErrCodeAlreadyUsed
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO trip_members (trip_id, user_id, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (trip_id, user_id) DO NOTHING
	`, tripID, userID, models.RoleMember)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to add member: %w", err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE invites SET used_by = $1, claimed_at = NOW() WHERE code = $2
	`, userID, code)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to mark invite claimed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return tripID, nil
}

func (s *InviteService) GetByCode(ctx context.Context, code string) (*models.Invite, error) {
	var invite models.Invite
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, code, trip_id, role, used_by, created_at, claimed_at
		FROM invites WHERE code = $1
	`, code).Scan(
		&invite.ID, &invite.Code, &invite.TripID, &invite.Role,
		&invite.UsedBy, &invite.CreatedAt, &invite.ClaimedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, ErrInvalidCode
	}
	if err != nil {
		return nil, err
	}
	return &invite, nil
}

func (s *InviteService) GetTripInvites(ctx context.Context, tripID uuid.UUID) ([]models.Invite, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, code, trip_id, role, used_by, created_at, claimed_at
		FROM invites WHERE trip_id = $1
		ORDER BY created_at DESC
	`, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invites []models.Invite
	for rows.Next() {
		var invite models.Invite
		if err := rows.Scan(
			&invite.ID, &invite.Code, &invite.TripID, &invite.Role,
			&invite.UsedBy, &invite.CreatedAt, &invite.ClaimedAt,
		); err != nil {
			return nil, err
		}
		invites = append(invites, invite)
	}
	return invites, rows.Err()
}
