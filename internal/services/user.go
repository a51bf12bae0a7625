package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/vracar/tripfolio/internal/database"
	"github.com/vracar/tripfolio/internal/models"
	"github.com/vracar/tripfolio/internal/oauth"
)

type UserService struct {
	db *database.DB
}

func NewUserService(db *database.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) FindOrCreateFromOAuth(ctx context.Context, info *oauth.UserInfo) (*models.User, error) {
	var user models.User
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, email, name, avatar_url, provider, provider_id, created_at, updated_at
		FROM users
		WHERE provider = $1 AND provider_id = $2
	`, info.Provider, info.ID).Scan(
		&user.ID, &user.Email, &user.Name, &user.AvatarURL,
		&user.Provider, &user.ProviderID, &user.CreatedAt, &user.UpdatedAt,
	)

	if err == nil {
		return &user, nil
	}

	// A shell user created by a direct email invite gets upgraded to a real
	// account on first sign-in through a provider with the matching email.
	err = s.db.Pool.QueryRow(ctx, `
		SELECT id FROM users WHERE email = $1 AND provider = $2
	`, info.Email, models.ProviderInvite).Scan(&user.ID)
	if err == nil {
		err = s.db.Pool.QueryRow(ctx, `
			UPDATE users
			SET name = $1, avatar_url = $2, provider = $3, provider_id = $4, updated_at = NOW()
			WHERE id = $5
			RETURNING id, email, name, avatar_url, provider, provider_id, created_at, updated_at
		`, info.Name, nullableString(info.AvatarURL), info.Provider, info.ID, user.ID).Scan(
			&user.ID, &user.Email, &user.Name, &user.AvatarURL,
			&user.Provider, &user.ProviderID, &user.CreatedAt, &user.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to upgrade invited user: %w", err)
		}
		return &user, nil
	}

	err = s.db.Pool.QueryRow(ctx, `
		INSERT INTO users (email, name, avatar_url, provider, provider_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, email, name, avatar_url, provider, provider_id, created_at, updated_at
	`, info.Email, info.Name, nullableString(info.AvatarURL), info.Provider, info.ID).Scan(
		&user.ID, &user.Email, &user.Name, &user.AvatarURL,
		&user.Provider, &user.ProviderID, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// GetOrCreateByEmail backs direct invites. When no user holds the email, a
// passwordless shell row is created; the invited person authenticates later
// through the identity provider and the shell is upgraded in
// FindOrCreateFromOAuth. Not atomic with the caller's membership update.
func (s *UserService) GetOrCreateByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.GetByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if err != pgx.ErrNoRows {
		return nil, err
	}

	var created models.User
	err = s.db.Pool.QueryRow(ctx, `
		INSERT INTO users (email, name, provider)
		VALUES ($1, $2, $3)
		RETURNING id, email, name, avatar_url, provider, provider_id, created_at, updated_at
	`, email, email, models.ProviderInvite).Scan(
		&created.ID, &created.Email, &created.Name, &created.AvatarURL,
		&created.Provider, &created.ProviderID, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create invited user: %w", err)
	}
	return &created, nil
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, email, name, avatar_url, provider, provider_id, created_at, updated_at
		FROM users WHERE id = $1
	`, id).Scan(
		&user.ID, &user.Email, &user.Name, &user.AvatarURL,
		&user.Provider, &user.ProviderID, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, email, name, avatar_url, provider, provider_id, created_at, updated_at
		FROM users WHERE email = $1
	`, email).Scan(
		&user.ID, &user.Email, &user.Name, &user.AvatarURL,
		&user.Provider, &user.ProviderID, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Update(ctx context.Context, id uuid.UUID, name string) (*models.User, error) {
	var user models.User
	err := s.db.Pool.QueryRow(ctx, `
		UPDATE users SET name = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, email, name, avatar_url, provider, provider_id, created_at, updated_at
	`, name, id).Scan(
		&user.ID, &user.Email, &user.Name, &user.AvatarURL,
		&user.Provider, &user.ProviderID, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
