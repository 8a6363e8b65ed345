package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/plazacomercial/locales-service/internal/models"
	"github.com/plazacomercial/locales-service/internal/utils"
)

// TokenRepository is the interface used by the JWT service to manage
// refresh tokens in the DB. Tokens are stored hashed; callers always
// pass the raw value.
type TokenRepository interface {
	CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error

	// GetRefreshToken fetches a refresh token by its raw token (we hash it internally).
	// Returns nil if not found.
	GetRefreshToken(ctx context.Context, rawToken string) (*models.RefreshToken, error)

	RemoveRefreshToken(ctx context.Context, id uuid.UUID) error
	RemoveAllRefreshTokensByUserID(ctx context.Context, userID int64) error
	CleanupExpiredRefreshTokens(ctx context.Context) error
}

type tokenRepo struct {
	db DB
}

func NewTokenRepository(db DB) TokenRepository {
	return &tokenRepo{db: db}
}

// ----------------------------
// Create / Get
// ----------------------------

func (r *tokenRepo) CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	query := `
		INSERT INTO refresh_tokens (id, user_id, refresh_token, expires_at, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`
	_, err := r.db.Exec(ctx, query,
		token.ID,
		token.UserID,
		utils.HashToken(token.Token),
		token.ExpiresAt,
	)
	return err
}

func (r *tokenRepo) GetRefreshToken(ctx context.Context, rawToken string) (*models.RefreshToken, error) {
	query := `
		SELECT id, user_id, refresh_token, expires_at, created_at
		FROM refresh_tokens
		WHERE refresh_token = $1
	`
	row := r.db.QueryRow(ctx, query, utils.HashToken(rawToken))

	var rt models.RefreshToken
	err := row.Scan(&rt.ID, &rt.UserID, &rt.Token, &rt.ExpiresAt, &rt.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &rt, nil
}

// ----------------------------
// Remove / Cleanup
// ----------------------------

func (r *tokenRepo) RemoveRefreshToken(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM refresh_tokens WHERE id = $1`, id)
	return err
}

func (r *tokenRepo) RemoveAllRefreshTokensByUserID(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM refresh_tokens WHERE user_id = $1`, userID)
	return err
}

func (r *tokenRepo) CleanupExpiredRefreshTokens(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM refresh_tokens WHERE expires_at < NOW()`)
	return err
}
