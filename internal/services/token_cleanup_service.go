package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/jackc/pgconn"

	"github.com/plazacomercial/locales-service/internal/repositories"
	"github.com/plazacomercial/locales-service/internal/utils"
)

// One retry on transient network errors (EOF, closed connection).
var cleanupRetryDelay = 3 * time.Second

// TokenCleanupService removes expired refresh tokens on a schedule.
type TokenCleanupService interface {
	CleanupExpired(ctx context.Context) error
}

type tokenCleanupService struct {
	tokenRepo repositories.TokenRepository
}

func NewTokenCleanupService(tokenRepo repositories.TokenRepository) TokenCleanupService {
	return &tokenCleanupService{tokenRepo: tokenRepo}
}

// runWithRetry executes op(ctx) and, if it returns a transient network
// error, waits a moment then retries once.
func (s *tokenCleanupService) runWithRetry(
	ctx context.Context,
	op func(context.Context) error,
) error {
	err := op(ctx)
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) || pgconn.SafeToRetry(err) ||
		strings.Contains(err.Error(), "connection was closed") {
		utils.Logger.WithError(err).Warn("token cleanup hit transient DB error; retrying once")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(cleanupRetryDelay):
		}
		return op(ctx)
	}
	return err
}

func (s *tokenCleanupService) CleanupExpired(ctx context.Context) error {
	if err := s.runWithRetry(ctx, s.tokenRepo.CleanupExpiredRefreshTokens); err != nil {
		utils.Logger.WithError(err).Error("Failed to cleanup expired refresh_tokens")
		return err
	}
	utils.Logger.Info("Expired refresh token cleanup completed successfully.")
	return nil
}
