package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/plazacomercial/locales-service/internal/config"
	"github.com/plazacomercial/locales-service/internal/middleware"
	"github.com/plazacomercial/locales-service/internal/models"
	"github.com/plazacomercial/locales-service/internal/repositories"
	"github.com/plazacomercial/locales-service/internal/utils"
)

const refreshTokenLength = 64

// ---------------------------------------------------------------------
// JWTService interface
// ---------------------------------------------------------------------

type JWTService interface {
	GenerateAccessToken(ctx context.Context, user *models.User) (string, error)
	GenerateRefreshToken(ctx context.Context, userID int64) (*models.RefreshToken, error)

	// RefreshToken consumes refreshTokenString and returns a new
	// access/refresh pair together with its owner.
	RefreshToken(ctx context.Context, refreshTokenString string) (string, string, *models.User, error)

	Logout(ctx context.Context, refreshTokenString string) error
}

// ---------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------

type jwtService struct {
	secret        []byte
	tokenExpiry   time.Duration
	refreshExpiry time.Duration
	tokenRepo     repositories.TokenRepository
	userRepo      repositories.UserRepository
}

func NewJWTService(
	cfg *config.Config,
	tokenRepo repositories.TokenRepository,
	userRepo repositories.UserRepository,
) JWTService {
	return &jwtService{
		secret:        cfg.SecretKey,
		tokenExpiry:   cfg.AccessTokenExpiry,
		refreshExpiry: cfg.RefreshTokenExpiry,
		tokenRepo:     tokenRepo,
		userRepo:      userRepo,
	}
}

// ---------------------------------------------------------------------
// GenerateAccessToken
// ---------------------------------------------------------------------

func (j *jwtService) GenerateAccessToken(ctx context.Context, user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss":  middleware.TokenIssuer,
		"sub":  user.Username,
		"role": string(user.Role),
		"exp":  now.Add(j.tokenExpiry).Unix(),
		"iat":  now.Unix(),
		"jti":  uuid.NewString(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
}

// ---------------------------------------------------------------------
// GenerateRefreshToken
// ---------------------------------------------------------------------

func (j *jwtService) GenerateRefreshToken(ctx context.Context, userID int64) (*models.RefreshToken, error) {
	if j.tokenRepo == nil {
		return nil, errors.New("jwtService has nil tokenRepo")
	}

	rt := &models.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		Token:     utils.SecureToken(refreshTokenLength),
		ExpiresAt: time.Now().Add(j.refreshExpiry),
		CreatedAt: time.Now(),
	}
	if err := j.tokenRepo.CreateRefreshToken(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

// ---------------------------------------------------------------------
// RefreshToken
// ---------------------------------------------------------------------

func (j *jwtService) RefreshToken(
	ctx context.Context,
	refreshTokenString string,
) (string, string, *models.User, error) {
	if j.tokenRepo == nil {
		return "", "", nil, errors.New("jwtService has nil tokenRepo")
	}

	oldToken, err := j.tokenRepo.GetRefreshToken(ctx, refreshTokenString)
	if err != nil {
		return "", "", nil, err
	}
	if oldToken == nil {
		return "", "", nil, utils.ErrInvalidToken
	}
	if oldToken.IsExpired() {
		utils.Logger.WithField("user_id", oldToken.UserID).Warn("refresh token expired in jwtService.RefreshToken")
		_ = j.tokenRepo.RemoveRefreshToken(ctx, oldToken.ID)
		return "", "", nil, utils.ErrInvalidToken
	}

	user, err := j.userRepo.GetByID(ctx, oldToken.UserID)
	if err != nil {
		return "", "", nil, err
	}
	if user == nil {
		return "", "", nil, utils.ErrInvalidToken
	}

	// rotate
	if err := j.tokenRepo.RemoveRefreshToken(ctx, oldToken.ID); err != nil {
		utils.Logger.WithError(err).Error("failed to remove old refresh token in jwtService.RefreshToken")
		return "", "", nil, err
	}

	newAccess, err := j.GenerateAccessToken(ctx, user)
	if err != nil {
		return "", "", nil, err
	}
	newRT, err := j.GenerateRefreshToken(ctx, user.ID)
	if err != nil {
		return "", "", nil, err
	}
	return newAccess, newRT.Token, user, nil
}

// ---------------------------------------------------------------------
// Logout
// ---------------------------------------------------------------------

func (j *jwtService) Logout(ctx context.Context, refreshTokenString string) error {
	if j.tokenRepo == nil {
		return errors.New("jwtService has nil tokenRepo")
	}

	oldToken, err := j.tokenRepo.GetRefreshToken(ctx, refreshTokenString)
	if err != nil {
		utils.Logger.WithError(err).Error("logout fetch refresh token error in jwtService")
		return err
	}
	if oldToken == nil {
		// already gone => no-op
		return nil
	}
	return j.tokenRepo.RemoveRefreshToken(ctx, oldToken.ID)
}
