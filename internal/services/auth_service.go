package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/plazacomercial/locales-service/internal/dtos"
	"github.com/plazacomercial/locales-service/internal/models"
	"github.com/plazacomercial/locales-service/internal/observability"
	"github.com/plazacomercial/locales-service/internal/repositories"
	"github.com/plazacomercial/locales-service/internal/utils"
)

const LoginSuccessMessage = "Inicio de sesión exitoso"

type AuthService interface {
	Register(ctx context.Context, req dtos.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req dtos.LoginRequest) (*dtos.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dtos.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
}

type authService struct {
	userRepo   repositories.UserRepository
	tokenRepo  repositories.TokenRepository
	jwtService JWTService
	metrics    *observability.Metrics
}

func NewAuthService(
	userRepo repositories.UserRepository,
	tokenRepo repositories.TokenRepository,
	jwtService JWTService,
	metrics *observability.Metrics,
) AuthService {
	return &authService{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
		metrics:    metrics,
	}
}

// ---------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------

func (s *authService) Register(ctx context.Context, req dtos.RegisterRequest) (*models.User, error) {
	existing, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, utils.NewInternalError("Failed to check username", err)
	}
	if existing != nil {
		return nil, utils.NewConflictError("Username already registered", utils.ErrUsernameExists)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, utils.NewInternalError("Failed to hash password", err)
	}

	role := req.Role
	if role == "" {
		role = models.RoleCliente
	}
	u := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		if utils.IsUniqueViolation(err) {
			return nil, utils.NewConflictError("Username or email already registered", utils.ErrUsernameExists)
		}
		return nil, utils.NewInternalError("Failed to create user", err)
	}
	utils.Logger.WithField("username", u.Username).Info("user registered")
	return u, nil
}

// ---------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------

func (s *authService) Login(ctx context.Context, req dtos.LoginRequest) (*dtos.LoginResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		s.metrics.LoginsTotal.WithLabelValues("error").Inc()
		return nil, utils.NewInternalError("Failed to fetch user", err)
	}
	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return nil, utils.NewUnauthorizedError(
			utils.ErrCodeInvalidCredentials, "Invalid credentials", utils.ErrInvalidCredentials,
		)
	}

	// one active session per user
	if err := s.tokenRepo.RemoveAllRefreshTokensByUserID(ctx, user.ID); err != nil {
		utils.Logger.WithError(err).Error("failed to remove old refresh tokens on login")
	}

	access, err := s.jwtService.GenerateAccessToken(ctx, user)
	if err != nil {
		s.metrics.LoginsTotal.WithLabelValues("error").Inc()
		return nil, utils.NewInternalError("Failed to generate access token", err)
	}
	rt, err := s.jwtService.GenerateRefreshToken(ctx, user.ID)
	if err != nil {
		s.metrics.LoginsTotal.WithLabelValues("error").Inc()
		return nil, utils.NewInternalError("Failed to generate refresh token", err)
	}

	s.metrics.LoginsTotal.WithLabelValues("success").Inc()
	return &dtos.LoginResponse{
		User:    dtos.LoginUser{Username: user.Username},
		Tokens:  dtos.TokenPair{Refresh: rt.Token, Access: access},
		Role:    user.Role,
		Message: LoginSuccessMessage,
	}, nil
}

// ---------------------------------------------------------------------
// Refresh / Logout
// ---------------------------------------------------------------------

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dtos.TokenPair, error) {
	access, refresh, _, err := s.jwtService.RefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidToken) {
			return nil, &utils.AppError{
				StatusCode: http.StatusUnauthorized,
				Code:       utils.ErrCodeUnauthorized,
				Message:    "Invalid or expired refresh token",
				Err:        err,
			}
		}
		return nil, utils.NewInternalError("Failed to refresh token", err)
	}
	return &dtos.TokenPair{Refresh: refresh, Access: access}, nil
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	if err := s.jwtService.Logout(ctx, refreshToken); err != nil {
		return utils.NewInternalError("Logout failed", err)
	}
	return nil
}
