package dtos

import "github.com/plazacomercial/locales-service/internal/models"

type RegisterRequest struct {
	Username string      `json:"username" validate:"required,min=3,max=100"`
	Email    string      `json:"email" validate:"required,email,max=255"`
	Password string      `json:"password" validate:"required,min=8,max=72"`
	Role     models.Role `json:"role" validate:"omitempty,oneof=marketing asesor staff cliente"`
}

type UserResponse struct {
	ID       int64       `json:"id"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     models.Role `json:"role"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginUser struct {
	Username string `json:"username"`
}

type TokenPair struct {
	Refresh string `json:"refresh"`
	Access  string `json:"access"`
}

type LoginResponse struct {
	User    LoginUser   `json:"user"`
	Tokens  TokenPair   `json:"tokens"`
	Role    models.Role `json:"role"`
	Message string      `json:"message"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	Tokens TokenPair `json:"tokens"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ProtectedResponse struct {
	Message  string      `json:"message"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role}
}
