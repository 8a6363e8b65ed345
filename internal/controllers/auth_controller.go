package controllers

import (
	"net/http"

	"github.com/plazacomercial/locales-service/internal/dtos"
	"github.com/plazacomercial/locales-service/internal/middleware"
	"github.com/plazacomercial/locales-service/internal/services"
	"github.com/plazacomercial/locales-service/internal/utils"
)

type AuthController struct {
	authService services.AuthService
}

func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// POST /users/register
func (c *AuthController) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	u, err := c.authService.Register(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.NewUserResponse(u))
}

// POST /users/login
func (c *AuthController) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := c.authService.Login(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// POST /users/refresh
func (c *AuthController) RefreshHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.RefreshTokenRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	pair, err := c.authService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.RefreshTokenResponse{Tokens: *pair})
}

// POST /users/logout
func (c *AuthController) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.LogoutRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := c.authService.Logout(r.Context(), req.RefreshToken); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "Logged out")
}

// GET /protected/staff
func (c *AuthController) StaffOnlyHandler(w http.ResponseWriter, r *http.Request) {
	username, _ := middleware.UsernameFromContext(r.Context())
	role, _ := middleware.RoleFromContext(r.Context())
	utils.RespondWithJSON(w, http.StatusOK, dtos.ProtectedResponse{
		Message:  "Welcome, staff member",
		Username: username,
		Role:     role,
	})
}
