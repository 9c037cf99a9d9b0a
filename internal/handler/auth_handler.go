package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tallyapp/tally/internal/auth"
	"github.com/tallyapp/tally/internal/models"
	"github.com/tallyapp/tally/internal/service"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Member *models.Member `json:"member"`
	Token  string         `json:"token"`
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "invalid request body")
	}
	if req.Name == "" || req.Email == "" {
		return NewValidationError(c, "name and email are required")
	}

	member, token, err := h.auth.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	switch {
	case errors.Is(err, auth.ErrWeakPassword):
		return NewValidationError(c, err.Error())
	case errors.Is(err, auth.ErrEmailExists):
		return NewConflictError(c, err.Error())
	case err != nil:
		return NewInternalError(c, "failed to register")
	}

	return c.JSON(http.StatusCreated, sessionResponse{Member: member, Token: token})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "invalid request body")
	}

	member, token, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		return NewUnauthorizedError(c, err.Error())
	}
	if err != nil {
		return NewInternalError(c, "failed to log in")
	}

	return c.JSON(http.StatusOK, sessionResponse{Member: member, Token: token})
}
