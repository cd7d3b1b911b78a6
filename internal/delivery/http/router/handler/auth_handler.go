// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"gatekeeper/internal/delivery/http/middleware"
	"gatekeeper/internal/delivery/http/response"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication-related handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// SignUp handles the user registration request.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var input usecase.SignUpInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}

	output, err := h.uc.SignUp(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	// The usecase already projects away the password digest.
	return response.Success(c, http.StatusCreated, output, "User registered successfully")
}

// SignIn handles the user login request.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var input usecase.SignInInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signin input")
	}

	output, err := h.uc.SignIn(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// roleRequest optionally names the user whose role is being checked.
type roleRequest struct {
	UserID string `json:"userId" validate:"omitempty,uuid"`
}

// CheckRole returns the role of the requested user, defaulting to the
// authenticated caller when no userId is supplied.
func (h *AuthHandler) CheckRole(c echo.Context) error {
	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role check input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "userId must be a valid UUID")
	}

	var userID uuid.UUID
	if req.UserID != "" {
		parsed, err := uuid.Parse(req.UserID)
		if err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid user id format")
		}
		userID = parsed
	} else {
		id, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
		if !ok {
			return response.Unauthorized(c, "UNAUTHORIZED", "User identity missing from request")
		}
		userID = id
	}

	output, err := h.uc.CheckRole(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Role retrieved successfully")
}

// ListUsers returns every registered user without password digests.
func (h *AuthHandler) ListUsers(c echo.Context) error {
	output, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Users retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
