package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"landing-cms-backend/internal/domains/user/model"
	"landing-cms-backend/internal/domains/user/service"
	"landing-cms-backend/internal/shared/middleware"
	"landing-cms-backend/internal/shared/response"
	"landing-cms-backend/pkg/logger"
)

// UserHandler exposes admin authentication over HTTP.
type UserHandler struct {
	service service.Service
}

func NewUserHandler(service service.Service) *UserHandler {
	return &UserHandler{service: service}
}

// Login handles POST /api/auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Verify handles GET /api/auth/verify. Reaching it means the auth
// middleware already accepted the token, so just echo the claims.
func (h *UserHandler) Verify(c *gin.Context) {
	claims := middleware.CurrentUser(c)
	if claims == nil {
		response.Unauthorized(c, "Access token required")
		return
	}

	c.JSON(http.StatusOK, model.VerifyResponse{
		Valid: true,
		User: model.PublicUser{
			ID:       claims.UserID,
			Username: claims.Username,
			Role:     claims.Role,
		},
	})
}

// ChangePassword handles PUT /api/auth/password
func (h *UserHandler) ChangePassword(c *gin.Context) {
	claims := middleware.CurrentUser(c)
	if claims == nil {
		response.Unauthorized(c, "Access token required")
		return
	}

	var req model.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), claims.UserID, req); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}

func (h *UserHandler) handleError(c *gin.Context, err error) {
	var vErrs validation.Errors
	switch {
	case errors.As(err, &vErrs):
		response.BadRequest(c, err.Error())

	case errors.Is(err, model.ErrInvalidCredentials):
		response.Unauthorized(c, err.Error())

	case errors.Is(err, model.ErrTooManyAttempts):
		response.TooManyRequests(c, err.Error())

	case errors.Is(err, model.ErrPasswordMismatch):
		response.BadRequest(c, err.Error())

	case errors.Is(err, model.ErrUserNotFound):
		response.NotFound(c, err.Error())

	default:
		logger.Error("auth request failed", err)
		response.InternalServerError(c, "Internal server error")
	}
}
