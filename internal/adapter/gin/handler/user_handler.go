package handler

import (
	"net/http"

	"bookmark-service/internal/adapter/gin/middleware"
	"bookmark-service/internal/usecase/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler handles HTTP requests for profile operations
type UserHandler struct {
	uc  user.Usecase
	log *zap.Logger
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(uc user.Usecase, log *zap.Logger) *UserHandler {
	return &UserHandler{
		uc:  uc,
		log: log,
	}
}

// UpdateProfileRequest represents the HTTP request body for editing a profile
type UpdateProfileRequest struct {
	Email     string `json:"email" binding:"omitempty,email"`
	FirstName string `json:"first_name" binding:"omitempty,max=100"`
	LastName  string `json:"last_name" binding:"omitempty,max=100"`
}

// GetMe handles GET /users/me
func (h *UserHandler) GetMe(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
		return
	}

	resp, err := h.uc.GetMe(c.Request.Context(), identity.UserID)
	if err != nil {
		h.log.Error("get profile failed", zap.Int64("user_id", identity.UserID), zap.Error(err))
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(resp))
}

// UpdateProfile handles PATCH /users
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid update profile request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	h.log.Info("update profile request", zap.Int64("user_id", identity.UserID))

	resp, err := h.uc.UpdateProfile(c.Request.Context(), identity.UserID, user.UpdateProfileRequest{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		h.log.Warn("update profile failed", zap.Int64("user_id", identity.UserID), zap.Error(err))
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(resp))
}
