package handler

import (
	"net/http"
	"time"

	"bookmark-service/internal/usecase/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler handles HTTP requests for signup and signin
type AuthHandler struct {
	uc  auth.Usecase
	log *zap.Logger
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(uc auth.Usecase, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		uc:  uc,
		log: log,
	}
}

// CredentialsRequest represents the HTTP request body for signup and signin
type CredentialsRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignUpResponse represents the HTTP response for a created account
type SignUpResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SignInResponse represents the HTTP response for a successful signin
type SignInResponse struct {
	AccessToken string `json:"access_token"`
}

// SignUp handles POST /auth/signup
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid signup request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	h.log.Info("signup request", zap.String("email", req.Email))

	resp, err := h.uc.SignUp(c.Request.Context(), auth.SignUpRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.log.Warn("signup failed", zap.Error(err))
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SignUpResponse{
		ID:        resp.ID,
		Email:     resp.Email,
		CreatedAt: resp.CreatedAt,
		UpdatedAt: resp.UpdatedAt,
	})
}

// SignIn handles POST /auth/signin
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid signin request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	h.log.Info("signin request", zap.String("email", req.Email))

	resp, err := h.uc.SignIn(c.Request.Context(), auth.SignInRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.log.Warn("signin failed", zap.Error(err))
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, SignInResponse{
		AccessToken: resp.AccessToken,
	})
}
