package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bookmark-service/internal/usecase/bookmark"
	"bookmark-service/internal/usecase/user"
	pkgerrors "bookmark-service/pkg/errors"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// UserResponse represents the HTTP response for user data.
// There is deliberately no password hash field on this type.
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookmarkResponse represents the HTTP response for bookmark data
type BookmarkResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Link        string    `json:"link"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toUserResponse(p *user.Profile) UserResponse {
	return UserResponse{
		ID:        p.ID,
		Email:     p.Email,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toBookmarkResponse(b *bookmark.Bookmark) BookmarkResponse {
	return BookmarkResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		Title:       b.Title,
		Description: b.Description,
		Link:        b.Link,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// errorCode maps a typed error onto its wire-level error code.
func errorCode(err error) string {
	var (
		validation  *pkgerrors.ValidationError
		notFound    *pkgerrors.NotFoundError
		exists      *pkgerrors.AlreadyExistsError
		credentials *pkgerrors.InvalidCredentialsError
		unauth      *pkgerrors.UnauthenticatedError
	)
	switch {
	case errors.As(err, &validation):
		return "validation_error"
	case errors.As(err, &notFound):
		return "not_found"
	case errors.As(err, &exists):
		return "already_exists"
	case errors.As(err, &credentials):
		return "invalid_credentials"
	case errors.As(err, &unauth):
		return "unauthenticated"
	default:
		return "internal_error"
	}
}

// handleError converts usecase errors to appropriate HTTP responses.
// Typed errors carry their own status; anything untyped is an opaque 500
// so internal error text never reaches a client.
func handleError(c *gin.Context, err error) {
	var statuser pkgerrors.HTTPStatuser
	if errors.As(err, &statuser) {
		status := statuser.HTTPStatus()
		msg := err.Error()
		if status == http.StatusInternalServerError {
			msg = "An internal error occurred"
		}
		c.JSON(status, ErrorResponse{
			Error:   errorCode(err),
			Message: msg,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred",
	})
}
