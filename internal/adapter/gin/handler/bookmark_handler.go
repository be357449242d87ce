package handler

import (
	"net/http"
	"strconv"

	"bookmark-service/internal/adapter/gin/middleware"
	"bookmark-service/internal/usecase/bookmark"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookmarkHandler handles HTTP requests for bookmark operations
type BookmarkHandler struct {
	uc  bookmark.Usecase
	log *zap.Logger
}

// NewBookmarkHandler creates a new BookmarkHandler instance
func NewBookmarkHandler(uc bookmark.Usecase, log *zap.Logger) *BookmarkHandler {
	return &BookmarkHandler{
		uc:  uc,
		log: log,
	}
}

// CreateBookmarkRequest represents the HTTP request body for creating a bookmark
type CreateBookmarkRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"omitempty,max=1000"`
	Link        string `json:"link" binding:"required"`
}

// UpdateBookmarkRequest represents the HTTP request body for editing a bookmark
type UpdateBookmarkRequest struct {
	Title       string `json:"title" binding:"omitempty,max=200"`
	Description string `json:"description" binding:"omitempty,max=1000"`
	Link        string `json:"link"`
}

// List handles GET /bookmarks
func (h *BookmarkHandler) List(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
		return
	}

	items, err := h.uc.List(c.Request.Context(), identity.UserID)
	if err != nil {
		h.log.Error("list bookmarks failed", zap.Int64("user_id", identity.UserID), zap.Error(err))
		handleError(c, err)
		return
	}

	resp := make([]BookmarkResponse, 0, len(items))
	for i := range items {
		resp = append(resp, toBookmarkResponse(&items[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// GetByID handles GET /bookmarks/:id
func (h *BookmarkHandler) GetByID(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
		return
	}

	id, ok := bookmarkID(c)
	if !ok {
		return
	}

	b, err := h.uc.GetByID(c.Request.Context(), identity.UserID, id)
	if err != nil {
		h.log.Warn("get bookmark failed",
			zap.Int64("user_id", identity.UserID),
			zap.Int64("bookmark_id", id),
			zap.Error(err))
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookmarkResponse(b))
}

// Create handles POST /bookmarks
func (h *BookmarkHandler) Create(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
		return
	}

	var req CreateBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid create bookmark request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	b, err := h.uc.Create(c.Request.Context(), identity.UserID, bookmark.CreateBookmarkRequest{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	})
	if err != nil {
		h.log.Error("create bookmark failed", zap.Int64("user_id", identity.UserID), zap.Error(err))
		handleError(c, err)
		return
	}

	h.log.Info("bookmark created",
		zap.Int64("user_id", identity.UserID),
		zap.Int64("bookmark_id", b.ID))

	c.JSON(http.StatusCreated, toBookmarkResponse(b))
}

// Update handles PATCH /bookmarks/:id
func (h *BookmarkHandler) Update(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
		return
	}

	id, ok := bookmarkID(c)
	if !ok {
		return
	}

	var req UpdateBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid update bookmark request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	b, err := h.uc.Update(c.Request.Context(), identity.UserID, id, bookmark.UpdateBookmarkRequest{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	})
	if err != nil {
		h.log.Warn("update bookmark failed",
			zap.Int64("user_id", identity.UserID),
			zap.Int64("bookmark_id", id),
			zap.Error(err))
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookmarkResponse(b))
}

// Delete handles DELETE /bookmarks/:id
func (h *BookmarkHandler) Delete(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
		return
	}

	id, ok := bookmarkID(c)
	if !ok {
		return
	}

	b, err := h.uc.Delete(c.Request.Context(), identity.UserID, id)
	if err != nil {
		h.log.Warn("delete bookmark failed",
			zap.Int64("user_id", identity.UserID),
			zap.Int64("bookmark_id", id),
			zap.Error(err))
		handleError(c, err)
		return
	}

	h.log.Info("bookmark deleted",
		zap.Int64("user_id", identity.UserID),
		zap.Int64("bookmark_id", id))

	c.JSON(http.StatusOK, toBookmarkResponse(b))
}

// bookmarkID parses the :id path parameter, writing a 400 on failure.
func bookmarkID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "invalid bookmark id",
		})
		return 0, false
	}
	return id, true
}
