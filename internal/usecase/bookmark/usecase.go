package bookmark

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	domain "bookmark-service/internal/domain/bookmark"
	pkgerrors "bookmark-service/pkg/errors"

	"github.com/go-playground/validator/v10"
)

// Service implements the business logic for bookmark management.
type Service struct {
	repo     Repository
	log      *zap.Logger
	validate *validator.Validate
}

// New creates a new bookmark Service with the provided repository and logger.
func New(r Repository, log *zap.Logger) *Service {
	return &Service{repo: r, log: log, validate: validator.New()}
}

// formatValidationError converts validator.ValidationErrors into a human-readable error message.
func formatValidationError(err error) error {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, e := range validationErrors {
			switch e.Tag() {
			case "required":
				messages = append(messages, fmt.Sprintf("%s is required", e.Field()))
			case "max":
				messages = append(messages, fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param()))
			default:
				messages = append(messages, fmt.Sprintf("%s is invalid", e.Field()))
			}
		}
		return pkgerrors.NewValidationError("", strings.Join(messages, ", "))
	}
	return err
}

// List returns all bookmarks owned by ownerID.
func (s *Service) List(ctx context.Context, ownerID int64) ([]Bookmark, error) {
	if ownerID <= 0 {
		return nil, pkgerrors.NewValidationError("owner", "invalid owner id")
	}

	domainBookmarks, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		s.log.Error("failed to list bookmarks", zap.Int64("user_id", ownerID), zap.Error(err))
		return nil, err
	}

	bookmarks := make([]Bookmark, len(domainBookmarks))
	for i, b := range domainBookmarks {
		bookmarks[i] = toDTO(&b)
	}
	return bookmarks, nil
}

// GetByID returns the bookmark matching both id and owner.
func (s *Service) GetByID(ctx context.Context, ownerID, id int64) (*Bookmark, error) {
	if id <= 0 {
		s.log.Warn("get bookmark validation failed", zap.Int64("id", id), zap.String("reason", "invalid id"))
		return nil, pkgerrors.NewValidationError("id", "invalid bookmark id")
	}

	b, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		s.log.Warn("failed to get bookmark", zap.Int64("id", id), zap.Int64("user_id", ownerID), zap.Error(err))
		return nil, err
	}

	dto := toDTO(b)
	return &dto, nil
}

// Create persists a new bookmark owned by ownerID.
func (s *Service) Create(ctx context.Context, ownerID int64, in CreateBookmarkRequest) (*Bookmark, error) {
	s.log.Info("creating bookmark", zap.Int64("user_id", ownerID), zap.String("title", in.Title))

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	created, err := s.repo.Create(ctx, &domain.Bookmark{
		UserID:      ownerID,
		Title:       in.Title,
		Description: in.Description,
		Link:        in.Link,
	})
	if err != nil {
		s.log.Error("failed to create bookmark", zap.Int64("user_id", ownerID), zap.Error(err))
		return nil, err
	}

	dto := toDTO(created)
	return &dto, nil
}

// Update applies a partial edit to the bookmark matching id and owner.
func (s *Service) Update(ctx context.Context, ownerID, id int64, in UpdateBookmarkRequest) (*Bookmark, error) {
	s.log.Info("updating bookmark", zap.Int64("id", id), zap.Int64("user_id", ownerID))

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	updated, err := s.repo.Update(ctx, ownerID, &domain.Bookmark{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		Link:        in.Link,
	})
	if err != nil {
		s.log.Warn("failed to update bookmark", zap.Int64("id", id), zap.Int64("user_id", ownerID), zap.Error(err))
		return nil, err
	}

	dto := toDTO(updated)
	return &dto, nil
}

// Delete removes the bookmark matching id and owner and returns the
// deleted record. Ownership is enforced here like on every other
// mutation; a bookmark owned by someone else reads as not found.
func (s *Service) Delete(ctx context.Context, ownerID, id int64) (*Bookmark, error) {
	s.log.Info("deleting bookmark", zap.Int64("id", id), zap.Int64("user_id", ownerID))

	if id <= 0 {
		s.log.Warn("delete bookmark validation failed", zap.Int64("id", id), zap.String("reason", "invalid id"))
		return nil, pkgerrors.NewValidationError("id", "invalid bookmark id")
	}

	deleted, err := s.repo.Delete(ctx, ownerID, id)
	if err != nil {
		s.log.Warn("failed to delete bookmark", zap.Int64("id", id), zap.Int64("user_id", ownerID), zap.Error(err))
		return nil, err
	}

	dto := toDTO(deleted)
	return &dto, nil
}

func toDTO(b *domain.Bookmark) Bookmark {
	return Bookmark{
		ID:          b.ID,
		UserID:      b.UserID,
		Title:       b.Title,
		Description: b.Description,
		Link:        b.Link,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
