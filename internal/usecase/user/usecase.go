package user

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	domain "bookmark-service/internal/domain/user"
	pkgerrors "bookmark-service/pkg/errors"

	"github.com/go-playground/validator/v10"
)

// Service implements the business logic for profile operations.
type Service struct {
	repo     Repository
	log      *zap.Logger
	validate *validator.Validate
}

// New creates a new user Service with the provided repository and logger.
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
			case "email":
				messages = append(messages, fmt.Sprintf("%s must be a valid email", e.Field()))
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

// GetMe retrieves the authenticated user's own profile.
func (s *Service) GetMe(ctx context.Context, userID int64) (*Profile, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		s.log.Error("failed to get profile", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}
	return toProfile(u), nil
}

// UpdateProfile applies a partial edit to the authenticated user's profile.
func (s *Service) UpdateProfile(ctx context.Context, userID int64, in UpdateProfileRequest) (*Profile, error) {
	s.log.Info("updating profile", zap.Int64("user_id", userID))

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	updated, err := s.repo.Update(ctx, &domain.User{
		ID:        userID,
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
	})
	if err != nil {
		s.log.Error("failed to update profile", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}

	return toProfile(updated), nil
}

// toProfile maps a domain user onto the response view, dropping the hash.
func toProfile(u *domain.User) *Profile {
	return &Profile{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
