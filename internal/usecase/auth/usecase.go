package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	domain "bookmark-service/internal/domain/user"
	"bookmark-service/internal/usecase/user"
	pkgerrors "bookmark-service/pkg/errors"

	"github.com/go-playground/validator/v10"
)

// Service implements signup and signin.
type Service struct {
	users    user.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
	log      *zap.Logger
	validate *validator.Validate
}

// New creates a new auth Service.
func New(users user.Repository, hasher PasswordHasher, tokens TokenIssuer, log *zap.Logger) *Service {
	return &Service{
		users:    users,
		hasher:   hasher,
		tokens:   tokens,
		log:      log,
		validate: validator.New(),
	}
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
			default:
				messages = append(messages, fmt.Sprintf("%s is invalid", e.Field()))
			}
		}
		return pkgerrors.NewValidationError("", strings.Join(messages, ", "))
	}
	return err
}

// SignUp hashes the password and creates the account. A duplicate email
// surfaces as the repository's AlreadyExistsError; everything else
// propagates unchanged.
func (s *Service) SignUp(ctx context.Context, in SignUpRequest) (*SignUpResponse, error) {
	s.log.Info("signing up user", zap.String("email", in.Email))

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		var validationErr *pkgerrors.ValidationError
		if errors.As(err, &validationErr) {
			s.log.Warn("password rejected", zap.Error(err))
			return nil, err
		}
		s.log.Error("failed to hash password", zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to hash password", err)
	}

	created, err := s.users.Create(ctx, &domain.User{
		Email:        in.Email,
		PasswordHash: hash,
	})
	if err != nil {
		s.log.Warn("signup failed", zap.String("email", in.Email), zap.Error(err))
		return nil, err
	}

	return &SignUpResponse{
		ID:        created.ID,
		Email:     created.Email,
		CreatedAt: created.CreatedAt,
		UpdatedAt: created.UpdatedAt,
	}, nil
}

// SignIn verifies credentials and issues an access token. An unknown
// email and a wrong password return the identical error so the two
// cases cannot be told apart from the response.
func (s *Service) SignIn(ctx context.Context, in SignInRequest) (*SignInResponse, error) {
	s.log.Info("signing in user", zap.String("email", in.Email))

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	u, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		s.log.Error("failed to look up user", zap.String("email", in.Email), zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to look up user", err)
	}
	if u == nil || !s.hasher.Verify(u.PasswordHash, in.Password) {
		s.log.Warn("invalid credentials", zap.String("email", in.Email))
		return nil, pkgerrors.NewInvalidCredentialsError()
	}

	token, err := s.tokens.Issue(u.ID, u.Email)
	if err != nil {
		s.log.Error("failed to issue token", zap.Int64("user_id", u.ID), zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to issue token", err)
	}

	return &SignInResponse{AccessToken: token}, nil
}
