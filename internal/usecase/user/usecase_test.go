package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"

	domain "bookmark-service/internal/domain/user"
	pkgerrors "bookmark-service/pkg/errors"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, u *domain.User) (*domain.User, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func setupService(t *testing.T) (*Service, *MockRepository) {
	mockRepo := new(MockRepository)
	svc := New(mockRepo, zaptest.NewLogger(t))
	return svc, mockRepo
}

func TestGetMe_Success(t *testing.T) {
	svc, mockRepo := setupService(t)
	ctx := context.Background()

	mockRepo.On("GetByID", ctx, int64(1)).Return(&domain.User{
		ID:           1,
		Email:        "vlad@gmail.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		FirstName:    "Vladimir",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}, nil)

	profile, err := svc.GetMe(ctx, 1)

	assert.NoError(t, err)
	assert.NotNil(t, profile)
	assert.Equal(t, int64(1), profile.ID)
	assert.Equal(t, "vlad@gmail.com", profile.Email)
	assert.Equal(t, "Vladimir", profile.FirstName)
	mockRepo.AssertExpectations(t)
}

func TestGetMe_NotFound(t *testing.T) {
	svc, mockRepo := setupService(t)
	ctx := context.Background()

	mockRepo.On("GetByID", ctx, int64(99)).
		Return(nil, pkgerrors.NewNotFoundError("user", "user not found"))

	profile, err := svc.GetMe(ctx, 99)

	assert.Error(t, err)
	assert.Nil(t, profile)

	var notFoundErr *pkgerrors.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestUpdateProfile_Success(t *testing.T) {
	svc, mockRepo := setupService(t)
	ctx := context.Background()

	req := UpdateProfileRequest{FirstName: "Vladimir", Email: "vlad@codewithvlad.com"}

	mockRepo.On("Update", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.ID == 1 && u.FirstName == req.FirstName && u.Email == req.Email
	})).Return(&domain.User{
		ID:        1,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  "Unchanged",
	}, nil)

	profile, err := svc.UpdateProfile(ctx, 1, req)

	assert.NoError(t, err)
	assert.NotNil(t, profile)
	assert.Equal(t, req.Email, profile.Email)
	assert.Equal(t, req.FirstName, profile.FirstName)
	assert.Equal(t, "Unchanged", profile.LastName)
	mockRepo.AssertExpectations(t)
}

func TestUpdateProfile_InvalidEmail(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	profile, err := svc.UpdateProfile(ctx, 1, UpdateProfileRequest{Email: "not-an-email"})

	assert.Error(t, err)
	assert.Nil(t, profile)
	assert.Contains(t, err.Error(), "Email must be a valid email")

	var validationErr *pkgerrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestUpdateProfile_RepositoryError(t *testing.T) {
	svc, mockRepo := setupService(t)
	ctx := context.Background()

	mockRepo.On("Update", ctx, mock.Anything).Return(nil, errors.New("connection refused"))

	profile, err := svc.UpdateProfile(ctx, 1, UpdateProfileRequest{FirstName: "Vladimir"})

	assert.Error(t, err)
	assert.Nil(t, profile)
}
