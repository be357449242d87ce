package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	authdomain "bookmark-service/internal/domain/auth"
	"bookmark-service/internal/adapter/gin/middleware"
	usecase "bookmark-service/internal/usecase/user"
	pkgerrors "bookmark-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"
)

// MockUserUsecase is a mock implementation of user.Usecase
type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) GetMe(ctx context.Context, userID int64) (*usecase.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.Profile), args.Error(1)
}

func (m *MockUserUsecase) UpdateProfile(ctx context.Context, userID int64, in usecase.UpdateProfileRequest) (*usecase.Profile, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.Profile), args.Error(1)
}

// asUser installs a fake identity the way the auth guard would.
func asUser(userID int64, email string) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetIdentity(c, authdomain.Identity{UserID: userID, Email: email})
		c.Next()
	}
}

func setupUserTest(t *testing.T) (*gin.Engine, *UserHandler, *MockUserUsecase) {
	gin.SetMode(gin.TestMode)
	mockUsecase := new(MockUserUsecase)
	logger := zaptest.NewLogger(t)
	handler := NewUserHandler(mockUsecase, logger)

	r := gin.New()
	return r, handler, mockUsecase
}

func TestGetMe(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, handler, mockUsecase := setupUserTest(t)
		r.GET("/users/me", asUser(1, "vlad@gmail.com"), handler.GetMe)

		expectedProfile := &usecase.Profile{
			ID:        1,
			Email:     "vlad@gmail.com",
			FirstName: "Vladimir",
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		mockUsecase.On("GetMe", mock.Anything, int64(1)).Return(expectedProfile, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/users/me", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp UserResponse
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.Equal(t, expectedProfile.ID, resp.ID)
		assert.Equal(t, expectedProfile.Email, resp.Email)
		assert.Equal(t, expectedProfile.FirstName, resp.FirstName)
		assert.NotContains(t, w.Body.String(), "hash")
	})

	t.Run("No Identity", func(t *testing.T) {
		r, handler, _ := setupUserTest(t)
		r.GET("/users/me", handler.GetMe)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/users/me", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Not Found", func(t *testing.T) {
		r, handler, mockUsecase := setupUserTest(t)
		r.GET("/users/me", asUser(7, "gone@gmail.com"), handler.GetMe)

		mockUsecase.On("GetMe", mock.Anything, int64(7)).
			Return(nil, pkgerrors.NewNotFoundError("user", "user not found"))

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/users/me", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, handler, mockUsecase := setupUserTest(t)
		r.PATCH("/users", asUser(1, "vlad@gmail.com"), handler.UpdateProfile)

		reqBody := UpdateProfileRequest{
			FirstName: "Vladimir",
			Email:     "vlad@codewithvlad.com",
		}
		jsonBody, _ := json.Marshal(reqBody)

		expectedProfile := &usecase.Profile{
			ID:        1,
			Email:     reqBody.Email,
			FirstName: reqBody.FirstName,
		}

		mockUsecase.On("UpdateProfile", mock.Anything, int64(1), mock.MatchedBy(func(in usecase.UpdateProfileRequest) bool {
			return in.FirstName == reqBody.FirstName && in.Email == reqBody.Email
		})).Return(expectedProfile, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("PATCH", "/users", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp UserResponse
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.Equal(t, expectedProfile.Email, resp.Email)
		assert.Equal(t, expectedProfile.FirstName, resp.FirstName)
	})

	t.Run("Invalid Email", func(t *testing.T) {
		r, handler, _ := setupUserTest(t)
		r.PATCH("/users", asUser(1, "vlad@gmail.com"), handler.UpdateProfile)

		jsonBody, _ := json.Marshal(UpdateProfileRequest{Email: "not-an-email"})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("PATCH", "/users", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("No Identity", func(t *testing.T) {
		r, handler, _ := setupUserTest(t)
		r.PATCH("/users", handler.UpdateProfile)

		jsonBody, _ := json.Marshal(UpdateProfileRequest{FirstName: "Vladimir"})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("PATCH", "/users", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Email Collision", func(t *testing.T) {
		r, handler, mockUsecase := setupUserTest(t)
		r.PATCH("/users", asUser(1, "vlad@gmail.com"), handler.UpdateProfile)

		jsonBody, _ := json.Marshal(UpdateProfileRequest{Email: "taken@gmail.com"})

		mockUsecase.On("UpdateProfile", mock.Anything, int64(1), mock.Anything).
			Return(nil, pkgerrors.NewAlreadyExistsError("email", "email already taken"))

		w := httptest.NewRecorder()
		req := httptest.NewRequest("PATCH", "/users", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
