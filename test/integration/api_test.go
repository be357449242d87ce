package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"bookmark-service/internal/adapter/db/postgres"
	ginhandler "bookmark-service/internal/adapter/gin/handler"
	"bookmark-service/internal/adapter/gin/middleware"
	ginrouter "bookmark-service/internal/adapter/gin/router"
	"bookmark-service/internal/usecase/auth"
	"bookmark-service/internal/usecase/bookmark"
	"bookmark-service/internal/usecase/user"
	"bookmark-service/pkg/security"
	"bookmark-service/pkg/token"
)

// APIIntegrationTestSuite exercises the full HTTP surface against an
// in-memory database with real password hashing and token issuing.
type APIIntegrationTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (s *APIIntegrationTestSuite) SetupTest() {
	log := zaptest.NewLogger(s.T())

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	s.Require().NoError(err)
	s.Require().NoError(db.AutoMigrate(&postgres.UserSchema{}, &postgres.BookmarkSchema{}))

	userRepo := postgres.NewUserRepoPG(db, log)
	bookmarkRepo := postgres.NewBookmarkRepoPG(db, log)

	hasher := security.NewPasswordHasher(bcrypt.MinCost)
	tokens := token.NewManager("integration-test-secret", 15*time.Minute)

	authUC := auth.New(userRepo, hasher, tokens, log)
	userUC := user.New(userRepo, log)
	bookmarkUC := bookmark.New(bookmarkRepo, log)

	s.router = ginrouter.SetupRouter(
		ginhandler.NewAuthHandler(authUC, log),
		ginhandler.NewUserHandler(userUC, log),
		ginhandler.NewBookmarkHandler(bookmarkUC, log),
		tokens,
		nil,
		middleware.RateLimiterConfig{Enabled: false},
		log,
	)
}

// do performs a request against the router and decodes the JSON response.
func (s *APIIntegrationTestSuite) do(method, path, bearer string, body any) (*httptest.ResponseRecorder, map[string]any) {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var decoded map[string]any
	if w.Body.Len() > 0 && w.Body.Bytes()[0] == '{' {
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

// signup registers an account and returns nothing; signin fetches a token.
func (s *APIIntegrationTestSuite) signup(email, password string) {
	w, _ := s.do("POST", "/auth/signup", "", gin.H{"email": email, "password": password})
	s.Require().Equal(http.StatusCreated, w.Code)
}

func (s *APIIntegrationTestSuite) signin(email, password string) string {
	w, body := s.do("POST", "/auth/signin", "", gin.H{"email": email, "password": password})
	s.Require().Equal(http.StatusOK, w.Code)
	tok, _ := body["access_token"].(string)
	s.Require().NotEmpty(tok)
	return tok
}

func (s *APIIntegrationTestSuite) TestHealthCheck() {
	w, body := s.do("GET", "/health", "", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("healthy", body["status"])
}

func (s *APIIntegrationTestSuite) TestSignUpAndDuplicate() {
	w, body := s.do("POST", "/auth/signup", "", gin.H{"email": "vlad@gmail.com", "password": "123"})
	s.Equal(http.StatusCreated, w.Code)
	s.Equal("vlad@gmail.com", body["email"])
	s.NotContains(w.Body.String(), "hash")

	// Same email again is rejected
	w, _ = s.do("POST", "/auth/signup", "", gin.H{"email": "vlad@gmail.com", "password": "123"})
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *APIIntegrationTestSuite) TestSignUpValidation() {
	w, _ := s.do("POST", "/auth/signup", "", gin.H{"password": "123"})
	s.Equal(http.StatusBadRequest, w.Code)

	w, _ = s.do("POST", "/auth/signup", "", gin.H{"email": "vlad@gmail.com"})
	s.Equal(http.StatusBadRequest, w.Code)

	w, _ = s.do("POST", "/auth/signup", "", gin.H{"email": "not-an-email", "password": "123"})
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *APIIntegrationTestSuite) TestSignIn() {
	s.signup("vlad@gmail.com", "123")

	tok := s.signin("vlad@gmail.com", "123")
	s.NotEmpty(tok)

	// Wrong password and unknown email both come back 403
	w, _ := s.do("POST", "/auth/signin", "", gin.H{"email": "vlad@gmail.com", "password": "wrong"})
	s.Equal(http.StatusForbidden, w.Code)

	w, _ = s.do("POST", "/auth/signin", "", gin.H{"email": "nobody@gmail.com", "password": "123"})
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *APIIntegrationTestSuite) TestProtectedRoutesRequireToken() {
	for _, route := range []struct{ method, path string }{
		{"GET", "/users/me"},
		{"PATCH", "/users"},
		{"GET", "/bookmarks"},
		{"POST", "/bookmarks"},
		{"DELETE", "/bookmarks/1"},
	} {
		w, _ := s.do(route.method, route.path, "", nil)
		s.Equal(http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}
}

func (s *APIIntegrationTestSuite) TestGetAndEditProfile() {
	s.signup("vlad@gmail.com", "123")
	tok := s.signin("vlad@gmail.com", "123")

	w, body := s.do("GET", "/users/me", tok, nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("vlad@gmail.com", body["email"])
	s.NotContains(w.Body.String(), "hash")

	w, body = s.do("PATCH", "/users", tok, gin.H{
		"first_name": "Vladimir",
		"email":      "vlad@codewithvlad.com",
	})
	s.Equal(http.StatusOK, w.Code)
	s.Equal("Vladimir", body["first_name"])
	s.Equal("vlad@codewithvlad.com", body["email"])

	// The edit is visible on the next read
	w, body = s.do("GET", "/users/me", tok, nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("Vladimir", body["first_name"])
}

func (s *APIIntegrationTestSuite) TestEditProfileEmailTaken() {
	s.signup("vlad@gmail.com", "123")
	s.signup("taken@gmail.com", "456")
	tok := s.signin("vlad@gmail.com", "123")

	// Moving to an email another account owns is rejected
	w, _ := s.do("PATCH", "/users", tok, gin.H{"email": "taken@gmail.com"})
	s.Equal(http.StatusForbidden, w.Code)
	s.Contains(w.Body.String(), "already_exists")

	// The profile keeps its original email
	w, body := s.do("GET", "/users/me", tok, nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("vlad@gmail.com", body["email"])
}

func (s *APIIntegrationTestSuite) TestBookmarkCRUD() {
	s.signup("vlad@gmail.com", "123")
	tok := s.signin("vlad@gmail.com", "123")

	// Empty list before any creation
	w, _ := s.do("GET", "/bookmarks", tok, nil)
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq("[]", w.Body.String())

	// Create
	w, body := s.do("POST", "/bookmarks", tok, gin.H{
		"title": "First Bookmark",
		"link":  "https://www.youtube.com/watch?v=d6WC5n9G_sM",
	})
	s.Require().Equal(http.StatusCreated, w.Code)
	id := int64(body["id"].(float64))
	s.Require().Positive(id)

	// List and get
	w, _ = s.do("GET", "/bookmarks", tok, nil)
	s.Equal(http.StatusOK, w.Code)
	var list []map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &list))
	s.Len(list, 1)

	w, body = s.do("GET", "/bookmarks/"+itoa(id), tok, nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("First Bookmark", body["title"])

	// Edit
	w, body = s.do("PATCH", "/bookmarks/"+itoa(id), tok, gin.H{
		"title":       "Kubernetes Course - Full Beginners Tutorial",
		"description": "Learn to use Kubernetes",
	})
	s.Equal(http.StatusOK, w.Code)
	s.Equal("Kubernetes Course - Full Beginners Tutorial", body["title"])
	s.Equal("Learn to use Kubernetes", body["description"])
	// Link is untouched by a partial edit
	s.Equal("https://www.youtube.com/watch?v=d6WC5n9G_sM", body["link"])

	// Delete, then the bookmark is gone
	w, _ = s.do("DELETE", "/bookmarks/"+itoa(id), tok, nil)
	s.Equal(http.StatusOK, w.Code)

	w, _ = s.do("GET", "/bookmarks/"+itoa(id), tok, nil)
	s.Equal(http.StatusNotFound, w.Code)

	// Deleting it again is an error, never a silent success
	w, _ = s.do("DELETE", "/bookmarks/"+itoa(id), tok, nil)
	s.Equal(http.StatusNotFound, w.Code)

	w, _ = s.do("GET", "/bookmarks", tok, nil)
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq("[]", w.Body.String())
}

func (s *APIIntegrationTestSuite) TestBookmarkOwnershipIsolation() {
	s.signup("owner@gmail.com", "123")
	s.signup("intruder@gmail.com", "456")
	ownerTok := s.signin("owner@gmail.com", "123")
	intruderTok := s.signin("intruder@gmail.com", "456")

	w, body := s.do("POST", "/bookmarks", ownerTok, gin.H{
		"title": "Private",
		"link":  "https://example.com",
	})
	s.Require().Equal(http.StatusCreated, w.Code)
	id := int64(body["id"].(float64))

	// Another user cannot read, edit, or delete it
	w, _ = s.do("GET", "/bookmarks/"+itoa(id), intruderTok, nil)
	s.Equal(http.StatusNotFound, w.Code)

	w, _ = s.do("PATCH", "/bookmarks/"+itoa(id), intruderTok, gin.H{"title": "Hijack"})
	s.Equal(http.StatusNotFound, w.Code)

	w, _ = s.do("DELETE", "/bookmarks/"+itoa(id), intruderTok, nil)
	s.Equal(http.StatusNotFound, w.Code)

	// And their list stays empty
	w, _ = s.do("GET", "/bookmarks", intruderTok, nil)
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq("[]", w.Body.String())

	// The owner still sees it untouched
	w, body = s.do("GET", "/bookmarks/"+itoa(id), ownerTok, nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("Private", body["title"])
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func TestAPIIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(APIIntegrationTestSuite))
}
