package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"inkspot/internal/cache"
	"inkspot/internal/config"
	"inkspot/internal/database"
	"inkspot/internal/models"
	"inkspot/internal/repository"
	"inkspot/internal/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestServer builds a Server backed by an in-memory sqlite database.
// Redis stays nil so the cache layer falls through to the database.
func setupTestServer(t *testing.T) *Server {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(database.AllModels()...); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	s := &Server{
		config:           &config.Config{JWTSecret: "test_secret", Env: "test"},
		db:               db,
		userRepo:         userRepo,
		postRepo:         postRepo,
		profileRepo:      profileRepo,
		reviewRepo:       reviewRepo,
		notificationRepo: notificationRepo,
	}
	s.accountService = service.NewAccountService(userRepo)
	s.profileService = service.NewProfileService(db, userRepo, profileRepo)
	return s
}

// withTestRedis points the cache package at a miniredis instance for the
// duration of the test. The client is process-global, so tests using this
// helper must not call t.Parallel.
func withTestRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { cache.SetClient(nil) })
	return mr
}

// newTestApp mounts the full route table, including the JWT auth middleware.
func newTestApp(s *Server) *fiber.App {
	app := fiber.New()
	s.SetupRoutes(app)
	return app
}

func createTestUser(t *testing.T, s *Server, email, password string) *models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	user := &models.User{
		Name:     "Test User",
		Username: "user_" + strings.SplitN(email, "@", 2)[0],
		Email:    email,
		Password: string(hashed),
		UserType: models.UserTypeClient,
	}
	if err := s.db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func tokenFor(t *testing.T, s *Server, user *models.User) string {
	t.Helper()
	token, err := s.generateToken(user.ID, user.Username)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

// doJSON performs a JSON request against the app and decodes the response body.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any, token string) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	_ = resp.Body.Close()

	var decoded map[string]any
	if len(raw) > 0 {
		// List endpoints return arrays; wrap them for uniform access.
		if raw[0] == '[' {
			var list []any
			if err := json.Unmarshal(raw, &list); err != nil {
				t.Fatalf("unmarshal list body %q: %v", raw, err)
			}
			decoded = map[string]any{"list": list}
		} else if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("unmarshal body %q: %v", raw, err)
		}
	}
	return resp, decoded
}
