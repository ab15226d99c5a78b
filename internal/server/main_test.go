package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"skillswap/internal/config"
	"skillswap/internal/database"
	"skillswap/internal/repository"
	"skillswap/internal/service"
	"skillswap/internal/session"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestServer wires a Server against in-memory sqlite and miniredis with the
// full route tree registered. Prometheus middleware is left nil so parallel
// tests do not fight over collector registration.
func newTestServer(t *testing.T) (*Server, *fiber.App) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := &config.Config{
		Port:            "0",
		SessionTTLHours: 24,
		UploadDir:       t.TempDir(),
	}

	userRepo := repository.NewUserRepository(db)
	s := &Server{
		config:       cfg,
		db:           db,
		redis:        rdb,
		sessions:     session.NewStore(rdb, time.Duration(cfg.SessionTTLHours)*time.Hour),
		userRepo:     userRepo,
		profileRepo:  repository.NewProfileRepository(db),
		swapRepo:     repository.NewSwapRepository(db),
		feedbackRepo: repository.NewFeedbackRepository(db),
	}
	s.uploadService = service.NewUploadService(userRepo, cfg)

	app := fiber.New()
	s.SetupRoutes(app)
	return s, app
}

// swapCreatePath builds the swap creation route for a receiver and skill.
func swapCreatePath(receiverID uint, skill string) string {
	return fmt.Sprintf("/api/swaps/%d/%s", receiverID, url.PathEscape(skill))
}

// jsonRequest builds a request with a JSON body and optional session cookie.
func jsonRequest(t *testing.T, method, target string, body any, cookie string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: cookie})
	}
	return req
}

// decodeBody reads a JSON response body into a map.
func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()

	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

// registerAndLogin creates an account through the API and returns its session token.
func registerAndLogin(t *testing.T, app *fiber.App, name, email, password string) string {
	t.Helper()

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/register", map[string]string{
		"name": name, "email": email, "password": password,
	}, ""))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d", email, resp.StatusCode)
	}

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email": email, "password": password,
	}, ""))
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d", email, resp.StatusCode)
	}

	for _, c := range resp.Cookies() {
		if c.Name == SessionCookie {
			return c.Value
		}
	}
	t.Fatalf("login %s: no %s cookie set", email, SessionCookie)
	return ""
}
