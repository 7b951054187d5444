package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"golang.org/x/crypto/bcrypt"

	"github.com/mehuljariwala/admin-dashboard/internal/http/handlers"
	"github.com/mehuljariwala/admin-dashboard/internal/repos"
	"github.com/mehuljariwala/admin-dashboard/internal/services"
)

func TestSeededPasswordIsHashed(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	var hash string
	if err := db.Get(&hash, `SELECT password_hash FROM sub_admins WHERE username='admin'`); err != nil {
		t.Fatalf("select hash: %v", err)
	}
	if strings.Contains(hash, "admin123") {
		t.Fatal("hash contains plaintext password")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Fatalf("unexpected hash format: %s", hash)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("admin123")); err != nil {
		t.Fatalf("seed hash does not validate known password: %v", err)
	}
}

func TestLoginAndSession(t *testing.T) {
	app, _ := newTestApp(t)

	// bad password -> 401, no session
	resp, err := app.Test(jsonReq("POST", "/login", `{"username":"admin","password":"wrongpass"}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad creds, got %d", resp.StatusCode)
	}

	sid := login(t, app, "admin", "admin123")

	// session endpoint reflects the operator
	respSess, err := app.Test(authedReq("GET", "/session", "", sid))
	if err != nil {
		t.Fatal(err)
	}
	if respSess.StatusCode != http.StatusOK {
		t.Fatalf("session check failed: %d", respSess.StatusCode)
	}
	var op struct {
		Username string `json:"username"`
		Role     string `json:"role"`
	}
	decodeBody(t, respSess, &op)
	if op.Username != "admin" || op.Role != "ADMIN" {
		t.Fatalf("unexpected session operator: %+v", op)
	}
}

func TestLogoutKillsSession(t *testing.T) {
	app, _ := newTestApp(t)
	sid := login(t, app, "admin", "admin123")

	if _, err := app.Test(authedReq("POST", "/logout", "", sid)); err != nil {
		t.Fatal(err)
	}

	// A remembered cookie no longer opens the door.
	resp, err := app.Test(authedReq("GET", "/api/parties/", "", sid))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", resp.StatusCode)
	}
}

func TestLoginThrottle(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	authSvc := &services.AuthService{Operators: repos.NewOperatorRepo(db)}
	authH := &handlers.AuthHandler{Auth: authSvc}

	app := fiber.New()
	app.Post("/login", limiter.New(limiter.Config{Max: 2, Expiration: time.Minute}), authH.Login)

	for i := 0; i < 2; i++ {
		resp, err := app.Test(jsonReq("POST", "/login", `{"username":"admin","password":"wrongpass"}`))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("attempt %d: expected 401, got %d", i+1, resp.StatusCode)
		}
	}
	resp, err := app.Test(httptest.NewRequest("POST", "/login", strings.NewReader(`{"username":"admin","password":"wrongpass"}`)))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after throttle, got %d", resp.StatusCode)
	}
}
