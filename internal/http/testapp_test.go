package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"github.com/mehuljariwala/admin-dashboard/internal/domain"
	"github.com/mehuljariwala/admin-dashboard/internal/http/handlers"
	"github.com/mehuljariwala/admin-dashboard/internal/repos"
	"github.com/mehuljariwala/admin-dashboard/internal/services"
)

// newTestApp wires the full route tree against a seeded in-memory database,
// minus the rate limiter and security headers.
func newTestApp(t *testing.T) (*fiber.App, *sqlx.DB) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	authSvc := &services.AuthService{Operators: repos.NewOperatorRepo(db)}
	authH := &handlers.AuthHandler{Auth: authSvc}

	app := fiber.New()
	app.Post("/login", authH.Login)
	app.Post("/logout", authH.Logout)
	app.Get("/session", authH.Session)

	deps := handlers.NewDeps(db, authSvc)
	api := app.Group("/api", handlers.RequireOperator(authSvc))

	parties := api.Group("/parties", handlers.RequireCap(domain.CapParty))
	parties.Get("/", deps.PartyHandler.List)
	parties.Post("/", deps.PartyHandler.Create)
	parties.Get("/:id", deps.PartyHandler.Get)
	parties.Put("/:id", deps.PartyHandler.Update)
	parties.Delete("/:id", deps.PartyHandler.Delete)

	colors := api.Group("/colors", handlers.RequireCap(domain.CapColor))
	colors.Get("/", deps.ColorHandler.List)
	colors.Get("/picker", deps.ColorHandler.Picker)

	drafts := api.Group("/drafts", handlers.RequireCap(domain.CapOrders))
	drafts.Post("/", deps.DraftHandler.Open)
	drafts.Get("/:id", deps.DraftHandler.View)
	drafts.Put("/:id/items/:colorID", deps.DraftHandler.SetItem)
	drafts.Put("/:id/delivery/:colorID", deps.DraftHandler.SetDelivery)
	drafts.Post("/:id/clear", deps.DraftHandler.Clear)
	drafts.Get("/:id/summary", deps.DraftHandler.Summary)
	drafts.Post("/:id/submit", deps.DraftHandler.Submit)
	drafts.Delete("/:id", deps.DraftHandler.Cancel)

	orders := api.Group("/orders", handlers.RequireCap(domain.CapOrders))
	orders.Get("/", deps.OrderHandler.List)
	orders.Get("/:id", deps.OrderHandler.Get)
	orders.Put("/:id/status", deps.OrderHandler.UpdateStatus)

	inventory := api.Group("/inventory", handlers.RequireCap(domain.CapInventory))
	inventory.Get("/levels", deps.InventoryHandler.Levels)
	inventory.Post("/transactions", deps.InventoryHandler.Adjust)

	subAdmins := api.Group("/sub-admins", handlers.RequireAdmin())
	subAdmins.Get("/", deps.SubAdminHandler.List)
	subAdmins.Post("/", deps.SubAdminHandler.Create)
	subAdmins.Put("/:id", deps.SubAdminHandler.Update)
	subAdmins.Put("/:id/permissions", deps.SubAdminHandler.UpdatePermissions)

	return app, db
}

func jsonReq(method, target, body string) *http.Request {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func sidCookie(resp *http.Response) string {
	for _, c := range resp.Cookies() {
		if c.Name == "sid" {
			return c.Value
		}
	}
	return ""
}

// login authenticates and returns the session cookie value.
func login(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()
	resp, err := app.Test(jsonReq("POST", "/login", `{"username":"`+username+`","password":"`+password+`"}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login as %s failed: %d", username, resp.StatusCode)
	}
	sid := sidCookie(resp)
	if sid == "" {
		t.Fatal("no sid cookie on login")
	}
	return sid
}

func authedReq(method, target, body, sid string) *http.Request {
	req := jsonReq(method, target, body)
	req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	return req
}

func decodeBody(t *testing.T, resp *http.Response, into any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
		t.Fatalf("decode body: %v", err)
	}
}
