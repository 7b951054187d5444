package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"github.com/mehuljariwala/admin-dashboard/internal/config"
	"github.com/mehuljariwala/admin-dashboard/internal/domain"
	"github.com/mehuljariwala/admin-dashboard/internal/http/handlers"
	applog "github.com/mehuljariwala/admin-dashboard/internal/log"
	"github.com/mehuljariwala/admin-dashboard/internal/repos"
	"github.com/mehuljariwala/admin-dashboard/internal/services"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	// Auth wiring
	opRepo := repos.NewOperatorRepo(db)
	authSvc := &services.AuthService{Operators: opRepo}
	authH := &handlers.AuthHandler{Auth: authSvc}

	// Templates (printable order sheet) & app
	engine := html.New(cfg.TemplateDir, ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			// Avoid leaking internals
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "something went wrong, please try again",
			})
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
	}))

	// ---------- Auth ----------
	app.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many attempts, try again later"})
		},
	}), authH.Login)
	app.Post("/logout", authH.Logout)
	app.Get("/session", authH.Session)

	// ---------- API ----------
	deps := handlers.NewDeps(db, authSvc)

	api := app.Group("/api", handlers.RequireOperator(authSvc))

	parties := api.Group("/parties", handlers.RequireCap(domain.CapParty))
	parties.Get("/", deps.PartyHandler.List)
	parties.Post("/", deps.PartyHandler.Create)
	parties.Get("/:id", deps.PartyHandler.Get)
	parties.Put("/:id", deps.PartyHandler.Update)
	parties.Delete("/:id", deps.PartyHandler.Delete)

	routes := api.Group("/routes", handlers.RequireCap(domain.CapParty))
	routes.Get("/", deps.RouteHandler.List)
	routes.Post("/", deps.RouteHandler.Create)
	routes.Put("/:id", deps.RouteHandler.Update)
	routes.Delete("/:id", deps.RouteHandler.Delete)

	colors := api.Group("/colors", handlers.RequireCap(domain.CapColor))
	colors.Get("/", deps.ColorHandler.List)
	colors.Post("/", deps.ColorHandler.Create)
	colors.Get("/picker", deps.ColorHandler.Picker)
	colors.Get("/categories", deps.ColorHandler.Categories)
	colors.Post("/categories", deps.ColorHandler.CreateCategory)
	colors.Get("/subcategories", deps.ColorHandler.Subcategories)
	colors.Post("/subcategories", deps.ColorHandler.CreateSubcategory)
	colors.Put("/:id", deps.ColorHandler.Update)
	colors.Put("/:id/stock", deps.ColorHandler.UpdateStock)
	colors.Delete("/:id", deps.ColorHandler.Delete)

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
	orders.Get("/:id/print", deps.OrderHandler.Print)
	orders.Put("/:id/status", deps.OrderHandler.UpdateStatus)
	orders.Delete("/:id", deps.OrderHandler.Delete)

	inventory := api.Group("/inventory", handlers.RequireCap(domain.CapInventory))
	inventory.Get("/levels", deps.InventoryHandler.Levels)
	inventory.Get("/transactions", deps.InventoryHandler.Transactions)
	inventory.Post("/transactions", deps.InventoryHandler.Adjust)

	subAdmins := api.Group("/sub-admins", handlers.RequireAdmin())
	subAdmins.Get("/", deps.SubAdminHandler.List)
	subAdmins.Post("/", deps.SubAdminHandler.Create)
	subAdmins.Put("/:id", deps.SubAdminHandler.Update)
	subAdmins.Put("/:id/permissions", deps.SubAdminHandler.UpdatePermissions)
	subAdmins.Delete("/:id", deps.SubAdminHandler.Delete)

	reports := api.Group("/reports", handlers.RequireCap(domain.CapReport))
	reports.Get("/sales", deps.ReportHandler.Sales)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	})

	log.Fatal(app.Listen(cfg.Addr))
}
