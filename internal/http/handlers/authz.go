package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mehuljariwala/admin-dashboard/internal/domain"
	applog "github.com/mehuljariwala/admin-dashboard/internal/log"
	"github.com/mehuljariwala/admin-dashboard/internal/services"
)

// RequireOperator rejects requests without a live server-side session. The
// cookie alone proves nothing; the sessions table is the authority.
func RequireOperator(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "login required"})
		}
		o, err := auth.Current(sid)
		if err != nil || o == nil {
			applog.Security(c, "access.denied.session", map[string]any{"sid": sid})
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "login required"})
		}
		c.Locals("operator", o)
		c.Locals("operator_id", o.ID)
		return c.Next()
	}
}

// RequireCap enforces one of the closed capability flags. The master admin
// passes every check.
func RequireCap(cap string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		o, _ := c.Locals("operator").(*domain.Operator)
		if o == nil || !o.Can(cap) {
			applog.Security(c, "access.denied.cap", map[string]any{"cap": cap})
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "permission denied"})
		}
		return c.Next()
	}
}

// RequireAdmin restricts a route to the master admin (sub-admin management).
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		o, _ := c.Locals("operator").(*domain.Operator)
		if o == nil || o.Role != "ADMIN" {
			applog.Security(c, "access.denied.admin", nil)
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "permission denied"})
		}
		return c.Next()
	}
}
