package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	applog "github.com/mehuljariwala/admin-dashboard/internal/log"
	"github.com/mehuljariwala/admin-dashboard/internal/services"
	"github.com/mehuljariwala/admin-dashboard/internal/validate"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false, // enable true behind TLS
		})
	}
	return sid
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	username, ok := validate.Username(req.Username)
	if !ok || !validate.Password(req.Password) {
		applog.Security(c, "auth.login.fail", map[string]any{"username": req.Username, "reason": "bad_format"})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid username or password"})
	}

	o, err := h.Auth.Login(sid, username, req.Password)
	if err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"username": username})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid username or password"})
	}

	applog.Audit(c, "auth.login.success", map[string]any{"username": username})
	return c.JSON(o)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	_ = h.Auth.Logout(sid)
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	applog.Audit(c, "auth.logout", map[string]any{"sid": sid})
	return c.JSON(fiber.Map{"ok": true})
}

// Session reports the logged-in operator with their permission flags, for
// the client to decide which screens to show.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	sid := c.Cookies("sid")
	if sid == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "login required"})
	}
	o, err := h.Auth.Current(sid)
	if err != nil || o == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "login required"})
	}
	return c.JSON(o)
}
