package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mehuljariwala/admin-dashboard/internal/domain"
	applog "github.com/mehuljariwala/admin-dashboard/internal/log"
	"github.com/mehuljariwala/admin-dashboard/internal/repos"
	"github.com/mehuljariwala/admin-dashboard/internal/validate"
)

type RouteHandler struct {
	Routes *repos.RouteRepo
}

type routeRequest struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

func (h *RouteHandler) List(c *fiber.Ctx) error {
	routes, err := h.Routes.List()
	if err != nil {
		applog.Error(c, "route.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load routes"})
	}
	return c.JSON(fiber.Map{"routes": routes, "count": len(routes)})
}

func (h *RouteHandler) Create(c *fiber.Ctx) error {
	var req routeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	name, ok := validate.Name(req.Name)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid name"})
	}
	status, ok := validate.EnableStatus(req.Status)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid status"})
	}
	rt := domain.Route{ID: uuid.NewString(), Name: name, Status: status}
	if err := h.Routes.Create(rt); err != nil {
		applog.Error(c, "route.create.fail", err, map[string]any{"name": name})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "could not create route"})
	}
	applog.Audit(c, "route.create", map[string]any{"route_id": rt.ID, "name": name})
	return c.Status(fiber.StatusCreated).JSON(rt)
}

func (h *RouteHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var req routeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	name, ok := validate.Name(req.Name)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid name"})
	}
	status, ok := validate.EnableStatus(req.Status)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid status"})
	}
	rt := domain.Route{ID: id, Name: name, Status: status}
	if err := h.Routes.Update(rt); err != nil {
		applog.Error(c, "route.update.fail", err, map[string]any{"route_id": id})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "could not update route"})
	}
	applog.Audit(c, "route.update", map[string]any{"route_id": id})
	return c.JSON(rt)
}

// Delete refuses routes that still have parties attached (FK RESTRICT).
func (h *RouteHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.Routes.Delete(id); err != nil {
		applog.Error(c, "route.delete.fail", err, map[string]any{"route_id": id})
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "route is in use or could not be deleted"})
	}
	applog.Audit(c, "route.delete", map[string]any{"route_id": id})
	return c.JSON(fiber.Map{"ok": true})
}
