package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mehuljariwala/admin-dashboard/internal/domain"
	applog "github.com/mehuljariwala/admin-dashboard/internal/log"
	"github.com/mehuljariwala/admin-dashboard/internal/repos"
	"github.com/mehuljariwala/admin-dashboard/internal/validate"
)

type PartyHandler struct {
	Parties *repos.PartyRepo
}

type partyRequest struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	RouteID       string `json:"route_id"`
	ContactNumber string `json:"contact_number"`
	Status        string `json:"status"`
}

func (h *PartyHandler) List(c *fiber.Ctx) error {
	routeID := c.Query("route")
	if routeID != "" {
		if _, ok := validate.ID(routeID); !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid route"})
		}
	}
	parties, err := h.Parties.List(routeID, c.Query("q"))
	if err != nil {
		applog.Error(c, "party.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load parties"})
	}
	// An empty result is data, not an error; the client renders its own
	// empty-state message from count=0.
	return c.JSON(fiber.Map{"parties": parties, "count": len(parties)})
}

func (h *PartyHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	p, err := h.Parties.Get(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "party not found"})
	}
	return c.JSON(p)
}

func (h *PartyHandler) Create(c *fiber.Ctx) error {
	var req partyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	p, errMsg := partyFromRequest(req)
	if errMsg != "" {
		applog.Security(c, "validation.fail", map[string]any{"entity": "party", "reason": errMsg})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": errMsg})
	}
	p.ID = uuid.NewString()
	if err := h.Parties.Create(p); err != nil {
		applog.Error(c, "party.create.fail", err, map[string]any{"name": p.Name})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "could not create party"})
	}
	applog.Audit(c, "party.create", map[string]any{"party_id": p.ID, "name": p.Name})
	return c.Status(fiber.StatusCreated).JSON(p)
}

func (h *PartyHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := h.Parties.Get(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "party not found"})
	}
	var req partyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	p, errMsg := partyFromRequest(req)
	if errMsg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": errMsg})
	}
	p.ID = id
	if err := h.Parties.Update(p); err != nil {
		applog.Error(c, "party.update.fail", err, map[string]any{"party_id": id})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "could not update party"})
	}
	applog.Audit(c, "party.update", map[string]any{"party_id": id})
	return c.JSON(p)
}

func (h *PartyHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.Parties.Delete(id); err != nil {
		applog.Error(c, "party.delete.fail", err, map[string]any{"party_id": id})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "could not delete party"})
	}
	applog.Audit(c, "party.delete", map[string]any{"party_id": id})
	return c.JSON(fiber.Map{"ok": true})
}

func partyFromRequest(req partyRequest) (domain.Party, string) {
	name, ok := validate.Name(req.Name)
	if !ok {
		return domain.Party{}, "invalid name"
	}
	routeID, ok := validate.ID(req.RouteID)
	if !ok {
		return domain.Party{}, "invalid route_id"
	}
	contact, ok := validate.Contact(req.ContactNumber)
	if !ok {
		return domain.Party{}, "invalid contact_number"
	}
	status, ok := validate.EnableStatus(req.Status)
	if !ok {
		return domain.Party{}, "invalid status"
	}
	return domain.Party{
		Name:          name,
		Address:       req.Address,
		RouteID:       routeID,
		ContactNumber: contact,
		Status:        status,
	}, ""
}
