package handlers

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	applog "github.com/mehuljariwala/admin-dashboard/internal/log"
	"github.com/mehuljariwala/admin-dashboard/internal/services"
	"github.com/mehuljariwala/admin-dashboard/internal/validate"
)

type DraftHandler struct {
	Drafts  *services.DraftService
	Catalog *services.CatalogService
	Order   *services.OrderService
}

// coerceQty turns whatever the client sent (number, quoted string, garbage)
// into a non-negative quantity; anything unparseable reads as zero.
func coerceQty(raw json.RawMessage) int {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	return validate.Qty(s)
}

func (h *DraftHandler) draft(c *fiber.Ctx) (*services.Draft, error) {
	d, err := h.Drafts.Get(c.Params("id"))
	if err != nil {
		return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "draft not found"})
	}
	return d, nil
}

// Open starts a new draft for a party.
func (h *DraftHandler) Open(c *fiber.Ctx) error {
	var req struct {
		PartyID string `json:"party_id"`
		Date    string `json:"date"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if _, ok := validate.ID(req.PartyID); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid party_id"})
	}
	if req.Date != "" {
		if _, ok := validate.Date(req.Date); !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date"})
		}
	}

	d, err := h.Drafts.Open(req.PartyID, req.Date)
	if err != nil {
		if errors.Is(err, services.ErrPartyDisabled) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "party is disabled"})
		}
		applog.Error(c, "draft.open.fail", err, map[string]any{"party_id": req.PartyID})
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "party not found"})
	}
	applog.Audit(c, "draft.open", map[string]any{"draft_id": d.ID, "party_id": d.PartyID})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": d.ID, "party_id": d.PartyID, "date": d.Date})
}

// View reports the draft's quantity mapping.
func (h *DraftHandler) View(c *fiber.Ctx) error {
	d, err := h.draft(c)
	if d == nil {
		return err
	}
	return c.JSON(fiber.Map{"id": d.ID, "party_id": d.PartyID, "date": d.Date, "lines": d.Lines()})
}

// SetItem applies one stepper action to a color's requested quantity:
// op "increment", "decrement", or "set" (with qty).
func (h *DraftHandler) SetItem(c *fiber.Ctx) error {
	d, err := h.draft(c)
	if d == nil {
		return err
	}
	// Params strings are only valid during the handler; the draft keeps
	// the color id as a map key past this request, so copy it.
	colorID, ok := validate.ID(strings.Clone(c.Params("colorID")))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid color id"})
	}

	var req struct {
		Op  string          `json:"op"`
		Qty json.RawMessage `json:"qty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	switch req.Op {
	case "increment":
		d.Increment(colorID)
	case "decrement":
		d.Decrement(colorID)
	case "set", "":
		d.SetRequested(colorID, coerceQty(req.Qty))
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid op"})
	}
	return c.JSON(fiber.Map{"color_id": colorID, "line": d.Line(colorID)})
}

// SetDelivery edits the delivery quantity independently of requested.
func (h *DraftHandler) SetDelivery(c *fiber.Ctx) error {
	d, err := h.draft(c)
	if d == nil {
		return err
	}
	colorID, ok := validate.ID(strings.Clone(c.Params("colorID")))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid color id"})
	}
	var req struct {
		Qty json.RawMessage `json:"qty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	d.SetDelivery(colorID, coerceQty(req.Qty))
	return c.JSON(fiber.Map{"color_id": colorID, "line": d.Line(colorID)})
}

// Clear wipes every quantity in the draft, whatever tab the client shows.
func (h *DraftHandler) Clear(c *fiber.Ctx) error {
	d, err := h.draft(c)
	if d == nil {
		return err
	}
	d.Clear()
	applog.Info(c, "draft.clear", map[string]any{"draft_id": d.ID})
	return c.JSON(fiber.Map{"ok": true})
}

// Summary renders the per-category reconciliation tables.
func (h *DraftHandler) Summary(c *fiber.Ctx) error {
	d, err := h.draft(c)
	if d == nil {
		return err
	}
	tables, reqTotal, delTotal, serr := h.Drafts.Summary(d, h.Catalog, c.Query("all") == "true")
	if serr != nil {
		applog.Error(c, "draft.summary.fail", serr, map[string]any{"draft_id": d.ID})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not build summary"})
	}
	return c.JSON(fiber.Map{
		"tables":          tables,
		"requested_total": reqTotal,
		"delivery_total":  delTotal,
		"difference":      delTotal - reqTotal,
	})
}

// Submit persists the draft. action "bill" (default) finalizes to Pending;
// action "hold" saves the order on Hold.
func (h *DraftHandler) Submit(c *fiber.Ctx) error {
	d, err := h.draft(c)
	if d == nil {
		return err
	}
	var req struct {
		Action string `json:"action"`
	}
	_ = c.BodyParser(&req) // empty body means bill
	finalize := true
	switch req.Action {
	case "", "bill":
	case "hold":
		finalize = false
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid action"})
	}

	o, serr := h.Order.Submit(d, finalize)
	if serr != nil {
		if errors.Is(serr, services.ErrEmptyOrder) {
			applog.Security(c, "draft.submit.empty", map[string]any{"draft_id": d.ID})
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "add at least one quantity before submitting"})
		}
		if errors.Is(serr, services.ErrUnknownColor) {
			applog.Security(c, "draft.submit.badcolor", map[string]any{"draft_id": d.ID})
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "order references an unknown color"})
		}
		// Keep the draft; the operator retries without re-entering anything.
		applog.Error(c, "draft.submit.fail", serr, map[string]any{"draft_id": d.ID})
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "could not save order, draft preserved"})
	}
	h.Drafts.Drop(d.ID)
	applog.Audit(c, "order.place", map[string]any{"order_id": o.ID, "party_id": o.PartyID, "status": o.Status})
	return c.Status(fiber.StatusCreated).JSON(o)
}

// Cancel discards the draft.
func (h *DraftHandler) Cancel(c *fiber.Ctx) error {
	d, err := h.draft(c)
	if d == nil {
		return err
	}
	h.Drafts.Drop(d.ID)
	applog.Info(c, "draft.cancel", map[string]any{"draft_id": d.ID})
	return c.JSON(fiber.Map{"ok": true})
}
