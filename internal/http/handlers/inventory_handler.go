package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "github.com/mehuljariwala/admin-dashboard/internal/log"
	"github.com/mehuljariwala/admin-dashboard/internal/services"
	"github.com/mehuljariwala/admin-dashboard/internal/validate"
)

type InventoryHandler struct {
	Inv *services.InventoryService
}

// Levels lists every color with its stock and LOW/OK/OVER threshold status.
func (h *InventoryHandler) Levels(c *fiber.Ctx) error {
	levels, err := h.Inv.StockLevels()
	if err != nil {
		applog.Error(c, "inventory.levels.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load stock levels"})
	}
	return c.JSON(fiber.Map{"levels": levels, "count": len(levels)})
}

func (h *InventoryHandler) Transactions(c *fiber.Ctx) error {
	txns, err := h.Inv.Inv.ListTransactions(c.QueryInt("limit", 100))
	if err != nil {
		applog.Error(c, "inventory.txns.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load transactions"})
	}
	return c.JSON(fiber.Map{"transactions": txns, "count": len(txns)})
}

// Adjust records a manual IN/OUT stock adjustment; the ledger row and the
// stock delta land together or not at all.
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var req struct {
		ColorID  string `json:"color_id"`
		Type     string `json:"transaction_type"`
		Quantity int    `json:"quantity"`
		Note     string `json:"note"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	colorID, ok := validate.ID(req.ColorID)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid color_id"})
	}

	t, err := h.Inv.Record(colorID, req.Type, req.Quantity, req.Note)
	if err != nil {
		if errors.Is(err, services.ErrBadTxnType) || errors.Is(err, services.ErrBadTxnQty) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		applog.Error(c, "inventory.adjust.fail", err, map[string]any{"color_id": colorID})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "could not record adjustment"})
	}
	applog.Audit(c, "inventory.adjust", map[string]any{
		"txn_id": t.ID, "color_id": colorID, "type": t.Type, "qty": t.Quantity,
	})
	return c.Status(fiber.StatusCreated).JSON(t)
}
