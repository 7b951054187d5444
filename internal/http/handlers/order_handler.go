package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mehuljariwala/admin-dashboard/internal/domain"
	applog "github.com/mehuljariwala/admin-dashboard/internal/log"
	"github.com/mehuljariwala/admin-dashboard/internal/repos"
	"github.com/mehuljariwala/admin-dashboard/internal/validate"
)

type OrderHandler struct {
	Orders  *repos.OrderRepo
	Parties *repos.PartyRepo
}

func (h *OrderHandler) List(c *fiber.Ctx) error {
	partyID := c.Query("party")
	if partyID != "" {
		if _, ok := validate.ID(partyID); !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid party"})
		}
	}
	from, to := c.Query("from"), c.Query("to")
	for _, dt := range []string{from, to} {
		if dt != "" {
			if _, ok := validate.Date(dt); !ok {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date filter"})
			}
		}
	}
	orders, err := h.Orders.List(partyID, from, to, c.QueryInt("limit", 100))
	if err != nil {
		applog.Error(c, "order.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load orders"})
	}
	return c.JSON(fiber.Map{"orders": orders, "count": len(orders)})
}

func (h *OrderHandler) Get(c *fiber.Ctx) error {
	o, items, err := h.Orders.Get(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "order not found"})
	}
	p, _ := h.Parties.Get(o.PartyID)
	return c.JSON(fiber.Map{"order": o, "party": p, "items": items})
}

func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if !domain.ValidOrderStatus(req.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid status"})
	}
	if _, _, err := h.Orders.Get(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "order not found"})
	}
	if err := h.Orders.UpdateStatus(id, req.Status); err != nil {
		applog.Error(c, "order.status.fail", err, map[string]any{"order_id": id})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "could not update status"})
	}
	applog.Audit(c, "order.status", map[string]any{"order_id": id, "status": req.Status})
	return c.JSON(fiber.Map{"ok": true})
}

func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.Orders.Delete(id); err != nil {
		applog.Error(c, "order.delete.fail", err, map[string]any{"order_id": id})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "could not delete order"})
	}
	applog.Audit(c, "order.delete", map[string]any{"order_id": id})
	return c.JSON(fiber.Map{"ok": true})
}

// Print renders the order sheet as printable HTML, grouped by category with
// requested -> delivery per line and a grand total.
func (h *OrderHandler) Print(c *fiber.Ctx) error {
	o, items, err := h.Orders.Get(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "order not found"})
	}
	p, err := h.Parties.Get(o.PartyID)
	if err != nil {
		applog.Error(c, "order.print.fail", err, map[string]any{"order_id": o.ID})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load party"})
	}

	type section struct {
		Name     string
		Items    []repos.OrderItemRow
		ReqTotal int
		DelTotal int
	}
	var sections []section
	grandReq, grandDel := 0, 0
	for _, it := range items {
		if len(sections) == 0 || sections[len(sections)-1].Name != it.CategoryName {
			sections = append(sections, section{Name: it.CategoryName})
		}
		s := &sections[len(sections)-1]
		s.Items = append(s.Items, it)
		s.ReqTotal += it.Quantity
		s.DelTotal += it.DeliveryQty
		grandReq += it.Quantity
		grandDel += it.DeliveryQty
	}

	return c.Render("order_sheet", fiber.Map{
		"Order":    o,
		"Party":    p,
		"Sections": sections,
		"GrandReq": grandReq,
		"GrandDel": grandDel,
	})
}
