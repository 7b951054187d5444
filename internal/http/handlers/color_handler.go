package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mehuljariwala/admin-dashboard/internal/domain"
	applog "github.com/mehuljariwala/admin-dashboard/internal/log"
	"github.com/mehuljariwala/admin-dashboard/internal/repos"
	"github.com/mehuljariwala/admin-dashboard/internal/services"
	"github.com/mehuljariwala/admin-dashboard/internal/validate"
)

type ColorHandler struct {
	Colors  *repos.ColorRepo
	Catalog *services.CatalogService
}

type colorRequest struct {
	Name          string `json:"name"`
	Code          string `json:"code"`
	ColorCode     string `json:"color_code"`
	CategoryID    string `json:"category_id"`
	SubcategoryID string `json:"subcategory_id"`
	Stock         int    `json:"stock"`
	MinStock      *int   `json:"min_stock"`
	MaxStock      *int   `json:"max_stock"`
	DisplayOrder  *int   `json:"display_order"`
	Status        string `json:"status"`
}

func (h *ColorHandler) Categories(c *fiber.Ctx) error {
	cats, err := h.Colors.Categories()
	if err != nil {
		applog.Error(c, "color.categories.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load categories"})
	}
	return c.JSON(fiber.Map{"categories": cats, "count": len(cats)})
}

func (h *ColorHandler) Subcategories(c *fiber.Ctx) error {
	subs, err := h.Colors.Subcategories()
	if err != nil {
		applog.Error(c, "color.subcategories.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load subcategories"})
	}
	return c.JSON(fiber.Map{"subcategories": subs, "count": len(subs)})
}

func (h *ColorHandler) CreateCategory(c *fiber.Ctx) error {
	var req struct {
		Name         string `json:"name"`
		DisplayOrder *int   `json:"display_order"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	name, ok := validate.Name(req.Name)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid name"})
	}
	cat := domain.ColorCategory{ID: uuid.NewString(), Name: name, DisplayOrder: req.DisplayOrder}
	if err := h.Colors.CreateCategory(cat); err != nil {
		applog.Error(c, "color.category.create.fail", err, map[string]any{"name": name})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "could not create category"})
	}
	applog.Audit(c, "color.category.create", map[string]any{"category_id": cat.ID})
	return c.Status(fiber.StatusCreated).JSON(cat)
}

func (h *ColorHandler) CreateSubcategory(c *fiber.Ctx) error {
	var req struct {
		CategoryID   string `json:"category_id"`
		Name         string `json:"name"`
		DisplayOrder *int   `json:"display_order"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	name, ok := validate.Name(req.Name)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid name"})
	}
	catID, ok := validate.ID(req.CategoryID)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid category_id"})
	}
	sub := domain.ColorSubcategory{ID: uuid.NewString(), CategoryID: catID, Name: name, DisplayOrder: req.DisplayOrder}
	if err := h.Colors.CreateSubcategory(sub); err != nil {
		applog.Error(c, "color.subcategory.create.fail", err, map[string]any{"name": name})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "could not create subcategory"})
	}
	applog.Audit(c, "color.subcategory.create", map[string]any{"subcategory_id": sub.ID})
	return c.Status(fiber.StatusCreated).JSON(sub)
}

func (h *ColorHandler) List(c *fiber.Ctx) error {
	colors, err := h.Colors.List(c.Query("enabled") == "true")
	if err != nil {
		applog.Error(c, "color.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load colors"})
	}
	return c.JSON(fiber.Map{"colors": colors, "count": len(colors)})
}

// Picker returns the category -> subcategory -> color hierarchy that drives
// the order-entry grid.
func (h *ColorHandler) Picker(c *fiber.Ctx) error {
	tabs, err := h.Catalog.Picker()
	if err != nil {
		applog.Error(c, "color.picker.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load catalog"})
	}
	return c.JSON(fiber.Map{"categories": tabs})
}

func (h *ColorHandler) Create(c *fiber.Ctx) error {
	var req colorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	col, errMsg := colorFromRequest(req)
	if errMsg != "" {
		applog.Security(c, "validation.fail", map[string]any{"entity": "color", "reason": errMsg})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": errMsg})
	}
	col.ID = uuid.NewString()
	if err := h.Colors.Create(col); err != nil {
		applog.Error(c, "color.create.fail", err, map[string]any{"name": col.Name})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "could not create color"})
	}
	applog.Audit(c, "color.create", map[string]any{"color_id": col.ID, "name": col.Name})
	return c.Status(fiber.StatusCreated).JSON(col)
}

func (h *ColorHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := h.Colors.Get(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "color not found"})
	}
	var req colorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	col, errMsg := colorFromRequest(req)
	if errMsg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": errMsg})
	}
	col.ID = id
	if err := h.Colors.Update(col); err != nil {
		applog.Error(c, "color.update.fail", err, map[string]any{"color_id": id})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "could not update color"})
	}
	applog.Audit(c, "color.update", map[string]any{"color_id": id})
	return c.JSON(col)
}

func (h *ColorHandler) UpdateStock(c *fiber.Ctx) error {
	id := c.Params("id")
	var req struct {
		Stock int `json:"stock"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if err := h.Colors.UpdateStock(id, req.Stock); err != nil {
		applog.Error(c, "color.stock.fail", err, map[string]any{"color_id": id})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "could not update stock"})
	}
	applog.Audit(c, "color.stock", map[string]any{"color_id": id, "stock": req.Stock})
	return c.JSON(fiber.Map{"ok": true})
}

func (h *ColorHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.Colors.Delete(id); err != nil {
		applog.Error(c, "color.delete.fail", err, map[string]any{"color_id": id})
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "color is in use or could not be deleted"})
	}
	applog.Audit(c, "color.delete", map[string]any{"color_id": id})
	return c.JSON(fiber.Map{"ok": true})
}

func colorFromRequest(req colorRequest) (domain.Color, string) {
	name, ok := validate.Name(req.Name)
	if !ok {
		return domain.Color{}, "invalid name"
	}
	catID, ok := validate.ID(req.CategoryID)
	if !ok {
		return domain.Color{}, "invalid category_id"
	}
	subID, ok := validate.ID(req.SubcategoryID)
	if !ok {
		return domain.Color{}, "invalid subcategory_id"
	}
	hex := req.ColorCode
	if hex == "" {
		hex = "#000000"
	}
	if _, ok := validate.HexColor(hex); !ok {
		return domain.Color{}, "invalid color_code"
	}
	status, ok := validate.EnableStatus(req.Status)
	if !ok {
		return domain.Color{}, "invalid status"
	}
	minStock, maxStock := 0, 100
	if req.MinStock != nil {
		minStock = *req.MinStock
	}
	if req.MaxStock != nil {
		maxStock = *req.MaxStock
	}
	return domain.Color{
		Name:          name,
		Code:          req.Code,
		ColorCode:     hex,
		CategoryID:    catID,
		SubcategoryID: subID,
		Stock:         req.Stock,
		MinStock:      minStock,
		MaxStock:      maxStock,
		DisplayOrder:  req.DisplayOrder,
		Status:        status,
	}, ""
}
