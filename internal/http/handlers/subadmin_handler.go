package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mehuljariwala/admin-dashboard/internal/domain"
	applog "github.com/mehuljariwala/admin-dashboard/internal/log"
	"github.com/mehuljariwala/admin-dashboard/internal/repos"
	"github.com/mehuljariwala/admin-dashboard/internal/validate"
)

type SubAdminHandler struct {
	Operators *repos.OperatorRepo
}

func (h *SubAdminHandler) List(c *fiber.Ctx) error {
	ops, err := h.Operators.List()
	if err != nil {
		applog.Error(c, "subadmin.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load sub-admins"})
	}
	return c.JSON(fiber.Map{"sub_admins": ops, "count": len(ops)})
}

func (h *SubAdminHandler) Create(c *fiber.Ctx) error {
	var req struct {
		Username    string             `json:"username"`
		Name        string             `json:"name"`
		Password    string             `json:"password"`
		Permissions domain.Permissions `json:"permissions"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	username, ok := validate.Username(req.Username)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid username"})
	}
	name, ok := validate.Name(req.Name)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid name"})
	}
	if !validate.Password(req.Password) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "password must be 6-64 characters"})
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not hash password"})
	}

	o := domain.Operator{
		ID:          uuid.NewString(),
		Username:    username,
		Name:        name,
		Hash:        string(hash),
		Role:        "SUB",
		Permissions: req.Permissions,
	}
	if err := h.Operators.Create(o); err != nil {
		applog.Error(c, "subadmin.create.fail", err, map[string]any{"username": username})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "could not create sub-admin"})
	}
	applog.Audit(c, "subadmin.create", map[string]any{"sub_admin_id": o.ID, "username": username})
	o.Hash = ""
	return c.Status(fiber.StatusCreated).JSON(o)
}

func (h *SubAdminHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var req struct {
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	name, ok := validate.Name(req.Name)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid name"})
	}
	// Validate (and hash) everything before the first write, so a bad
	// password cannot leave a half-applied update behind.
	var hash string
	if req.Password != "" {
		if !validate.Password(req.Password) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "password must be 6-64 characters"})
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not hash password"})
		}
		hash = string(hashed)
	}
	if err := h.Operators.Update(domain.Operator{ID: id, Name: name}); err != nil {
		applog.Error(c, "subadmin.update.fail", err, map[string]any{"sub_admin_id": id})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "could not update sub-admin"})
	}
	if hash != "" {
		if err := h.Operators.UpdatePassword(id, hash); err != nil {
			applog.Error(c, "subadmin.password.fail", err, map[string]any{"sub_admin_id": id})
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "could not update password"})
		}
	}
	applog.Audit(c, "subadmin.update", map[string]any{"sub_admin_id": id})
	return c.JSON(fiber.Map{"ok": true})
}

// UpdatePermissions replaces the whole capability set. Unknown keys in the
// body are simply dropped by decoding into the fixed struct.
func (h *SubAdminHandler) UpdatePermissions(c *fiber.Ctx) error {
	id := c.Params("id")
	var req domain.Permissions
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if err := h.Operators.UpdatePermissions(id, req); err != nil {
		applog.Error(c, "subadmin.permissions.fail", err, map[string]any{"sub_admin_id": id})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "could not update permissions"})
	}
	applog.Audit(c, "subadmin.permissions", map[string]any{"sub_admin_id": id})
	return c.JSON(req)
}

func (h *SubAdminHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.Operators.Delete(id); err != nil {
		applog.Error(c, "subadmin.delete.fail", err, map[string]any{"sub_admin_id": id})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "could not delete sub-admin"})
	}
	applog.Audit(c, "subadmin.delete", map[string]any{"sub_admin_id": id})
	return c.JSON(fiber.Map{"ok": true})
}
