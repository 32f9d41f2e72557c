package admin

import (
	"errors"
	"strconv"

	"nightsky.wedding/configs/configslog"
	"nightsky.wedding/models"
	"nightsky.wedding/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GuestHandler serves guest directory administration and the delegation
// graph operations.
type GuestHandler struct {
	guestService services.IGuestService
}

func NewGuestHandler(guestService services.IGuestService) *GuestHandler {
	return &GuestHandler{guestService: guestService}
}

// List (GET /admin/guests?q=&limit=) lists guests, optionally filtered by a
// name query.
func (h *GuestHandler) List(c *fiber.Ctx) error {
	query := c.Query("q")
	limit, _ := strconv.Atoi(c.Query("limit"))
	guests, err := h.guestService.ListGuests(c.UserContext(), query, limit)
	if err != nil {
		configslog.Log.Error("admin guest list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"guests": []models.Guest{}})
	}
	return c.JSON(fiber.Map{"guests": guests})
}

// Create (POST /admin/guests) creates a single guest plus its self edge.
func (h *GuestHandler) Create(c *fiber.Ctx) error {
	var req services.NewGuestInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": "invalid payload"})
	}
	guest, err := h.guestService.CreateGuest(c.UserContext(), req)
	if err != nil {
		if errors.Is(err, services.ErrGuestNameRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": err.Error()})
		}
		configslog.Log.Error("admin guest create failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"ok": false})
	}
	return c.JSON(fiber.Map{"ok": true, "id": guest.ID})
}

type batchRequest struct {
	Guests []services.NewGuestInput `json:"guests"`
}

// CreateBatch (POST /admin/guests/batch) creates the whole batch atomically,
// including self edges and parent grants across the batch.
func (h *GuestHandler) CreateBatch(c *fiber.Ctx) error {
	var req batchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": "invalid payload"})
	}
	created, err := h.guestService.CreateGuestsBatch(c.UserContext(), req.Guests)
	if err != nil {
		if errors.Is(err, services.ErrNoValidGuests) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": err.Error()})
		}
		configslog.Log.Error("admin guest batch failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"ok": false})
	}
	return c.JSON(fiber.Map{"ok": true, "created": created})
}

// GetPermissions (GET /admin/guests/:id/permissions) returns the parent's
// allowed ids, always including the parent itself.
func (h *GuestHandler) GetPermissions(c *fiber.Ctx) error {
	parentID := c.Params("id")
	children, err := h.guestService.GetPermissions(c.UserContext(), parentID)
	if err != nil {
		configslog.Log.Error("admin get permissions failed", zap.String("parent", parentID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"ok": false})
	}
	return c.JSON(fiber.Map{"ok": true, "parentId": parentID, "children": children})
}

type setPermissionsRequest struct {
	Children []string `json:"children"`
}

// SetPermissions (PUT /admin/guests/:id/permissions) replaces the parent's
// outgoing edges with exactly the requested set.
func (h *GuestHandler) SetPermissions(c *fiber.Ctx) error {
	parentID := c.Params("id")
	var req setPermissionsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": "invalid payload"})
	}
	children, err := h.guestService.SetPermissions(c.UserContext(), parentID, req.Children)
	if err != nil {
		if errors.Is(err, services.ErrGuestNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"ok": false, "error": "parent not found"})
		}
		configslog.Log.Error("admin set permissions failed", zap.String("parent", parentID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"ok": false})
	}
	return c.JSON(fiber.Map{"ok": true, "parentId": parentID, "children": children})
}
