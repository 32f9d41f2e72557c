package admin

import (
	"errors"

	"nightsky.wedding/configs/configslog"
	"nightsky.wedding/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// MaintenanceHandler serves the gated destructive operations.
type MaintenanceHandler struct {
	maintenanceService services.IMaintenanceService
}

func NewMaintenanceHandler(maintenanceService services.IMaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintenanceService: maintenanceService}
}

type wipeRequest struct {
	Confirm string `json:"confirm"`
}

// Wipe (POST /admin/wipe) truncates every table. Requires the environment
// flag to be on AND the exact confirmation phrase.
func (h *MaintenanceHandler) Wipe(c *fiber.Ctx) error {
	var req wipeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": "invalid payload"})
	}
	err := h.maintenanceService.WipeAll(c.UserContext(), req.Confirm)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDestructiveDisabled):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"ok": false, "error": err.Error()})
		case errors.Is(err, services.ErrConfirmationMismatch):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": err.Error()})
		default:
			configslog.Log.Error("wipe failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"ok": false})
		}
	}
	return c.JSON(fiber.Map{"ok": true})
}
