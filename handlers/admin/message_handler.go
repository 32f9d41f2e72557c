package admin

import (
	"errors"

	"nightsky.wedding/configs/configslog"
	"nightsky.wedding/models"
	"nightsky.wedding/repositories"
	"nightsky.wedding/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// MessageHandler serves message board moderation.
type MessageHandler struct {
	messageService services.IMessageService
}

func NewMessageHandler(messageService services.IMessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// List (GET /admin/messages) returns all messages, newest first.
func (h *MessageHandler) List(c *fiber.Ctx) error {
	messages, err := h.messageService.List(c.UserContext())
	if err != nil {
		configslog.Log.Error("admin message list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"messages": []models.Message{}})
	}
	return c.JSON(fiber.Map{"messages": messages})
}

type moderateRequest struct {
	Publish   *bool `json:"publish"`
	Anonymous *bool `json:"anonymous"`
}

// Moderate (PATCH /admin/messages/:id) updates the publish/anonymous flags.
func (h *MessageHandler) Moderate(c *fiber.Ctx) error {
	id := c.Params("id")
	var req moderateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": "invalid payload"})
	}
	err := h.messageService.Moderate(c.UserContext(), id, req.Publish, req.Anonymous)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"ok": false, "error": "message not found"})
		}
		configslog.Log.Error("admin message moderation failed", zap.String("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"ok": false})
	}
	return c.JSON(fiber.Map{"ok": true})
}
