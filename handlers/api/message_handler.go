package api

import (
	"errors"

	"nightsky.wedding/configs/configslog"
	"nightsky.wedding/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// MessageHandler serves the public message board append.
type MessageHandler struct {
	messageService services.IMessageService
}

func NewMessageHandler(messageService services.IMessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// Post (POST /api/messages) appends one note. Callers reach this right
// after an RSVP submission; the actor id is recorded but delegation is not
// re-checked here.
func (h *MessageHandler) Post(c *fiber.Ctx) error {
	var req services.PostMessageInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": "invalid payload"})
	}
	_, err := h.messageService.Post(c.UserContext(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMessageContentRequired),
			errors.Is(err, services.ErrMessageContentTooLong),
			errors.Is(err, services.ErrMessageSenderTooLong),
			errors.Is(err, services.ErrMessageUnknownGuest):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": err.Error()})
		default:
			configslog.Log.Error("message post failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"ok": false})
		}
	}
	return c.JSON(fiber.Map{"ok": true})
}
