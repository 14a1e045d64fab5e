package webhookController

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/rajdwivedi/aeonaxy-server/middleware"
)

// Handler receives delivery event callbacks from the Resend email service.
// Events are acknowledged and logged; nothing is persisted.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) logEvent(c *fiber.Ctx, event string) error {
	log.Printf("Resend webhook %s: %s", event, string(c.Body()))
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Webhook received!", nil)
}

func (h *Handler) EmailSent(c *fiber.Ctx) error {
	return h.logEvent(c, "email.sent")
}

func (h *Handler) EmailDelivered(c *fiber.Ctx) error {
	return h.logEvent(c, "email.delivered")
}

func (h *Handler) EmailBounced(c *fiber.Ctx) error {
	return h.logEvent(c, "email.bounced")
}

func (h *Handler) EmailOpened(c *fiber.Ctx) error {
	return h.logEvent(c, "email.opened")
}

func (h *Handler) EmailClicked(c *fiber.Ctx) error {
	return h.logEvent(c, "email.clicked")
}
