package webhookRoutes

import (
	"github.com/gofiber/fiber/v2"

	webhookController "github.com/rajdwivedi/aeonaxy-server/controllers/webhooks"
)

// SetupWebhookRoutes sets up the Resend delivery event callbacks.
func SetupWebhookRoutes(app *fiber.App, webhooks *webhookController.Handler) {
	webhookGroup := app.Group("/webhooks/resend")

	webhookGroup.Post("/emailSent", webhooks.EmailSent)
	webhookGroup.Post("/emailDelivered", webhooks.EmailDelivered)
	webhookGroup.Post("/emailBounced", webhooks.EmailBounced)
	webhookGroup.Post("/emailOpened", webhooks.EmailOpened)
	webhookGroup.Post("/emailClicked", webhooks.EmailClicked)
}
