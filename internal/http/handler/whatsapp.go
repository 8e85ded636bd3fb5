package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Hashimp6/broperty/internal/service"
	"github.com/Hashimp6/broperty/internal/whatsapp"
)

// VerifyWebhook godoc
// @Summary WhatsApp subscription handshake
// @Tags whatsapp
// @Produce plain
// @Param hub.mode query string true "subscribe"
// @Param hub.verify_token query string true "shared verify token"
// @Param hub.challenge query string true "value to echo"
// @Success 200 {string} string
// @Failure 403 {object} errorPayload
// @Router /whatsapp/webhook [get]
func VerifyWebhook(svc service.ChatbotService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		challenge, err := svc.Verify(c.Query("hub.mode"), c.Query("hub.verify_token"), c.Query("hub.challenge"))
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusOK).SendString(challenge)
	}
}

// ReceiveWebhook godoc
// @Summary Inbound WhatsApp notifications
// @Description Answers text and button messages with listings from the search core.
// @Tags whatsapp
// @Accept json
// @Produce plain
// @Param body body whatsapp.Webhook true "notification"
// @Success 200 {string} string "EVENT_RECEIVED"
// @Failure 404 {object} errorPayload
// @Router /whatsapp/webhook [post]
func ReceiveWebhook(svc service.ChatbotService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var w whatsapp.Webhook
		if err := c.BodyParser(&w); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if err := svc.HandleWebhook(c.UserContext(), w); err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusOK).SendString("EVENT_RECEIVED")
	}
}
