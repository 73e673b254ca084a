package paymentValidator

import (
	"edumart/config"
	"edumart/middleware"
	paymentService "edumart/services/payment"

	"github.com/gofiber/fiber/v2"
)

// CallbackRequest mirrors the body the gateway posts on redirect callbacks.
type CallbackRequest struct {
	TxRef  string `json:"tx_ref"`
	Status string `json:"status"`
}

// WebhookRequest mirrors the server-to-server webhook body. Metadata is only
// present when the gateway echoes it back.
type WebhookRequest struct {
	TxRef    string                   `json:"tx_ref"`
	Status   string                   `json:"status"`
	Amount   float64                  `json:"amount"`
	Metadata *paymentService.Metadata `json:"metadata"`
}

// Initialize parses the checkout initialization body. Required-field checks
// stay in the gateway adapter so the missing-field list has a single source.
func Initialize() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(paymentService.InitializeRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedInitialize", reqData)
		return c.Next()
	}
}

// Callback validates the redirect callback body
func Callback() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CallbackRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.TxRef == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"tx_ref": "tx_ref is required!"})
		}

		c.Locals("validatedCallback", reqData)
		return c.Next()
	}
}

// Webhook verifies the delivery signature (when a secret is configured) and
// validates the webhook body.
func Webhook() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret := config.AppConfig.ChapaWebhookSecret; secret != "" {
			signature := c.Get("Chapa-Signature")
			if signature == "" {
				signature = c.Get("X-Chapa-Signature")
			}
			if !paymentService.VerifyWebhookSignature(c.Body(), signature, secret) {
				return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid webhook signature!", nil)
			}
		}

		reqData := new(WebhookRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.TxRef == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"tx_ref": "tx_ref is required!"})
		}

		c.Locals("validatedWebhook", reqData)
		return c.Next()
	}
}
