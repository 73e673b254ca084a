package paymentRoutes

import (
	paymentController "edumart/controllers/payment"
	"edumart/middleware"
	"edumart/models"
	paymentValidator "edumart/validators/payment"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentRoutes(app *fiber.App) {
	paymentGroup := app.Group("/payment")

	paymentGroup.Post("/initialize", paymentValidator.Initialize(), paymentController.InitializePayment)
	paymentGroup.Post("/callback", paymentValidator.Callback(), paymentController.HandlePaymentCallback)
	paymentGroup.Post("/webhook", paymentValidator.Webhook(), paymentController.HandlePaymentWebhook)

	paymentGroup.Get("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), paymentController.GetAllPayments)
	paymentGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), paymentController.DeletePayment)
}
