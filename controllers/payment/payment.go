package paymentController

import (
	"edumart/database"
	"edumart/middleware"
	"edumart/models"
	paymentService "edumart/services/payment"
	"edumart/utils"
	paymentValidator "edumart/validators/payment"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

var (
	gateway *paymentService.Gateway
	engine  *paymentService.Engine
)

// Setup wires the gateway adapter and settlement engine constructed in main.
func Setup(gw *paymentService.Gateway, eng *paymentService.Engine) {
	gateway = gw
	engine = eng
}

// InitializePayment opens a checkout session with the gateway
func InitializePayment(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedInitialize").(*paymentService.InitializeRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	checkoutURL, err := gateway.InitializePayment(*reqData)
	if err != nil {
		var vErr *paymentService.ValidationError
		var gErr *paymentService.GatewayError
		switch {
		case errors.As(err, &vErr):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing required fields", fiber.Map{
				"missingFields": vErr.Missing,
			})
		case errors.As(err, &gErr):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Payment initialization failed", fiber.Map{
				"details": gErr.Message,
			})
		default:
			log.Printf("Error initializing payment: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Server error", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment initialized!", fiber.Map{
		"checkoutUrl": checkoutURL,
	})
}

// HandlePaymentCallback reconciles the synchronous redirect callback
func HandlePaymentCallback(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCallback").(*paymentValidator.CallbackRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	settled, err := engine.SettleCallback(reqData.TxRef, reqData.Status)
	if err != nil {
		return settlementErrorResponse(c, err)
	}

	return settlementResponse(c, settled)
}

// HandlePaymentWebhook reconciles the provider-initiated webhook delivery
func HandlePaymentWebhook(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedWebhook").(*paymentValidator.WebhookRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	settled, err := engine.SettleWebhook(reqData.TxRef, reqData.Status, reqData.Amount, reqData.Metadata)
	if err != nil {
		return settlementErrorResponse(c, err)
	}

	return settlementResponse(c, settled)
}

func settlementResponse(c *fiber.Ctx, settled *models.Payment) error {
	if settled.Status == models.PaymentStatusFailed {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Payment failed.", nil)
	}

	notifyEnrollment(settled)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment processed successfully.", nil)
}

func settlementErrorResponse(c *fiber.Ctx, err error) error {
	var vErr *paymentService.ValidationError
	switch {
	case errors.Is(err, paymentService.ErrPaymentNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Payment not found.", nil)
	case errors.Is(err, paymentService.ErrCourseNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found.", nil)
	case errors.Is(err, paymentService.ErrAlreadySettled):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Payment already processed!", nil)
	case errors.Is(err, paymentService.ErrAlreadyEnrolled):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this course!", nil)
	case errors.As(err, &vErr):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing userId or courseId in payment.", fiber.Map{
			"missingFields": vErr.Missing,
		})
	default:
		log.Printf("Error handling payment event: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Server error", nil)
	}
}

// notifyEnrollment sends the enrollment confirmation for a settled payment.
// Mail failures only log; settlement has already committed.
func notifyEnrollment(settled *models.Payment) {
	db := database.Database.Db

	var user models.User
	if err := db.First(&user, settled.UserID).Error; err != nil || user.Email == "" {
		return
	}
	var course models.Course
	if err := db.First(&course, settled.CourseID).Error; err != nil {
		return
	}

	utils.SendEnrollmentEmail(user.Email, user.Name, course.Title)
}

// GetAllPayments lists payments newest-first
func GetAllPayments(c *fiber.Ctx) error {
	var payments []models.Payment
	if err := database.Database.Db.Order("created_at DESC").Find(&payments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error fetching payments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched!", payments)
}

// DeletePayment removes a payment by ID
func DeletePayment(c *fiber.Ctx) error {
	id := c.Params("id")

	var pay models.Payment
	if err := database.Database.Db.First(&pay, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Payment not found", nil)
	}

	if err := database.Database.Db.Delete(&pay).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error deleting payment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment deleted successfully", nil)
}
