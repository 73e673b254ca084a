package paymentController

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"edumart/config"
	"edumart/database"
	"edumart/models"
	paymentService "edumart/services/payment"
	paymentValidator "edumart/validators/payment"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupPaymentApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Creator{},
		&models.Category{},
		&models.Course{},
		&models.Enrollment{},
		&models.Payment{},
		&models.Earning{},
	))

	database.Database = database.DbInstance{Db: db}
	config.AppConfig = &config.Config{}

	clock := func() time.Time {
		return time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	}
	Setup(
		paymentService.NewGateway(&config.Config{ChapaApiURL: "http://chapa.invalid"}, db),
		paymentService.NewEngine(db, clock, paymentService.DuplicateEnrollmentAllow),
	)

	app := fiber.New()
	app.Post("/payment/initialize", paymentValidator.Initialize(), InitializePayment)
	app.Post("/payment/callback", paymentValidator.Callback(), HandlePaymentCallback)
	app.Post("/payment/webhook", paymentValidator.Webhook(), HandlePaymentWebhook)

	return app, db
}

func seedPendingPayment(t *testing.T, db *gorm.DB, txRef string) models.Payment {
	t.Helper()

	// Buyer has no email so settlement skips the notification mail
	user := models.User{Name: "Abel Tesfaye", PhoneNumber: "0911000001", Role: models.RoleStudent, Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	owner := models.User{Name: "Hana Girma", PhoneNumber: "0911000002", Role: models.RoleCreator, Password: "x"}
	require.NoError(t, db.Create(&owner).Error)
	creator := models.Creator{UserID: owner.ID}
	require.NoError(t, db.Create(&creator).Error)

	category := models.Category{Name: "Programming"}
	require.NoError(t, db.Create(&category).Error)
	course := models.Course{Title: "Backend Basics", Price: 500, CategoryID: category.ID, CreatorID: creator.ID}
	require.NoError(t, db.Create(&course).Error)

	pay := models.Payment{
		UserID: user.ID, CourseID: course.ID, Amount: 500,
		PaymentMethod: "Chapa", Status: models.PaymentStatusPending, TxRef: txRef,
	}
	require.NoError(t, db.Create(&pay).Error)
	return pay
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}, headers map[string]string) *http.Response {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeEnvelope(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	var envelope map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope
}

func TestHandlePaymentCallbackSuccess(t *testing.T) {
	app, db := setupPaymentApp(t)
	seedPendingPayment(t, db, "tx-cb-1")

	resp := postJSON(t, app, "/payment/callback", fiber.Map{"tx_ref": "tx-cb-1", "status": "success"}, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	assert.Equal(t, "Payment processed successfully.", envelope["message"])

	var enrollments int64
	db.Model(&models.Enrollment{}).Count(&enrollments)
	assert.EqualValues(t, 1, enrollments)
}

func TestHandlePaymentCallbackFailure(t *testing.T) {
	app, db := setupPaymentApp(t)
	seedPendingPayment(t, db, "tx-cb-2")

	resp := postJSON(t, app, "/payment/callback", fiber.Map{"tx_ref": "tx-cb-2", "status": "failed"}, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	assert.Equal(t, "Payment failed.", envelope["message"])
}

func TestHandlePaymentCallbackUnknownTxRef(t *testing.T) {
	app, _ := setupPaymentApp(t)

	resp := postJSON(t, app, "/payment/callback", fiber.Map{"tx_ref": "tx-none", "status": "success"}, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	assert.Equal(t, "Payment not found.", envelope["message"])
}

func TestHandlePaymentCallbackMissingTxRef(t *testing.T) {
	app, _ := setupPaymentApp(t)

	resp := postJSON(t, app, "/payment/callback", fiber.Map{"status": "success"}, nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestHandlePaymentWebhookDuplicateDelivery(t *testing.T) {
	app, db := setupPaymentApp(t)
	seedPendingPayment(t, db, "tx-wh-1")

	body := fiber.Map{"tx_ref": "tx-wh-1", "status": "success", "amount": 500}

	resp := postJSON(t, app, "/payment/webhook", body, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = postJSON(t, app, "/payment/webhook", body, nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	assert.Equal(t, "Payment already processed!", envelope["message"])

	var enrollments int64
	db.Model(&models.Enrollment{}).Count(&enrollments)
	assert.EqualValues(t, 1, enrollments)
}

func TestHandlePaymentWebhookSignature(t *testing.T) {
	app, db := setupPaymentApp(t)
	seedPendingPayment(t, db, "tx-wh-2")

	config.AppConfig.ChapaWebhookSecret = "webhook-secret"
	defer func() { config.AppConfig.ChapaWebhookSecret = "" }()

	raw, err := json.Marshal(fiber.Map{"tx_ref": "tx-wh-2", "status": "success", "amount": 500})
	require.NoError(t, err)

	mac := hmac.New(sha256.New, []byte("webhook-secret"))
	mac.Write(raw)
	signature := hex.EncodeToString(mac.Sum(nil))

	// Missing and wrong signatures are rejected before any settlement runs
	req := httptest.NewRequest(http.MethodPost, "/payment/webhook", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest(http.MethodPost, "/payment/webhook", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Chapa-Signature", "deadbeef")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var stored models.Payment
	require.NoError(t, db.Where("tx_ref = ?", "tx-wh-2").First(&stored).Error)
	assert.Equal(t, models.PaymentStatusPending, stored.Status)

	req = httptest.NewRequest(http.MethodPost, "/payment/webhook", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Chapa-Signature", signature)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestInitializePaymentMissingFieldsResponse(t *testing.T) {
	app, db := setupPaymentApp(t)

	resp := postJSON(t, app, "/payment/initialize", fiber.Map{"email": "abel@example.com"}, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	assert.Equal(t, "Missing required fields", envelope["message"])

	data, ok := envelope["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, data["missingFields"], "userId")

	var payments int64
	db.Model(&models.Payment{}).Count(&payments)
	assert.Zero(t, payments)
}
