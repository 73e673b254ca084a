package payment

import (
	"edumart/config"
	"edumart/models"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInitRequest() InitializeRequest {
	return InitializeRequest{
		UserID:      1,
		CourseID:    2,
		Amount:      500,
		Email:       "abel@example.com",
		FirstName:   "Abel",
		LastName:    "Tesfaye",
		PhoneNumber: "0911000001",
		TxRef:       "tx-gw-1",
		CallbackURL: "https://edumart.example.com/payment/callback",
		ReturnURL:   "https://edumart.example.com/courses/2",
	}
}

func TestInitializePaymentMissingFields(t *testing.T) {
	db := setupTestDB(t)
	cfg := &config.Config{ChapaApiURL: "http://chapa.invalid", ChapaApiKey: "test-key"}
	gw := NewGateway(cfg, db)

	_, err := gw.InitializePayment(InitializeRequest{Email: "abel@example.com"})

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.ElementsMatch(t, []string{"userId", "courseId", "amount", "txRef"}, vErr.Missing)

	var payments int64
	db.Model(&models.Payment{}).Count(&payments)
	assert.Zero(t, payments)
}

func TestInitializePaymentSuccess(t *testing.T) {
	var gotAuth string
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/transaction/initialize", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"success","message":"Hosted Link","data":{"checkout_url":"https://checkout.chapa.co/checkout/payment/abc123"}}`))
	}))
	defer server.Close()

	db := setupTestDB(t)
	cfg := &config.Config{ChapaApiURL: server.URL, ChapaApiKey: "test-key"}
	gw := NewGateway(cfg, db)

	checkoutURL, err := gw.InitializePayment(validInitRequest())
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.chapa.co/checkout/payment/abc123", checkoutURL)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "ETB", gotBody["currency"])
	assert.Equal(t, "tx-gw-1", gotBody["tx_ref"])

	var stored models.Payment
	require.NoError(t, db.Where("tx_ref = ?", "tx-gw-1").First(&stored).Error)
	assert.Equal(t, models.PaymentStatusPending, stored.Status)
	assert.Equal(t, "Chapa", stored.PaymentMethod)
	assert.Equal(t, 500.0, stored.Amount)
	assert.Contains(t, string(stored.GatewayResponse), "checkout_url")

	var payments int64
	db.Model(&models.Payment{}).Count(&payments)
	assert.EqualValues(t, 1, payments)
}

func TestInitializePaymentGatewayRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"status":"failed","message":"Invalid currency"}`))
	}))
	defer server.Close()

	db := setupTestDB(t)
	cfg := &config.Config{ChapaApiURL: server.URL, ChapaApiKey: "test-key"}
	gw := NewGateway(cfg, db)

	_, err := gw.InitializePayment(validInitRequest())

	var gErr *GatewayError
	require.True(t, errors.As(err, &gErr))
	assert.Equal(t, "Invalid currency", gErr.Message)

	// A rejected initialization must leave no pending row behind
	var payments int64
	db.Model(&models.Payment{}).Count(&payments)
	assert.Zero(t, payments)
}

func TestInitializePaymentTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	db := setupTestDB(t)
	cfg := &config.Config{ChapaApiURL: server.URL, ChapaApiKey: "test-key"}
	gw := NewGateway(cfg, db)

	_, err := gw.InitializePayment(validInitRequest())

	var gErr *GatewayError
	require.True(t, errors.As(err, &gErr))

	var payments int64
	db.Model(&models.Payment{}).Count(&payments)
	assert.Zero(t, payments)
}
