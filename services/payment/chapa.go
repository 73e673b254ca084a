package payment

import (
	"edumart/config"
	"edumart/models"
	"encoding/json"
	"time"

	"github.com/go-resty/resty/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const gatewayName = "Chapa"

// Gateway talks to the Chapa transaction API and records pending payments.
type Gateway struct {
	cfg    *config.Config
	db     *gorm.DB
	client *resty.Client
}

func NewGateway(cfg *config.Config, db *gorm.DB) *Gateway {
	client := resty.New().
		SetBaseURL(cfg.ChapaApiURL).
		SetTimeout(15 * time.Second).
		SetAuthToken(cfg.ChapaApiKey)

	return &Gateway{cfg: cfg, db: db, client: client}
}

// InitializeRequest carries everything Chapa needs to open a checkout session.
type InitializeRequest struct {
	UserID      uint    `json:"userId"`
	CourseID    uint    `json:"courseId"`
	Amount      float64 `json:"amount"`
	Email       string  `json:"email"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	PhoneNumber string  `json:"phoneNumber"`
	TxRef       string  `json:"txRef"`
	CallbackURL string  `json:"callbackUrl"`
	ReturnURL   string  `json:"returnUrl"`
}

type chapaInitResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		CheckoutURL string `json:"checkout_url"`
	} `json:"data"`
}

// InitializePayment opens a checkout session with the gateway and, on
// success, stores a pending Payment keyed by tx_ref. No row is written when
// the gateway rejects the request or the call fails.
func (g *Gateway) InitializePayment(req InitializeRequest) (string, error) {
	var missing []string
	if req.UserID == 0 {
		missing = append(missing, "userId")
	}
	if req.CourseID == 0 {
		missing = append(missing, "courseId")
	}
	if req.Amount == 0 {
		missing = append(missing, "amount")
	}
	if req.TxRef == "" {
		missing = append(missing, "txRef")
	}
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return "", &ValidationError{Missing: missing}
	}

	payload := map[string]interface{}{
		"amount":       req.Amount,
		"currency":     "ETB",
		"email":        req.Email,
		"first_name":   req.FirstName,
		"last_name":    req.LastName,
		"phone_number": req.PhoneNumber,
		"tx_ref":       req.TxRef,
		"callback_url": req.CallbackURL,
		"return_url":   req.ReturnURL,
	}

	resp, err := g.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post("/transaction/initialize")
	if err != nil {
		return "", &GatewayError{Message: err.Error()}
	}

	var result chapaInitResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", &GatewayError{Message: "invalid gateway response"}
	}

	if result.Status != "success" {
		msg := result.Message
		if msg == "" {
			msg = "Unknown error"
		}
		return "", &GatewayError{Message: msg}
	}

	record := models.Payment{
		UserID:          req.UserID,
		CourseID:        req.CourseID,
		Amount:          req.Amount,
		PaymentMethod:   gatewayName,
		Status:          models.PaymentStatusPending,
		TxRef:           req.TxRef,
		GatewayResponse: datatypes.JSON(resp.Body()),
	}
	if err := g.db.Create(&record).Error; err != nil {
		return "", err
	}

	return result.Data.CheckoutURL, nil
}
