package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PaymentStatus is the lifecycle state of a payment
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Payment is one attempted course purchase. TxRef correlates the row with
// gateway callback/webhook events.
type Payment struct {
	gorm.Model
	UserID          uint           `json:"userId" gorm:"index;not null"`
	CourseID        uint           `json:"courseId" gorm:"index;not null"`
	Amount          float64        `json:"amount" gorm:"not null"`
	PaymentMethod   string         `json:"paymentMethod" gorm:"type:varchar(50)"`
	Status          PaymentStatus  `json:"status" gorm:"type:varchar(20);default:'pending'"`
	TxRef           string         `json:"tx_ref" gorm:"column:tx_ref;uniqueIndex;not null"`
	GatewayResponse datatypes.JSON `json:"gatewayResponse,omitempty"`
}
