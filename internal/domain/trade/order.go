package trade

import (
	"github.com/shopspring/decimal"

	"github.com/billing/backend/internal/domain/shared"
)

// PaymentStatus represents the payment state of an order
type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "Paid"
	PaymentStatusUnpaid PaymentStatus = "Unpaid"
)

// IsValid checks if the payment status is valid
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPaid, PaymentStatusUnpaid:
		return true
	}
	return false
}

// Order is a historical sales record. Orders enter the store through
// external channels and are read-only here: the service lists and
// filters them but never creates or mutates one.
type Order struct {
	shared.BaseEntity
	CustomerName  string          `gorm:"type:varchar(200);not null"`
	CustomerEmail string          `gorm:"type:varchar(200)"`
	Total         decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	PaymentStatus PaymentStatus   `gorm:"type:varchar(20);not null;default:'Unpaid'"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// IsPaid reports whether the order has been settled.
func (o *Order) IsPaid() bool {
	return o.PaymentStatus == PaymentStatusPaid
}
