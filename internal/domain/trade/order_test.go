package trade

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/billing/backend/internal/domain/shared"
)

func TestPaymentStatusIsValid(t *testing.T) {
	assert.True(t, PaymentStatusPaid.IsValid())
	assert.True(t, PaymentStatusUnpaid.IsValid())
	assert.False(t, PaymentStatus("").IsValid())
	assert.False(t, PaymentStatus("paid").IsValid())
	assert.False(t, PaymentStatus("Pending").IsValid())
}

func TestOrderIsPaid(t *testing.T) {
	order := &Order{
		BaseEntity:    shared.NewBaseEntity(),
		CustomerName:  "Asha Rao",
		Total:         decimal.NewFromInt(499),
		PaymentStatus: PaymentStatusPaid,
	}
	assert.True(t, order.IsPaid())

	order.PaymentStatus = PaymentStatusUnpaid
	assert.False(t, order.IsPaid())
}
