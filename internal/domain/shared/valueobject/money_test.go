package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewMoneyINR(t *testing.T) {
	m := NewMoneyINR(decimal.NewFromInt(100))
	assert.True(t, m.Amount().Equal(decimal.NewFromInt(100)))
	assert.Equal(t, INR, m.Currency())
}

func TestMoney_Equals(t *testing.T) {
	a := NewMoneyINR(decimal.NewFromInt(50))
	b := NewMoneyINR(decimal.RequireFromString("50.00"))
	c := NewMoneyINR(decimal.NewFromInt(51))

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestMoney_String(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		want   string
	}{
		{"integral total", decimal.NewFromInt(150), "₹150.0"},
		{"fractional total", decimal.RequireFromString("49.99"), "₹49.99"},
		{"order card total", decimal.NewFromInt(650), "₹650.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewMoneyINR(tt.amount).String())
		})
	}
}

func TestMoney_StringUnknownCurrency(t *testing.T) {
	m := Money{amount: decimal.NewFromInt(10), currency: "JPY"}
	assert.Equal(t, "JPY 10.0", m.String())
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		want   string
	}{
		{"integral amount keeps one decimal", decimal.NewFromInt(150), "150.0"},
		{"fractional amount renders exactly", decimal.RequireFromString("49.99"), "49.99"},
		{"zero", decimal.Zero, "0.0"},
		{"single decimal preserved", decimal.RequireFromString("50.5"), "50.5"},
		{"trailing zeros normalized", decimal.RequireFromString("150.00"), "150.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(tt.amount))
		})
	}
}
