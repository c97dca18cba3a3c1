package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBillAddItem(t *testing.T) {
	t.Run("adds line with computed amount", func(t *testing.T) {
		bill := NewBill(CustomerSnapshot{Name: "Asha Rao"})

		bill.AddItem("Soap", decimal.NewFromInt(50), 3)

		require.Len(t, bill.Items, 1)
		item := bill.Items[0]
		assert.Equal(t, "Soap", item.ProductName)
		assert.Equal(t, 3, item.Quantity)
		assert.True(t, item.Amount.Equal(decimal.NewFromInt(150)))
	})

	t.Run("zero quantity is skipped", func(t *testing.T) {
		bill := NewBill(CustomerSnapshot{Name: "Asha Rao"})

		bill.AddItem("Soap", decimal.NewFromInt(50), 0)
		bill.AddItem("Shampoo", decimal.NewFromInt(120), -2)

		assert.True(t, bill.IsEmpty())
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		bill := NewBill(CustomerSnapshot{Name: "Asha Rao"})

		bill.AddItem("Soap", decimal.NewFromInt(50), 3)
		bill.AddItem("Shampoo", decimal.NewFromInt(120), 1)

		require.Len(t, bill.Items, 2)
		assert.Equal(t, "Soap", bill.Items[0].ProductName)
		assert.Equal(t, "Shampoo", bill.Items[1].ProductName)
	})
}

func TestLineItemDisplay(t *testing.T) {
	item := LineItem{
		ProductName: "Soap",
		UnitPrice:   decimal.NewFromInt(50),
		Quantity:    3,
		Amount:      decimal.NewFromInt(150),
	}
	assert.Equal(t, "Soap: 3 x 50.0 = 150.0", item.Display())

	fractional := LineItem{
		ProductName: "Shampoo",
		UnitPrice:   decimal.RequireFromString("49.99"),
		Quantity:    2,
		Amount:      decimal.RequireFromString("99.98"),
	}
	assert.Equal(t, "Shampoo: 2 x 49.99 = 99.98", fractional.Display())
}

func TestBillTotal(t *testing.T) {
	t.Run("sums line amounts", func(t *testing.T) {
		bill := NewBill(CustomerSnapshot{Name: "Asha Rao"})
		bill.AddItem("Soap", decimal.NewFromInt(50), 3)
		bill.AddItem("Shampoo", decimal.RequireFromString("49.99"), 1)

		assert.True(t, bill.Total().Equal(decimal.RequireFromString("199.99")))
		assert.Equal(t, "199.99", bill.TotalDisplay())
	})

	t.Run("whole total shows one decimal place", func(t *testing.T) {
		bill := NewBill(CustomerSnapshot{Name: "Asha Rao"})
		bill.AddItem("Soap", decimal.NewFromInt(50), 3)

		assert.Equal(t, "150.0", bill.TotalDisplay())
	})

	t.Run("empty bill shows bare zero", func(t *testing.T) {
		bill := NewBill(CustomerSnapshot{Name: "Asha Rao"})

		assert.True(t, bill.Total().IsZero())
		assert.Equal(t, "0", bill.TotalDisplay())
	})
}
