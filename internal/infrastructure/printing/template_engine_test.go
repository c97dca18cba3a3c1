package printing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billing/backend/internal/domain/billing"
)

func TestTemplateEngineRender(t *testing.T) {
	engine := NewTemplateEngine()

	t.Run("formatAmount matches app-wide formatting", func(t *testing.T) {
		out, err := engine.Render("t", `{{formatAmount .Price}}`, map[string]interface{}{
			"Price": decimal.NewFromInt(150),
		})

		require.NoError(t, err)
		assert.Equal(t, "150.0", out)
	})

	t.Run("escapes user content", func(t *testing.T) {
		out, err := engine.Render("t", `<div>{{.Name}}</div>`, map[string]interface{}{
			"Name": "<script>alert(1)</script>",
		})

		require.NoError(t, err)
		assert.NotContains(t, out, "<script>")
	})

	t.Run("invalid template returns render error", func(t *testing.T) {
		_, err := engine.Render("t", `{{.Name`, nil)

		require.Error(t, err)
		var renderErr *RenderError
		require.ErrorAs(t, err, &renderErr)
		assert.Equal(t, ErrCodeInvalidHTML, renderErr.Code)
	})

	t.Run("empty content rejected", func(t *testing.T) {
		_, err := engine.Render("t", "", nil)

		require.Error(t, err)
	})
}

func TestDefaultBillTemplate(t *testing.T) {
	engine := NewTemplateEngine()

	render := func(t *testing.T, bill *billing.Bill) string {
		t.Helper()
		out, err := engine.Render("bill", DefaultBillTemplate, map[string]interface{}{
			"Customer":     bill.Customer,
			"Items":        bill.Items,
			"TotalDisplay": bill.TotalDisplay(),
			"GeneratedAt":  bill.GeneratedAt,
		})
		require.NoError(t, err)
		return out
	}

	t.Run("renders item lines and total", func(t *testing.T) {
		bill := billing.NewBill(billing.CustomerSnapshot{
			Name:     "Asha Rao",
			Email:    "asha@example.com",
			Address:  "12 Hill Road",
			Location: "Mumbai",
		})
		bill.AddItem("Soap", decimal.NewFromInt(50), 3)
		bill.GeneratedAt = time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

		out := render(t, bill)

		assert.Contains(t, out, "Bill Receipt")
		assert.Contains(t, out, "Customer: Asha Rao")
		assert.Contains(t, out, "Email: asha@example.com")
		assert.Contains(t, out, "Soap: 3 x 50.0 = 150.0")
		assert.Contains(t, out, "Total: 150.0")
	})

	t.Run("empty bill shows bare zero total and no item lines", func(t *testing.T) {
		bill := billing.NewBill(billing.CustomerSnapshot{Name: "Asha Rao"})

		out := render(t, bill)

		assert.Contains(t, out, "Total: 0<")
		assert.NotContains(t, out, " x ")
	})

	t.Run("optional customer fields are omitted when empty", func(t *testing.T) {
		bill := billing.NewBill(billing.CustomerSnapshot{Name: "Walk-in"})

		out := render(t, bill)

		assert.Contains(t, out, "Customer: Walk-in")
		assert.NotContains(t, out, "Email:")
		assert.NotContains(t, out, "Address:")
		assert.NotContains(t, out, "Location:")
	})
}
