package billing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/billing/backend/internal/domain/shared/valueobject"
)

// CustomerSnapshot captures the customer details at generation time.
// The bill is a transient document, so a copy is taken rather than a
// reference into the customer store.
type CustomerSnapshot struct {
	Name     string
	Email    string
	Address  string
	Location string
}

// LineItem is one purchased product on a bill.
type LineItem struct {
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int
	Amount      decimal.Decimal
}

// Display renders the line in receipt form, e.g. "Soap: 3 x 50.0 = 150.0".
func (l LineItem) Display() string {
	return fmt.Sprintf("%s: %d x %s = %s",
		l.ProductName,
		l.Quantity,
		valueobject.FormatAmount(l.UnitPrice),
		valueobject.FormatAmount(l.Amount),
	)
}

// Bill is the in-memory receipt assembled for one customer. It only
// exists for the duration of a generation request and is never stored,
// and it never becomes an order.
type Bill struct {
	Customer    CustomerSnapshot
	Items       []LineItem
	GeneratedAt time.Time
}

// NewBill starts an empty bill for the given customer.
func NewBill(customer CustomerSnapshot) *Bill {
	return &Bill{
		Customer:    customer,
		Items:       []LineItem{},
		GeneratedAt: time.Now(),
	}
}

// AddItem appends a line for the product. Lines with a zero or negative
// quantity are skipped, so unpurchased products never show on the bill.
func (b *Bill) AddItem(productName string, unitPrice decimal.Decimal, quantity int) {
	if quantity <= 0 {
		return
	}
	amount := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	b.Items = append(b.Items, LineItem{
		ProductName: productName,
		UnitPrice:   unitPrice,
		Quantity:    quantity,
		Amount:      amount,
	})
}

// IsEmpty reports whether no line made it onto the bill.
func (b *Bill) IsEmpty() bool {
	return len(b.Items) == 0
}

// Total sums the line amounts.
func (b *Bill) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range b.Items {
		total = total.Add(item.Amount)
	}
	return total
}

// TotalDisplay renders the total for the receipt. A bill with no lines
// shows a bare "0" rather than "0.0".
func (b *Bill) TotalDisplay() string {
	if b.IsEmpty() {
		return "0"
	}
	return valueobject.FormatAmount(b.Total())
}
