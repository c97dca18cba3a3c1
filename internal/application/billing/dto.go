package billing

import (
	"github.com/google/uuid"
)

// BillFileName is the download name for every generated bill.
const BillFileName = "bill.pdf"

// BillContentType is the MIME type of the generated document.
const BillContentType = "application/pdf"

// GenerateBillRequest represents a request to generate a bill
type GenerateBillRequest struct {
	CustomerID uuid.UUID         `json:"customer_id" binding:"required"`
	Items      []BillItemRequest `json:"items" binding:"dive"`
}

// BillItemRequest is one product selection on a bill request.
// A zero quantity is allowed and simply leaves the product off the bill.
type BillItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"min=0"`
}

// BillDocument is the generated PDF ready for download
type BillDocument struct {
	FileName     string
	ContentType  string
	Data         []byte
	TotalDisplay string
	LineCount    int
}
