package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/billing/backend/internal/domain/shared/valueobject"
	"github.com/billing/backend/internal/domain/trade"
)

// StatusFilterAll selects orders regardless of payment status.
const StatusFilterAll = "All"

// OrderResponse represents an order in API responses.
// TotalDisplay carries the currency symbol, matching the order card
// rendering ("₹650.0").
type OrderResponse struct {
	ID            uuid.UUID       `json:"id"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	Total         decimal.Decimal `json:"total"`
	TotalDisplay  string          `json:"total_display"`
	PaymentStatus string          `json:"payment_status"`
	CreatedAt     time.Time       `json:"created_at"`
}

// OrderListFilter represents filter options for the order list.
// PaymentStatus accepts All, Paid, or Unpaid; an empty value means All.
type OrderListFilter struct {
	PaymentStatus string `form:"payment_status" binding:"omitempty,oneof=All Paid Unpaid"`
	Search        string `form:"search"`
	Page          int    `form:"page" binding:"omitempty,min=1"`
	PageSize      int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ToOrderResponse converts a domain order to a response DTO
func ToOrderResponse(order *trade.Order) OrderResponse {
	return OrderResponse{
		ID:            order.ID,
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		Total:         order.Total,
		TotalDisplay:  valueobject.NewMoneyINR(order.Total).String(),
		PaymentStatus: string(order.PaymentStatus),
		CreatedAt:     order.CreatedAt,
	}
}

// ToOrderResponses converts a slice of domain orders to response DTOs
func ToOrderResponses(orders []*trade.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i, order := range orders {
		responses[i] = ToOrderResponse(order)
	}
	return responses
}
