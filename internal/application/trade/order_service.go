package trade

import (
	"context"

	"github.com/google/uuid"

	"github.com/billing/backend/internal/domain/shared"
	"github.com/billing/backend/internal/domain/trade"
)

// OrderService exposes read access to historical orders
type OrderService struct {
	orderRepo trade.OrderRepository
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo trade.OrderRepository) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
	}
}

// GetByID retrieves an order by ID
func (s *OrderService) GetByID(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// List retrieves orders, optionally narrowed to one payment status.
// Filtering happens in the store query rather than in memory.
func (s *OrderService) List(ctx context.Context, filter OrderListFilter) ([]OrderResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	domainFilter.Page = filter.Page
	domainFilter.PageSize = filter.PageSize
	domainFilter.Search = filter.Search

	status, narrowed, err := resolveStatusFilter(filter.PaymentStatus)
	if err != nil {
		return nil, 0, err
	}

	var orders []*trade.Order
	if narrowed {
		domainFilter.Filters["payment_status"] = string(status)
		orders, err = s.orderRepo.FindByPaymentStatus(ctx, status, domainFilter)
	} else {
		orders, err = s.orderRepo.FindAll(ctx, domainFilter)
	}
	if err != nil {
		return nil, 0, err
	}

	total, err := s.orderRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToOrderResponses(orders), total, nil
}

func resolveStatusFilter(value string) (trade.PaymentStatus, bool, error) {
	if value == "" || value == StatusFilterAll {
		return "", false, nil
	}
	status := trade.PaymentStatus(value)
	if !status.IsValid() {
		return "", false, shared.NewDomainError("INVALID_INPUT", "Payment status filter must be All, Paid, or Unpaid")
	}
	return status, true, nil
}
