package trade

import (
	"context"

	"github.com/google/uuid"

	"github.com/billing/backend/internal/domain/shared"
)

// OrderRepository defines the order repository interface.
// The store is read-only from this service's point of view, so the
// interface carries no Save or Delete.
type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*Order, error)
	FindByPaymentStatus(ctx context.Context, status PaymentStatus, filter shared.Filter) ([]*Order, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
