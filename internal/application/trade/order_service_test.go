package trade

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/billing/backend/internal/domain/shared"
	"github.com/billing/backend/internal/domain/trade"
)

// MockOrderRepository is a mock implementation of trade.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*trade.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*trade.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByPaymentStatus(ctx context.Context, status trade.PaymentStatus, filter shared.Filter) ([]*trade.Order, error) {
	args := m.Called(ctx, status, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*trade.Order), args.Error(1)
}

func (m *MockOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func newOrder(name string, total int64, status trade.PaymentStatus) *trade.Order {
	return &trade.Order{
		BaseEntity:    shared.NewBaseEntity(),
		CustomerName:  name,
		Total:         decimal.NewFromInt(total),
		PaymentStatus: status,
	}
}

func TestOrderServiceList(t *testing.T) {
	t.Run("no filter returns everything", func(t *testing.T) {
		repo := new(MockOrderRepository)
		service := NewOrderService(repo)

		orders := []*trade.Order{
			newOrder("Asha Rao", 499, trade.PaymentStatusPaid),
			newOrder("Vikram Shah", 120, trade.PaymentStatusUnpaid),
		}
		repo.On("FindAll", mock.Anything, mock.AnythingOfType("shared.Filter")).Return(orders, nil)
		repo.On("Count", mock.Anything, mock.AnythingOfType("shared.Filter")).Return(int64(2), nil)

		responses, total, err := service.List(context.Background(), OrderListFilter{})

		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		require.Len(t, responses, 2)
		repo.AssertNotCalled(t, "FindByPaymentStatus")
	})

	t.Run("All behaves like no filter", func(t *testing.T) {
		repo := new(MockOrderRepository)
		service := NewOrderService(repo)

		repo.On("FindAll", mock.Anything, mock.AnythingOfType("shared.Filter")).
			Return([]*trade.Order{}, nil)
		repo.On("Count", mock.Anything, mock.AnythingOfType("shared.Filter")).Return(int64(0), nil)

		responses, total, err := service.List(context.Background(), OrderListFilter{PaymentStatus: StatusFilterAll})

		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
		assert.Empty(t, responses)
		repo.AssertNotCalled(t, "FindByPaymentStatus")
	})

	t.Run("Paid narrows the store query", func(t *testing.T) {
		repo := new(MockOrderRepository)
		service := NewOrderService(repo)

		paid := []*trade.Order{newOrder("Asha Rao", 499, trade.PaymentStatusPaid)}
		repo.On("FindByPaymentStatus", mock.Anything, trade.PaymentStatusPaid, mock.AnythingOfType("shared.Filter")).
			Return(paid, nil)
		repo.On("Count", mock.Anything, mock.AnythingOfType("shared.Filter")).Return(int64(1), nil)

		responses, total, err := service.List(context.Background(), OrderListFilter{PaymentStatus: "Paid"})

		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, responses, 1)
		assert.Equal(t, "Paid", responses[0].PaymentStatus)
		repo.AssertNotCalled(t, "FindAll")
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		repo := new(MockOrderRepository)
		service := NewOrderService(repo)

		_, _, err := service.List(context.Background(), OrderListFilter{PaymentStatus: "Pending"})

		require.Error(t, err)
		repo.AssertNotCalled(t, "FindAll")
		repo.AssertNotCalled(t, "FindByPaymentStatus")
	})

	t.Run("totals render as rupees with one decimal place", func(t *testing.T) {
		repo := new(MockOrderRepository)
		service := NewOrderService(repo)

		repo.On("FindAll", mock.Anything, mock.AnythingOfType("shared.Filter")).
			Return([]*trade.Order{newOrder("Asha Rao", 150, trade.PaymentStatusUnpaid)}, nil)
		repo.On("Count", mock.Anything, mock.AnythingOfType("shared.Filter")).Return(int64(1), nil)

		responses, _, err := service.List(context.Background(), OrderListFilter{})

		require.NoError(t, err)
		require.Len(t, responses, 1)
		assert.Equal(t, "₹150.0", responses[0].TotalDisplay)
	})

	t.Run("order card total carries the currency symbol", func(t *testing.T) {
		repo := new(MockOrderRepository)
		service := NewOrderService(repo)

		repo.On("FindAll", mock.Anything, mock.AnythingOfType("shared.Filter")).
			Return([]*trade.Order{newOrder("Vikram Shah", 650, trade.PaymentStatusPaid)}, nil)
		repo.On("Count", mock.Anything, mock.AnythingOfType("shared.Filter")).Return(int64(1), nil)

		responses, _, err := service.List(context.Background(), OrderListFilter{})

		require.NoError(t, err)
		require.Len(t, responses, 1)
		assert.Equal(t, "₹650.0", responses[0].TotalDisplay)
	})
}

func TestOrderServiceGetByID(t *testing.T) {
	repo := new(MockOrderRepository)
	service := NewOrderService(repo)

	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	_, err := service.GetByID(context.Background(), id)

	assert.ErrorIs(t, err, shared.ErrNotFound)
}
