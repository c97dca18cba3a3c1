package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/billing/backend/internal/domain/shared"
	"github.com/billing/backend/internal/domain/trade"
)

// setupOrderTestDB creates an in-memory SQLite database for testing
func setupOrderTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.Exec(`
		CREATE TABLE orders (
			id TEXT PRIMARY KEY,
			customer_name TEXT NOT NULL,
			customer_email TEXT,
			total NUMERIC NOT NULL DEFAULT 0,
			payment_status TEXT NOT NULL DEFAULT 'Unpaid',
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)
	`).Error
	require.NoError(t, err)

	return db
}

func seedOrder(t *testing.T, db *gorm.DB, name string, total int64, status trade.PaymentStatus, createdAt time.Time) *trade.Order {
	t.Helper()
	order := &trade.Order{
		BaseEntity:    shared.NewBaseEntity(),
		CustomerName:  name,
		Total:         decimal.NewFromInt(total),
		PaymentStatus: status,
	}
	order.CreatedAt = createdAt
	order.UpdatedAt = createdAt
	require.NoError(t, db.Create(order).Error)
	return order
}

func TestGormOrderRepository_FindAll(t *testing.T) {
	db := setupOrderTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	seedOrder(t, db, "Vikram Shah", 120, trade.PaymentStatusUnpaid, base.Add(2*time.Hour))
	seedOrder(t, db, "Asha Rao", 499, trade.PaymentStatusPaid, base)

	orders, err := repo.FindAll(ctx, shared.DefaultFilter())

	require.NoError(t, err)
	require.Len(t, orders, 2)
	// Insertion order, not write order of this test
	assert.Equal(t, "Asha Rao", orders[0].CustomerName)
	assert.Equal(t, "Vikram Shah", orders[1].CustomerName)
}

func TestGormOrderRepository_FindByPaymentStatus(t *testing.T) {
	db := setupOrderTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	seedOrder(t, db, "Asha Rao", 499, trade.PaymentStatusPaid, base)
	seedOrder(t, db, "Vikram Shah", 120, trade.PaymentStatusUnpaid, base.Add(time.Hour))
	seedOrder(t, db, "Meera Iyer", 275, trade.PaymentStatusPaid, base.Add(2*time.Hour))

	t.Run("returns only matching orders in insertion order", func(t *testing.T) {
		orders, err := repo.FindByPaymentStatus(ctx, trade.PaymentStatusPaid, shared.DefaultFilter())

		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, "Asha Rao", orders[0].CustomerName)
		assert.Equal(t, "Meera Iyer", orders[1].CustomerName)
	})

	t.Run("empty result for status with no orders", func(t *testing.T) {
		db2 := setupOrderTestDB(t)
		repo2 := NewGormOrderRepository(db2)
		seedOrder(t, db2, "Asha Rao", 499, trade.PaymentStatusPaid, base)

		orders, err := repo2.FindByPaymentStatus(ctx, trade.PaymentStatusUnpaid, shared.DefaultFilter())

		require.NoError(t, err)
		assert.Empty(t, orders)
	})
}

func TestGormOrderRepository_Count(t *testing.T) {
	db := setupOrderTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	seedOrder(t, db, "Asha Rao", 499, trade.PaymentStatusPaid, base)
	seedOrder(t, db, "Vikram Shah", 120, trade.PaymentStatusUnpaid, base.Add(time.Hour))

	t.Run("counts all", func(t *testing.T) {
		count, err := repo.Count(ctx, shared.DefaultFilter())

		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("counts by payment status", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Filters["payment_status"] = string(trade.PaymentStatusPaid)

		count, err := repo.Count(ctx, filter)

		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func TestGormOrderRepository_FindByID(t *testing.T) {
	db := setupOrderTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	seeded := seedOrder(t, db, "Asha Rao", 499, trade.PaymentStatusPaid, base)

	t.Run("finds order", func(t *testing.T) {
		order, err := repo.FindByID(ctx, seeded.ID)

		require.NoError(t, err)
		assert.Equal(t, "Asha Rao", order.CustomerName)
		assert.True(t, order.Total.Equal(decimal.NewFromInt(499)))
		assert.Equal(t, trade.PaymentStatusPaid, order.PaymentStatus)
	})

	t.Run("missing order returns not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, shared.NewBaseEntity().ID)

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
