package billing

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/billing/backend/internal/domain/catalog"
	"github.com/billing/backend/internal/domain/partner"
	"github.com/billing/backend/internal/domain/shared"
	infra "github.com/billing/backend/internal/infrastructure/printing"
)

type mockCustomerRepo struct {
	mock.Mock
}

func (m *mockCustomerRepo) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *mockCustomerRepo) FindByName(ctx context.Context, name string) (*partner.Customer, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *mockCustomerRepo) FindAll(ctx context.Context, filter shared.Filter) ([]*partner.Customer, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*partner.Customer), args.Error(1)
}

func (m *mockCustomerRepo) Save(ctx context.Context, customer *partner.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *mockCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCustomerRepo) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *mockProductRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*catalog.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Product), args.Error(1)
}

func (m *mockProductRepo) FindAll(ctx context.Context, filter shared.Filter) ([]*catalog.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Product), args.Error(1)
}

func (m *mockProductRepo) Save(ctx context.Context, product *catalog.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockProductRepo) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// fakeRenderer captures the HTML it receives and returns canned bytes
type fakeRenderer struct {
	lastHTML string
	calls    int
	err      error
}

func (f *fakeRenderer) Render(ctx context.Context, req *infra.RenderRequest) (*infra.RenderResult, error) {
	f.calls++
	f.lastHTML = req.HTML
	if f.err != nil {
		return nil, f.err
	}
	return &infra.RenderResult{PDFData: []byte("%PDF-1.7 fake")}, nil
}

func (f *fakeRenderer) Close() error { return nil }

func newTestService(t *testing.T) (*BillService, *mockCustomerRepo, *mockProductRepo, *fakeRenderer) {
	t.Helper()
	customers := new(mockCustomerRepo)
	products := new(mockProductRepo)
	renderer := &fakeRenderer{}
	service := NewBillService(customers, products, infra.NewTemplateEngine(), renderer, nil)
	return service, customers, products, renderer
}

func mustCustomer(t *testing.T) *partner.Customer {
	t.Helper()
	customer, err := partner.NewCustomer("Asha Rao", "asha@example.com", "12 Hill Road", "Mumbai")
	require.NoError(t, err)
	return customer
}

func mustProduct(t *testing.T, name, price string) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(name, decimal.RequireFromString(price))
	require.NoError(t, err)
	return product
}

func TestBillServiceGenerate(t *testing.T) {
	t.Run("renders purchased lines and total", func(t *testing.T) {
		service, customers, products, renderer := newTestService(t)

		customer := mustCustomer(t)
		soap := mustProduct(t, "Soap", "50")
		shampoo := mustProduct(t, "Shampoo", "49.99")

		customers.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)
		products.On("FindByIDs", mock.Anything, mock.Anything).
			Return([]*catalog.Product{soap, shampoo}, nil)

		doc, err := service.Generate(context.Background(), GenerateBillRequest{
			CustomerID: customer.ID,
			Items: []BillItemRequest{
				{ProductID: soap.ID, Quantity: 3},
				{ProductID: shampoo.ID, Quantity: 0},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "bill.pdf", doc.FileName)
		assert.Equal(t, "application/pdf", doc.ContentType)
		assert.NotEmpty(t, doc.Data)
		assert.Equal(t, 1, doc.LineCount)
		assert.Equal(t, "150.0", doc.TotalDisplay)

		assert.Contains(t, renderer.lastHTML, "Customer: Asha Rao")
		assert.Contains(t, renderer.lastHTML, "Soap: 3 x 50.0 = 150.0")
		assert.Contains(t, renderer.lastHTML, "Total: 150.0")
		assert.NotContains(t, renderer.lastHTML, "Shampoo")
	})

	t.Run("empty selection still produces a document", func(t *testing.T) {
		service, customers, _, renderer := newTestService(t)

		customer := mustCustomer(t)
		customers.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)

		doc, err := service.Generate(context.Background(), GenerateBillRequest{
			CustomerID: customer.ID,
		})

		require.NoError(t, err)
		assert.Equal(t, 0, doc.LineCount)
		assert.Equal(t, "0", doc.TotalDisplay)
		assert.Contains(t, renderer.lastHTML, "Total: 0<")
	})

	t.Run("missing customer fails before rendering", func(t *testing.T) {
		service, customers, products, renderer := newTestService(t)

		id := uuid.New()
		customers.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		_, err := service.Generate(context.Background(), GenerateBillRequest{CustomerID: id})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
		assert.Zero(t, renderer.calls)
		products.AssertNotCalled(t, "FindByIDs")
	})

	t.Run("missing product fails before rendering", func(t *testing.T) {
		service, customers, products, renderer := newTestService(t)

		customer := mustCustomer(t)
		customers.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)
		products.On("FindByIDs", mock.Anything, mock.Anything).
			Return([]*catalog.Product{}, nil)

		_, err := service.Generate(context.Background(), GenerateBillRequest{
			CustomerID: customer.ID,
			Items:      []BillItemRequest{{ProductID: uuid.New(), Quantity: 2}},
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
		assert.Zero(t, renderer.calls)
	})

	t.Run("renderer failure surfaces as domain error", func(t *testing.T) {
		service, customers, _, renderer := newTestService(t)
		renderer.err = infra.NewRenderError(infra.ErrCodeRenderFailed, "chromedp execution failed", nil)

		customer := mustCustomer(t)
		customers.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)

		_, err := service.Generate(context.Background(), GenerateBillRequest{CustomerID: customer.ID})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, infra.ErrCodeRenderFailed, domainErr.Code)
	})
}
