package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/billing/backend/internal/domain/billing"
	"github.com/billing/backend/internal/domain/catalog"
	"github.com/billing/backend/internal/domain/partner"
	"github.com/billing/backend/internal/domain/shared"
	infra "github.com/billing/backend/internal/infrastructure/printing"
	"github.com/billing/backend/internal/infrastructure/telemetry"
)

// BillService assembles bills and renders them to PDF. Bills are
// transient documents: nothing is written back to the store and no
// order record is created.
type BillService struct {
	customerRepo   partner.CustomerRepository
	productRepo    catalog.ProductRepository
	templateEngine *infra.TemplateEngine
	pdfRenderer    infra.PDFRenderer
	logger         *zap.Logger
}

// NewBillService creates a new BillService
func NewBillService(
	customerRepo partner.CustomerRepository,
	productRepo catalog.ProductRepository,
	templateEngine *infra.TemplateEngine,
	pdfRenderer infra.PDFRenderer,
	logger *zap.Logger,
) *BillService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BillService{
		customerRepo:   customerRepo,
		productRepo:    productRepo,
		templateEngine: templateEngine,
		pdfRenderer:    pdfRenderer,
		logger:         logger,
	}
}

// Generate builds a bill for the customer and renders it as a PDF.
// The customer must exist before any rendering starts. Quantities of
// zero leave the product off the bill, and an all-zero selection still
// produces a valid document with a zero total.
func (s *BillService) Generate(ctx context.Context, req GenerateBillRequest) (*BillDocument, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "bill", "generate",
		telemetry.WithAttribute(telemetry.SpanAttrCustomerID, req.CustomerID))
	defer span.End()

	customer, err := s.customerRepo.FindByID(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Customer not found")
		}
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("failed to load customer: %w", err)
	}

	bill := billing.NewBill(billing.CustomerSnapshot{
		Name:     customer.Name,
		Email:    customer.Email,
		Address:  customer.Address,
		Location: customer.Location,
	})

	if err := s.addItems(ctx, bill, req.Items); err != nil {
		return nil, err
	}

	html, err := s.templateEngine.Render("bill", infra.DefaultBillTemplate, map[string]interface{}{
		"Customer":     bill.Customer,
		"Items":        bill.Items,
		"TotalDisplay": bill.TotalDisplay(),
		"GeneratedAt":  bill.GeneratedAt,
	})
	if err != nil {
		return nil, wrapRenderError(err, "failed to render bill template")
	}

	result, err := s.pdfRenderer.Render(ctx, &infra.RenderRequest{
		HTML:      html,
		PaperSize: infra.PaperSizeA4,
		Margins:   infra.DefaultMargins(),
		Title:     "Bill Receipt - " + customer.Name,
	})
	if err != nil {
		s.logger.Error("bill PDF rendering failed",
			zap.Error(err),
			zap.String("customerId", customer.ID.String()))
		telemetry.RecordError(span, err)
		return nil, wrapRenderError(err, "failed to render bill PDF")
	}

	telemetry.SetAttributes(span,
		telemetry.SpanAttrLineCount, len(bill.Items),
		telemetry.SpanAttrCustomerName, customer.Name)

	s.logger.Info("bill generated",
		zap.String("customerId", customer.ID.String()),
		zap.Int("lines", len(bill.Items)),
		zap.String("total", bill.TotalDisplay()),
		zap.Int("bytes", len(result.PDFData)))

	return &BillDocument{
		FileName:     BillFileName,
		ContentType:  BillContentType,
		Data:         result.PDFData,
		TotalDisplay: bill.TotalDisplay(),
		LineCount:    len(bill.Items),
	}, nil
}

// addItems resolves the selected products and appends purchased lines
// in request order.
func (s *BillService) addItems(ctx context.Context, bill *billing.Bill, items []BillItemRequest) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}

	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}

	byID := make(map[uuid.UUID]*catalog.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	for _, item := range items {
		product, ok := byID[item.ProductID]
		if !ok {
			return shared.NewDomainError("NOT_FOUND", "Product not found: "+item.ProductID.String())
		}
		bill.AddItem(product.Name, product.Price, item.Quantity)
	}

	return nil
}

func wrapRenderError(err error, fallback string) error {
	var renderErr *infra.RenderError
	if errors.As(err, &renderErr) {
		return shared.NewDomainError(renderErr.Code, renderErr.Message)
	}
	return fmt.Errorf("%s: %w", fallback, err)
}
