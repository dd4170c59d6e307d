package billing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/memberflow-console/internal/domain/entity"
	"github.com/jhoicas/memberflow-console/internal/domain/invoicing"
)

// Backend operaciones del backend que usa la facturación. Todas reciben el token de la sesión.
type Backend interface {
	ListStudents(ctx context.Context, token string) ([]entity.Student, error)

	ListInvoices(ctx context.Context, token string) ([]entity.Invoice, error)
	ListInvoicesByUser(ctx context.Context, token string, userID int) ([]entity.Invoice, error)
	CreateInvoiceWithLines(ctx context.Context, token string, in entity.NewInvoice) (*entity.Invoice, error)
	DeleteInvoice(ctx context.Context, token string, id int) error
	InvoicePDF(ctx context.Context, token string, id int) ([]byte, error)

	ListPaymentsByUser(ctx context.Context, token string, userID int) ([]entity.Payment, error)
	CreatePayment(ctx context.Context, token string, p entity.Payment) error
	DeletePayment(ctx context.Context, token string, id int) error

	ListProducts(ctx context.Context, token string) ([]entity.ProductService, error)
	CreateProduct(ctx context.Context, token string, p entity.ProductService) error
	UpdateProduct(ctx context.Context, token string, p entity.ProductService) error
	DeleteProduct(ctx context.Context, token string, id int) error

	ListIVATypes(ctx context.Context, token string) ([]entity.IVAType, error)
	CreateIVAType(ctx context.Context, token string, t entity.IVAType) error
	DeleteIVAType(ctx context.Context, token string, id int) error
}

// Proforma datos de la factura en edición para imprimir.
type Proforma struct {
	StudentName  string
	StudentEmail string
	Date         time.Time
	Summary      invoicing.Summary
}

// ProformaGenerator genera el PDF de una proforma.
type ProformaGenerator interface {
	GenerateProforma(ctx context.Context, p Proforma) ([]byte, error)
}

// MoneyFormatter formatea importes para mostrar.
type MoneyFormatter interface {
	Format(d decimal.Decimal) string
}
