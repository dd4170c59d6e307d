package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/memberflow-console/internal/domain/entity"
	"github.com/jhoicas/memberflow-console/internal/domain/invoicing"
)

// InvoiceFormResponse datos de referencia del formulario de factura.
type InvoiceFormResponse struct {
	Students []entity.Student        `json:"students"`
	Products []entity.ProductService `json:"products"`
}

// InvoiceDraftRequest factura en edición. Date es opcional (RFC 3339); vacío = ahora.
type InvoiceDraftRequest struct {
	UserID int              `json:"userId"`
	Date   string           `json:"date"`
	Lines  []invoicing.Line `json:"lines"`
}

// Draft convierte la petición al borrador del calculador.
func (r InvoiceDraftRequest) Draft() invoicing.Draft {
	return invoicing.Draft{CustomerID: r.UserID, Lines: r.Lines}
}

// LinePreview desglose de línea con importes ya formateados.
type LinePreview struct {
	invoicing.LineSummary
	AmountDisplay string `json:"amountDisplay"`
	TaxDisplay    string `json:"taxDisplay"`
}

// InvoicePreviewResponse totales del borrador, recalculados en cada petición.
type InvoicePreviewResponse struct {
	Lines           []LinePreview   `json:"lines"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Tax             decimal.Decimal `json:"tax"`
	Total           decimal.Decimal `json:"total"`
	SubtotalDisplay string          `json:"subtotalDisplay"`
	TaxDisplay      string          `json:"taxDisplay"`
	TotalDisplay    string          `json:"totalDisplay"`
	HasUnresolved   bool            `json:"hasUnresolved"`
}

// PaymentFormResponse estudiantes para el selector del formulario de pago.
type PaymentFormResponse struct {
	Students []entity.Student `json:"students"`
}

// CreatePaymentRequest body de POST /api/payments.
type CreatePaymentRequest struct {
	UserID        int             `json:"userId" validate:"required,gt=0"`
	InvoiceID     int             `json:"invoiceId" validate:"required,gt=0"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod" validate:"required,oneof=CASH CREDIT_CARD BANK_TRANSFER"`
}

// ProductRequest alta/edición de producto o servicio.
type ProductRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	IVATypeID   int             `json:"ivaTypeId" validate:"required,gt=0"`
	Type        string          `json:"type" validate:"required,oneof=PRODUCT SERVICE"`
	Status      string          `json:"status" validate:"required,oneof=ACTIVE INACTIVE"`
}

// ProductFormResponse tipos de IVA para el selector del formulario.
type ProductFormResponse struct {
	IVATypes []entity.IVAType `json:"ivaTypes"`
}

// IVATypeRequest alta de tipo de IVA.
type IVATypeRequest struct {
	Percentage  decimal.Decimal `json:"percentage"`
	Description string          `json:"description" validate:"required"`
}
