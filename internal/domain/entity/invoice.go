package entity

import "github.com/shopspring/decimal"

// Invoice factura persistida en el backend.
type Invoice struct {
	ID             int             `json:"id"`
	UserID         int             `json:"userId"`
	User           *User           `json:"user,omitempty"`
	Date           string          `json:"date"`
	Total          decimal.Decimal `json:"total"`
	Status         Status          `json:"status"`
	PaymentID      *int            `json:"paymentId,omitempty"`
	InvoiceLineIDs []int           `json:"invoiceLineIds,omitempty"`
}

// NewInvoiceLine línea enviada a /invoices/createInvoiceWithLines.
type NewInvoiceLine struct {
	ProductServiceID int             `json:"productServiceId"`
	Quantity         int             `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unitPrice"`
}

// NewInvoice cuerpo de /invoices/createInvoiceWithLines.
type NewInvoice struct {
	UserID int              `json:"userId"`
	Date   string           `json:"date"`
	Status Status           `json:"status"`
	Total  decimal.Decimal  `json:"total"`
	Lines  []NewInvoiceLine `json:"lines"`
}

// Payment pago asociado a una factura.
type Payment struct {
	ID            int             `json:"id,omitempty"`
	InvoiceID     int             `json:"invoiceId"`
	PaymentDate   string          `json:"paymentDate"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Status        Status          `json:"status"`
}
