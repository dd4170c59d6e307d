package memberflow

import (
	"context"
	"net/http"

	"github.com/jhoicas/memberflow-console/internal/domain/entity"
)

// ListInvoices GET /invoices/getAll.
func (c *Client) ListInvoices(ctx context.Context, token string) ([]entity.Invoice, error) {
	var out []entity.Invoice
	err := c.do(ctx, call{op: "invoices.getAll", method: http.MethodGet, path: "/invoices/getAll", token: token}, &out)
	return out, err
}

// ListInvoicesByUser GET /invoices/getAllInvoicesByUserId/{userId}.
func (c *Client) ListInvoicesByUser(ctx context.Context, token string, userID int) ([]entity.Invoice, error) {
	var out []entity.Invoice
	err := c.do(ctx, call{
		op: "invoices.getAllByUserId", method: http.MethodGet, path: idPath("/invoices/getAllInvoicesByUserId/%d", userID), token: token,
	}, &out)
	return out, err
}

// CreateInvoiceWithLines POST /invoices/createInvoiceWithLines.
func (c *Client) CreateInvoiceWithLines(ctx context.Context, token string, in entity.NewInvoice) (*entity.Invoice, error) {
	var out entity.Invoice
	err := c.do(ctx, call{
		op: "invoices.createWithLines", method: http.MethodPost, path: "/invoices/createInvoiceWithLines", body: in, token: token,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteInvoice DELETE /invoices/deleteById/{id}.
func (c *Client) DeleteInvoice(ctx context.Context, token string, id int) error {
	return c.do(ctx, call{op: "invoices.delete", method: http.MethodDelete, path: idPath("/invoices/deleteById/%d", id), token: token}, nil)
}

// InvoicePDF GET /invoices/generatePDFById/{id}. Devuelve los bytes tal cual.
func (c *Client) InvoicePDF(ctx context.Context, token string, id int) ([]byte, error) {
	return c.send(ctx, call{
		op: "invoices.pdf", method: http.MethodGet, path: idPath("/invoices/generatePDFById/%d", id), token: token,
	}, "application/pdf")
}

// ListPaymentsByUser GET /payments/getAllByUserId/{userId}.
func (c *Client) ListPaymentsByUser(ctx context.Context, token string, userID int) ([]entity.Payment, error) {
	var out []entity.Payment
	err := c.do(ctx, call{
		op: "payments.getAllByUserId", method: http.MethodGet, path: idPath("/payments/getAllByUserId/%d", userID), token: token,
	}, &out)
	return out, err
}

// CreatePayment POST /payments/create.
func (c *Client) CreatePayment(ctx context.Context, token string, p entity.Payment) error {
	return c.do(ctx, call{op: "payments.create", method: http.MethodPost, path: "/payments/create", body: p, token: token}, nil)
}

// DeletePayment DELETE /payments/deleteById/{id}.
func (c *Client) DeletePayment(ctx context.Context, token string, id int) error {
	return c.do(ctx, call{op: "payments.delete", method: http.MethodDelete, path: idPath("/payments/deleteById/%d", id), token: token}, nil)
}

// ListProducts GET /products-services/getAll.
func (c *Client) ListProducts(ctx context.Context, token string) ([]entity.ProductService, error) {
	var out []entity.ProductService
	err := c.do(ctx, call{op: "products.getAll", method: http.MethodGet, path: "/products-services/getAll", token: token}, &out)
	return out, err
}

// CreateProduct POST /products-services/create.
func (c *Client) CreateProduct(ctx context.Context, token string, p entity.ProductService) error {
	return c.do(ctx, call{op: "products.create", method: http.MethodPost, path: "/products-services/create", body: p, token: token}, nil)
}

// UpdateProduct PUT /products-services/update (el id va en el cuerpo).
func (c *Client) UpdateProduct(ctx context.Context, token string, p entity.ProductService) error {
	return c.do(ctx, call{op: "products.update", method: http.MethodPut, path: "/products-services/update", body: p, token: token}, nil)
}

// DeleteProduct DELETE /products-services/deleteById/{id}.
func (c *Client) DeleteProduct(ctx context.Context, token string, id int) error {
	return c.do(ctx, call{
		op: "products.delete", method: http.MethodDelete, path: idPath("/products-services/deleteById/%d", id), token: token,
	}, nil)
}

// ListIVATypes GET /iva-types/getAll.
func (c *Client) ListIVATypes(ctx context.Context, token string) ([]entity.IVAType, error) {
	var out []entity.IVAType
	err := c.do(ctx, call{op: "ivaTypes.getAll", method: http.MethodGet, path: "/iva-types/getAll", token: token}, &out)
	return out, err
}

// CreateIVAType POST /iva-types/create.
func (c *Client) CreateIVAType(ctx context.Context, token string, t entity.IVAType) error {
	return c.do(ctx, call{op: "ivaTypes.create", method: http.MethodPost, path: "/iva-types/create", body: t, token: token}, nil)
}

// DeleteIVAType DELETE /iva-types/deleteById/{id}.
func (c *Client) DeleteIVAType(ctx context.Context, token string, id int) error {
	return c.do(ctx, call{op: "ivaTypes.delete", method: http.MethodDelete, path: idPath("/iva-types/deleteById/%d", id), token: token}, nil)
}
