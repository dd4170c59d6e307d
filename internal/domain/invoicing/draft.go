package invoicing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/memberflow-console/internal/domain"
	"github.com/jhoicas/memberflow-console/internal/domain/entity"
)

// MsgDraftIncomplete texto mostrado cuando falta el estudiante o no hay líneas.
const MsgDraftIncomplete = "Selecciona un estudiante y al menos un producto."

// MsgUnresolvedProduct texto para líneas cuyo producto ya no está en el catálogo.
const MsgUnresolvedProduct = "El producto seleccionado ya no existe en el catálogo."

// Draft factura en edición: cliente (estudiante) y líneas.
type Draft struct {
	CustomerID int    `json:"userId"`
	Lines      []Line `json:"lines"`
}

// LineSummary desglose de una línea. Unresolved marca líneas cuyo producto no está en el catálogo.
type LineSummary struct {
	ProductID     int             `json:"productServiceId"`
	Name          string          `json:"name,omitempty"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	TaxPercentage decimal.Decimal `json:"taxPercentage"`
	Amount        decimal.Decimal `json:"amount"`
	Tax           decimal.Decimal `json:"tax"`
	Unresolved    bool            `json:"unresolved"`
}

// Summary desglose completo de la factura en edición.
type Summary struct {
	Lines    []LineSummary   `json:"lines"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// Breakdown recalcula desde cero el desglose de las líneas.
func Breakdown(lines []Line, catalog Catalog) Summary {
	out := Summary{Lines: make([]LineSummary, 0, len(lines))}
	for _, l := range lines {
		ls := LineSummary{
			ProductID: l.ProductID,
			Quantity:  l.Quantity.Int(),
			Amount:    LineAmount(l, catalog),
			Tax:       LineTax(l, catalog),
		}
		if p, ok := catalog.Lookup(l.ProductID); ok {
			ls.Name = p.Name
			ls.UnitPrice = p.Price
			if p.IVAType != nil {
				ls.TaxPercentage = p.IVAType.Percentage
			}
		} else {
			ls.Unresolved = true
		}
		out.Lines = append(out.Lines, ls)
	}
	out.Subtotal = Subtotal(lines, catalog)
	out.Tax = Tax(lines, catalog)
	out.Total = out.Subtotal.Add(out.Tax)
	return out
}

// ValidateDraft comprueba que la factura se puede enviar: estudiante elegido, al menos una línea
// y todas las líneas resueltas contra el catálogo.
func ValidateDraft(d Draft, catalog Catalog) error {
	verr := domain.NewValidationError(MsgDraftIncomplete)
	if d.CustomerID <= 0 {
		verr.With("userId", "requerido")
	}
	if len(d.Lines) == 0 {
		verr.With("lines", "al menos un producto o servicio")
	}
	if verr.HasFields() {
		return verr
	}
	for i, l := range d.Lines {
		if _, ok := catalog.Lookup(l.ProductID); !ok {
			verr.Message = MsgUnresolvedProduct
			verr.With(fmt.Sprintf("lines[%d].productServiceId", i), "producto no encontrado")
		}
	}
	if verr.HasFields() {
		return verr
	}
	return nil
}

// ToNewInvoice construye el cuerpo de creación con el precio unitario del catálogo y el total calculado.
// Se asume que ValidateDraft ya aceptó el borrador.
func ToNewInvoice(d Draft, catalog Catalog, date string) entity.NewInvoice {
	lines := make([]entity.NewInvoiceLine, 0, len(d.Lines))
	for _, l := range d.Lines {
		p, _ := catalog.Lookup(l.ProductID)
		lines = append(lines, entity.NewInvoiceLine{
			ProductServiceID: l.ProductID,
			Quantity:         l.Quantity.Int(),
			UnitPrice:        p.Price,
		})
	}
	return entity.NewInvoice{
		UserID: d.CustomerID,
		Date:   date,
		Status: entity.StatusNotPaid,
		Total:  Total(d.Lines, catalog),
		Lines:  lines,
	}
}
