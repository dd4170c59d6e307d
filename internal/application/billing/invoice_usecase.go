package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/memberflow-console/internal/application/dto"
	"github.com/jhoicas/memberflow-console/internal/domain"
	"github.com/jhoicas/memberflow-console/internal/domain/entity"
	"github.com/jhoicas/memberflow-console/internal/domain/invoicing"
)

const (
	MsgInvoiceCreated  = "Factura creada correctamente."
	MsgInvoiceDeleted  = "Factura eliminada correctamente."
	MsgInvoiceFailed   = "Error al crear la factura"
	MsgPDFFailed       = "Error al descargar el PDF."
	MsgInvoicesFailed  = "Error al cargar facturas."
	MsgInvoiceFormData = "Error al cargar los datos del formulario."
	MsgInvalidDate     = "Fecha no válida."
)

// InvoiceUseCase formulario de factura (calculador + envío) y listado.
type InvoiceUseCase struct {
	backend Backend
	pdf     ProformaGenerator
	money   MoneyFormatter
	now     func() time.Time
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(backend Backend, pdf ProformaGenerator, money MoneyFormatter) *InvoiceUseCase {
	return &InvoiceUseCase{backend: backend, pdf: pdf, money: money, now: time.Now}
}

// LoadForm estudiantes y productos/servicios para el formulario.
func (uc *InvoiceUseCase) LoadForm(ctx context.Context, token string) (*dto.InvoiceFormResponse, error) {
	students, err := uc.backend.ListStudents(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("formulario factura: estudiantes: %w", err)
	}
	products, err := uc.backend.ListProducts(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("formulario factura: productos: %w", err)
	}
	return &dto.InvoiceFormResponse{Students: students, Products: products}, nil
}

func (uc *InvoiceUseCase) catalog(ctx context.Context, token string) (invoicing.Catalog, error) {
	products, err := uc.backend.ListProducts(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("catálogo: %w", err)
	}
	return invoicing.NewCatalog(products), nil
}

// Preview recalcula el desglose del borrador. No valida: un borrador incompleto da totales en cero.
func (uc *InvoiceUseCase) Preview(ctx context.Context, token string, req dto.InvoiceDraftRequest) (*dto.InvoicePreviewResponse, error) {
	catalog, err := uc.catalog(ctx, token)
	if err != nil {
		return nil, err
	}
	return uc.preview(invoicing.Breakdown(req.Lines, catalog)), nil
}

func (uc *InvoiceUseCase) preview(s invoicing.Summary) *dto.InvoicePreviewResponse {
	out := &dto.InvoicePreviewResponse{
		Lines:           make([]dto.LinePreview, 0, len(s.Lines)),
		Subtotal:        s.Subtotal,
		Tax:             s.Tax,
		Total:           s.Total,
		SubtotalDisplay: uc.money.Format(s.Subtotal),
		TaxDisplay:      uc.money.Format(s.Tax),
		TotalDisplay:    uc.money.Format(s.Total),
	}
	for _, l := range s.Lines {
		out.Lines = append(out.Lines, dto.LinePreview{
			LineSummary:   l,
			AmountDisplay: uc.money.Format(l.Amount),
			TaxDisplay:    uc.money.Format(l.Tax),
		})
		if l.Unresolved {
			out.HasUnresolved = true
		}
	}
	return out
}

// PreviewPDF genera la proforma del borrador. Exige estudiante y al menos una línea.
func (uc *InvoiceUseCase) PreviewPDF(ctx context.Context, token string, req dto.InvoiceDraftRequest) ([]byte, error) {
	if req.UserID <= 0 || len(req.Lines) == 0 {
		return nil, domain.NewValidationError(invoicing.MsgDraftIncomplete)
	}
	date, err := uc.invoiceDate(req.Date)
	if err != nil {
		return nil, err
	}
	catalog, err := uc.catalog(ctx, token)
	if err != nil {
		return nil, err
	}
	students, err := uc.backend.ListStudents(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("proforma: estudiantes: %w", err)
	}
	p := Proforma{Date: date, Summary: invoicing.Breakdown(req.Lines, catalog)}
	for _, s := range students {
		if s.User.ID == req.UserID {
			p.StudentName = s.User.FullName()
			p.StudentEmail = s.User.Email
			break
		}
	}
	b, err := uc.pdf.GenerateProforma(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("proforma: %w", err)
	}
	return b, nil
}

// Submit valida el borrador contra el catálogo recién obtenido y crea la factura NOT_PAID.
func (uc *InvoiceUseCase) Submit(ctx context.Context, token string, req dto.InvoiceDraftRequest) (*entity.Invoice, error) {
	draft := req.Draft()
	if draft.CustomerID <= 0 || len(draft.Lines) == 0 {
		return nil, invoicing.ValidateDraft(draft, nil)
	}
	date, err := uc.invoiceDate(req.Date)
	if err != nil {
		return nil, err
	}
	catalog, err := uc.catalog(ctx, token)
	if err != nil {
		return nil, err
	}
	if err := invoicing.ValidateDraft(draft, catalog); err != nil {
		return nil, err
	}
	body := invoicing.ToNewInvoice(draft, catalog, date.UTC().Format(time.RFC3339))
	inv, err := uc.backend.CreateInvoiceWithLines(ctx, token, body)
	if err != nil {
		return nil, fmt.Errorf("crear factura: %w", err)
	}
	return inv, nil
}

// invoiceDate interpreta la fecha del formulario: RFC 3339 o datetime-local. Vacía → ahora.
func (uc *InvoiceUseCase) invoiceDate(raw string) (time.Time, error) {
	if raw == "" {
		return uc.now(), nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, domain.NewValidationError(MsgInvalidDate).With("date", "fecha no válida")
}

// DownloadPDF PDF de una factura ya guardada, tal cual lo devuelve el backend.
func (uc *InvoiceUseCase) DownloadPDF(ctx context.Context, token string, id int) ([]byte, error) {
	b, err := uc.backend.InvoicePDF(ctx, token, id)
	if err != nil {
		return nil, fmt.Errorf("pdf factura %d: %w", id, err)
	}
	return b, nil
}

// List todas las facturas.
func (uc *InvoiceUseCase) List(ctx context.Context, token string) ([]entity.Invoice, error) {
	inv, err := uc.backend.ListInvoices(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("listar facturas: %w", err)
	}
	return inv, nil
}

// ListByUser facturas de un usuario.
func (uc *InvoiceUseCase) ListByUser(ctx context.Context, token string, userID int) ([]entity.Invoice, error) {
	inv, err := uc.backend.ListInvoicesByUser(ctx, token, userID)
	if err != nil {
		return nil, fmt.Errorf("listar facturas de %d: %w", userID, err)
	}
	return inv, nil
}

// Delete elimina una factura.
func (uc *InvoiceUseCase) Delete(ctx context.Context, token string, id int) error {
	if err := uc.backend.DeleteInvoice(ctx, token, id); err != nil {
		return fmt.Errorf("eliminar factura %d: %w", id, err)
	}
	return nil
}
