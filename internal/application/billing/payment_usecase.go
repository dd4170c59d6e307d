package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/memberflow-console/internal/application/dto"
	"github.com/jhoicas/memberflow-console/internal/domain"
	"github.com/jhoicas/memberflow-console/internal/domain/entity"
	"github.com/jhoicas/memberflow-console/pkg/validation"
)

const (
	MsgPaymentRegistered = "Pago registrado correctamente."
	MsgPaymentDeleted    = "Pago eliminado correctamente."
	MsgPaymentFailed     = "Error al registrar el pago."
	MsgPaymentIncomplete = "Completa todos los campos."
	MsgInvoiceNotFound   = "Factura no encontrada."
	MsgAmountBelowTotal  = "El importe pagado no puede ser menor al total de la factura."
	MsgPaymentsFailed    = "Error al cargar los pagos."
)

// PaymentUseCase registro de pagos de facturas pendientes.
type PaymentUseCase struct {
	backend Backend
	now     func() time.Time
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(backend Backend) *PaymentUseCase {
	return &PaymentUseCase{backend: backend, now: time.Now}
}

// Form estudiantes para el selector.
func (uc *PaymentUseCase) Form(ctx context.Context, token string) (*dto.PaymentFormResponse, error) {
	students, err := uc.backend.ListStudents(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("formulario pago: %w", err)
	}
	return &dto.PaymentFormResponse{Students: students}, nil
}

// PendingInvoices facturas NOT_PAID del usuario.
func (uc *PaymentUseCase) PendingInvoices(ctx context.Context, token string, userID int) ([]entity.Invoice, error) {
	all, err := uc.backend.ListInvoicesByUser(ctx, token, userID)
	if err != nil {
		return nil, fmt.Errorf("facturas pendientes de %d: %w", userID, err)
	}
	pending := make([]entity.Invoice, 0, len(all))
	for _, inv := range all {
		if inv.Status == entity.StatusNotPaid {
			pending = append(pending, inv)
		}
	}
	return pending, nil
}

// Register valida el pago contra la factura pendiente y lo registra como PAID.
func (uc *PaymentUseCase) Register(ctx context.Context, token string, in dto.CreatePaymentRequest) error {
	if err := validation.Struct(in); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			verr.Message = MsgPaymentIncomplete
		}
		return err
	}
	if !in.Amount.GreaterThan(decimal.Zero) {
		return domain.NewValidationError(MsgPaymentIncomplete).With("amount", "debe ser mayor que 0")
	}

	pending, err := uc.PendingInvoices(ctx, token, in.UserID)
	if err != nil {
		return err
	}
	var invoice *entity.Invoice
	for i := range pending {
		if pending[i].ID == in.InvoiceID {
			invoice = &pending[i]
			break
		}
	}
	if invoice == nil {
		return domain.NewValidationError(MsgInvoiceNotFound).With("invoiceId", "factura no pendiente")
	}
	if in.Amount.LessThan(invoice.Total) {
		return domain.NewValidationError(MsgAmountBelowTotal).With("amount", "menor que el total")
	}

	p := entity.Payment{
		InvoiceID:     in.InvoiceID,
		PaymentDate:   uc.now().UTC().Format(time.RFC3339),
		Amount:        in.Amount,
		PaymentMethod: entity.PaymentMethod(in.PaymentMethod),
		Status:        entity.StatusPaid,
	}
	if err := uc.backend.CreatePayment(ctx, token, p); err != nil {
		return fmt.Errorf("registrar pago: %w", err)
	}
	return nil
}

// ListByUser pagos de un usuario.
func (uc *PaymentUseCase) ListByUser(ctx context.Context, token string, userID int) ([]entity.Payment, error) {
	p, err := uc.backend.ListPaymentsByUser(ctx, token, userID)
	if err != nil {
		return nil, fmt.Errorf("listar pagos de %d: %w", userID, err)
	}
	return p, nil
}

// Delete elimina un pago.
func (uc *PaymentUseCase) Delete(ctx context.Context, token string, id int) error {
	if err := uc.backend.DeletePayment(ctx, token, id); err != nil {
		return fmt.Errorf("eliminar pago %d: %w", id, err)
	}
	return nil
}
