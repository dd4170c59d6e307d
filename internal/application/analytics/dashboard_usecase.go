// Package analytics contiene el resumen de la pantalla de inicio de la consola.
package analytics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/memberflow-console/internal/application/auth"
	"github.com/jhoicas/memberflow-console/internal/application/dto"
	"github.com/jhoicas/memberflow-console/internal/domain/access"
	"github.com/jhoicas/memberflow-console/internal/domain/entity"
)

// MsgDashboardFailed texto si falla algún contador.
const MsgDashboardFailed = "Error al cargar el resumen."

// Backend listados del backend que alimentan el resumen.
type Backend interface {
	ListStudents(ctx context.Context, token string) ([]entity.Student, error)
	ListTrainingGroups(ctx context.Context, token string) ([]entity.TrainingGroup, error)
	ListInvoices(ctx context.Context, token string) ([]entity.Invoice, error)
}

// DashboardUseCase genera el resumen de inicio según el rol.
//
// Solo se consultan los listados de secciones que el rol tiene permitidas:
// un estudiante no dispara ninguna llamada al backend.
type DashboardUseCase struct {
	backend Backend
	now     func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(backend Backend) *DashboardUseCase {
	return &DashboardUseCase{backend: backend, now: time.Now}
}

// Summary construye el resumen. Hasta tres llamadas en paralelo:
//  1. ListStudents        → Students (sección students)
//  2. ListTrainingGroups  → Groups (sección training-groups)
//  3. ListInvoices        → pendientes y facturado del mes (sección invoices)
func (uc *DashboardUseCase) Summary(ctx context.Context, token string, role access.Role, email string) (*dto.DashboardSummary, error) {
	now := uc.now()
	out := &dto.DashboardSummary{
		Role:          role.String(),
		Email:         email,
		DateLabel:     monthLabel(now),
		PendingAmount: decimal.Zero,
		MonthlyBilled: decimal.Zero,
		Navigation:    auth.Navigation(role),
	}

	type countResult struct {
		n   int
		err error
	}
	type invoicesResult struct {
		items []entity.Invoice
		err   error
	}

	var studentsCh, groupsCh chan countResult
	var invoicesCh chan invoicesResult

	if access.IsPermitted(role, access.SectionStudents) {
		studentsCh = make(chan countResult, 1)
		go func() {
			items, err := uc.backend.ListStudents(ctx, token)
			studentsCh <- countResult{len(items), err}
		}()
	}
	if access.IsPermitted(role, access.SectionTrainingGroups) {
		groupsCh = make(chan countResult, 1)
		go func() {
			items, err := uc.backend.ListTrainingGroups(ctx, token)
			groupsCh <- countResult{len(items), err}
		}()
	}
	if access.IsPermitted(role, access.SectionInvoices) {
		invoicesCh = make(chan invoicesResult, 1)
		go func() {
			items, err := uc.backend.ListInvoices(ctx, token)
			invoicesCh <- invoicesResult{items, err}
		}()
	}

	// Se esperan todas las llamadas antes de devolver: comparten ctx con la petición.
	var students, groups countResult
	var invoices invoicesResult
	if studentsCh != nil {
		students = <-studentsCh
	}
	if groupsCh != nil {
		groups = <-groupsCh
	}
	if invoicesCh != nil {
		invoices = <-invoicesCh
	}

	if students.err != nil {
		return nil, fmt.Errorf("dashboard: estudiantes: %w", students.err)
	}
	if groups.err != nil {
		return nil, fmt.Errorf("dashboard: grupos: %w", groups.err)
	}
	if invoices.err != nil {
		return nil, fmt.Errorf("dashboard: facturas: %w", invoices.err)
	}

	out.Students = students.n
	out.Groups = groups.n
	month := now.Format("2006-01")
	for _, inv := range invoices.items {
		if inv.Status == entity.StatusNotPaid {
			out.PendingInvoices++
			out.PendingAmount = out.PendingAmount.Add(inv.Total)
		}
		if strings.HasPrefix(inv.Date, month) {
			out.MonthlyBilled = out.MonthlyBilled.Add(inv.Total)
		}
	}
	out.PendingAmount = out.PendingAmount.Round(2)
	out.MonthlyBilled = out.MonthlyBilled.Round(2)
	return out, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
