package dto

import "github.com/shopspring/decimal"

// DashboardSummary resumen de la pantalla de inicio. Los contadores que el rol no puede ver van a cero.
type DashboardSummary struct {
	Role            string             `json:"role"`
	Email           string             `json:"email"`
	DateLabel       string             `json:"dateLabel"`
	Students        int                `json:"students"`
	Groups          int                `json:"groups"`
	PendingInvoices int                `json:"pendingInvoices"`
	PendingAmount   decimal.Decimal    `json:"pendingAmount"`
	MonthlyBilled   decimal.Decimal    `json:"monthlyBilled"`
	Navigation      NavigationResponse `json:"navigation"`
}
