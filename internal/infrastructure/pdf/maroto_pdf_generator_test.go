package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/jhoicas/memberflow-console/internal/application/billing"
	"github.com/jhoicas/memberflow-console/internal/domain/entity"
	"github.com/jhoicas/memberflow-console/internal/domain/invoicing"
	"github.com/jhoicas/memberflow-console/internal/infrastructure/pdf"
	"github.com/jhoicas/memberflow-console/pkg/money"
)

func TestGenerateProforma_DevuelvePDF(t *testing.T) {
	catalog := invoicing.NewCatalog([]entity.ProductService{
		{ID: 1, Name: "Cuota mensual", Price: decimal.NewFromInt(100),
			IVAType: &entity.IVAType{ID: 2, Percentage: decimal.NewFromInt(21)}},
	})
	lines := []invoicing.Line{
		{ProductID: 1, Quantity: invoicing.Quantity("2")},
		{ProductID: 9, Quantity: invoicing.Quantity("1")},
	}
	g := pdf.NewMarotoPDFGenerator("Academia MemberFlow", money.NewFormatter("es-ES", "€"))

	b, err := g.GenerateProforma(context.Background(), appbilling.Proforma{
		StudentName: "Lucía Pérez",
		Date:        time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Summary:     invoicing.Breakdown(lines, catalog),
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")), "debe empezar con la cabecera PDF")
}
