// Package pdf genera la proforma de una factura en edición (todavía no guardada en el backend).
// Las facturas ya creadas se descargan del backend tal cual.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Academia                 │  PROFORMA + Fecha       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ESTUDIANTE: Nombre + email                                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | P.Unit | IVA | Importe          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / IVA / TOTAL                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda "sin validez fiscal"                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appbilling "github.com/jhoicas/memberflow-console/internal/application/billing"
	"github.com/jhoicas/memberflow-console/internal/domain/invoicing"
	"github.com/jhoicas/memberflow-console/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWarn    = &props.Color{Red: 170, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa billing.ProformaGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	issuer string
	money  *money.Formatter
}

// NewMarotoPDFGenerator construye el generador. issuer aparece en la cabecera.
func NewMarotoPDFGenerator(issuer string, f *money.Formatter) *MarotoPDFGenerator {
	if f == nil {
		f = money.NewFormatter("es-ES", "€")
	}
	return &MarotoPDFGenerator{issuer: issuer, money: f}
}

var _ appbilling.ProformaGenerator = (*MarotoPDFGenerator)(nil)

// GenerateProforma genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateProforma(_ context.Context, p appbilling.Proforma) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Proforma", true).
		WithAuthor(g.issuer, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(p))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(studentRow(p))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(g.tableDetailRows(p.Summary.Lines)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(p.Summary))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar proforma: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoPDFGenerator) headerRow(p appbilling.Proforma) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(g.issuer, "MemberFlow"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("FACTURA PROFORMA", props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+p.Date.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

func studentRow(p appbilling.Proforma) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("ESTUDIANTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(p.StudentName, "—"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("Email: "+nonEmpty(p.StudentEmail, "—"), props.Text{
				Size: 8, Top: 11, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto/servicio", 5, align.Left),
		h("Precio unit.", 2, align.Right),
		h("IVA%", 1, align.Center),
		h("Importe", 3, align.Right),
	)
}

// tableDetailRows una fila por línea; las líneas sin producto se marcan en rojo.
func (g *MarotoPDFGenerator) tableDetailRows(lines []invoicing.LineSummary) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		name := l.Name
		style := props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1}
		if l.Unresolved {
			name = fmt.Sprintf("Producto #%d no disponible", l.ProductID)
			style.Color = colorWarn
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", l.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(name, style)),
			col.New(2).Add(text.New(
				g.money.Format(l.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				l.TaxPercentage.String()+"%",
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				g.money.Format(l.Amount),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

func (g *MarotoPDFGenerator) totalsRow(s invoicing.Summary) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	grand := func(s string, right float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: right, Top: 14,
		})
	}

	return row.New(24).Add(
		col.New(6),
		col.New(3).Add(
			label("Subtotal:", 1),
			label("IVA:", 7),
			grand("TOTAL:", 2),
		),
		col.New(3).Add(
			value(g.money.Format(s.Subtotal), 1),
			value(g.money.Format(s.Tax), 7),
			grand(g.money.Format(s.Total), 1),
		),
	)
}

func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Documento proforma sin validez fiscal. La factura definitiva se emite al guardarla.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2, Align: align.Center},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
