// Package invoicing calcula importes, IVA y totales de una factura en edición.
// Funciones puras: no hacen I/O, no redondean resultados intermedios y toleran entradas mal formadas.
package invoicing

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/memberflow-console/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Catalog productos/servicios conocidos por id (la última lista obtenida del backend).
type Catalog map[int]entity.ProductService

// NewCatalog indexa la lista de productos por id.
func NewCatalog(products []entity.ProductService) Catalog {
	c := make(Catalog, len(products))
	for _, p := range products {
		c[p.ID] = p
	}
	return c
}

// Lookup devuelve el producto referenciado por la línea.
func (c Catalog) Lookup(id int) (entity.ProductService, bool) {
	p, ok := c[id]
	return p, ok
}

// Line línea de factura en edición.
type Line struct {
	ProductID int      `json:"productServiceId"`
	Quantity  Quantity `json:"quantity"`
}

// CoerceQuantity interpreta la cantidad como entero (prefijo numérico, igual que parseInt).
// Texto no numérico, vacío o valores <= 0 valen 1.
func CoerceQuantity(raw string) int {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 1
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n <= 0 {
		return 1
	}
	return n
}

func quantityOf(line Line) decimal.Decimal {
	return decimal.NewFromInt(int64(line.Quantity.Int()))
}

// LineAmount importe sin impuestos: precio unitario × cantidad. Producto no resuelto → 0.
func LineAmount(line Line, catalog Catalog) decimal.Decimal {
	p, ok := catalog.Lookup(line.ProductID)
	if !ok {
		return decimal.Zero
	}
	return p.Price.Mul(quantityOf(line))
}

// LineTax IVA de la línea: precio × cantidad × (porcentaje / 100).
// Producto no resuelto o sin tipo de IVA → 0.
func LineTax(line Line, catalog Catalog) decimal.Decimal {
	p, ok := catalog.Lookup(line.ProductID)
	if !ok || p.IVAType == nil {
		return decimal.Zero
	}
	return p.Price.Mul(quantityOf(line)).Mul(p.IVAType.Percentage).Div(hundred)
}

// Subtotal suma de LineAmount.
func Subtotal(lines []Line, catalog Catalog) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(LineAmount(l, catalog))
	}
	return sum
}

// Tax suma de LineTax.
func Tax(lines []Line, catalog Catalog) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(LineTax(l, catalog))
	}
	return sum
}

// Total Subtotal + Tax.
func Total(lines []Line, catalog Catalog) decimal.Decimal {
	return Subtotal(lines, catalog).Add(Tax(lines, catalog))
}

// Display redondea a 2 decimales (mitad hacia arriba) solo para presentación.
func Display(d decimal.Decimal) string {
	return d.StringFixed(2)
}
