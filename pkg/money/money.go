// Package money formatea importes para mostrar según la configuración regional.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter formatea importes con 2 decimales, redondeo mitad hacia arriba y separadores locales.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

// NewFormatter construye un formateador para la etiqueta BCP 47 (ej. "es-ES").
// Etiquetas no válidas usan es-ES.
func NewFormatter(locale, symbol string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Spanish
	}
	return &Formatter{printer: message.NewPrinter(tag), symbol: symbol}
}

// Format devuelve el importe redondeado a 2 decimales, por ejemplo "242,00 €".
func (f *Formatter) Format(d decimal.Decimal) string {
	rounded := d.Round(2)
	s := f.printer.Sprint(number.Decimal(rounded.InexactFloat64(), number.Scale(2)))
	if f.symbol == "" {
		return s
	}
	return s + " " + f.symbol
}
