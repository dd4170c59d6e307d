package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/memberflow-console/pkg/money"
)

func TestFormat_Espanol(t *testing.T) {
	f := money.NewFormatter("es-ES", "€")
	assert.Equal(t, "242,00 €", f.Format(decimal.RequireFromString("242")))
	assert.Equal(t, "0,13 €", f.Format(decimal.RequireFromString("0.125")))
}

func TestFormat_Ingles(t *testing.T) {
	f := money.NewFormatter("en-US", "")
	assert.Equal(t, "1,234.50", f.Format(decimal.RequireFromString("1234.5")))
}
