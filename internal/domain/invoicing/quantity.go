package invoicing

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Quantity cantidad en bruto tal como llega del formulario (número o texto).
type Quantity string

// Int aplica CoerceQuantity.
func (q Quantity) Int() int { return CoerceQuantity(string(q)) }

// UnmarshalJSON acepta números, cadenas o null; nunca falla.
func (q *Quantity) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err == nil {
			*q = Quantity(s)
			return nil
		}
	}
	*q = Quantity(b)
	return nil
}

// MarshalJSON emite la cantidad ya normalizada.
func (q Quantity) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(q.Int())), nil
}
