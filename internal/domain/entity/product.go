package entity

import "github.com/shopspring/decimal"

// IVAType tipo de impuesto con su porcentaje (21 = 21 %).
type IVAType struct {
	ID          int             `json:"id,omitempty"`
	Percentage  decimal.Decimal `json:"percentage"`
	Description string          `json:"description"`
}

// ProductService elemento facturable del catálogo. IVAType puede faltar: la línea no tributa.
type ProductService struct {
	ID          int             `json:"id,omitempty"`
	IVATypeID   *int            `json:"ivaTypeId,omitempty"`
	IVAType     *IVAType        `json:"ivaType,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Type        ProductType     `json:"type"`
	Status      Status          `json:"status"`
}
