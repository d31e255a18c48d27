package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProfitFilter filtros opcionales del reporte de lucros. Vacío/nil = sin filtro.
type ProfitFilter struct {
	SellerID        string
	ProductID       string
	CustomerID      string
	PaymentMethodID string
	DateMin         *time.Time
	DateMax         *time.Time // inclusive
	DateBefore      *time.Time // exclusiva: inicio del día siguiente cuando date_max llega sin hora
}

// ProfitAggregate resultado crudo de la agregación sobre saidas.
type ProfitAggregate struct {
	SalesCount int
	Revenue    decimal.Decimal // Σ precio × cantidad
	Cost       decimal.Decimal // Σ costo × cantidad
}

// PaymentMethodClosing totales de un período agrupados por nombre de forma de pago.
type PaymentMethodClosing struct {
	PaymentMethod string
	Total         decimal.Decimal
	Cost          decimal.Decimal
}
