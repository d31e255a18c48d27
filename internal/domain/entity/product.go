package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultUnit unidad de medida asignada cuando el producto se crea sin una.
const DefaultUnit = "Unit."

// Product representa un producto del catálogo de punto de venta (tabla produtos).
// Quantity sólo cambia a través del motor de inventario (entradas y salidas).
// UnitValue es nil mientras no se haya registrado ninguna entrada con valor.
type Product struct {
	ID        string
	Name      string
	Quantity  int64
	UnitValue *decimal.Decimal
	Unit      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
