package entity

import "github.com/shopspring/decimal"

// StockItem ítem del estoque ligado a pedidos (tabla estoque).
// Es independiente de Product: las líneas de venta de un pedido descuentan de aquí.
type StockItem struct {
	ID       string
	Name     string
	Quantity int64
	Image    string
	Value    decimal.Decimal
}
