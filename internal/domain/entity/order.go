package entity

import "github.com/shopspring/decimal"

// Estados de pedido. El motor no gobierna transiciones; sólo crea pedidos pendientes.
const (
	OrderStatusPending = "pendente"
)

// Order pedido (tabla pedidos). Total es derivado de sus líneas de venta y nunca lo fija el cliente.
type Order struct {
	ID            string
	Total         decimal.Decimal
	Status        string
	PaymentMethod string
}

// SaleLine línea de venta ligada a un pedido (tabla vendas).
type SaleLine struct {
	ID          string
	CustomerID  string
	StockItemID string
	Quantity    int64
	Total       decimal.Decimal
	OrderID     string
}
