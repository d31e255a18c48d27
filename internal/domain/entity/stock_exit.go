package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockExit movimiento de salida / venta directa de punto de venta (tabla saidas).
type StockExit struct {
	ID              string
	ProductID       string
	Quantity        int64
	UnitCost        decimal.Decimal
	UnitPrice       decimal.Decimal
	UserID          string
	CustomerID      string
	PaymentMethodID string
	SellerID        string
	Date            time.Time
	Description     string
}

// Revenue precio × cantidad.
func (e *StockExit) Revenue() decimal.Decimal {
	return e.UnitPrice.Mul(decimal.NewFromInt(e.Quantity))
}

// Cost costo × cantidad.
func (e *StockExit) Cost() decimal.Decimal {
	return e.UnitCost.Mul(decimal.NewFromInt(e.Quantity))
}

// StockExitDetail fila del listado de salidas con los nombres ya resueltos.
type StockExitDetail struct {
	ID                string
	Quantity          int64
	Date              time.Time
	UserID            string
	UserName          string
	ProductID         string
	ProductName       string
	SellerID          string
	SellerName        string
	CustomerID        string
	CustomerName      string
	PaymentMethodID   string
	PaymentMethodName string
	UnitCost          decimal.Decimal
	UnitPrice         decimal.Decimal
	Description       string
}
