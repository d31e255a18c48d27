package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockEntry movimiento de entrada (tabla entradas). Inmutable salvo por corrección explícita.
type StockEntry struct {
	ID        string
	ProductID string
	Quantity  int64
	UnitValue decimal.Decimal
	UserID    string
	Date      time.Time
}

// StockEntryDetail fila del listado de entradas con los nombres ya resueltos.
type StockEntryDetail struct {
	ID          string
	Quantity    int64
	UnitValue   decimal.Decimal
	Date        time.Time
	UserID      string
	UserName    string
	ProductID   string
	ProductName string
	Unit        string
}
