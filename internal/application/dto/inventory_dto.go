package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryRequest body para POST/PUT /api/entradas. UserID lo completa el handler con el funcionario autenticado si viene vacío.
type EntryRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  int64           `json:"quantity" validate:"required,gt=0"`
	UnitValue decimal.Decimal `json:"unit_value"`
	UserID    string          `json:"user_id"`
}

// EntryResponse entrada registrada.
type EntryResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitValue decimal.Decimal `json:"unit_value"`
	UserID    string          `json:"user_id"`
	Date      time.Time       `json:"date"`
}

// EntryDetailResponse fila del listado de entradas con nombres resueltos.
type EntryDetailResponse struct {
	EntryResponse
	UserName    string `json:"user_name"`
	ProductName string `json:"product_name"`
	Unit        string `json:"unit"`
}

// ExitRequest body para POST/PUT /api/saidas.
type ExitRequest struct {
	ProductID       string          `json:"product_id" validate:"required"`
	Quantity        int64           `json:"quantity" validate:"required,gt=0"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	UserID          string          `json:"user_id"`
	CustomerID      string          `json:"customer_id" validate:"required"`
	PaymentMethodID string          `json:"payment_method_id" validate:"required"`
	SellerID        string          `json:"seller_id" validate:"required"`
	Description     string          `json:"description" validate:"omitempty,max=500"`
}

// ExitResponse salida registrada.
type ExitResponse struct {
	ID              string          `json:"id"`
	ProductID       string          `json:"product_id"`
	Quantity        int64           `json:"quantity"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	UserID          string          `json:"user_id"`
	CustomerID      string          `json:"customer_id"`
	PaymentMethodID string          `json:"payment_method_id"`
	SellerID        string          `json:"seller_id"`
	Date            time.Time       `json:"date"`
	Description     string          `json:"description"`
}

// ExitDetailResponse fila del listado de salidas con nombres resueltos.
type ExitDetailResponse struct {
	ExitResponse
	UserName          string `json:"user_name"`
	ProductName       string `json:"product_name"`
	SellerName        string `json:"seller_name"`
	CustomerName      string `json:"customer_name"`
	PaymentMethodName string `json:"payment_method_name"`
}

// SaleRequest body para POST/PUT /api/vendas.
type SaleRequest struct {
	OrderID     string          `json:"order_id" validate:"required"`
	CustomerID  string          `json:"customer_id" validate:"required"`
	StockItemID string          `json:"stock_item_id" validate:"required"`
	Quantity    int64           `json:"quantity" validate:"required,gt=0"`
	Total       decimal.Decimal `json:"total"`
}

// SaleLineResponse línea de venta.
type SaleLineResponse struct {
	ID          string          `json:"id"`
	OrderID     string          `json:"order_id"`
	CustomerID  string          `json:"customer_id"`
	StockItemID string          `json:"stock_item_id"`
	Quantity    int64           `json:"quantity"`
	Total       decimal.Decimal `json:"total"`
}

// ReplenishmentSuggestionDTO sugerencia de reposición para un producto por debajo del punto de reorden.
type ReplenishmentSuggestionDTO struct {
	ProductID          string          `json:"product_id"`
	ProductName        string          `json:"product_name"`
	Unit               string          `json:"unit"`
	CurrentStock       int64           `json:"current_stock"`
	ReorderPoint       int64           `json:"reorder_point"`
	IdealStock         int64           `json:"ideal_stock"`          // ReorderPoint * 1.5
	SuggestedOrderQty  int64           `json:"suggested_order_qty"`  // IdealStock - CurrentStock
	UnitValue          decimal.Decimal `json:"unit_value"`           // costo promedio ponderado
	EstimatedOrderCost decimal.Decimal `json:"estimated_order_cost"` // SuggestedOrderQty * UnitValue
	Priority           int             `json:"priority"`             // 1 = más urgente
}
