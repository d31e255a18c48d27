package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Quantity es el stock inicial.
type CreateProductRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Quantity int64  `json:"quantity" validate:"min=0"`
	Unit     string `json:"unit" validate:"omitempty,max=20"`
}

// UpdateProductRequest entrada para actualizar un producto (sin cantidad ni valor unitario).
type UpdateProductRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=200"`
	Unit *string `json:"unit" validate:"omitempty,max=20"`
}

// ProductResponse salida de un producto. UnitValue es null mientras no haya entradas con valor.
type ProductResponse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Quantity  int64            `json:"quantity"`
	UnitValue *decimal.Decimal `json:"unit_value"`
	Unit      string           `json:"unit"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// AdjustStockRequest delta firmado sobre la cantidad de un producto.
type AdjustStockRequest struct {
	Delta int64 `json:"delta" validate:"required"`
}

// AdjustStockItemResponse cantidad resultante tras el ajuste de un ítem de estoque.
type AdjustStockItemResponse struct {
	StockItemID string `json:"stock_item_id"`
	Quantity    int64  `json:"quantity"`
}

// AdjustStockResponse cantidad resultante tras el ajuste.
type AdjustStockResponse struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// CreateStockItemRequest entrada para crear un ítem de estoque.
type CreateStockItemRequest struct {
	Name     string          `json:"name" validate:"required,min=1,max=200"`
	Quantity int64           `json:"quantity" validate:"min=0"`
	Image    string          `json:"image" validate:"omitempty,max=500"`
	Value    decimal.Decimal `json:"value"`
}

// UpdateStockItemRequest entrada para actualizar un ítem de estoque. La cantidad no se edita aquí:
// cambia con ventas o con POST /api/estoque/:id/ajuste; enviar quantity devuelve 400.
type UpdateStockItemRequest struct {
	Name     *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Image    *string          `json:"image" validate:"omitempty,max=500"`
	Value    *decimal.Decimal `json:"value"`
	Quantity *int64           `json:"quantity"`
}

// StockItemResponse salida de un ítem de estoque.
type StockItemResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity int64           `json:"quantity"`
	Image    string          `json:"image"`
	Value    decimal.Decimal `json:"value"`
}
