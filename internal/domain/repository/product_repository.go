package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	QuantityStore
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, search string) ([]*entity.Product, error)
	// Update modifica nombre y unidad. No permite modificar Quantity (se maneja vía movimientos).
	Update(ctx context.Context, product *entity.Product) error
	UpdateUnitValue(ctx context.Context, id string, value decimal.Decimal) error
	Delete(ctx context.Context, id string) error
}
