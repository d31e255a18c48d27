package repository

import (
	"context"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

// StockItemRepository puerto de persistencia para los ítems de estoque ligados a pedidos.
type StockItemRepository interface {
	QuantityStore
	Create(ctx context.Context, item *entity.StockItem) error
	GetByID(ctx context.Context, id string) (*entity.StockItem, error)
	List(ctx context.Context, search string) ([]*entity.StockItem, error)
	// Update modifica nombre, imagen y valor; la cantidad sólo cambia con ventas.
	Update(ctx context.Context, item *entity.StockItem) error
	Delete(ctx context.Context, id string) error
}
