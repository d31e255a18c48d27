package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

// OrderRepository puerto de persistencia para pedidos.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	// GetForUpdate bloquea la fila del pedido; (nil, nil) si no existe.
	GetForUpdate(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context, search string) ([]*entity.Order, error)
	// UpdateStatus modifica estado y forma de pago. El total nunca se fija desde fuera del motor.
	UpdateStatus(ctx context.Context, id, status, paymentMethod string) error
	UpdateTotal(ctx context.Context, id string, total decimal.Decimal) error
	Delete(ctx context.Context, id string) error
}

// SaleLineRepository puerto de persistencia para líneas de venta de pedidos.
type SaleLineRepository interface {
	Create(ctx context.Context, line *entity.SaleLine) error
	// GetForUpdate devuelve (nil, nil) si la línea no existe.
	GetForUpdate(ctx context.Context, id string) (*entity.SaleLine, error)
	Update(ctx context.Context, line *entity.SaleLine) error
	Delete(ctx context.Context, id string) error
	ListByOrder(ctx context.Context, orderID string) ([]*entity.SaleLine, error)
	// LockByOrder lista las líneas del pedido bloqueándolas (FOR UPDATE) en orden de id.
	LockByOrder(ctx context.Context, orderID string) ([]*entity.SaleLine, error)
	List(ctx context.Context) ([]*entity.SaleLine, error)
	// SumByOrder devuelve cantidad de líneas y Σ total de las líneas del pedido.
	SumByOrder(ctx context.Context, orderID string) (int, decimal.Decimal, error)
}
