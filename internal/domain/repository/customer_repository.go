package repository

import (
	"context"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	List(ctx context.Context, search string) ([]*entity.Customer, error)
}

// SellerRepository consultas de vendedores (sólo lectura).
type SellerRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Seller, error)
	List(ctx context.Context, search string) ([]*entity.Seller, error)
}

// PaymentMethodRepository consultas de formas de pago (sólo lectura).
type PaymentMethodRepository interface {
	List(ctx context.Context, search string) ([]*entity.PaymentMethod, error)
}
