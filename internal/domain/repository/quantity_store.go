package repository

import "context"

// QuantityStore puerto mínimo que necesita el ajuste de stock: leer la cantidad
// bloqueando la fila (SELECT FOR UPDATE) y escribir la nueva cantidad.
// Lo implementan productos (produtos) e ítems de estoque (estoque).
type QuantityStore interface {
	// LockQuantity devuelve domain.ErrNotFound si la fila no existe.
	LockQuantity(ctx context.Context, id string) (int64, error)
	SetQuantity(ctx context.Context, id string, quantity int64) error
}
