package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

// AdjustStock aplica un delta firmado a la cantidad de la fila id. Debe llamarse dentro de una
// transacción activa: bloquea la fila (SELECT FOR UPDATE), verifica que el resultado no sea
// negativo y escribe la nueva cantidad. No guarda historial (eso es del movimiento).
func AdjustStock(ctx context.Context, store repository.QuantityStore, id string, delta int64) (int64, error) {
	current, err := store.LockQuantity(ctx, id)
	if err != nil {
		return 0, err
	}
	next := current + delta
	if next < 0 {
		return current, fmt.Errorf("%w: %s tiene %d, ajuste %d", domain.ErrInsufficientStock, id, current, delta)
	}
	if delta == 0 {
		return current, nil
	}
	if err := store.SetQuantity(ctx, id, next); err != nil {
		return current, err
	}
	return next, nil
}

// moveEffect corrige el efecto de un movimiento sobre el stock. oldEffect y newEffect son los
// deltas firmados que el movimiento aplica a su ítem (+cantidad entrada, -cantidad salida).
// Mismo ítem: un único ajuste por la diferencia. Ítems distintos: se revierte el efecto viejo en
// oldID y se aplica el nuevo en newID, bloqueando ambas filas en orden de id para evitar deadlocks.
func moveEffect(ctx context.Context, store repository.QuantityStore, oldID string, oldEffect int64, newID string, newEffect int64) error {
	if oldID == newID {
		_, err := AdjustStock(ctx, store, oldID, newEffect-oldEffect)
		return err
	}
	first, second := oldID, newID
	if second < first {
		first, second = second, first
	}
	if _, err := store.LockQuantity(ctx, first); err != nil {
		return err
	}
	if _, err := store.LockQuantity(ctx, second); err != nil {
		return err
	}
	if _, err := AdjustStock(ctx, store, oldID, -oldEffect); err != nil {
		return err
	}
	_, err := AdjustStock(ctx, store, newID, newEffect)
	return err
}
