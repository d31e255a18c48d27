package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/Estoque-api/internal/domain"
)

// Config opciones del motor de inventario.
type Config struct {
	// PreserveEmptyOrderTotal conserva el total de un pedido cuando se queda sin líneas de venta
	// (comportamiento heredado). En false el total siempre refleja la suma actual, incluido 0.
	PreserveEmptyOrderTotal bool
	// Clock fecha de los movimientos; nil = time.Now.
	Clock func() time.Time
}

// LedgerUseCase motor de consistencia de inventario: ajusta stock, registra movimientos
// (entradas, salidas, líneas de venta) y recalcula totales de pedidos, siempre dentro de una
// única transacción por operación con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
type LedgerUseCase struct {
	txRunner TxRunner
	observer Observer
	cfg      Config
}

// NewLedgerUseCase construye el caso de uso. observer puede ser nil.
func NewLedgerUseCase(txRunner TxRunner, cfg Config, observer Observer) *LedgerUseCase {
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	return &LedgerUseCase{txRunner: txRunner, observer: observer, cfg: cfg}
}

// AdjustProduct aplica un delta firmado al stock de un producto en su propia transacción
// y devuelve la nueva cantidad.
func (uc *LedgerUseCase) AdjustProduct(ctx context.Context, productID string, delta int64) (int64, error) {
	if productID == "" || delta == 0 {
		return 0, domain.ErrInvalidInput
	}
	var quantity int64
	err := uc.txRunner.Run(ctx, func(ctx context.Context, r TxRepos) error {
		q, err := AdjustStock(ctx, r.Products, productID, delta)
		quantity = q
		return err
	})
	uc.observe(KindAdjustment, OpUpdate, err)
	if err != nil {
		return 0, err
	}
	return quantity, nil
}

// AdjustStockItem reposición o baja manual de un ítem de estoque, en su propia transacción.
func (uc *LedgerUseCase) AdjustStockItem(ctx context.Context, itemID string, delta int64) (int64, error) {
	if itemID == "" || delta == 0 {
		return 0, domain.ErrInvalidInput
	}
	var quantity int64
	err := uc.txRunner.Run(ctx, func(ctx context.Context, r TxRepos) error {
		q, err := AdjustStock(ctx, r.StockItems, itemID, delta)
		quantity = q
		return err
	})
	uc.observe(KindAdjustment, OpUpdate, err)
	if err != nil {
		return 0, err
	}
	return quantity, nil
}

func (uc *LedgerUseCase) now() time.Time {
	return uc.cfg.Clock()
}

// observe reporta al observer el resultado de la unidad de trabajo. Los rechazos de negocio
// (stock insuficiente, no encontrado, entrada inválida) se distinguen de los fallos del almacén.
func (uc *LedgerUseCase) observe(kind MovementKind, op Operation, err error) {
	if uc.observer == nil {
		return
	}
	if err == nil {
		uc.observer.MovementApplied(kind, op)
		return
	}
	uc.observer.MovementRejected(kind, op, err)
}

// IsBusinessRejection indica si err es un rechazo de regla de negocio y no un fallo del almacén.
func IsBusinessRejection(err error) bool {
	return errors.Is(err, domain.ErrInsufficientStock) ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrInvalidInput)
}
