package inventory

import (
	"context"

	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

// TxRepos repositorios atados a una misma transacción de BD.
type TxRepos struct {
	Products   repository.ProductRepository
	StockItems repository.StockItemRepository
	Entries    repository.StockEntryRepository
	Exits      repository.StockExitRepository
	Orders     repository.OrderRepository
	SaleLines  repository.SaleLineRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza atomicidad para el motor de inventario: Commit si fn devuelve nil, Rollback en otro caso.
type TxRunner interface {
	Run(ctx context.Context, fn func(ctx context.Context, repos TxRepos) error) error
}

// MovementKind familia de operación del motor (etiqueta de métricas).
type MovementKind string

const (
	KindAdjustment MovementKind = "adjustment"
	KindEntry      MovementKind = "entry"
	KindExit       MovementKind = "exit"
	KindSale       MovementKind = "sale"
	KindOrder      MovementKind = "order"
)

// Operation tipo de escritura sobre un movimiento.
type Operation string

const (
	OpCreate    Operation = "create"
	OpUpdate    Operation = "update"
	OpDelete    Operation = "delete"
	OpRecompute Operation = "recompute"
)

// Observer recibe el resultado de cada unidad de trabajo del motor (p.ej. métricas Prometheus).
type Observer interface {
	MovementApplied(kind MovementKind, op Operation)
	MovementRejected(kind MovementKind, op Operation, err error)
}
