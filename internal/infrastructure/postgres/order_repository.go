package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

var (
	_ repository.OrderRepository    = (*OrderRepo)(nil)
	_ repository.SaleLineRepository = (*SaleLineRepo)(nil)
)

// OrderRepo implementación sobre la tabla pedidos.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, valor, estatus, forma_pagamento`

func (r *OrderRepo) get(ctx context.Context, query, id string) (*entity.Order, error) {
	var o entity.Order
	err := r.q.QueryRow(ctx, query, id).Scan(&o.ID, &o.Total, &o.Status, &o.PaymentMethod)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	return &o, nil
}

func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	_, err := r.q.Exec(ctx, `INSERT INTO pedidos (`+orderColumns+`) VALUES ($1, $2, $3, $4)`,
		o.ID, o.Total, o.Status, o.PaymentMethod)
	if err != nil {
		return fmt.Errorf("insert pedido: %w", err)
	}
	return nil
}

func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	return r.get(ctx, `SELECT `+orderColumns+` FROM pedidos WHERE id = $1`, id)
}

// GetForUpdate bloquea el pedido; serializa las escrituras de sus líneas.
func (r *OrderRepo) GetForUpdate(ctx context.Context, id string) (*entity.Order, error) {
	return r.get(ctx, `SELECT `+orderColumns+` FROM pedidos WHERE id = $1 FOR UPDATE`, id)
}

func (r *OrderRepo) List(ctx context.Context, search string) ([]*entity.Order, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+orderColumns+` FROM pedidos
		WHERE estatus ILIKE $1 OR forma_pagamento ILIKE $1
		ORDER BY id`, likePattern(search))
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	defer rows.Close()
	out := make([]*entity.Order, 0)
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.Total, &o.Status, &o.PaymentMethod); err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		out = append(out, &o)
	}
	return out, rows.Err()
}

func (r *OrderRepo) UpdateStatus(ctx context.Context, id, status, paymentMethod string) error {
	err := affectedOne(r.q.Exec(ctx, `UPDATE pedidos SET estatus = $2, forma_pagamento = $3 WHERE id = $1`,
		id, status, paymentMethod))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("update estatus pedido: %w", err)
	}
	return err
}

func (r *OrderRepo) UpdateTotal(ctx context.Context, id string, total decimal.Decimal) error {
	err := affectedOne(r.q.Exec(ctx, `UPDATE pedidos SET valor = $2 WHERE id = $1`, id, total))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("update valor pedido: %w", err)
	}
	return err
}

func (r *OrderRepo) Delete(ctx context.Context, id string) error {
	err := affectedOne(r.q.Exec(ctx, `DELETE FROM pedidos WHERE id = $1`, id))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("delete pedido: %w", err)
	}
	return err
}

// SaleLineRepo implementación sobre la tabla vendas.
type SaleLineRepo struct {
	q Querier
}

// NewSaleLineRepository construye el adaptador. Pasar pool o tx.
func NewSaleLineRepository(q Querier) *SaleLineRepo {
	return &SaleLineRepo{q: q}
}

const saleLineColumns = `id, cliente_id, estoque_id, quantidade, valor_total, pedido_id`

func scanSaleLines(rows pgx.Rows) ([]*entity.SaleLine, error) {
	defer rows.Close()
	out := make([]*entity.SaleLine, 0)
	for rows.Next() {
		var l entity.SaleLine
		if err := rows.Scan(&l.ID, &l.CustomerID, &l.StockItemID, &l.Quantity, &l.Total, &l.OrderID); err != nil {
			return nil, fmt.Errorf("scan venda: %w", err)
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}

func (r *SaleLineRepo) Create(ctx context.Context, l *entity.SaleLine) error {
	_, err := r.q.Exec(ctx, `INSERT INTO vendas (`+saleLineColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		l.ID, l.CustomerID, l.StockItemID, l.Quantity, l.Total, l.OrderID)
	if err != nil {
		return fmt.Errorf("insert venda: %w", err)
	}
	return nil
}

func (r *SaleLineRepo) GetForUpdate(ctx context.Context, id string) (*entity.SaleLine, error) {
	var l entity.SaleLine
	err := r.q.QueryRow(ctx, `SELECT `+saleLineColumns+` FROM vendas WHERE id = $1 FOR UPDATE`, id).
		Scan(&l.ID, &l.CustomerID, &l.StockItemID, &l.Quantity, &l.Total, &l.OrderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venda: %w", err)
	}
	return &l, nil
}

func (r *SaleLineRepo) Update(ctx context.Context, l *entity.SaleLine) error {
	err := affectedOne(r.q.Exec(ctx, `
		UPDATE vendas SET cliente_id = $2, estoque_id = $3, quantidade = $4, valor_total = $5, pedido_id = $6
		WHERE id = $1`,
		l.ID, l.CustomerID, l.StockItemID, l.Quantity, l.Total, l.OrderID))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("update venda: %w", err)
	}
	return err
}

func (r *SaleLineRepo) Delete(ctx context.Context, id string) error {
	err := affectedOne(r.q.Exec(ctx, `DELETE FROM vendas WHERE id = $1`, id))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("delete venda: %w", err)
	}
	return err
}

func (r *SaleLineRepo) ListByOrder(ctx context.Context, orderID string) ([]*entity.SaleLine, error) {
	rows, err := r.q.Query(ctx, `SELECT `+saleLineColumns+` FROM vendas WHERE pedido_id = $1 ORDER BY id`, orderID)
	if err != nil {
		return nil, fmt.Errorf("list vendas pedido: %w", err)
	}
	return scanSaleLines(rows)
}

func (r *SaleLineRepo) LockByOrder(ctx context.Context, orderID string) ([]*entity.SaleLine, error) {
	rows, err := r.q.Query(ctx, `SELECT `+saleLineColumns+` FROM vendas WHERE pedido_id = $1 ORDER BY id FOR UPDATE`, orderID)
	if err != nil {
		return nil, fmt.Errorf("lock vendas pedido: %w", err)
	}
	return scanSaleLines(rows)
}

func (r *SaleLineRepo) List(ctx context.Context) ([]*entity.SaleLine, error) {
	rows, err := r.q.Query(ctx, `SELECT `+saleLineColumns+` FROM vendas ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list vendas: %w", err)
	}
	return scanSaleLines(rows)
}

// SumByOrder cantidad de líneas y Σ valor_total del pedido.
func (r *SaleLineRepo) SumByOrder(ctx context.Context, orderID string) (int, decimal.Decimal, error) {
	var count int
	var sum decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*)::int, COALESCE(SUM(valor_total), 0)::numeric FROM vendas WHERE pedido_id = $1`, orderID).
		Scan(&count, &sum)
	if err != nil {
		return 0, decimal.Zero, fmt.Errorf("sum vendas pedido: %w", err)
	}
	return count, sum, nil
}
