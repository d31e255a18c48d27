package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

var _ repository.StockItemRepository = (*StockItemRepo)(nil)

// StockItemRepo implementación sobre la tabla estoque.
type StockItemRepo struct {
	q Querier
}

// NewStockItemRepository construye el adaptador. Pasar pool o tx.
func NewStockItemRepository(q Querier) *StockItemRepo {
	return &StockItemRepo{q: q}
}

const stockItemColumns = `id, nome, quantidade, imagem, valor`

func (r *StockItemRepo) LockQuantity(ctx context.Context, id string) (int64, error) {
	var q int64
	err := r.q.QueryRow(ctx, `SELECT quantidade FROM estoque WHERE id = $1 FOR UPDATE`, id).Scan(&q)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("estoque %s: %w", id, domain.ErrNotFound)
		}
		return 0, fmt.Errorf("lock estoque: %w", err)
	}
	return q, nil
}

func (r *StockItemRepo) SetQuantity(ctx context.Context, id string, quantity int64) error {
	err := affectedOne(r.q.Exec(ctx, `UPDATE estoque SET quantidade = $2 WHERE id = $1`, id, quantity))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("set quantidade estoque: %w", err)
	}
	return err
}

func (r *StockItemRepo) Create(ctx context.Context, it *entity.StockItem) error {
	_, err := r.q.Exec(ctx, `INSERT INTO estoque (`+stockItemColumns+`) VALUES ($1, $2, $3, $4, $5)`,
		it.ID, it.Name, it.Quantity, it.Image, it.Value)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert estoque: %w", err)
	}
	return nil
}

func (r *StockItemRepo) GetByID(ctx context.Context, id string) (*entity.StockItem, error) {
	var it entity.StockItem
	err := r.q.QueryRow(ctx, `SELECT `+stockItemColumns+` FROM estoque WHERE id = $1`, id).
		Scan(&it.ID, &it.Name, &it.Quantity, &it.Image, &it.Value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get estoque: %w", err)
	}
	return &it, nil
}

func (r *StockItemRepo) List(ctx context.Context, search string) ([]*entity.StockItem, error) {
	rows, err := r.q.Query(ctx, `SELECT `+stockItemColumns+` FROM estoque WHERE nome ILIKE $1 ORDER BY nome`, likePattern(search))
	if err != nil {
		return nil, fmt.Errorf("list estoque: %w", err)
	}
	defer rows.Close()
	out := make([]*entity.StockItem, 0)
	for rows.Next() {
		var it entity.StockItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Quantity, &it.Image, &it.Value); err != nil {
			return nil, fmt.Errorf("scan estoque: %w", err)
		}
		out = append(out, &it)
	}
	return out, rows.Err()
}

func (r *StockItemRepo) Update(ctx context.Context, it *entity.StockItem) error {
	err := affectedOne(r.q.Exec(ctx, `UPDATE estoque SET nome = $2, imagem = $3, valor = $4 WHERE id = $1`,
		it.ID, it.Name, it.Image, it.Value))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("update estoque: %w", err)
	}
	return err
}

func (r *StockItemRepo) Delete(ctx context.Context, id string) error {
	err := affectedOne(r.q.Exec(ctx, `DELETE FROM estoque WHERE id = $1`, id))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("delete estoque: %w", err)
	}
	return err
}
