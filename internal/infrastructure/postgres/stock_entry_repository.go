package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

var _ repository.StockEntryRepository = (*StockEntryRepo)(nil)

// StockEntryRepo implementación sobre la tabla entradas.
type StockEntryRepo struct {
	q Querier
}

// NewStockEntryRepository construye el adaptador. Pasar pool o tx.
func NewStockEntryRepository(q Querier) *StockEntryRepo {
	return &StockEntryRepo{q: q}
}

func (r *StockEntryRepo) Create(ctx context.Context, e *entity.StockEntry) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO entradas (id, usuario_id, produto_id, quantidade, valor, data) VALUES ($1, $2, $3, $4, $5, $6)`,
		e.ID, e.UserID, e.ProductID, e.Quantity, e.UnitValue, e.Date)
	if err != nil {
		return fmt.Errorf("insert entrada: %w", err)
	}
	return nil
}

// GetForUpdate lee y bloquea la entrada.
func (r *StockEntryRepo) GetForUpdate(ctx context.Context, id string) (*entity.StockEntry, error) {
	var e entity.StockEntry
	err := r.q.QueryRow(ctx,
		`SELECT id, usuario_id, produto_id, quantidade, valor, data FROM entradas WHERE id = $1 FOR UPDATE`, id).
		Scan(&e.ID, &e.UserID, &e.ProductID, &e.Quantity, &e.UnitValue, &e.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get entrada: %w", err)
	}
	return &e, nil
}

func (r *StockEntryRepo) Update(ctx context.Context, e *entity.StockEntry) error {
	err := affectedOne(r.q.Exec(ctx,
		`UPDATE entradas SET usuario_id = $2, produto_id = $3, quantidade = $4, valor = $5 WHERE id = $1`,
		e.ID, e.UserID, e.ProductID, e.Quantity, e.UnitValue))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("update entrada: %w", err)
	}
	return err
}

func (r *StockEntryRepo) Delete(ctx context.Context, id string) error {
	err := affectedOne(r.q.Exec(ctx, `DELETE FROM entradas WHERE id = $1`, id))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("delete entrada: %w", err)
	}
	return err
}

// List entradas con nombres de producto y actor, más recientes primero.
func (r *StockEntryRepo) List(ctx context.Context, day *time.Time) ([]entity.StockEntryDetail, error) {
	b := newPredicateBuilder()
	if day != nil {
		b.add("e.data::date = $%d::date", day.Format("2006-01-02"))
	}
	query := `
		SELECT e.id, e.quantidade, e.valor, e.data, e.usuario_id, COALESCE(u.nome, f.nome, ''),
		       e.produto_id, p.nome, p.unidade
		FROM entradas e
		JOIN produtos p          ON p.id = e.produto_id
		LEFT JOIN usuarios u     ON u.id = e.usuario_id
		LEFT JOIN funcionarios f ON f.id = e.usuario_id` + b.where() + `
		ORDER BY e.data DESC`
	rows, err := r.q.Query(ctx, query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("list entradas: %w", err)
	}
	defer rows.Close()
	out := make([]entity.StockEntryDetail, 0)
	for rows.Next() {
		var d entity.StockEntryDetail
		if err := rows.Scan(&d.ID, &d.Quantity, &d.UnitValue, &d.Date, &d.UserID, &d.UserName,
			&d.ProductID, &d.ProductName, &d.Unit); err != nil {
			return nil, fmt.Errorf("scan entrada: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
