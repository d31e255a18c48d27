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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre produtos (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, nome, quantidade, valor, unidade, criado_em, atualizado_em`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var value decimal.NullDecimal
	if err := row.Scan(&p.ID, &p.Name, &p.Quantity, &value, &p.Unit, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if value.Valid {
		v := value.Decimal
		p.UnitValue = &v
	}
	return &p, nil
}

// LockQuantity lee la cantidad bloqueando la fila hasta el fin de la transacción.
func (r *ProductRepo) LockQuantity(ctx context.Context, id string) (int64, error) {
	var q int64
	err := r.q.QueryRow(ctx, `SELECT quantidade FROM produtos WHERE id = $1 FOR UPDATE`, id).Scan(&q)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("produto %s: %w", id, domain.ErrNotFound)
		}
		return 0, fmt.Errorf("lock produto: %w", err)
	}
	return q, nil
}

// SetQuantity escribe la nueva cantidad.
func (r *ProductRepo) SetQuantity(ctx context.Context, id string, quantity int64) error {
	err := affectedOne(r.q.Exec(ctx, `UPDATE produtos SET quantidade = $2, atualizado_em = now() WHERE id = $1`, id, quantity))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("set quantidade produto: %w", err)
	}
	return err
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `INSERT INTO produtos (` + productColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	var value any
	if p.UnitValue != nil {
		value = *p.UnitValue
	}
	_, err := r.q.Exec(ctx, query, p.ID, p.Name, p.Quantity, value, p.Unit, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM produtos WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return p, nil
}

// List lista productos por nombre (ILIKE).
func (r *ProductRepo) List(ctx context.Context, search string) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM produtos WHERE nome ILIKE $1 ORDER BY nome`, likePattern(search))
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()
	out := make([]*entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Update modifica nombre y unidad.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	err := affectedOne(r.q.Exec(ctx,
		`UPDATE produtos SET nome = $2, unidade = $3, atualizado_em = $4 WHERE id = $1`,
		p.ID, p.Name, p.Unit, p.UpdatedAt))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("update produto: %w", err)
	}
	return err
}

// UpdateUnitValue fija el valor unitario (costo promedio).
func (r *ProductRepo) UpdateUnitValue(ctx context.Context, id string, value decimal.Decimal) error {
	err := affectedOne(r.q.Exec(ctx, `UPDATE produtos SET valor = $2, atualizado_em = now() WHERE id = $1`, id, value))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("update valor produto: %w", err)
	}
	return err
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	err := affectedOne(r.q.Exec(ctx, `DELETE FROM produtos WHERE id = $1`, id))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("delete produto: %w", err)
	}
	return err
}
