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

var _ repository.StockExitRepository = (*StockExitRepo)(nil)

// StockExitRepo implementación sobre la tabla saidas.
type StockExitRepo struct {
	q Querier
}

// NewStockExitRepository construye el adaptador. Pasar pool o tx.
func NewStockExitRepository(q Querier) *StockExitRepo {
	return &StockExitRepo{q: q}
}

const exitColumns = `id, usuario_id, produto_id, quantidade, data, vendedor_id, "descrição",
	valor_custo, valor_venda, id_cliente, id_forma_pagamento`

func (r *StockExitRepo) Create(ctx context.Context, e *entity.StockExit) error {
	_, err := r.q.Exec(ctx, `INSERT INTO saidas (`+exitColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		e.ID, e.UserID, e.ProductID, e.Quantity, e.Date, e.SellerID, e.Description,
		e.UnitCost, e.UnitPrice, e.CustomerID, e.PaymentMethodID)
	if err != nil {
		return fmt.Errorf("insert saida: %w", err)
	}
	return nil
}

// GetForUpdate lee y bloquea la salida.
func (r *StockExitRepo) GetForUpdate(ctx context.Context, id string) (*entity.StockExit, error) {
	var e entity.StockExit
	err := r.q.QueryRow(ctx, `SELECT `+exitColumns+` FROM saidas WHERE id = $1 FOR UPDATE`, id).
		Scan(&e.ID, &e.UserID, &e.ProductID, &e.Quantity, &e.Date, &e.SellerID, &e.Description,
			&e.UnitCost, &e.UnitPrice, &e.CustomerID, &e.PaymentMethodID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get saida: %w", err)
	}
	return &e, nil
}

func (r *StockExitRepo) Update(ctx context.Context, e *entity.StockExit) error {
	err := affectedOne(r.q.Exec(ctx, `
		UPDATE saidas SET usuario_id = $2, produto_id = $3, quantidade = $4, vendedor_id = $5, "descrição" = $6,
		       valor_custo = $7, valor_venda = $8, id_cliente = $9, id_forma_pagamento = $10
		WHERE id = $1`,
		e.ID, e.UserID, e.ProductID, e.Quantity, e.SellerID, e.Description,
		e.UnitCost, e.UnitPrice, e.CustomerID, e.PaymentMethodID))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("update saida: %w", err)
	}
	return err
}

func (r *StockExitRepo) Delete(ctx context.Context, id string) error {
	err := affectedOne(r.q.Exec(ctx, `DELETE FROM saidas WHERE id = $1`, id))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("delete saida: %w", err)
	}
	return err
}

// List salidas con todos los nombres resueltos, más recientes primero.
func (r *StockExitRepo) List(ctx context.Context, day *time.Time) ([]entity.StockExitDetail, error) {
	b := newPredicateBuilder()
	if day != nil {
		b.add("s.data::date = $%d::date", day.Format("2006-01-02"))
	}
	query := `
		SELECT s.id, s.quantidade, s.data, s.usuario_id, COALESCE(u.nome, fu.nome, ''),
		       s.produto_id, p.nome, s.vendedor_id, v.nome, s.id_cliente, c.nome,
		       s.id_forma_pagamento, f.nome, s.valor_custo, s.valor_venda, s."descrição"
		FROM saidas s
		JOIN produtos p           ON p.id = s.produto_id
		JOIN vendedores v         ON v.id = s.vendedor_id
		JOIN clientes c           ON c.id = s.id_cliente
		JOIN formas_pagamentos f  ON f.id = s.id_forma_pagamento
		LEFT JOIN usuarios u      ON u.id = s.usuario_id
		LEFT JOIN funcionarios fu ON fu.id = s.usuario_id` + b.where() + `
		ORDER BY s.data DESC`
	rows, err := r.q.Query(ctx, query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("list saidas: %w", err)
	}
	defer rows.Close()
	out := make([]entity.StockExitDetail, 0)
	for rows.Next() {
		var d entity.StockExitDetail
		if err := rows.Scan(&d.ID, &d.Quantity, &d.Date, &d.UserID, &d.UserName,
			&d.ProductID, &d.ProductName, &d.SellerID, &d.SellerName, &d.CustomerID, &d.CustomerName,
			&d.PaymentMethodID, &d.PaymentMethodName, &d.UnitCost, &d.UnitPrice, &d.Description); err != nil {
			return nil, fmt.Errorf("scan saida: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
