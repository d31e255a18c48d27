package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/report"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura sobre saidas para lucros y cierre de caja.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// ProfitTotals cantidad de salidas, ingreso (precio × cantidad) y costo (costo × cantidad).
// Todos los filtros presentes se combinan con AND.
func (r *AnalyticsRepo) ProfitTotals(ctx context.Context, filter entity.ProfitFilter) (entity.ProfitAggregate, error) {
	b := profitPredicates(filter)
	query := `
		SELECT COUNT(*)::int,
		       COALESCE(SUM(s.valor_venda * s.quantidade), 0)::numeric,
		       COALESCE(SUM(s.valor_custo * s.quantidade), 0)::numeric
		FROM saidas s` + b.where()

	var agg entity.ProfitAggregate
	if err := r.q.QueryRow(ctx, query, b.args...).Scan(&agg.SalesCount, &agg.Revenue, &agg.Cost); err != nil {
		return entity.ProfitAggregate{}, fmt.Errorf("profit totals: %w", err)
	}
	return agg, nil
}

// CashClosing agrupa por nombre de forma de pago las salidas dentro del período.
// sellerID vacío incluye a todos los vendedores.
func (r *AnalyticsRepo) CashClosing(ctx context.Context, period report.Period, sellerID string) ([]entity.PaymentMethodClosing, error) {
	b := periodPredicates(period, sellerID)
	query := `
		SELECT f.nome,
		       COALESCE(SUM(s.valor_venda * s.quantidade), 0)::numeric,
		       COALESCE(SUM(s.valor_custo * s.quantidade), 0)::numeric
		FROM saidas s
		JOIN formas_pagamentos f ON f.id = s.id_forma_pagamento` + b.where() + `
		GROUP BY f.nome
		ORDER BY f.nome`
	rows, err := r.q.Query(ctx, query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("cash closing: %w", err)
	}
	defer rows.Close()

	out := make([]entity.PaymentMethodClosing, 0)
	for rows.Next() {
		var c entity.PaymentMethodClosing
		if err := rows.Scan(&c.PaymentMethod, &c.Total, &c.Cost); err != nil {
			return nil, fmt.Errorf("scan cash closing: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
