package repository

import (
	"context"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/report"
)

// AnalyticsRepository define las consultas de lectura sobre saidas para lucros y cierre de caja.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// ProfitTotals agrega cantidad de ventas, ingreso y costo de las salidas que cumplen todos los filtros presentes.
	ProfitTotals(ctx context.Context, filter entity.ProfitFilter) (entity.ProfitAggregate, error)

	// CashClosing agrupa por nombre de forma de pago las salidas del vendedor dentro del período.
	CashClosing(ctx context.Context, period report.Period, sellerID string) ([]entity.PaymentMethodClosing, error)
}
