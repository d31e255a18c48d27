package memory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/report"
)

// AnalyticsRepository implementa repository.AnalyticsRepository recorriendo las salidas.
type AnalyticsRepository struct{ view }

func (r *AnalyticsRepository) ProfitTotals(_ context.Context, f entity.ProfitFilter) (entity.ProfitAggregate, error) {
	agg := entity.ProfitAggregate{Revenue: decimal.Zero, Cost: decimal.Zero}
	err := r.read(func(st *state) error {
		for _, e := range st.exits {
			if f.SellerID != "" && e.SellerID != f.SellerID {
				continue
			}
			if f.ProductID != "" && e.ProductID != f.ProductID {
				continue
			}
			if f.CustomerID != "" && e.CustomerID != f.CustomerID {
				continue
			}
			if f.PaymentMethodID != "" && e.PaymentMethodID != f.PaymentMethodID {
				continue
			}
			if f.DateMin != nil && e.Date.Before(*f.DateMin) {
				continue
			}
			if f.DateMax != nil && e.Date.After(*f.DateMax) {
				continue
			}
			if f.DateBefore != nil && !e.Date.Before(*f.DateBefore) {
				continue
			}
			agg.SalesCount++
			agg.Revenue = agg.Revenue.Add(e.Revenue())
			agg.Cost = agg.Cost.Add(e.Cost())
		}
		return nil
	})
	return agg, err
}

func (r *AnalyticsRepository) CashClosing(_ context.Context, period report.Period, sellerID string) ([]entity.PaymentMethodClosing, error) {
	byName := map[string]*entity.PaymentMethodClosing{}
	err := r.read(func(st *state) error {
		for _, e := range st.exits {
			if sellerID != "" && e.SellerID != sellerID {
				continue
			}
			if !period.Contains(e.Date) {
				continue
			}
			pm, ok := st.paymentMethods[e.PaymentMethodID]
			if !ok {
				continue
			}
			row, ok := byName[pm.Name]
			if !ok {
				row = &entity.PaymentMethodClosing{PaymentMethod: pm.Name, Total: decimal.Zero, Cost: decimal.Zero}
				byName[pm.Name] = row
			}
			row.Total = row.Total.Add(e.Revenue())
			row.Cost = row.Cost.Add(e.Cost())
		}
		return nil
	})
	out := make([]entity.PaymentMethodClosing, 0, len(byName))
	for _, row := range byName {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PaymentMethod < out[j].PaymentMethod })
	return out, err
}
