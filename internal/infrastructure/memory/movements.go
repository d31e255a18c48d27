package memory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

func sameDay(a, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}

// StockEntryRepository implementa repository.StockEntryRepository.
type StockEntryRepository struct{ view }

func (r *StockEntryRepository) Create(_ context.Context, entry *entity.StockEntry) error {
	return r.write("entradas.create", func(st *state) error {
		st.entries[entry.ID] = *entry
		return nil
	})
}

func (r *StockEntryRepository) GetForUpdate(_ context.Context, id string) (*entity.StockEntry, error) {
	var out *entity.StockEntry
	err := r.read(func(st *state) error {
		if e, ok := st.entries[id]; ok {
			out = &e
		}
		return nil
	})
	return out, err
}

func (r *StockEntryRepository) Update(_ context.Context, entry *entity.StockEntry) error {
	return r.write("entradas.update", func(st *state) error {
		if _, ok := st.entries[entry.ID]; !ok {
			return domain.ErrNotFound
		}
		st.entries[entry.ID] = *entry
		return nil
	})
}

func (r *StockEntryRepository) Delete(_ context.Context, id string) error {
	return r.write("entradas.delete", func(st *state) error {
		if _, ok := st.entries[id]; !ok {
			return domain.ErrNotFound
		}
		delete(st.entries, id)
		return nil
	})
}

func (r *StockEntryRepository) List(_ context.Context, day *time.Time) ([]entity.StockEntryDetail, error) {
	out := make([]entity.StockEntryDetail, 0)
	err := r.read(func(st *state) error {
		for _, e := range st.entries {
			if day != nil && !sameDay(e.Date, *day) {
				continue
			}
			p := st.products[e.ProductID]
			out = append(out, entity.StockEntryDetail{
				ID:          e.ID,
				Quantity:    e.Quantity,
				UnitValue:   e.UnitValue,
				Date:        e.Date,
				UserID:      e.UserID,
				UserName:    actorName(st, e.UserID),
				ProductID:   e.ProductID,
				ProductName: p.Name,
				Unit:        p.Unit,
			})
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, err
}

// StockExitRepository implementa repository.StockExitRepository.
type StockExitRepository struct{ view }

func (r *StockExitRepository) Create(_ context.Context, exit *entity.StockExit) error {
	return r.write("saidas.create", func(st *state) error {
		st.exits[exit.ID] = *exit
		return nil
	})
}

func (r *StockExitRepository) GetForUpdate(_ context.Context, id string) (*entity.StockExit, error) {
	var out *entity.StockExit
	err := r.read(func(st *state) error {
		if e, ok := st.exits[id]; ok {
			out = &e
		}
		return nil
	})
	return out, err
}

func (r *StockExitRepository) Update(_ context.Context, exit *entity.StockExit) error {
	return r.write("saidas.update", func(st *state) error {
		if _, ok := st.exits[exit.ID]; !ok {
			return domain.ErrNotFound
		}
		st.exits[exit.ID] = *exit
		return nil
	})
}

func (r *StockExitRepository) Delete(_ context.Context, id string) error {
	return r.write("saidas.delete", func(st *state) error {
		if _, ok := st.exits[id]; !ok {
			return domain.ErrNotFound
		}
		delete(st.exits, id)
		return nil
	})
}

func (r *StockExitRepository) List(_ context.Context, day *time.Time) ([]entity.StockExitDetail, error) {
	out := make([]entity.StockExitDetail, 0)
	err := r.read(func(st *state) error {
		for _, e := range st.exits {
			if day != nil && !sameDay(e.Date, *day) {
				continue
			}
			out = append(out, entity.StockExitDetail{
				ID:                e.ID,
				Quantity:          e.Quantity,
				Date:              e.Date,
				UserID:            e.UserID,
				UserName:          actorName(st, e.UserID),
				ProductID:         e.ProductID,
				ProductName:       st.products[e.ProductID].Name,
				SellerID:          e.SellerID,
				SellerName:        st.sellers[e.SellerID].Name,
				CustomerID:        e.CustomerID,
				CustomerName:      st.customers[e.CustomerID].Name,
				PaymentMethodID:   e.PaymentMethodID,
				PaymentMethodName: st.paymentMethods[e.PaymentMethodID].Name,
				UnitCost:          e.UnitCost,
				UnitPrice:         e.UnitPrice,
				Description:       e.Description,
			})
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, err
}

// OrderRepository implementa repository.OrderRepository.
type OrderRepository struct{ view }

func (r *OrderRepository) Create(_ context.Context, order *entity.Order) error {
	return r.write("pedidos.create", func(st *state) error {
		st.orders[order.ID] = *order
		return nil
	})
}

func (r *OrderRepository) GetByID(_ context.Context, id string) (*entity.Order, error) {
	var out *entity.Order
	err := r.read(func(st *state) error {
		if o, ok := st.orders[id]; ok {
			out = &o
		}
		return nil
	})
	return out, err
}

func (r *OrderRepository) GetForUpdate(ctx context.Context, id string) (*entity.Order, error) {
	return r.GetByID(ctx, id)
}

func (r *OrderRepository) List(_ context.Context, search string) ([]*entity.Order, error) {
	var out []*entity.Order
	err := r.read(func(st *state) error {
		out = sortedValues(st.orders, func(o entity.Order) string { return o.ID }, "")
		filtered := out[:0]
		for _, o := range out {
			if matches(o.Status, search) || matches(o.PaymentMethod, search) {
				filtered = append(filtered, o)
			}
		}
		out = filtered
		return nil
	})
	return out, err
}

func (r *OrderRepository) UpdateStatus(_ context.Context, id, status, paymentMethod string) error {
	return r.write("pedidos.update_status", func(st *state) error {
		o, ok := st.orders[id]
		if !ok {
			return domain.ErrNotFound
		}
		o.Status = status
		o.PaymentMethod = paymentMethod
		st.orders[id] = o
		return nil
	})
}

func (r *OrderRepository) UpdateTotal(_ context.Context, id string, total decimal.Decimal) error {
	return r.write("pedidos.update_total", func(st *state) error {
		o, ok := st.orders[id]
		if !ok {
			return domain.ErrNotFound
		}
		o.Total = total
		st.orders[id] = o
		return nil
	})
}

func (r *OrderRepository) Delete(_ context.Context, id string) error {
	return r.write("pedidos.delete", func(st *state) error {
		if _, ok := st.orders[id]; !ok {
			return domain.ErrNotFound
		}
		delete(st.orders, id)
		return nil
	})
}

// SaleLineRepository implementa repository.SaleLineRepository.
type SaleLineRepository struct{ view }

func (r *SaleLineRepository) Create(_ context.Context, line *entity.SaleLine) error {
	return r.write("vendas.create", func(st *state) error {
		st.saleLines[line.ID] = *line
		return nil
	})
}

func (r *SaleLineRepository) GetForUpdate(_ context.Context, id string) (*entity.SaleLine, error) {
	var out *entity.SaleLine
	err := r.read(func(st *state) error {
		if l, ok := st.saleLines[id]; ok {
			out = &l
		}
		return nil
	})
	return out, err
}

func (r *SaleLineRepository) Update(_ context.Context, line *entity.SaleLine) error {
	return r.write("vendas.update", func(st *state) error {
		if _, ok := st.saleLines[line.ID]; !ok {
			return domain.ErrNotFound
		}
		st.saleLines[line.ID] = *line
		return nil
	})
}

func (r *SaleLineRepository) Delete(_ context.Context, id string) error {
	return r.write("vendas.delete", func(st *state) error {
		if _, ok := st.saleLines[id]; !ok {
			return domain.ErrNotFound
		}
		delete(st.saleLines, id)
		return nil
	})
}

func (r *SaleLineRepository) ListByOrder(ctx context.Context, orderID string) ([]*entity.SaleLine, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.SaleLine, 0)
	for _, l := range all {
		if l.OrderID == orderID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *SaleLineRepository) LockByOrder(ctx context.Context, orderID string) ([]*entity.SaleLine, error) {
	return r.ListByOrder(ctx, orderID)
}

func (r *SaleLineRepository) List(_ context.Context) ([]*entity.SaleLine, error) {
	var out []*entity.SaleLine
	err := r.read(func(st *state) error {
		out = sortedValues(st.saleLines, func(l entity.SaleLine) string { return l.ID }, "")
		return nil
	})
	return out, err
}

func (r *SaleLineRepository) SumByOrder(_ context.Context, orderID string) (int, decimal.Decimal, error) {
	count, sum := 0, decimal.Zero
	err := r.read(func(st *state) error {
		for _, l := range st.saleLines {
			if l.OrderID == orderID {
				count++
				sum = sum.Add(l.Total)
			}
		}
		return nil
	})
	return count, sum, err
}

// actorName resuelve el nombre del actor: usuario o, en su defecto, funcionario.
func actorName(st *state, id string) string {
	if u, ok := st.users[id]; ok {
		return u.Name
	}
	return st.employees[id].Name
}
