package inventory

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

// SaleInput datos de una línea de venta de un pedido.
type SaleInput struct {
	OrderID     string
	CustomerID  string
	StockItemID string
	Quantity    int64
	Total       decimal.Decimal
}

func (in SaleInput) validate() error {
	if in.OrderID == "" || in.CustomerID == "" || in.StockItemID == "" {
		return domain.ErrInvalidInput
	}
	if in.Quantity <= 0 || in.Total.IsNegative() {
		return domain.ErrInvalidInput
	}
	return nil
}

// RecordSale descuenta la cantidad del ítem de estoque, inserta la línea y recalcula el total
// del pedido. El pedido se bloquea primero para serializar las ventas concurrentes del mismo pedido.
func (uc *LedgerUseCase) RecordSale(ctx context.Context, in SaleInput) (*entity.SaleLine, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	line := &entity.SaleLine{
		ID:          uuid.New().String(),
		CustomerID:  in.CustomerID,
		StockItemID: in.StockItemID,
		Quantity:    in.Quantity,
		Total:       in.Total,
		OrderID:     in.OrderID,
	}
	err := uc.txRunner.Run(ctx, func(ctx context.Context, r TxRepos) error {
		if err := lockOrders(ctx, r, in.OrderID); err != nil {
			return err
		}
		if _, err := AdjustStock(ctx, r.StockItems, in.StockItemID, -in.Quantity); err != nil {
			return err
		}
		if err := r.SaleLines.Create(ctx, line); err != nil {
			return err
		}
		return uc.recomputeOrderTotal(ctx, r, in.OrderID)
	})
	uc.observe(KindSale, OpCreate, err)
	if err != nil {
		return nil, err
	}
	return line, nil
}

// UpdateSale corrige una línea de venta. Admite cambio de ítem y de pedido: en ese caso se
// recalculan los totales de ambos pedidos.
func (uc *LedgerUseCase) UpdateSale(ctx context.Context, id string, in SaleInput) (*entity.SaleLine, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	var updated *entity.SaleLine
	err := uc.txRunner.Run(ctx, func(ctx context.Context, r TxRepos) error {
		old, err := r.SaleLines.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if old == nil {
			return domain.ErrNotFound
		}
		if err := lockOrders(ctx, r, old.OrderID, in.OrderID); err != nil {
			return err
		}
		if err := moveEffect(ctx, r.StockItems, old.StockItemID, -old.Quantity, in.StockItemID, -in.Quantity); err != nil {
			return err
		}
		next := *old
		next.OrderID = in.OrderID
		next.CustomerID = in.CustomerID
		next.StockItemID = in.StockItemID
		next.Quantity = in.Quantity
		next.Total = in.Total
		if err := r.SaleLines.Update(ctx, &next); err != nil {
			return err
		}
		if err := uc.recomputeOrderTotal(ctx, r, next.OrderID); err != nil {
			return err
		}
		if old.OrderID != next.OrderID {
			if err := uc.recomputeOrderTotal(ctx, r, old.OrderID); err != nil {
				return err
			}
		}
		updated = &next
		return nil
	})
	uc.observe(KindSale, OpUpdate, err)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteSale elimina una línea de venta devolviendo su cantidad al ítem y recalcula el pedido.
func (uc *LedgerUseCase) DeleteSale(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	err := uc.txRunner.Run(ctx, func(ctx context.Context, r TxRepos) error {
		old, err := r.SaleLines.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if old == nil {
			return domain.ErrNotFound
		}
		if err := lockOrders(ctx, r, old.OrderID); err != nil {
			return err
		}
		if _, err := AdjustStock(ctx, r.StockItems, old.StockItemID, old.Quantity); err != nil {
			return err
		}
		if err := r.SaleLines.Delete(ctx, id); err != nil {
			return err
		}
		return uc.recomputeOrderTotal(ctx, r, old.OrderID)
	})
	uc.observe(KindSale, OpDelete, err)
	return err
}

// DeleteOrder devuelve al estoque la cantidad de todas las líneas del pedido, las elimina y
// elimina el pedido. Orden de bloqueo igual que UpdateSale/DeleteSale: líneas, pedido, ítems.
func (uc *LedgerUseCase) DeleteOrder(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	err := uc.txRunner.Run(ctx, func(ctx context.Context, r TxRepos) error {
		if _, err := r.SaleLines.LockByOrder(ctx, id); err != nil {
			return err
		}
		if err := lockOrders(ctx, r, id); err != nil {
			return err
		}
		// con el pedido bloqueado ya no entran líneas nuevas; se relee para incluir las que
		// se confirmaron entre ambos bloqueos
		lines, err := r.SaleLines.LockByOrder(ctx, id)
		if err != nil {
			return err
		}
		sort.Slice(lines, func(i, j int) bool { return lines[i].StockItemID < lines[j].StockItemID })
		for _, l := range lines {
			if _, err := AdjustStock(ctx, r.StockItems, l.StockItemID, l.Quantity); err != nil {
				return err
			}
			if err := r.SaleLines.Delete(ctx, l.ID); err != nil {
				return err
			}
		}
		return r.Orders.Delete(ctx, id)
	})
	uc.observe(KindOrder, OpDelete, err)
	return err
}

// RecomputeOrderTotal recalcula el total del pedido a partir de sus líneas en su propia transacción.
func (uc *LedgerUseCase) RecomputeOrderTotal(ctx context.Context, orderID string) (decimal.Decimal, error) {
	if orderID == "" {
		return decimal.Zero, domain.ErrInvalidInput
	}
	var total decimal.Decimal
	err := uc.txRunner.Run(ctx, func(ctx context.Context, r TxRepos) error {
		if err := lockOrders(ctx, r, orderID); err != nil {
			return err
		}
		if err := uc.recomputeOrderTotal(ctx, r, orderID); err != nil {
			return err
		}
		order, err := r.Orders.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		total = order.Total
		return nil
	})
	uc.observe(KindOrder, OpRecompute, err)
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// recomputeOrderTotal escribe Σ total de las líneas del pedido. Sin líneas, el total pasa a 0
// salvo que PreserveEmptyOrderTotal esté activo.
func (uc *LedgerUseCase) recomputeOrderTotal(ctx context.Context, r TxRepos, orderID string) error {
	count, sum, err := r.SaleLines.SumByOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if count == 0 && uc.cfg.PreserveEmptyOrderTotal {
		return nil
	}
	return r.Orders.UpdateTotal(ctx, orderID, sum)
}

// lockOrders bloquea los pedidos en orden de id. ErrNotFound si alguno no existe.
func lockOrders(ctx context.Context, r TxRepos, ids ...string) error {
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)
	for i, id := range sorted {
		if i > 0 && sorted[i-1] == id {
			continue
		}
		order, err := r.Orders.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}
