package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	inv "github.com/jhoicas/Estoque-api/internal/domain/inventory"
)

// EntryInput datos de una entrada de stock.
type EntryInput struct {
	ProductID string
	Quantity  int64
	UnitValue decimal.Decimal
	UserID    string
}

func (in EntryInput) validate() error {
	if in.ProductID == "" || in.UserID == "" || in.Quantity <= 0 || in.UnitValue.IsNegative() {
		return domain.ErrInvalidInput
	}
	return nil
}

// RecordEntry suma la cantidad al producto, actualiza su valor unitario (valor de la entrada si
// no tenía, promedio ponderado si ya tenía) y guarda la entrada, todo en la misma transacción.
func (uc *LedgerUseCase) RecordEntry(ctx context.Context, in EntryInput) (*entity.StockEntry, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	entry := &entity.StockEntry{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		UnitValue: in.UnitValue,
		UserID:    in.UserID,
		Date:      uc.now(),
	}
	err := uc.txRunner.Run(ctx, func(ctx context.Context, r TxRepos) error {
		current, err := r.Products.LockQuantity(ctx, in.ProductID)
		if err != nil {
			return err
		}
		product, err := r.Products.GetByID(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		newValue := inv.CostCalculator(current, product.UnitValue, in.Quantity, in.UnitValue)
		if _, err := AdjustStock(ctx, r.Products, in.ProductID, in.Quantity); err != nil {
			return err
		}
		if err := r.Products.UpdateUnitValue(ctx, in.ProductID, newValue); err != nil {
			return err
		}
		return r.Entries.Create(ctx, entry)
	})
	uc.observe(KindEntry, OpCreate, err)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// UpdateEntry corrige una entrada existente. Revierte su efecto anterior y aplica el nuevo
// (mismo producto o producto distinto) antes de reescribir la fila. El valor unitario del
// producto no se recalcula en correcciones.
func (uc *LedgerUseCase) UpdateEntry(ctx context.Context, id string, in EntryInput) (*entity.StockEntry, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	var updated *entity.StockEntry
	err := uc.txRunner.Run(ctx, func(ctx context.Context, r TxRepos) error {
		old, err := r.Entries.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if old == nil {
			return domain.ErrNotFound
		}
		if err := moveEffect(ctx, r.Products, old.ProductID, old.Quantity, in.ProductID, in.Quantity); err != nil {
			return err
		}
		next := *old
		next.ProductID = in.ProductID
		next.Quantity = in.Quantity
		next.UnitValue = in.UnitValue
		next.UserID = in.UserID
		if err := r.Entries.Update(ctx, &next); err != nil {
			return err
		}
		updated = &next
		return nil
	})
	uc.observe(KindEntry, OpUpdate, err)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteEntry elimina una entrada restando su cantidad del producto. Falla con
// ErrInsufficientStock si esa cantidad ya salió del stock.
func (uc *LedgerUseCase) DeleteEntry(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	err := uc.txRunner.Run(ctx, func(ctx context.Context, r TxRepos) error {
		old, err := r.Entries.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if old == nil {
			return domain.ErrNotFound
		}
		if _, err := AdjustStock(ctx, r.Products, old.ProductID, -old.Quantity); err != nil {
			return err
		}
		return r.Entries.Delete(ctx, id)
	})
	uc.observe(KindEntry, OpDelete, err)
	return err
}
