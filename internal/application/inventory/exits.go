package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

// ExitInput datos de una salida (venta directa de punto de venta).
type ExitInput struct {
	ProductID       string
	Quantity        int64
	UnitCost        decimal.Decimal
	UnitPrice       decimal.Decimal
	UserID          string
	CustomerID      string
	PaymentMethodID string
	SellerID        string
	Description     string
}

func (in ExitInput) validate() error {
	if in.ProductID == "" || in.UserID == "" || in.CustomerID == "" || in.PaymentMethodID == "" || in.SellerID == "" {
		return domain.ErrInvalidInput
	}
	if in.Quantity <= 0 || in.UnitCost.IsNegative() || in.UnitPrice.IsNegative() {
		return domain.ErrInvalidInput
	}
	return nil
}

// RecordExit resta la cantidad del producto (ErrInsufficientStock si quedaría negativo) y guarda
// la salida en la misma transacción.
func (uc *LedgerUseCase) RecordExit(ctx context.Context, in ExitInput) (*entity.StockExit, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	exit := &entity.StockExit{
		ID:              uuid.New().String(),
		ProductID:       in.ProductID,
		Quantity:        in.Quantity,
		UnitCost:        in.UnitCost,
		UnitPrice:       in.UnitPrice,
		UserID:          in.UserID,
		CustomerID:      in.CustomerID,
		PaymentMethodID: in.PaymentMethodID,
		SellerID:        in.SellerID,
		Date:            uc.now(),
		Description:     in.Description,
	}
	err := uc.txRunner.Run(ctx, func(ctx context.Context, r TxRepos) error {
		if _, err := AdjustStock(ctx, r.Products, in.ProductID, -in.Quantity); err != nil {
			return err
		}
		return r.Exits.Create(ctx, exit)
	})
	uc.observe(KindExit, OpCreate, err)
	if err != nil {
		return nil, err
	}
	return exit, nil
}

// UpdateExit corrige una salida: devuelve al stock la cantidad anterior y descuenta la nueva
// (sobre el mismo producto o sobre otro) antes de reescribir la fila.
func (uc *LedgerUseCase) UpdateExit(ctx context.Context, id string, in ExitInput) (*entity.StockExit, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	var updated *entity.StockExit
	err := uc.txRunner.Run(ctx, func(ctx context.Context, r TxRepos) error {
		old, err := r.Exits.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if old == nil {
			return domain.ErrNotFound
		}
		if err := moveEffect(ctx, r.Products, old.ProductID, -old.Quantity, in.ProductID, -in.Quantity); err != nil {
			return err
		}
		next := *old
		next.ProductID = in.ProductID
		next.Quantity = in.Quantity
		next.UnitCost = in.UnitCost
		next.UnitPrice = in.UnitPrice
		next.UserID = in.UserID
		next.CustomerID = in.CustomerID
		next.PaymentMethodID = in.PaymentMethodID
		next.SellerID = in.SellerID
		next.Description = in.Description
		if err := r.Exits.Update(ctx, &next); err != nil {
			return err
		}
		updated = &next
		return nil
	})
	uc.observe(KindExit, OpUpdate, err)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteExit elimina una salida devolviendo su cantidad al producto.
func (uc *LedgerUseCase) DeleteExit(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	err := uc.txRunner.Run(ctx, func(ctx context.Context, r TxRepos) error {
		old, err := r.Exits.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if old == nil {
			return domain.ErrNotFound
		}
		if _, err := AdjustStock(ctx, r.Products, old.ProductID, old.Quantity); err != nil {
			return err
		}
		return r.Exits.Delete(ctx, id)
	})
	uc.observe(KindExit, OpDelete, err)
	return err
}
