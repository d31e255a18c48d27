package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/application/inventory"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

// MovementUseCase adapta el motor de inventario a DTOs y expone los listados de movimientos.
type MovementUseCase struct {
	ledger  *inventory.LedgerUseCase
	entries repository.StockEntryRepository
	exits   repository.StockExitRepository
	lines   repository.SaleLineRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(
	ledger *inventory.LedgerUseCase,
	entries repository.StockEntryRepository,
	exits repository.StockExitRepository,
	lines repository.SaleLineRepository,
) *MovementUseCase {
	return &MovementUseCase{ledger: ledger, entries: entries, exits: exits, lines: lines}
}

// AdjustProduct ajuste manual de stock de un producto.
func (uc *MovementUseCase) AdjustProduct(ctx context.Context, productID string, in dto.AdjustStockRequest) (*dto.AdjustStockResponse, error) {
	q, err := uc.ledger.AdjustProduct(ctx, productID, in.Delta)
	if err != nil {
		return nil, err
	}
	return &dto.AdjustStockResponse{ProductID: productID, Quantity: q}, nil
}

// AdjustStockItem ajuste manual (reposición) de un ítem de estoque.
func (uc *MovementUseCase) AdjustStockItem(ctx context.Context, itemID string, in dto.AdjustStockRequest) (*dto.AdjustStockItemResponse, error) {
	q, err := uc.ledger.AdjustStockItem(ctx, itemID, in.Delta)
	if err != nil {
		return nil, err
	}
	return &dto.AdjustStockItemResponse{StockItemID: itemID, Quantity: q}, nil
}

// RecordEntry registra una entrada. actorID se usa cuando el body no trae user_id.
func (uc *MovementUseCase) RecordEntry(ctx context.Context, actorID string, in dto.EntryRequest) (*dto.EntryResponse, error) {
	e, err := uc.ledger.RecordEntry(ctx, toEntryInput(actorID, in))
	if err != nil {
		return nil, err
	}
	return toEntryResponse(e), nil
}

// UpdateEntry corrige una entrada.
func (uc *MovementUseCase) UpdateEntry(ctx context.Context, id, actorID string, in dto.EntryRequest) (*dto.EntryResponse, error) {
	e, err := uc.ledger.UpdateEntry(ctx, id, toEntryInput(actorID, in))
	if err != nil {
		return nil, err
	}
	return toEntryResponse(e), nil
}

// DeleteEntry elimina una entrada.
func (uc *MovementUseCase) DeleteEntry(ctx context.Context, id string) error {
	return uc.ledger.DeleteEntry(ctx, id)
}

// ListEntries lista entradas; day != nil filtra por fecha.
func (uc *MovementUseCase) ListEntries(ctx context.Context, day *time.Time) ([]dto.EntryDetailResponse, error) {
	list, err := uc.entries.List(ctx, day)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EntryDetailResponse, 0, len(list))
	for _, d := range list {
		out = append(out, dto.EntryDetailResponse{
			EntryResponse: dto.EntryResponse{
				ID:        d.ID,
				ProductID: d.ProductID,
				Quantity:  d.Quantity,
				UnitValue: d.UnitValue,
				UserID:    d.UserID,
				Date:      d.Date,
			},
			UserName:    d.UserName,
			ProductName: d.ProductName,
			Unit:        d.Unit,
		})
	}
	return out, nil
}

// RecordExit registra una salida.
func (uc *MovementUseCase) RecordExit(ctx context.Context, actorID string, in dto.ExitRequest) (*dto.ExitResponse, error) {
	e, err := uc.ledger.RecordExit(ctx, toExitInput(actorID, in))
	if err != nil {
		return nil, err
	}
	return toExitResponse(e), nil
}

// UpdateExit corrige una salida.
func (uc *MovementUseCase) UpdateExit(ctx context.Context, id, actorID string, in dto.ExitRequest) (*dto.ExitResponse, error) {
	e, err := uc.ledger.UpdateExit(ctx, id, toExitInput(actorID, in))
	if err != nil {
		return nil, err
	}
	return toExitResponse(e), nil
}

// DeleteExit elimina una salida.
func (uc *MovementUseCase) DeleteExit(ctx context.Context, id string) error {
	return uc.ledger.DeleteExit(ctx, id)
}

// ListExits lista salidas; day != nil filtra por fecha.
func (uc *MovementUseCase) ListExits(ctx context.Context, day *time.Time) ([]dto.ExitDetailResponse, error) {
	list, err := uc.exits.List(ctx, day)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExitDetailResponse, 0, len(list))
	for _, d := range list {
		out = append(out, dto.ExitDetailResponse{
			ExitResponse: dto.ExitResponse{
				ID:              d.ID,
				ProductID:       d.ProductID,
				Quantity:        d.Quantity,
				UnitCost:        d.UnitCost,
				UnitPrice:       d.UnitPrice,
				UserID:          d.UserID,
				CustomerID:      d.CustomerID,
				PaymentMethodID: d.PaymentMethodID,
				SellerID:        d.SellerID,
				Date:            d.Date,
				Description:     d.Description,
			},
			UserName:          d.UserName,
			ProductName:       d.ProductName,
			SellerName:        d.SellerName,
			CustomerName:      d.CustomerName,
			PaymentMethodName: d.PaymentMethodName,
		})
	}
	return out, nil
}

// RecordSale agrega una línea de venta a un pedido.
func (uc *MovementUseCase) RecordSale(ctx context.Context, in dto.SaleRequest) (*dto.SaleLineResponse, error) {
	l, err := uc.ledger.RecordSale(ctx, toSaleInput(in))
	if err != nil {
		return nil, err
	}
	out := ToSaleLineResponse(l)
	return &out, nil
}

// UpdateSale corrige una línea de venta.
func (uc *MovementUseCase) UpdateSale(ctx context.Context, id string, in dto.SaleRequest) (*dto.SaleLineResponse, error) {
	l, err := uc.ledger.UpdateSale(ctx, id, toSaleInput(in))
	if err != nil {
		return nil, err
	}
	out := ToSaleLineResponse(l)
	return &out, nil
}

// DeleteSale elimina una línea de venta.
func (uc *MovementUseCase) DeleteSale(ctx context.Context, id string) error {
	return uc.ledger.DeleteSale(ctx, id)
}

// ListSales lista todas las líneas de venta.
func (uc *MovementUseCase) ListSales(ctx context.Context) ([]dto.SaleLineResponse, error) {
	list, err := uc.lines.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleLineResponse, 0, len(list))
	for _, l := range list {
		out = append(out, ToSaleLineResponse(l))
	}
	return out, nil
}

// DeleteOrder elimina un pedido devolviendo el stock de sus líneas.
func (uc *MovementUseCase) DeleteOrder(ctx context.Context, id string) error {
	return uc.ledger.DeleteOrder(ctx, id)
}

func actorOr(actorID, userID string) string {
	if userID != "" {
		return userID
	}
	return actorID
}

func toEntryInput(actorID string, in dto.EntryRequest) inventory.EntryInput {
	return inventory.EntryInput{
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		UnitValue: in.UnitValue,
		UserID:    actorOr(actorID, in.UserID),
	}
}

func toExitInput(actorID string, in dto.ExitRequest) inventory.ExitInput {
	return inventory.ExitInput{
		ProductID:       in.ProductID,
		Quantity:        in.Quantity,
		UnitCost:        in.UnitCost,
		UnitPrice:       in.UnitPrice,
		UserID:          actorOr(actorID, in.UserID),
		CustomerID:      in.CustomerID,
		PaymentMethodID: in.PaymentMethodID,
		SellerID:        in.SellerID,
		Description:     in.Description,
	}
}

func toSaleInput(in dto.SaleRequest) inventory.SaleInput {
	return inventory.SaleInput{
		OrderID:     in.OrderID,
		CustomerID:  in.CustomerID,
		StockItemID: in.StockItemID,
		Quantity:    in.Quantity,
		Total:       in.Total,
	}
}

func toEntryResponse(e *entity.StockEntry) *dto.EntryResponse {
	return &dto.EntryResponse{
		ID:        e.ID,
		ProductID: e.ProductID,
		Quantity:  e.Quantity,
		UnitValue: e.UnitValue,
		UserID:    e.UserID,
		Date:      e.Date,
	}
}

func toExitResponse(e *entity.StockExit) *dto.ExitResponse {
	return &dto.ExitResponse{
		ID:              e.ID,
		ProductID:       e.ProductID,
		Quantity:        e.Quantity,
		UnitCost:        e.UnitCost,
		UnitPrice:       e.UnitPrice,
		UserID:          e.UserID,
		CustomerID:      e.CustomerID,
		PaymentMethodID: e.PaymentMethodID,
		SellerID:        e.SellerID,
		Date:            e.Date,
		Description:     e.Description,
	}
}
