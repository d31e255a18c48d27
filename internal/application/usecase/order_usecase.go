package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

// OrderUseCase alta, consulta y cambio de estado de pedidos. El total y la baja pasan por el motor de inventario.
type OrderUseCase struct {
	orders repository.OrderRepository
	lines  repository.SaleLineRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orders repository.OrderRepository, lines repository.SaleLineRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, lines: lines}
}

// Create crea un pedido pendente con total 0.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	order := &entity.Order{
		ID:            uuid.New().String(),
		Total:         decimal.Zero,
		Status:        entity.OrderStatusPending,
		PaymentMethod: in.PaymentMethod,
	}
	if err := uc.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return toOrderResponse(order, nil), nil
}

// GetByID devuelve el pedido con sus líneas. (nil, nil) si no existe.
func (uc *OrderUseCase) GetByID(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	lines, err := uc.lines.ListByOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order, lines), nil
}

// List lista pedidos; search filtra por estado o forma de pago.
func (uc *OrderUseCase) List(ctx context.Context, search string) ([]dto.OrderResponse, error) {
	list, err := uc.orders.List(ctx, search)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, *toOrderResponse(o, nil))
	}
	return out, nil
}

// UpdateStatus cambia estado y forma de pago. El total no se toca.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	if strings.TrimSpace(in.Status) == "" {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.orders.UpdateStatus(ctx, id, in.Status, in.PaymentMethod); err != nil {
		return nil, err
	}
	order.Status = in.Status
	order.PaymentMethod = in.PaymentMethod
	return toOrderResponse(order, nil), nil
}

func toOrderResponse(o *entity.Order, lines []*entity.SaleLine) *dto.OrderResponse {
	out := &dto.OrderResponse{
		ID:            o.ID,
		Total:         o.Total,
		Status:        o.Status,
		PaymentMethod: o.PaymentMethod,
	}
	for _, l := range lines {
		out.Lines = append(out.Lines, ToSaleLineResponse(l))
	}
	return out
}

// ToSaleLineResponse mapea una línea de venta a su DTO.
func ToSaleLineResponse(l *entity.SaleLine) dto.SaleLineResponse {
	return dto.SaleLineResponse{
		ID:          l.ID,
		OrderID:     l.OrderID,
		CustomerID:  l.CustomerID,
		StockItemID: l.StockItemID,
		Quantity:    l.Quantity,
		Total:       l.Total,
	}
}
