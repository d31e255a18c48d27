package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

// StockItemUseCase CRUD de ítems de estoque. La cantidad sólo cambia con líneas de venta o ajustes del motor.
type StockItemUseCase struct {
	repo repository.StockItemRepository
}

// NewStockItemUseCase construye el caso de uso.
func NewStockItemUseCase(repo repository.StockItemRepository) *StockItemUseCase {
	return &StockItemUseCase{repo: repo}
}

// Create crea un ítem con su cantidad inicial.
func (uc *StockItemUseCase) Create(ctx context.Context, in dto.CreateStockItemRequest) (*dto.StockItemResponse, error) {
	if strings.TrimSpace(in.Name) == "" || in.Quantity < 0 || in.Value.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	item := &entity.StockItem{
		ID:       uuid.New().String(),
		Name:     in.Name,
		Quantity: in.Quantity,
		Image:    in.Image,
		Value:    in.Value,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return toStockItemResponse(item), nil
}

// Update modifica nombre, imagen y valor.
func (uc *StockItemUseCase) Update(ctx context.Context, id string, in dto.UpdateStockItemRequest) (*dto.StockItemResponse, error) {
	if in.Quantity != nil {
		return nil, fmt.Errorf("%w: quantity se ajusta con POST /api/estoque/%s/ajuste", domain.ErrInvalidInput, id)
	}
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Image != nil {
		item.Image = *in.Image
	}
	if in.Value != nil {
		if in.Value.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item.Value = *in.Value
	}
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return toStockItemResponse(item), nil
}

// List lista ítems filtrando por nombre.
func (uc *StockItemUseCase) List(ctx context.Context, search string) ([]dto.StockItemResponse, error) {
	list, err := uc.repo.List(ctx, search)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toStockItemResponse(it))
	}
	return items, nil
}

// Delete elimina un ítem.
func (uc *StockItemUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toStockItemResponse(it *entity.StockItem) *dto.StockItemResponse {
	return &dto.StockItemResponse{
		ID:       it.ID,
		Name:     it.Name,
		Quantity: it.Quantity,
		Image:    it.Image,
		Value:    it.Value,
	}
}
