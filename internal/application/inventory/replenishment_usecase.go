package inventory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

// DefaultReorderPoint punto de reorden cuando la consulta no indica uno.
const DefaultReorderPoint int64 = 5

// ReplenishmentUseCase genera la lista de reposición de productos con stock bajo.
type ReplenishmentUseCase struct {
	products repository.ProductRepository
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(products repository.ProductRepository) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{products: products}
}

// GenerateReplenishmentList devuelve los productos cuyo stock es inferior a reorderPoint con la
// cantidad sugerida de pedido, ordenados por mayor déficit primero. reorderPoint <= 0 usa el valor por defecto.
func (uc *ReplenishmentUseCase) GenerateReplenishmentList(ctx context.Context, reorderPoint int64) ([]dto.ReplenishmentSuggestionDTO, error) {
	if reorderPoint < 0 {
		return nil, domain.ErrInvalidInput
	}
	if reorderPoint == 0 {
		reorderPoint = DefaultReorderPoint
	}
	products, err := uc.products.List(ctx, "")
	if err != nil {
		return nil, err
	}

	// Stock ideal = punto de reorden * 1.5, redondeado hacia arriba
	idealStock := (reorderPoint*3 + 1) / 2

	suggestions := make([]dto.ReplenishmentSuggestionDTO, 0)
	for _, p := range products {
		if p.Quantity >= reorderPoint {
			continue
		}
		suggested := idealStock - p.Quantity
		unitValue := decimal.Zero
		if p.UnitValue != nil {
			unitValue = *p.UnitValue
		}
		suggestions = append(suggestions, dto.ReplenishmentSuggestionDTO{
			ProductID:          p.ID,
			ProductName:        p.Name,
			Unit:               p.Unit,
			CurrentStock:       p.Quantity,
			ReorderPoint:       reorderPoint,
			IdealStock:         idealStock,
			SuggestedOrderQty:  suggested,
			UnitValue:          unitValue,
			EstimatedOrderCost: unitValue.Mul(decimal.NewFromInt(suggested)),
		})
	}

	// Mayor déficit primero; empate: mayor costo estimado, luego nombre
	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if a.CurrentStock != b.CurrentStock {
			return a.CurrentStock < b.CurrentStock
		}
		if !a.EstimatedOrderCost.Equal(b.EstimatedOrderCost) {
			return a.EstimatedOrderCost.GreaterThan(b.EstimatedOrderCost)
		}
		return a.ProductName < b.ProductName
	})

	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}
	return suggestions, nil
}
