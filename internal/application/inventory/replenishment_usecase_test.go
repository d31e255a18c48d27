package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estoque-api/internal/application/inventory"
	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/infrastructure/memory"
)

func TestGenerateReplenishmentList_OrdenaPorDeficit(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repo := store.Products()
	require.NoError(t, repo.Create(ctx, &entity.Product{ID: "a", Name: "Açúcar", Quantity: 3}))
	require.NoError(t, repo.Create(ctx, &entity.Product{ID: "b", Name: "Café", Quantity: 0}))
	require.NoError(t, repo.Create(ctx, &entity.Product{ID: "c", Name: "Sal", Quantity: 20}))
	require.NoError(t, repo.UpdateUnitValue(ctx, "b", dec("12.5")))

	list, err := inventory.NewReplenishmentUseCase(repo).GenerateReplenishmentList(ctx, 4)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "b", list[0].ProductID)
	assert.Equal(t, 1, list[0].Priority)
	assert.Equal(t, int64(6), list[0].IdealStock)
	assert.Equal(t, int64(6), list[0].SuggestedOrderQty)
	assert.True(t, list[0].EstimatedOrderCost.Equal(dec("75")))

	assert.Equal(t, "a", list[1].ProductID)
	assert.Equal(t, int64(3), list[1].SuggestedOrderQty)
}

func TestGenerateReplenishmentList_PuntoNegativo(t *testing.T) {
	store := memory.NewStore()
	_, err := inventory.NewReplenishmentUseCase(store.Products()).GenerateReplenishmentList(context.Background(), -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
