package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

// StockEntryRepository puerto de persistencia para entradas de stock.
type StockEntryRepository interface {
	Create(ctx context.Context, entry *entity.StockEntry) error
	// GetForUpdate devuelve (nil, nil) si la entrada no existe.
	GetForUpdate(ctx context.Context, id string) (*entity.StockEntry, error)
	Update(ctx context.Context, entry *entity.StockEntry) error
	Delete(ctx context.Context, id string) error
	// List lista entradas (más recientes primero); day != nil filtra por fecha exacta.
	List(ctx context.Context, day *time.Time) ([]entity.StockEntryDetail, error)
}
