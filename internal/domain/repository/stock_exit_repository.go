package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

// StockExitRepository puerto de persistencia para salidas (ventas directas).
type StockExitRepository interface {
	Create(ctx context.Context, exit *entity.StockExit) error
	// GetForUpdate devuelve (nil, nil) si la salida no existe.
	GetForUpdate(ctx context.Context, id string) (*entity.StockExit, error)
	Update(ctx context.Context, exit *entity.StockExit) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, day *time.Time) ([]entity.StockExitDetail, error)
}
