package repository

import (
	"context"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// StockMovementRepository auditoría de stock; solo alta y lectura.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	GetByID(ctx context.Context, id string) (*entity.StockMovement, error)
	// List y ListByProduct devuelven los más recientes primero.
	List(ctx context.Context, limit, offset int) ([]*entity.StockMovement, error)
	ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.StockMovement, error)
}
