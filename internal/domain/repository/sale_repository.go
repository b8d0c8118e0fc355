package repository

import (
	"context"
	"time"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// SaleFilter filtro para el historial de ventas. Campos vacíos no filtran.
type SaleFilter struct {
	From      *time.Time
	To        *time.Time
	CashierID string
	Limit     int // 0 = sin límite
	Offset    int
}

// SaleRepository ventas confirmadas; solo alta y lectura.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	// List más recientes primero.
	List(ctx context.Context, filter SaleFilter) ([]*entity.Sale, error)
}
