package repository

import (
	"context"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// CustomerRepository clientes asociables a una venta.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	List(ctx context.Context) ([]*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
}
