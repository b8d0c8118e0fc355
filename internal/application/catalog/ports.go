package catalog

import (
	"context"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// ProductAPI backend remoto opcional del catálogo. Cada llamada es un request/response
// con timeout fijo; un error se trata como PersistenceError y no bloquea la operación local.
type ProductAPI interface {
	CreateProduct(ctx context.Context, p *entity.Product) (remoteID string, err error)
	UpdateProduct(ctx context.Context, p *entity.Product) error
	DeleteProduct(ctx context.Context, id string) error
	ListProducts(ctx context.Context) ([]*entity.Product, error)
}
