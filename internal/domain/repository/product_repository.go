package repository

import (
	"context"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID/GetBySKU devuelven (nil, nil) si no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	// List todos los productos en orden de alta.
	List(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// Patch lee el producto, aplica fn y guarda el resultado sin que otra escritura se intercale.
	// fn puede rechazar el cambio devolviendo error; NotFoundError si el id no existe.
	Patch(ctx context.Context, id string, fn func(p *entity.Product) error) (*entity.Product, error)
	Delete(ctx context.Context, id string) error
	// ReplaceAll sustituye el catálogo completo (sincronización desde el backend remoto).
	ReplaceAll(ctx context.Context, products []*entity.Product) error
}
