package memory

import (
	"context"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// Mutadores sueltos del store: un cambio lógico por llamada, id y timestamps asignados aquí.
// Las operaciones compuestas usan Run/RunSale.

// AddProduct alta de producto.
func (s *Store) AddProduct(ctx context.Context, p *entity.Product) error {
	return s.Products().Create(ctx, p)
}

// UpdateProduct aplica un patch parcial y devuelve el producto resultante.
func (s *Store) UpdateProduct(ctx context.Context, productID string, patch entity.ProductPatch) (*entity.Product, error) {
	return s.Products().Patch(ctx, productID, func(p *entity.Product) error {
		patch.Apply(p)
		return nil
	})
}

// DeleteProduct baja de producto.
func (s *Store) DeleteProduct(ctx context.Context, productID string) error {
	return s.Products().Delete(ctx, productID)
}

// AddSale agrega una venta sin tocar stock (el checkout usa RunSale).
func (s *Store) AddSale(ctx context.Context, sale *entity.Sale) error {
	return s.Sales().Create(ctx, sale)
}

// AddStockMovement agrega un registro de auditoría.
func (s *Store) AddStockMovement(ctx context.Context, m *entity.StockMovement) error {
	return s.Movements().Create(ctx, m)
}

// AddUser alta de usuario.
func (s *Store) AddUser(ctx context.Context, u *entity.User) error {
	return s.Users().Create(ctx, u)
}

// UpdateUser aplica un patch parcial al usuario.
func (s *Store) UpdateUser(ctx context.Context, userID string, patch entity.UserPatch) (*entity.User, error) {
	var out *entity.User
	err := s.commit(ctx, func(v view) error {
		repo := &userRepo{v: v}
		u, _ := repo.GetByID(ctx, userID)
		if u == nil {
			return domain.NewNotFound("usuario", userID)
		}
		patch.Apply(u)
		if err := repo.Update(ctx, u); err != nil {
			return err
		}
		out = u
		return nil
	})
	return out, err
}

// AddCategory alta de categoría.
func (s *Store) AddCategory(ctx context.Context, c *entity.Category) error {
	return s.Categories().Create(ctx, c)
}

// UpdateCategory aplica un patch parcial a la categoría.
func (s *Store) UpdateCategory(ctx context.Context, categoryID string, patch entity.CategoryPatch) (*entity.Category, error) {
	var out *entity.Category
	err := s.commit(ctx, func(v view) error {
		repo := &categoryRepo{v: v}
		c, _ := repo.GetByID(ctx, categoryID)
		if c == nil {
			return domain.NewNotFound("categoría", categoryID)
		}
		patch.Apply(c)
		if err := repo.Update(ctx, c); err != nil {
			return err
		}
		out = c
		return nil
	})
	return out, err
}

// AddCustomer alta de cliente.
func (s *Store) AddCustomer(ctx context.Context, c *entity.Customer) error {
	return s.Customers().Create(ctx, c)
}
