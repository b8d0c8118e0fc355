package memory

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// SeedDemo carga el catálogo, las categorías y los usuarios de demostración.
// passwordHash es el hash bcrypt compartido por los tres usuarios demo.
func (s *Store) SeedDemo(ctx context.Context, passwordHash string) error {
	categories := []*entity.Category{
		{Name: "Electronics", Description: "Electronic devices and accessories", IsActive: true},
		{Name: "Clothing", Description: "Apparel and fashion items", IsActive: true},
		{Name: "Food & Beverages", Description: "Food items and drinks", IsActive: true},
		{Name: "Books", Description: "Books and publications", IsActive: true},
	}
	products := []*entity.Product{
		{
			Name: "Wireless Headphones", Description: "High-quality wireless headphones with noise cancellation",
			Price: decimal.RequireFromString("99.99"), Cost: decimal.RequireFromString("60"),
			SKU: "WH001", Barcode: "1234567890123", Category: "Electronics", Stock: 25, MinStock: 5, IsActive: true,
		},
		{
			Name: "Cotton T-Shirt", Description: "Comfortable cotton t-shirt in various colors",
			Price: decimal.RequireFromString("19.99"), Cost: decimal.RequireFromString("8"),
			SKU: "TS001", Category: "Clothing", Stock: 50, MinStock: 10, IsActive: true,
		},
		{
			Name: "Coffee Beans", Description: "Premium arabica coffee beans - 1lb bag",
			Price: decimal.RequireFromString("12.99"), Cost: decimal.RequireFromString("6.5"),
			SKU: "CB001", Category: "Food & Beverages", Stock: 30, MinStock: 8, IsActive: true,
		},
	}
	users := []*entity.User{
		{Email: "admin@pos.com", Name: "Admin User", Role: entity.RoleAdmin, IsActive: true},
		{Email: "manager@pos.com", Name: "Store Manager", Role: entity.RoleManager, IsActive: true},
		{Email: "cashier@pos.com", Name: "Cashier", Role: entity.RoleCashier, IsActive: true},
	}

	return s.commit(ctx, func(v view) error {
		for _, c := range categories {
			if err := (&categoryRepo{v: v}).Create(ctx, c); err != nil {
				return fmt.Errorf("seed categoría %s: %w", c.Name, err)
			}
		}
		for _, p := range products {
			if err := (&productRepo{v: v}).Create(ctx, p); err != nil {
				return fmt.Errorf("seed producto %s: %w", p.SKU, err)
			}
		}
		for _, u := range users {
			u.PasswordHash = passwordHash
			if err := (&userRepo{v: v}).Create(ctx, u); err != nil {
				return fmt.Errorf("seed usuario %s: %w", u.Email, err)
			}
		}
		return nil
	})
}
