package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/pkg/id"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, description, price, cost, sku, barcode, category, stock, min_stock, is_active, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q         Querier
	forUpdate bool // dentro de una tx: GetByID bloquea la fila
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Cost, &p.SKU, &p.Barcode,
		&p.Category, &p.Stock, &p.MinStock, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	if p.ID == "" {
		p.ID = id.New()
	}
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now(), now())
		RETURNING created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		p.ID, p.Name, p.Description, p.Price, p.Cost, p.SKU, p.Barcode,
		p.Category, p.Stock, p.MinStock, p.IsActive,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, productID string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	if r.forUpdate {
		query += ` FOR UPDATE`
	}
	p, err := scanProduct(r.q.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetBySKU obtiene un producto por SKU.
func (r *ProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE sku = $1`, sku))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by sku: %w", err)
	}
	return p, nil
}

// List catálogo completo en orden de alta.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update reescribe todos los campos editables y sella updated_at.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, price = $4, cost = $5, sku = $6, barcode = $7,
			category = $8, stock = $9, min_stock = $10, is_active = $11, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`
	err := r.q.QueryRow(ctx, query,
		p.ID, p.Name, p.Description, p.Price, p.Cost, p.SKU, p.Barcode,
		p.Category, p.Stock, p.MinStock, p.IsActive,
	).Scan(&p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NewNotFound("producto", p.ID)
		}
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Patch SELECT … FOR UPDATE, fn y UPDATE en la misma tx: un checkout concurrente no se pisa.
func (r *ProductRepo) Patch(ctx context.Context, productID string, fn func(p *entity.Product) error) (*entity.Product, error) {
	var out *entity.Product
	err := inTx(ctx, r.q, func(tx pgx.Tx) error {
		locked := &ProductRepo{q: tx, forUpdate: true}
		p, err := locked.GetByID(ctx, productID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.NewNotFound("producto", productID)
		}
		if err := fn(p); err != nil {
			return err
		}
		p.ID = productID
		if err := locked.Update(ctx, p); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, productID string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NewNotFound("producto", productID)
	}
	return nil
}

// ReplaceAll vacía la tabla y carga la lista recibida en una sola tx: si falla, el catálogo anterior queda intacto.
func (r *ProductRepo) ReplaceAll(ctx context.Context, products []*entity.Product) error {
	return inTx(ctx, r.q, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM products`); err != nil {
			return fmt.Errorf("replace products: %w", err)
		}
		txRepo := &ProductRepo{q: tx}
		for _, p := range products {
			if err := txRepo.Create(ctx, p); err != nil {
				return err
			}
		}
		return nil
	})
}
