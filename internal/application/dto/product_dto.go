package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	SKU         string          `json:"sku"`
	Barcode     string          `json:"barcode"`
	Category    string          `json:"category"`
	Stock       int             `json:"stock"`
	MinStock    int             `json:"min_stock"`
	IsActive    *bool           `json:"is_active"` // nil = activo
}

// UpdateProductRequest actualización parcial. Stock solo cambia vía ajustes de inventario.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Cost        *decimal.Decimal `json:"cost"`
	SKU         *string          `json:"sku"`
	Barcode     *string          `json:"barcode"`
	Category    *string          `json:"category"`
	MinStock    *int             `json:"min_stock"`
	IsActive    *bool            `json:"is_active"`
}

// Patch convierte el request en un ProductPatch (sin stock).
func (r UpdateProductRequest) Patch() entity.ProductPatch {
	return entity.ProductPatch{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Cost:        r.Cost,
		SKU:         r.SKU,
		Barcode:     r.Barcode,
		Category:    r.Category,
		MinStock:    r.MinStock,
		IsActive:    r.IsActive,
	}
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	SKU         string          `json:"sku"`
	Barcode     string          `json:"barcode,omitempty"`
	Category    string          `json:"category"`
	Stock       int             `json:"stock"`
	MinStock    int             `json:"min_stock"`
	LowStock    bool            `json:"low_stock"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToProductResponse mapea la entidad a su salida HTTP.
func ToProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Cost:        p.Cost,
		SKU:         p.SKU,
		Barcode:     p.Barcode,
		Category:    p.Category,
		Stock:       p.Stock,
		MinStock:    p.MinStock,
		LowStock:    p.IsLowStock(),
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductList mapea una lista de productos.
func ToProductList(list []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, ToProductResponse(p))
	}
	return out
}
