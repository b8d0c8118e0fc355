package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo del POS.
// Stock nunca queda negativo después de una mutación (los ajustes recortan en 0).
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta unitario
	Cost        decimal.Decimal // costo unitario
	SKU         string          // único en el catálogo
	Barcode     string          // opcional
	Category    string          // nombre de la categoría
	Stock       int
	MinStock    int // umbral de stock bajo
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsLowStock indica si el producto está en o por debajo del umbral mínimo.
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}

// ProductPatch actualización parcial de un producto (campos nil no se tocan).
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Cost        *decimal.Decimal
	SKU         *string
	Barcode     *string
	Category    *string
	Stock       *int
	MinStock    *int
	IsActive    *bool
}

// Apply copia en p los campos presentes en el patch.
func (patch ProductPatch) Apply(p *Product) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Cost != nil {
		p.Cost = *patch.Cost
	}
	if patch.SKU != nil {
		p.SKU = *patch.SKU
	}
	if patch.Barcode != nil {
		p.Barcode = *patch.Barcode
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.MinStock != nil {
		p.MinStock = *patch.MinStock
	}
	if patch.IsActive != nil {
		p.IsActive = *patch.IsActive
	}
}
