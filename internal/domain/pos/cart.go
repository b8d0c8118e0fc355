package pos

import (
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Cart líneas de venta en orden de inserción, una por producto.
// El precio unitario queda fijo al crear la línea; no se vuelve a leer del catálogo.
type Cart struct {
	items []entity.SaleItem
}

// NewCart crea un carrito vacío.
func NewCart() *Cart {
	return &Cart{}
}

func (c *Cart) indexOf(productID string) int {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// AddItem suma una unidad a la línea del producto o agrega una nueva con cantidad 1.
func (c *Cart) AddItem(p *entity.Product) {
	if i := c.indexOf(p.ID); i >= 0 {
		it := &c.items[i]
		it.Quantity++
		it.Total = LineTotal(it.Quantity, it.UnitPrice)
		return
	}
	c.items = append(c.items, entity.SaleItem{
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    1,
		UnitPrice:   p.Price,
		Total:       p.Price,
	})
}

// SetQuantity fija la cantidad de una línea. 0 elimina la línea; negativo es inválido.
func (c *Cart) SetQuantity(productID string, qty int) error {
	if qty < 0 {
		return domain.ErrInvalidQuantity
	}
	i := c.indexOf(productID)
	if i < 0 {
		return domain.NewNotFound("línea de carrito", productID)
	}
	if qty == 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
		return nil
	}
	it := &c.items[i]
	it.Quantity = qty
	it.Total = LineTotal(qty, it.UnitPrice)
	return nil
}

// RemoveItem quita la línea; no hace nada si no existe.
func (c *Cart) RemoveItem(productID string) {
	if i := c.indexOf(productID); i >= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
}

// ComputeTotals totales del carrito con el descuento indicado.
func (c *Cart) ComputeTotals(discount decimal.Decimal) (Totals, error) {
	return ComputeTotals(c.items, discount)
}

// Clear vacía el carrito.
func (c *Cart) Clear() {
	c.items = nil
}

// Items copia de las líneas.
func (c *Cart) Items() []entity.SaleItem {
	out := make([]entity.SaleItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len número de líneas.
func (c *Cart) Len() int {
	return len(c.items)
}
