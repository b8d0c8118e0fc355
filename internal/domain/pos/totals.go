// Package pos contiene la aritmética del punto de venta: carrito, totales y ajustes de stock.
// Funciones puras; el store confirma los resultados.
package pos

import (
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// TaxRate impuesto fijo sobre el subtotal.
var TaxRate = decimal.RequireFromString("0.08")

// Totals resultado de ComputeTotals.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// LineTotal cantidad × precio unitario.
func LineTotal(qty int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(qty)))
}

// ComputeTotals recalcula subtotal, impuesto y total a partir de las líneas.
// Los Total de las líneas se ignoran: se recalculan desde Quantity y UnitPrice.
// Total = Subtotal + Subtotal*TaxRate - discount, con 0 <= discount <= Subtotal.
func ComputeTotals(items []entity.SaleItem, discount decimal.Decimal) (Totals, error) {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(LineTotal(it.Quantity, it.UnitPrice))
	}
	if discount.IsNegative() || discount.GreaterThan(subtotal) {
		return Totals{}, domain.ErrInvalidDiscount
	}
	tax := subtotal.Mul(TaxRate)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Discount: discount,
		Total:    subtotal.Add(tax).Sub(discount),
	}, nil
}
