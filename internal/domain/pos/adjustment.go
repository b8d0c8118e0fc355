package pos

import (
	"strings"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Adjustment resultado de un ajuste manual de stock.
type Adjustment struct {
	NewStock int // ya recortado en 0
	Delta    int // aritmética previa al recorte; va al movimiento
}

// ComputeAdjustment calcula el nuevo stock y el delta auditado.
//
//	in:         nuevo = actual + q, delta = +q
//	out:        nuevo = actual - q, delta = -q
//	adjustment: nuevo = q,          delta = q - actual
//
// El nuevo stock nunca baja de 0; el delta no se recorta.
func ComputeAdjustment(current int, movementType string, qty int, reason string) (Adjustment, error) {
	if strings.TrimSpace(reason) == "" {
		return Adjustment{}, domain.ErrMissingReason
	}
	if qty < 0 {
		return Adjustment{}, domain.ErrInvalidQuantity
	}
	var next, delta int
	switch movementType {
	case entity.MovementTypeIn:
		next, delta = current+qty, qty
	case entity.MovementTypeOut:
		next, delta = current-qty, -qty
	case entity.MovementTypeAdjustment:
		next, delta = qty, qty-current
	default:
		return Adjustment{}, domain.ErrInvalidMovementType
	}
	if next < 0 {
		next = 0
	}
	return Adjustment{NewStock: next, Delta: delta}, nil
}

// WeightedAverageCost costo promedio ponderado tras una entrada.
// NuevoCosto = ((StockActual * CostoActual) + (CantEntrada * CostoEntrada)) / (StockActual + CantEntrada)
func WeightedAverageCost(stock int, cost decimal.Decimal, qtyIn int, unitCost decimal.Decimal) decimal.Decimal {
	if stock < 0 {
		stock = 0
	}
	sum := decimal.NewFromInt(int64(stock + qtyIn))
	if sum.LessThanOrEqual(decimal.Zero) {
		return cost
	}
	num := decimal.NewFromInt(int64(stock)).Mul(cost).
		Add(decimal.NewFromInt(int64(qtyIn)).Mul(unitCost))
	return num.Div(sum)
}
