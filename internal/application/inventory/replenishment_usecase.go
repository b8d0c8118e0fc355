package inventory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// ReplenishmentUseCase lista de reposición: productos en o bajo su stock mínimo,
// priorizados por margen y volumen de ventas de los últimos 90 días.
type ReplenishmentUseCase struct {
	products repository.ProductRepository
	sales    repository.SaleRepository
}

// NewReplenishmentUseCase construye el caso de uso.
func NewReplenishmentUseCase(products repository.ProductRepository, sales repository.SaleRepository) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{products: products, sales: sales}
}

type soldStats struct {
	units   int
	revenue decimal.Decimal
}

// Suggestions sugerencias ordenadas por prioridad (1 = más urgente).
func (uc *ReplenishmentUseCase) Suggestions(ctx context.Context, now time.Time) ([]dto.ReplenishmentSuggestionDTO, error) {
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	from := now.AddDate(0, 0, -90)
	recent, err := uc.sales.List(ctx, repository.SaleFilter{From: &from})
	if err != nil {
		return nil, err
	}
	sold := make(map[string]soldStats)
	for _, s := range recent {
		for _, it := range s.Items {
			st := sold[it.ProductID]
			st.units += it.Quantity
			st.revenue = st.revenue.Add(it.Total)
			sold[it.ProductID] = st
		}
	}

	hundred := decimal.NewFromInt(100)
	out := make([]dto.ReplenishmentSuggestionDTO, 0)
	for _, p := range products {
		if !p.IsActive || !p.IsLowStock() {
			continue
		}
		ideal := decimal.NewFromInt(int64(p.MinStock)).Mul(decimal.RequireFromString("1.5")).Ceil()
		idealStock := int(ideal.IntPart())
		suggested := idealStock - p.Stock
		if suggested < 0 {
			suggested = 0
		}
		st := sold[p.ID]
		var margin decimal.Decimal
		if st.revenue.IsPositive() {
			cogs := p.Cost.Mul(decimal.NewFromInt(int64(st.units)))
			margin = st.revenue.Sub(cogs).Div(st.revenue).Mul(hundred).Round(2)
		} else if p.Price.IsPositive() {
			// Sin ventas recientes: margen por precio y costo
			margin = p.Price.Sub(p.Cost).Div(p.Price).Mul(hundred).Round(2)
		}
		out = append(out, dto.ReplenishmentSuggestionDTO{
			ProductID:           p.ID,
			SKU:                 p.SKU,
			ProductName:         p.Name,
			CurrentStock:        p.Stock,
			MinStock:            p.MinStock,
			IdealStock:          idealStock,
			SuggestedOrderQty:   suggested,
			UnitCost:            p.Cost,
			EstimatedOrderCost:  p.Cost.Mul(decimal.NewFromInt(int64(suggested))),
			GrossMarginPct:      margin,
			UnitsSoldLast90Days: st.units,
		})
	}

	// Mayor margen, luego mayor volumen, luego mayor déficit
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.GrossMarginPct.Equal(b.GrossMarginPct) {
			return a.GrossMarginPct.GreaterThan(b.GrossMarginPct)
		}
		if a.UnitsSoldLast90Days != b.UnitsSoldLast90Days {
			return a.UnitsSoldLast90Days > b.UnitsSoldLast90Days
		}
		return a.MinStock-a.CurrentStock > b.MinStock-b.CurrentStock
	})
	for i := range out {
		out[i].Priority = i + 1
	}
	return out, nil
}
