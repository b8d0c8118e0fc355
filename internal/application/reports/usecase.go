// Package reports calcula las métricas del tablero a partir de ventas y catálogo.
// Solo datos: el render de gráficos queda fuera del servicio.
package reports

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// UseCase reportes de ventas e inventario.
type UseCase struct {
	sales    repository.SaleRepository
	products repository.ProductRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(sales repository.SaleRepository, products repository.ProductRepository) *UseCase {
	return &UseCase{sales: sales, products: products}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// growthPct ((hoy - ayer) / ayer) * 100; 0 si ayer es 0.
func growthPct(today, yesterday decimal.Decimal) decimal.Decimal {
	if yesterday.IsZero() {
		return decimal.Zero
	}
	return today.Sub(yesterday).Div(yesterday).Mul(decimal.NewFromInt(100)).Round(2)
}

// SalesSummary métricas globales y de hoy/ayer según el día calendario de now.
func (uc *UseCase) SalesSummary(ctx context.Context, now time.Time) (*dto.SalesSummaryDTO, error) {
	all, err := uc.sales.List(ctx, repository.SaleFilter{})
	if err != nil {
		return nil, err
	}
	today := startOfDay(now)
	yesterday := today.AddDate(0, 0, -1)
	tomorrow := today.AddDate(0, 0, 1)

	out := &dto.SalesSummaryDTO{
		RevenueByPaymentMethod: map[string]decimal.Decimal{},
		CountByPaymentMethod:   map[string]int{},
	}
	customers := map[string]struct{}{}
	for _, s := range all {
		at := s.CreatedAt.In(now.Location())
		out.TotalRevenue = out.TotalRevenue.Add(s.Total)
		out.TotalTransactions++
		switch {
		case !at.Before(today) && at.Before(tomorrow):
			out.TodayRevenue = out.TodayRevenue.Add(s.Total)
			out.TodayTransactions++
		case !at.Before(yesterday) && at.Before(today):
			out.YesterdayRevenue = out.YesterdayRevenue.Add(s.Total)
			out.YesterdayTransactions++
		}
		if s.CustomerID != "" {
			customers[s.CustomerID] = struct{}{}
		}
		out.RevenueByPaymentMethod[s.PaymentMethod] = out.RevenueByPaymentMethod[s.PaymentMethod].Add(s.Total)
		out.CountByPaymentMethod[s.PaymentMethod]++
	}
	out.UniqueCustomers = len(customers)
	if out.TotalTransactions > 0 {
		out.AverageOrderValue = out.TotalRevenue.Div(decimal.NewFromInt(int64(out.TotalTransactions))).Round(2)
	}
	out.RevenueGrowthPct = growthPct(out.TodayRevenue, out.YesterdayRevenue)
	out.TransactionsGrowthPct = growthPct(
		decimal.NewFromInt(int64(out.TodayTransactions)),
		decimal.NewFromInt(int64(out.YesterdayTransactions)),
	)
	out.MostUsedPaymentMethod = "N/A"
	best := 0
	for _, m := range []string{"cash", "card", "digital"} {
		if n := out.CountByPaymentMethod[m]; n > best {
			best, out.MostUsedPaymentMethod = n, m
		}
	}
	return out, nil
}

// DailyRevenue ingresos por día de los últimos days días (incluido hoy), del más antiguo al más reciente.
func (uc *UseCase) DailyRevenue(ctx context.Context, now time.Time, days int) ([]dto.DailyRevenueDTO, error) {
	if days <= 0 {
		days = 7
	}
	today := startOfDay(now)
	from := today.AddDate(0, 0, -(days - 1))
	list, err := uc.sales.List(ctx, repository.SaleFilter{From: &from})
	if err != nil {
		return nil, err
	}
	out := make([]dto.DailyRevenueDTO, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		d := from.AddDate(0, 0, i).Format("2006-01-02")
		out[i] = dto.DailyRevenueDTO{Date: d}
		index[d] = i
	}
	for _, s := range list {
		if i, ok := index[s.CreatedAt.In(now.Location()).Format("2006-01-02")]; ok {
			out[i].Revenue = out[i].Revenue.Add(s.Total)
			out[i].Transactions++
		}
	}
	return out, nil
}

// TopProducts productos con más ingresos (máximo limit, por defecto 5).
func (uc *UseCase) TopProducts(ctx context.Context, limit int) ([]dto.TopProductDTO, error) {
	if limit <= 0 {
		limit = 5
	}
	list, err := uc.sales.List(ctx, repository.SaleFilter{})
	if err != nil {
		return nil, err
	}
	byID := map[string]*dto.TopProductDTO{}
	var order []string
	for _, s := range list {
		for _, it := range s.Items {
			tp, ok := byID[it.ProductID]
			if !ok {
				tp = &dto.TopProductDTO{ProductID: it.ProductID, ProductName: it.ProductName}
				byID[it.ProductID] = tp
				order = append(order, it.ProductID)
			}
			tp.UnitsSold += it.Quantity
			tp.Revenue = tp.Revenue.Add(it.Total)
		}
	}
	out := make([]dto.TopProductDTO, 0, len(order))
	for _, pid := range order {
		out = append(out, *byID[pid])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Revenue.GreaterThan(out[j].Revenue) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// InventorySummary productos activos, stock bajo, agotados y valor del inventario (Σ stock × costo).
func (uc *UseCase) InventorySummary(ctx context.Context) (*dto.InventorySummaryDTO, error) {
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.InventorySummaryDTO{}
	for _, p := range products {
		if p.IsActive {
			out.ActiveProducts++
		}
		if p.IsLowStock() {
			out.LowStock++
		}
		if p.Stock == 0 {
			out.OutOfStock++
		}
		out.InventoryValue = out.InventoryValue.Add(p.Cost.Mul(decimal.NewFromInt(int64(p.Stock))))
	}
	return out, nil
}
