package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-api/internal/application/reports"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/infrastructure/memory"
)

var now = time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)

func sale(total, method, customer string, at time.Time, items ...entity.SaleItem) *entity.Sale {
	return &entity.Sale{
		Items:         items,
		Total:         decimal.RequireFromString(total),
		PaymentMethod: method,
		CustomerID:    customer,
		CreatedAt:     at,
	}
}

func seededSales(t *testing.T) *memory.Store {
	t.Helper()
	ctx := context.Background()
	s := memory.New()
	item := func(id, name string, q int, total string) entity.SaleItem {
		return entity.SaleItem{ProductID: id, ProductName: name, Quantity: q, Total: decimal.RequireFromString(total)}
	}
	for _, sl := range []*entity.Sale{
		sale("100", entity.PaymentCard, "c1", now.Add(-26*time.Hour), item("p1", "Auriculares", 1, "100")),
		sale("50", entity.PaymentCash, "", now.Add(-2*time.Hour), item("p2", "Camiseta", 2, "50")),
		sale("100", entity.PaymentCard, "c1", now.Add(-1*time.Hour), item("p1", "Auriculares", 1, "100")),
		sale("30", entity.PaymentCard, "c2", now.Add(-72*time.Hour), item("p3", "Café", 3, "30")),
	} {
		require.NoError(t, s.AddSale(ctx, sl))
	}
	return s
}

func TestSalesSummary(t *testing.T) {
	s := seededSales(t)
	uc := reports.NewUseCase(s.Sales(), s.Products())

	sum, err := uc.SalesSummary(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, "280", sum.TotalRevenue.String())
	assert.Equal(t, 4, sum.TotalTransactions)
	assert.Equal(t, "150", sum.TodayRevenue.String())
	assert.Equal(t, 2, sum.TodayTransactions)
	assert.Equal(t, "100", sum.YesterdayRevenue.String())
	assert.Equal(t, "50", sum.RevenueGrowthPct.String())
	assert.Equal(t, "100", sum.TransactionsGrowthPct.String())
	assert.Equal(t, "70", sum.AverageOrderValue.String())
	assert.Equal(t, 2, sum.UniqueCustomers)
	assert.Equal(t, "card", sum.MostUsedPaymentMethod)
	assert.Equal(t, 3, sum.CountByPaymentMethod["card"])
	assert.Equal(t, "230", sum.RevenueByPaymentMethod["card"].String())
}

func TestSalesSummary_SinVentas(t *testing.T) {
	s := memory.New()
	sum, err := reports.NewUseCase(s.Sales(), s.Products()).SalesSummary(context.Background(), now)
	require.NoError(t, err)
	assert.True(t, sum.AverageOrderValue.IsZero())
	assert.Equal(t, "N/A", sum.MostUsedPaymentMethod)
}

func TestDailyRevenueYTopProducts(t *testing.T) {
	s := seededSales(t)
	uc := reports.NewUseCase(s.Sales(), s.Products())
	ctx := context.Background()

	days, err := uc.DailyRevenue(ctx, now, 7)
	require.NoError(t, err)
	require.Len(t, days, 7)
	assert.Equal(t, "2024-05-10", days[6].Date)
	assert.Equal(t, "150", days[6].Revenue.String())
	assert.Equal(t, "2024-05-07", days[3].Date)
	assert.Equal(t, 1, days[3].Transactions)

	top, err := uc.TopProducts(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "p1", top[0].ProductID)
	assert.Equal(t, 2, top[0].UnitsSold)
	assert.Equal(t, "200", top[0].Revenue.String())
	assert.Equal(t, "p2", top[1].ProductID)
}

func TestInventorySummary(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	require.NoError(t, s.SeedDemo(ctx, "hash"))
	p, _ := s.Products().GetBySKU(ctx, "CB001")
	zero := 0
	_, err := s.UpdateProduct(ctx, p.ID, entity.ProductPatch{Stock: &zero})
	require.NoError(t, err)

	sum, err := reports.NewUseCase(s.Sales(), s.Products()).InventorySummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, sum.ActiveProducts)
	assert.Equal(t, 1, sum.LowStock)
	assert.Equal(t, 1, sum.OutOfStock)
	// 25*60 + 50*8
	assert.Equal(t, "1900", sum.InventoryValue.String())
}
