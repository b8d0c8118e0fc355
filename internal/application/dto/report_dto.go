package dto

import "github.com/shopspring/decimal"

// SalesSummaryDTO métricas del tablero de ventas.
type SalesSummaryDTO struct {
	TotalRevenue           decimal.Decimal            `json:"total_revenue"`
	TotalTransactions      int                        `json:"total_transactions"`
	TodayRevenue           decimal.Decimal            `json:"today_revenue"`
	TodayTransactions      int                        `json:"today_transactions"`
	YesterdayRevenue       decimal.Decimal            `json:"yesterday_revenue"`
	YesterdayTransactions  int                        `json:"yesterday_transactions"`
	RevenueGrowthPct       decimal.Decimal            `json:"revenue_growth_pct"`
	TransactionsGrowthPct  decimal.Decimal            `json:"transactions_growth_pct"`
	AverageOrderValue      decimal.Decimal            `json:"average_order_value"`
	UniqueCustomers        int                        `json:"unique_customers"`
	RevenueByPaymentMethod map[string]decimal.Decimal `json:"revenue_by_payment_method"`
	CountByPaymentMethod   map[string]int             `json:"count_by_payment_method"`
	MostUsedPaymentMethod  string                     `json:"most_used_payment_method"`
}

// InventorySummaryDTO métricas de la pantalla de inventario.
type InventorySummaryDTO struct {
	ActiveProducts int             `json:"active_products"`
	LowStock       int             `json:"low_stock"`
	OutOfStock     int             `json:"out_of_stock"`
	InventoryValue decimal.Decimal `json:"inventory_value"` // Σ stock × costo
}

// TopProductDTO producto más vendido en un período.
type TopProductDTO struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitsSold   int             `json:"units_sold"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// DailyRevenueDTO ingresos de un día (YYYY-MM-DD, UTC).
type DailyRevenueDTO struct {
	Date         string          `json:"date"`
	Revenue      decimal.Decimal `json:"revenue"`
	Transactions int             `json:"transactions"`
}
