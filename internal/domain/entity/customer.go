package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer cliente opcional asociado a una venta.
type Customer struct {
	ID             string
	Name           string
	Email          string
	Phone          string
	Address        string
	TotalPurchases decimal.Decimal // acumulado de Sale.Total
	CreatedAt      time.Time
}
