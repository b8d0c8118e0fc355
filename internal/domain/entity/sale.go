package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados por el POS.
const (
	PaymentCash    = "cash"
	PaymentCard    = "card"
	PaymentDigital = "digital"
)

// IsValidPaymentMethod indica si m es uno de cash, card o digital.
func IsValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentDigital:
		return true
	}
	return false
}

// SaleItem línea de carrito o de venta. ProductName y UnitPrice son copias tomadas al
// crear la línea: ediciones posteriores del catálogo no alteran ventas históricas.
type SaleItem struct {
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal // Quantity * UnitPrice
}

// Sale venta confirmada. Inmutable una vez creada.
type Sale struct {
	ID            string
	Items         []SaleItem
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	Discount      decimal.Decimal
	Total         decimal.Decimal // Subtotal + Tax - Discount
	PaymentMethod string
	CashierID     string
	CustomerID    string // opcional
	CreatedAt     time.Time
}

// UnitsSold suma las cantidades de todas las líneas.
func (s *Sale) UnitsSold() int {
	n := 0
	for _, it := range s.Items {
		n += it.Quantity
	}
	return n
}
