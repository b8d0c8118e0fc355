package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/pos"
)

// AddCartItemRequest body para POST /api/cart/items.
type AddCartItemRequest struct {
	ProductID string `json:"product_id"`
}

// SetQuantityRequest body para PUT /api/cart/items/:productId.
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// SaleItemDTO línea de carrito o venta.
type SaleItemDTO struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// CartResponse estado del carrito con totales sin descuento.
type CartResponse struct {
	Items    []SaleItemDTO   `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// CheckoutRequest body para POST /api/checkout. Los totales siempre se recalculan en servidor.
type CheckoutRequest struct {
	Discount      decimal.Decimal `json:"discount"`
	PaymentMethod string          `json:"payment_method"`
	CustomerID    string          `json:"customer_id,omitempty"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID            string          `json:"id"`
	Items         []SaleItemDTO   `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	Discount      decimal.Decimal `json:"discount"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"payment_method"`
	CashierID     string          `json:"cashier_id"`
	CustomerID    string          `json:"customer_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// SaleListResponse historial paginado.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// SaleListQuery filtros de GET /api/sales (fechas YYYY-MM-DD).
type SaleListQuery struct {
	PageRequest
	From      string `query:"from"`
	To        string `query:"to"`
	CashierID string `query:"cashier_id"`
}

func toItems(items []entity.SaleItem) []SaleItemDTO {
	out := make([]SaleItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, SaleItemDTO{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		})
	}
	return out
}

// ToCartResponse arma la respuesta del carrito a partir de sus líneas y totales.
func ToCartResponse(items []entity.SaleItem, t pos.Totals) CartResponse {
	return CartResponse{
		Items:    toItems(items),
		Subtotal: t.Subtotal,
		Tax:      t.Tax,
		Total:    t.Total,
	}
}

// ToSaleResponse mapea la entidad a su salida HTTP.
func ToSaleResponse(s *entity.Sale) SaleResponse {
	return SaleResponse{
		ID:            s.ID,
		Items:         toItems(s.Items),
		Subtotal:      s.Subtotal,
		Tax:           s.Tax,
		Discount:      s.Discount,
		Total:         s.Total,
		PaymentMethod: s.PaymentMethod,
		CashierID:     s.CashierID,
		CustomerID:    s.CustomerID,
		CreatedAt:     s.CreatedAt,
	}
}
