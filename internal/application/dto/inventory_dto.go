package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// AdjustStockRequest body para POST /api/inventory/adjustments.
// Quantity es el valor ingresado por el operador (no negativo); UnitCost opcional en entradas.
type AdjustStockRequest struct {
	ProductID string           `json:"product_id"`
	Type      string           `json:"type"` // in, out, adjustment
	Quantity  int              `json:"quantity"`
	Reason    string           `json:"reason"`
	UnitCost  *decimal.Decimal `json:"unit_cost,omitempty"`
}

// StockMovementResponse registro de auditoría.
type StockMovementResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"`
	Reason    string    `json:"reason"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// AdjustStockResponse producto actualizado y movimiento registrado.
type AdjustStockResponse struct {
	Product  ProductResponse       `json:"product"`
	Movement StockMovementResponse `json:"movement"`
}

// MovementListQuery filtros de GET /api/inventory/movements.
type MovementListQuery struct {
	PageRequest
	ProductID string `query:"product_id"`
}

// ToMovementResponse mapea la entidad a su salida HTTP.
func ToMovementResponse(m *entity.StockMovement) StockMovementResponse {
	return StockMovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		Reason:    m.Reason,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
}

// ToMovementList mapea una lista de movimientos.
func ToMovementList(list []*entity.StockMovement) []StockMovementResponse {
	out := make([]StockMovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToMovementResponse(m))
	}
	return out
}

// ReplenishmentSuggestionDTO sugerencia de reposición para un producto en o bajo su stock mínimo.
type ReplenishmentSuggestionDTO struct {
	ProductID           string          `json:"product_id"`
	SKU                 string          `json:"sku"`
	ProductName         string          `json:"product_name"`
	CurrentStock        int             `json:"current_stock"`
	MinStock            int             `json:"min_stock"`
	IdealStock          int             `json:"ideal_stock"`         // ceil(MinStock * 1.5)
	SuggestedOrderQty   int             `json:"suggested_order_qty"` // IdealStock - CurrentStock
	UnitCost            decimal.Decimal `json:"unit_cost"`
	EstimatedOrderCost  decimal.Decimal `json:"estimated_order_cost"`
	GrossMarginPct      decimal.Decimal `json:"gross_margin_pct"`
	UnitsSoldLast90Days int             `json:"units_sold_last_90d"`
	Priority            int             `json:"priority"` // 1 = más urgente
}
