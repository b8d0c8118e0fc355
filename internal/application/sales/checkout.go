// Package sales implementa el carrito por cajero, el checkout transaccional y el historial de ventas.
package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/ports"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/pos"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/pkg/id"
	"github.com/jhoicas/pos-api/pkg/logger"
)

// CheckoutInput carrito finalizado. Los totales del llamador no existen aquí: se recalculan.
type CheckoutInput struct {
	Items         []entity.SaleItem
	Discount      decimal.Decimal
	PaymentMethod string
	CashierID     string
	CustomerID    string // opcional
}

// CheckoutUseCase convierte un carrito en una venta confirmada más sus descuentos de stock.
type CheckoutUseCase struct {
	tx     TxRunner
	events ports.EventPublisher
	log    *logger.Logger
	now    func() time.Time
}

// NewCheckoutUseCase construye el caso de uso. events puede ser nil.
func NewCheckoutUseCase(tx TxRunner, events ports.EventPublisher, log *logger.Logger) *CheckoutUseCase {
	if events == nil {
		events = ports.NopPublisher{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &CheckoutUseCase{tx: tx, events: events, log: log.Component("checkout"), now: time.Now}
}

// Checkout valida el carrito completo contra el stock vigente y confirma todo o nada:
// venta, descuento de stock por línea, un movimiento "out" por línea y el acumulado del cliente.
func (uc *CheckoutUseCase) Checkout(ctx context.Context, in CheckoutInput) (*entity.Sale, error) {
	// Validaciones fuera de la transacción
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if !entity.IsValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidPaymentMethod
	}
	items := make([]entity.SaleItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
		if it.UnitPrice.IsNegative() {
			return nil, domain.NewValidation("unit_price", "el precio no puede ser negativo")
		}
		it.Total = pos.LineTotal(it.Quantity, it.UnitPrice)
		items = append(items, it)
	}
	totals, err := pos.ComputeTotals(items, in.Discount)
	if err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	sale := &entity.Sale{
		ID:            id.New(),
		Items:         items,
		Subtotal:      totals.Subtotal,
		Tax:           totals.Tax,
		Discount:      totals.Discount,
		Total:         totals.Total,
		PaymentMethod: in.PaymentMethod,
		CashierID:     in.CashierID,
		CustomerID:    in.CustomerID,
		CreatedAt:     now,
	}

	err = uc.tx.RunSale(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		movRepo repository.StockMovementRepository,
		customerRepo repository.CustomerRepository,
	) error {
		// 1. Releer y validar todas las líneas antes de escribir
		products := make([]*entity.Product, len(items))
		requested := make(map[string]int, len(items))
		for i, it := range items {
			p, err := productRepo.GetByID(ctx, it.ProductID)
			if err != nil {
				return err
			}
			if p == nil {
				return domain.NewNotFound("producto", it.ProductID)
			}
			requested[p.ID] += it.Quantity
			if requested[p.ID] > p.Stock {
				return &domain.InsufficientStockError{ProductID: p.ID, Requested: requested[p.ID], Available: p.Stock}
			}
			products[i] = p
		}
		var customer *entity.Customer
		if in.CustomerID != "" {
			c, err := customerRepo.GetByID(ctx, in.CustomerID)
			if err != nil {
				return err
			}
			if c == nil {
				return domain.NewNotFound("cliente", in.CustomerID)
			}
			customer = c
		}

		// 2. Escrituras
		if err := saleRepo.Create(ctx, sale); err != nil {
			return fmt.Errorf("guardar venta: %w", err)
		}
		reason := "Sale " + sale.ID
		for i, it := range items {
			p, err := productRepo.GetByID(ctx, products[i].ID)
			if err != nil {
				return err
			}
			p.Stock -= it.Quantity
			if err := productRepo.Update(ctx, p); err != nil {
				return fmt.Errorf("descontar stock %s: %w", p.ID, err)
			}
			mov := &entity.StockMovement{
				ID:        id.New(),
				ProductID: p.ID,
				Type:      entity.MovementTypeOut,
				Quantity:  -it.Quantity,
				Reason:    reason,
				UserID:    in.CashierID,
				CreatedAt: now,
			}
			if err := movRepo.Create(ctx, mov); err != nil {
				return fmt.Errorf("registrar movimiento: %w", err)
			}
		}
		if customer != nil {
			customer.TotalPurchases = customer.TotalPurchases.Add(sale.Total)
			if err := customerRepo.Update(ctx, customer); err != nil {
				return fmt.Errorf("acumulado cliente: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("sale_id", sale.ID).Str("cashier_id", sale.CashierID).
		Str("total", sale.Total.StringFixed(2)).Int("lines", len(sale.Items)).Msg("venta confirmada")
	uc.publish(ctx, sale)
	return sale, nil
}

func (uc *CheckoutUseCase) publish(ctx context.Context, sale *entity.Sale) {
	ev := ports.Event{
		Type:       ports.EventSaleCompleted,
		Key:        sale.ID,
		OccurredAt: sale.CreatedAt,
		Payload:    dto.ToSaleResponse(sale),
	}
	if err := uc.events.Publish(ctx, ev); err != nil {
		uc.log.Warn().Err(err).Str("sale_id", sale.ID).Msg("no se pudo publicar el evento de venta")
	}
}
