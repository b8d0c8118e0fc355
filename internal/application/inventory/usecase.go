// Package inventory aplica ajustes manuales de stock con su registro de auditoría.
package inventory

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

// AdjustInput intención de ajuste tal como la ingresa el operador.
type AdjustInput struct {
	ProductID string
	Type      string // in, out, adjustment
	Quantity  int    // no negativo
	Reason    string
	UserID    string
	UnitCost  *decimal.Decimal // opcional en entradas: recalcula el costo promedio
}

// AdjustResult producto actualizado y movimiento registrado.
type AdjustResult struct {
	Product  *entity.Product
	Movement *entity.StockMovement
}

// AdjustStockUseCase ajustes manuales de inventario.
type AdjustStockUseCase struct {
	tx        TxRunner
	movements repository.StockMovementRepository
	events    ports.EventPublisher
	log       *logger.Logger
	now       func() time.Time
}

// NewAdjustStockUseCase construye el caso de uso. events puede ser nil.
func NewAdjustStockUseCase(
	tx TxRunner,
	movements repository.StockMovementRepository,
	events ports.EventPublisher,
	log *logger.Logger,
) *AdjustStockUseCase {
	if events == nil {
		events = ports.NopPublisher{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &AdjustStockUseCase{tx: tx, movements: movements, events: events, log: log.Component("inventory"), now: time.Now}
}

// Adjust calcula el nuevo stock (recortado en 0) y confirma en una sola transacción la
// actualización del producto y el movimiento con el delta sin recortar.
func (uc *AdjustStockUseCase) Adjust(ctx context.Context, in AdjustInput) (*AdjustResult, error) {
	// Validar entrada antes de abrir la transacción
	if _, err := pos.ComputeAdjustment(0, in.Type, in.Quantity, in.Reason); err != nil {
		return nil, err
	}
	if in.UnitCost != nil && in.UnitCost.IsNegative() {
		return nil, domain.NewValidation("unit_cost", "el costo no puede ser negativo")
	}

	now := uc.now().UTC()
	var result AdjustResult
	err := uc.tx.Run(ctx, func(productRepo repository.ProductRepository, movRepo repository.StockMovementRepository) error {
		p, err := productRepo.GetByID(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.NewNotFound("producto", in.ProductID)
		}
		adj, err := pos.ComputeAdjustment(p.Stock, in.Type, in.Quantity, in.Reason)
		if err != nil {
			return err
		}
		if in.Type == entity.MovementTypeIn && in.UnitCost != nil {
			p.Cost = pos.WeightedAverageCost(p.Stock, p.Cost, in.Quantity, *in.UnitCost)
		}
		p.Stock = adj.NewStock
		if err := productRepo.Update(ctx, p); err != nil {
			return fmt.Errorf("actualizar stock: %w", err)
		}
		mov := &entity.StockMovement{
			ID:        id.New(),
			ProductID: p.ID,
			Type:      in.Type,
			Quantity:  adj.Delta,
			Reason:    in.Reason,
			UserID:    in.UserID,
			CreatedAt: now,
		}
		if err := movRepo.Create(ctx, mov); err != nil {
			return fmt.Errorf("registrar movimiento: %w", err)
		}
		result = AdjustResult{Product: p, Movement: mov}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("product_id", result.Product.ID).Str("type", in.Type).
		Int("delta", result.Movement.Quantity).Int("stock", result.Product.Stock).Msg("stock ajustado")
	ev := ports.Event{
		Type:       ports.EventStockAdjusted,
		Key:        result.Product.ID,
		OccurredAt: now,
		Payload: dto.AdjustStockResponse{
			Product:  dto.ToProductResponse(result.Product),
			Movement: dto.ToMovementResponse(result.Movement),
		},
	}
	if err := uc.events.Publish(ctx, ev); err != nil {
		uc.log.Warn().Err(err).Str("product_id", result.Product.ID).Msg("no se pudo publicar el evento de stock")
	}
	return &result, nil
}

// Movements historial de movimientos, más recientes primero. productID vacío = todos.
func (uc *AdjustStockUseCase) Movements(ctx context.Context, productID string, limit, offset int) ([]*entity.StockMovement, error) {
	if productID == "" {
		return uc.movements.List(ctx, limit, offset)
	}
	return uc.movements.ListByProduct(ctx, productID, limit, offset)
}
