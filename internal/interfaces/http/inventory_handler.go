package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/inventory"
)

// InventoryHandler ajustes manuales, auditoría y reposición (protegido).
type InventoryHandler struct {
	uc            *inventory.AdjustStockUseCase
	replenishment *inventory.ReplenishmentUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.AdjustStockUseCase, replenishment *inventory.ReplenishmentUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc, replenishment: replenishment}
}

// Adjust godoc
// @Summary      Ajuste manual de stock
// @Description  in suma, out resta (recorta en 0), adjustment fija el valor. Registra el delta sin recortar.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "product_id, type, quantity, reason, unit_cost"
// @Success      201   {object}  dto.AdjustStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/adjustments [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	res, err := h.uc.Adjust(c.UserContext(), inventory.AdjustInput{
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Reason:    in.Reason,
		UserID:    GetUserID(c),
		UnitCost:  in.UnitCost,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.AdjustStockResponse{
		Product:  dto.ToProductResponse(res.Product),
		Movement: dto.ToMovementResponse(res.Movement),
	})
}

// Movements godoc
// @Summary      Movimientos de stock (más recientes primero)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Param        limit       query  int     false  "Límite"  default(50)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200  {array}  dto.StockMovementResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) Movements(c *fiber.Ctx) error {
	var q dto.MovementListQuery
	if err := c.QueryParser(&q); err != nil {
		return invalidBody(c)
	}
	q.DefaultPage()
	list, err := h.uc.Movements(c.UserContext(), q.ProductID, q.Limit, q.Offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToMovementList(list))
}

// Replenishment godoc
// @Summary      Sugerencias de reposición
// @Description  Productos en o bajo su mínimo, ordenados por margen y rotación de los últimos 90 días.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ReplenishmentSuggestionDTO
// @Router       /api/inventory/replenishment [get]
func (h *InventoryHandler) Replenishment(c *fiber.Ctx) error {
	list, err := h.replenishment.Suggestions(c.UserContext(), time.Now())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}
