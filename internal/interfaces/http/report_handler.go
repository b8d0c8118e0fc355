package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-api/internal/application/reports"
)

// ReportHandler métricas de ventas e inventario.
type ReportHandler struct {
	uc  *reports.UseCase
	now func() time.Time
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc, now: time.Now}
}

// SalesSummary godoc
// @Summary      Resumen de ventas (hoy vs ayer, medios de pago)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SalesSummaryDTO
// @Router       /api/reports/sales-summary [get]
func (h *ReportHandler) SalesSummary(c *fiber.Ctx) error {
	out, err := h.uc.SalesSummary(c.UserContext(), h.now())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DailyRevenue godoc
// @Summary      Ingresos por día
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        days  query  int  false  "Cantidad de días"  default(7)
// @Success      200  {array}  dto.DailyRevenueDTO
// @Router       /api/reports/daily-revenue [get]
func (h *ReportHandler) DailyRevenue(c *fiber.Ctx) error {
	days := c.QueryInt("days", 7)
	if days <= 0 || days > 366 {
		days = 7
	}
	out, err := h.uc.DailyRevenue(c.UserContext(), h.now(), days)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// TopProducts godoc
// @Summary      Productos más vendidos
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(5)
// @Success      200  {array}  dto.TopProductDTO
// @Router       /api/reports/top-products [get]
func (h *ReportHandler) TopProducts(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 5)
	if limit <= 0 {
		limit = 5
	}
	out, err := h.uc.TopProducts(c.UserContext(), limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Inventory godoc
// @Summary      Resumen de inventario
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventorySummaryDTO
// @Router       /api/reports/inventory [get]
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	out, err := h.uc.InventorySummary(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
