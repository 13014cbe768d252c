package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/felipefpires/erp-api/internal/application/dto"
	"github.com/felipefpires/erp-api/internal/application/reports"
)

// ReportHandler maneja los reportes agregados de solo lectura.
type ReportHandler struct {
	summary   *reports.SummaryUseCase
	movements *reports.MovementsUseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(summary *reports.SummaryUseCase, movements *reports.MovementsUseCase) *ReportHandler {
	return &ReportHandler{summary: summary, movements: movements}
}

// Dashboard godoc
// @Summary      Resumen del dashboard
// @Description  Ventas de hoy y del mes, pendientes financieros, productos con
//               stock bajo y próximas citas.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryResponse
// @Router       /api/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.summary.Dashboard(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// InventoryReport godoc
// @Summary      Reporte de inventario
// @Description  Conteos de productos, valor total del stock al costo,
//               productos bajo mínimo y distribución por categoría.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventoryReportResponse
// @Router       /api/inventory/reports [get]
func (h *ReportHandler) InventoryReport(c *fiber.Ctx) error {
	out, err := h.summary.Inventory(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MovementsByRange godoc
// @Summary      Movimientos de stock por rango de fechas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  true  "RFC 3339"
// @Param        to    query  string  true  "RFC 3339"
// @Success      200  {array}   dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/reports/movements [get]
func (h *ReportHandler) MovementsByRange(c *fiber.Ctx) error {
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido (RFC 3339)"})
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido (RFC 3339)"})
	}
	out, err := h.movements.ByDateRange(from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
