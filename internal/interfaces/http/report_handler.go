package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/optica-pos/internal/application/dto"
	"github.com/jhoicas/optica-pos/internal/application/report"
	"github.com/jhoicas/optica-pos/internal/domain"
)

// ReportHandler reportes de ventas (protegido).
type ReportHandler struct {
	uc *report.SalesReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.SalesReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Sales godoc
// @Summary      Reporte mensual de ventas por sucursal
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        month        query  int     true  "Mes (1-12)"
// @Param        year         query  int     true  "Año"
// @Param        branch_code  query  string  true  "Sucursal"
// @Success      200  {object}  dto.SalesReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/sales [get]
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	var q dto.SalesReportQuery
	if err := c.QueryParser(&q); err != nil {
		return writeError(c, domain.NewValidationError("", "parámetros inválidos: month, year y branch_code son requeridos"))
	}
	if err := validateStruct(&q); err != nil {
		return writeError(c, err)
	}
	if outOfScope(c, q.BranchCode) {
		return writeError(c, domain.ErrForbidden)
	}
	out, err := h.uc.MonthlySales(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
