package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/timesheet-pro/internal/application/dto"
	"github.com/tu-usuario/timesheet-pro/internal/application/report"
	"github.com/tu-usuario/timesheet-pro/internal/domain"
)

// ReportHandler exportaciones: Excel global para admins y PDF por equipo.
type ReportHandler struct {
	exportUC *report.ExportUseCase
	teamUC   *report.TeamReportUseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(exportUC *report.ExportUseCase, teamUC *report.TeamReportUseCase) *ReportHandler {
	return &ReportHandler{exportUC: exportUC, teamUC: teamUC}
}

// ExportEntries godoc
// @Summary      Exportar todos los registros a Excel
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /entries/export [get]
func (h *ReportHandler) ExportEntries(c *fiber.Ctx) error {
	data, err := h.exportUC.ExportAllEntries(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := fmt.Sprintf("registros_%s.xlsx", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}

// TeamReport godoc
// @Summary      Reporte PDF del equipo (admin o su lead)
// @Tags         reports
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del equipo"
// @Success      200  {file}  binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /teams/{id}/report [get]
func (h *ReportHandler) TeamReport(c *fiber.Ctx) error {
	data, err := h.teamUC.GenerateTeamReport(c.Context(), c.Params("id"), GetUserID(c), GetRole(c))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "equipo no encontrado"})
		}
		if err == domain.ErrForbidden {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, "attachment; filename=\"reporte_equipo.pdf\"")
	return c.Send(data)
}
