package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/timesheet-pro/internal/application/dto"
	"github.com/tu-usuario/timesheet-pro/internal/application/timesheet"
	"github.com/tu-usuario/timesheet-pro/internal/domain"
)

// EntryHandler maneja los registros de horas: carga propia, aprobación por
// leads y listados globales para admins.
type EntryHandler struct {
	uc *timesheet.EntryUseCase
}

// NewEntryHandler construye el handler de registros de horas.
func NewEntryHandler(uc *timesheet.EntryUseCase) *EntryHandler {
	return &EntryHandler{uc: uc}
}

// List godoc
// @Summary      Listar mis registros de horas
// @Tags         entries
// @Produce      json
// @Success      200  {object}  dto.EntryListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /entries [get]
func (h *EntryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListMine(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// NewForm godoc
// @Summary      Formulario de registro nuevo: actividades activas
// @Tags         entries
// @Produce      json
// @Success      200  {object}  dto.EntryFormResponse
// @Router       /entries/new [get]
func (h *EntryHandler) NewForm(c *fiber.Ctx) error {
	out, err := h.uc.FormCandidates()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar horas trabajadas
// @Tags         entries
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEntryRequest  true  "start_time, end_time, activity_id, description, is_billable, tags"
// @Success      201   {object}  dto.EntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /entries/new [post]
func (h *EntryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_time y end_time ISO-8601 y activity_id existente son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Pending godoc
// @Summary      Listar registros pendientes de aprobación
// @Tags         entries
// @Produce      json
// @Success      200  {object}  dto.EntryListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /entries/pending [get]
func (h *EntryHandler) Pending(c *fiber.Ctx) error {
	out, err := h.uc.ListPending()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Aprobar un registro de horas
// @Tags         entries
// @Produce      json
// @Param        id  path  string  true  "ID del registro"
// @Success      200  {object}  dto.EntryResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /entries/{id}/approve [post]
func (h *EntryHandler) Approve(c *fiber.Ctx) error {
	out, err := h.uc.Approve(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// All godoc
// @Summary      Listar todos los registros (admin)
// @Tags         entries
// @Produce      json
// @Success      200  {object}  dto.EntryListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /entries/all [get]
func (h *EntryHandler) All(c *fiber.Ctx) error {
	out, err := h.uc.ListAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AllLead godoc
// @Summary      Listar todos los registros (team lead)
// @Tags         entries
// @Produce      json
// @Success      200  {object}  dto.EntryListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /entries/all_lead [get]
func (h *EntryHandler) AllLead(c *fiber.Ctx) error {
	out, err := h.uc.ListAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
