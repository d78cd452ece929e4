package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/timesheet-pro/internal/application/dto"
	"github.com/tu-usuario/timesheet-pro/internal/application/usecase"
	"github.com/tu-usuario/timesheet-pro/internal/domain"
)

// ActivityHandler maneja el CRUD de actividades (solo admin).
type ActivityHandler struct {
	uc *usecase.ActivityUseCase
}

// NewActivityHandler construye el handler de actividades.
func NewActivityHandler(uc *usecase.ActivityUseCase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

// List godoc
// @Summary      Listar actividades
// @Tags         activities
// @Produce      json
// @Success      200  {object}  dto.ActivityListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /activities [get]
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// NewForm godoc
// @Summary      Formulario de actividad nueva: proyectos activos
// @Tags         activities
// @Produce      json
// @Success      200  {object}  dto.ActivityFormResponse
// @Router       /activities/new [get]
func (h *ActivityHandler) NewForm(c *fiber.Ctx) error {
	out, err := h.uc.FormCandidates()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear actividad bajo un proyecto
// @Tags         activities
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateActivityRequest  true  "name, project_id, is_billable"
// @Success      201   {object}  dto.ActivityResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /activities/new [post]
func (h *ActivityHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateActivityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y project_id (existente) son requeridos"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe una actividad con ese nombre"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
