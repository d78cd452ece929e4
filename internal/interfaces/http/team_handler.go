package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/timesheet-pro/internal/application/dto"
	"github.com/tu-usuario/timesheet-pro/internal/application/timesheet"
	"github.com/tu-usuario/timesheet-pro/internal/application/usecase"
	"github.com/tu-usuario/timesheet-pro/internal/domain"
)

// TeamHandler maneja equipos: CRUD para el admin, membresía y consulta de
// registros para el lead del equipo.
type TeamHandler struct {
	uc      *usecase.TeamUseCase
	entryUC *timesheet.EntryUseCase
}

// NewTeamHandler construye el handler de equipos.
func NewTeamHandler(uc *usecase.TeamUseCase, entryUC *timesheet.EntryUseCase) *TeamHandler {
	return &TeamHandler{uc: uc, entryUC: entryUC}
}

// List godoc
// @Summary      Listar equipos
// @Tags         teams
// @Produce      json
// @Success      200  {object}  dto.TeamListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /teams [get]
func (h *TeamHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// NewForm godoc
// @Summary      Formulario de equipo nuevo: candidatos a lead
// @Tags         teams
// @Produce      json
// @Success      200  {object}  dto.TeamFormResponse
// @Router       /teams/new [get]
func (h *TeamHandler) NewForm(c *fiber.Ctx) error {
	out, err := h.uc.FormCandidates()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear equipo con su lead
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTeamRequest  true  "name, lead_id"
// @Success      201   {object}  dto.TeamResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /teams/new [post]
func (h *TeamHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTeamRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y lead_id de un team lead aprobado son requeridos"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un equipo con ese nombre"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Eliminar equipo y su membresía
// @Tags         teams
// @Produce      json
// @Param        id  path  string  true  "ID del equipo"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /teams/{id}/delete [post]
func (h *TeamHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "equipo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "equipo eliminado"})
}

// Members godoc
// @Summary      Ver membresía del equipo (admin o su lead)
// @Tags         teams
// @Produce      json
// @Param        id  path  string  true  "ID del equipo"
// @Success      200  {object}  dto.TeamMembersResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /teams/{id}/members [get]
func (h *TeamHandler) Members(c *fiber.Ctx) error {
	out, err := h.uc.Members(c.Params("id"), GetUserID(c), GetRole(c))
	if err != nil {
		return teamError(c, err)
	}
	return c.JSON(out)
}

// AddMember godoc
// @Summary      Agregar miembro al equipo (idempotente)
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "ID del equipo"
// @Param        body  body  dto.MemberRequest  true  "user_id"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /teams/{id}/members/add [post]
func (h *TeamHandler) AddMember(c *fiber.Ctx) error {
	var in dto.MemberRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.AddMember(c.Params("id"), in.UserID); err != nil {
		return teamError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "miembro agregado"})
}

// RemoveMember godoc
// @Summary      Quitar miembro del equipo (no-op si no pertenece)
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "ID del equipo"
// @Param        body  body  dto.MemberRequest  true  "user_id"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /teams/{id}/members/remove [post]
func (h *TeamHandler) RemoveMember(c *fiber.Ctx) error {
	var in dto.MemberRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.RemoveMember(c.Params("id"), in.UserID); err != nil {
		return teamError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "miembro quitado"})
}

// Entries godoc
// @Summary      Registros de los miembros del equipo (solo su lead)
// @Tags         teams
// @Produce      json
// @Param        id  path  string  true  "ID del equipo"
// @Success      200  {object}  dto.EntryListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /teams/{id}/entries [get]
func (h *TeamHandler) Entries(c *fiber.Ctx) error {
	out, err := h.entryUC.TeamEntries(c.Params("id"), GetUserID(c))
	if err != nil {
		return teamError(c, err)
	}
	return c.JSON(out)
}

// teamError mapea los errores de dominio de equipos al status HTTP.
func teamError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "equipo no encontrado"})
	case domain.ErrUserNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
	case domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
