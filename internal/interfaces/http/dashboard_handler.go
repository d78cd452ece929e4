package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/timesheet-pro/internal/application/dto"
	"github.com/tu-usuario/timesheet-pro/internal/application/usecase"
)

// DashboardHandler paneles por rol. El panel admin incluye totales agregados.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler inyectando el caso de uso.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Admin godoc
// @Summary      Panel de administración
// @Tags         dashboards
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /admin [get]
func (h *DashboardHandler) Admin(c *fiber.Ctx) error {
	stats, err := h.uc.AdminStats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.DashboardResponse{User: currentUser(c), Stats: stats})
}

// Lead godoc
// @Summary      Panel del team lead
// @Tags         dashboards
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /lead [get]
func (h *DashboardHandler) Lead(c *fiber.Ctx) error {
	return c.JSON(dto.DashboardResponse{User: currentUser(c)})
}

// User godoc
// @Summary      Panel del usuario
// @Tags         dashboards
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /dashboard [get]
func (h *DashboardHandler) User(c *fiber.Ctx) error {
	return c.JSON(dto.DashboardResponse{User: currentUser(c)})
}

// currentUser arma la vista del usuario autenticado desde los claims del
// token. Solo usuarios aprobados llegan a tener token.
func currentUser(c *fiber.Ctx) dto.UserResponse {
	return dto.UserResponse{
		ID:         GetUserID(c),
		Username:   GetUsername(c),
		Role:       GetRole(c),
		IsApproved: true,
	}
}
