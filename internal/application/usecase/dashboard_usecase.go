package usecase

import (
	"github.com/tu-usuario/timesheet-pro/internal/application/dto"
	"github.com/tu-usuario/timesheet-pro/internal/domain/repository"
)

// DashboardUseCase totales agregados para el panel de administración.
type DashboardUseCase struct {
	statsRepo repository.StatsRepository
}

// NewDashboardUseCase construye el caso de uso con el puerto de estadísticas.
func NewDashboardUseCase(statsRepo repository.StatsRepository) *DashboardUseCase {
	return &DashboardUseCase{statsRepo: statsRepo}
}

// AdminStats devuelve los contadores del panel admin. Las horas facturables
// vienen como decimal de la base y se serializan sin pérdida de precisión.
func (uc *DashboardUseCase) AdminStats() (*dto.DashboardStats, error) {
	totals, err := uc.statsRepo.GetDashboardTotals()
	if err != nil {
		return nil, err
	}
	return &dto.DashboardStats{
		TotalUsers:     totals.TotalUsers,
		PendingUsers:   totals.PendingUsers,
		TotalEntries:   totals.TotalEntries,
		PendingEntries: totals.PendingEntries,
		BillableHours:  totals.BillableHours.String(),
	}, nil
}
