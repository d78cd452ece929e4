package report

import (
	"context"

	"github.com/tu-usuario/timesheet-pro/internal/domain/repository"
)

// ExportUseCase arma el export xlsx de todos los registros del sistema
// (solo admin; la autorización la aplica el guard de la ruta).
type ExportUseCase struct {
	entryRepo    repository.EntryRepository
	userRepo     repository.UserRepository
	projectRepo  repository.ProjectRepository
	activityRepo repository.ActivityRepository
	gen          EntriesExcelGenerator
}

// NewExportUseCase construye el caso de uso con los puertos necesarios.
func NewExportUseCase(
	entryRepo repository.EntryRepository,
	userRepo repository.UserRepository,
	projectRepo repository.ProjectRepository,
	activityRepo repository.ActivityRepository,
	gen EntriesExcelGenerator,
) *ExportUseCase {
	return &ExportUseCase{
		entryRepo:    entryRepo,
		userRepo:     userRepo,
		projectRepo:  projectRepo,
		activityRepo: activityRepo,
		gen:          gen,
	}
}

// ExportAllEntries genera el xlsx con todos los registros, más recientes primero.
func (uc *ExportUseCase) ExportAllEntries(ctx context.Context) ([]byte, error) {
	entries, err := uc.entryRepo.ListAll()
	if err != nil {
		return nil, err
	}
	users, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	projects, err := uc.projectRepo.List()
	if err != nil {
		return nil, err
	}
	activities, err := uc.activityRepo.List()
	if err != nil {
		return nil, err
	}
	rows := buildRows(entries, indexUsers(users), indexProjects(projects), indexActivities(activities))
	return uc.gen.GenerateEntriesExcel(ctx, rows)
}
