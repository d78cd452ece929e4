package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/timesheet-pro/internal/application/dto"
	"github.com/tu-usuario/timesheet-pro/internal/domain"
	"github.com/tu-usuario/timesheet-pro/internal/domain/entity"
	"github.com/tu-usuario/timesheet-pro/internal/domain/repository"
)

// ActivityUseCase aplica reglas de negocio para actividades.
type ActivityUseCase struct {
	repo        repository.ActivityRepository
	projectRepo repository.ProjectRepository
}

// NewActivityUseCase construye el caso de uso con los puertos de persistencia.
func NewActivityUseCase(repo repository.ActivityRepository, projectRepo repository.ProjectRepository) *ActivityUseCase {
	return &ActivityUseCase{repo: repo, projectRepo: projectRepo}
}

// Create crea una actividad activa bajo un proyecto existente.
func (uc *ActivityUseCase) Create(in dto.CreateActivityRequest) (*dto.ActivityResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.ProjectID == "" {
		return nil, domain.ErrInvalidInput
	}
	project, err := uc.projectRepo.GetByID(in.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	activity := &entity.Activity{
		ID:         uuid.New().String(),
		Name:       name,
		ProjectID:  project.ID,
		IsBillable: in.IsBillable,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(activity); err != nil {
		return nil, err
	}
	return activityToResponse(activity), nil
}

// List lista todas las actividades en orden alfabético.
func (uc *ActivityUseCase) List() (*dto.ActivityListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ActivityResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *activityToResponse(a))
	}
	return &dto.ActivityListResponse{Items: items}, nil
}

// FormCandidates devuelve los proyectos activos ofrecidos al crear una actividad.
func (uc *ActivityUseCase) FormCandidates() (*dto.ActivityFormResponse, error) {
	projects, err := uc.projectRepo.ListActive()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		items = append(items, *projectToResponse(p))
	}
	return &dto.ActivityFormResponse{Projects: items}, nil
}

func activityToResponse(a *entity.Activity) *dto.ActivityResponse {
	if a == nil {
		return nil
	}
	return &dto.ActivityResponse{
		ID:         a.ID,
		Name:       a.Name,
		ProjectID:  a.ProjectID,
		IsBillable: a.IsBillable,
		IsActive:   a.IsActive,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}
