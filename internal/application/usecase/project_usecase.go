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

// ProjectUseCase aplica reglas de negocio para proyectos.
type ProjectUseCase struct {
	repo         repository.ProjectRepository
	customerRepo repository.CustomerRepository
}

// NewProjectUseCase construye el caso de uso con los puertos de persistencia.
func NewProjectUseCase(repo repository.ProjectRepository, customerRepo repository.CustomerRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, customerRepo: customerRepo}
}

// Create crea un proyecto activo bajo un cliente existente. Nombre y cliente
// son obligatorios; un cliente inexistente es un fallo de validación.
func (uc *ProjectUseCase) Create(in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.CustomerID == "" {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	project := &entity.Project{
		ID:         uuid.New().String(),
		Name:       name,
		CustomerID: customer.ID,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(project); err != nil {
		return nil, err
	}
	return projectToResponse(project), nil
}

// List lista todos los proyectos en orden alfabético.
func (uc *ProjectUseCase) List() (*dto.ProjectListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProjectResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *projectToResponse(p))
	}
	return &dto.ProjectListResponse{Items: items}, nil
}

// FormCandidates devuelve los clientes activos ofrecidos al crear un proyecto.
// Los clientes inactivos persisten pero no aparecen como candidatos.
func (uc *ProjectUseCase) FormCandidates() (*dto.ProjectFormResponse, error) {
	customers, err := uc.customerRepo.ListActive()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		items = append(items, *customerToResponse(c))
	}
	return &dto.ProjectFormResponse{Customers: items}, nil
}

func projectToResponse(p *entity.Project) *dto.ProjectResponse {
	if p == nil {
		return nil
	}
	return &dto.ProjectResponse{
		ID:         p.ID,
		Name:       p.Name,
		CustomerID: p.CustomerID,
		IsActive:   p.IsActive,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
