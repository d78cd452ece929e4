package repository

import "github.com/tu-usuario/timesheet-pro/internal/domain/entity"

// ProjectRepository define el puerto de persistencia para Project.
type ProjectRepository interface {
	Create(project *entity.Project) error
	GetByID(id string) (*entity.Project, error)
	List() ([]*entity.Project, error)
	// ListActive devuelve solo proyectos activos (candidatos para actividades nuevas).
	ListActive() ([]*entity.Project, error)
}
