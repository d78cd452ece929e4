package repository

import "github.com/tu-usuario/timesheet-pro/internal/domain/entity"

// ActivityRepository define el puerto de persistencia para Activity.
type ActivityRepository interface {
	Create(activity *entity.Activity) error
	GetByID(id string) (*entity.Activity, error)
	List() ([]*entity.Activity, error)
	// ListActive devuelve solo actividades activas (candidatas para registros nuevos).
	ListActive() ([]*entity.Activity, error)
}
