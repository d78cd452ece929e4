package repository

import "github.com/tu-usuario/timesheet-pro/internal/domain/entity"

// EntryRepository define el puerto de persistencia para TimesheetEntry.
// Todos los listados se ordenan por start_time descendente.
type EntryRepository interface {
	Create(entry *entity.TimesheetEntry) error
	GetByID(id string) (*entity.TimesheetEntry, error)
	Update(entry *entity.TimesheetEntry) error
	// ListByUser devuelve los registros propios de un usuario.
	ListByUser(userID string) ([]*entity.TimesheetEntry, error)
	// ListPending devuelve los registros sin aprobar de todo el sistema.
	ListPending() ([]*entity.TimesheetEntry, error)
	ListAll() ([]*entity.TimesheetEntry, error)
	// ListByUserIDs devuelve los registros cuyos dueños están en el conjunto dado.
	ListByUserIDs(userIDs []string) ([]*entity.TimesheetEntry, error)
}
