package repository

import "github.com/tu-usuario/timesheet-pro/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Las búsquedas devuelven (nil, nil) cuando el registro no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// GetByUsername busca por coincidencia exacta (case-sensitive) del valor almacenado.
	GetByUsername(username string) (*entity.User, error)
	Update(user *entity.User) error
	// List devuelve todos los usuarios ordenados alfabéticamente por username.
	List() ([]*entity.User, error)
	// ListLeadCandidates devuelve los ROLE_TEAMLEAD aprobados (candidatos a lead de equipo).
	ListLeadCandidates() ([]*entity.User, error)
	// ListAvailableForTeam devuelve los ROLE_USER aprobados que aún no son miembros del equipo.
	ListAvailableForTeam(teamID string) ([]*entity.User, error)
}
