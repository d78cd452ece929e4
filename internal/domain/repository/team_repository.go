package repository

import "github.com/tu-usuario/timesheet-pro/internal/domain/entity"

// TeamRepository define el puerto de persistencia para Team y su membresía.
type TeamRepository interface {
	Create(team *entity.Team) error
	GetByID(id string) (*entity.Team, error)
	// List devuelve todos los equipos ordenados alfabéticamente por nombre.
	List() ([]*entity.Team, error)
	// Delete elimina el equipo (hard delete, sin tocar datos de sus miembros).
	Delete(id string) error
	// RemoveAllMembers elimina todas las filas de membresía del equipo.
	RemoveAllMembers(teamID string) error
	// AddMember agrega un usuario al equipo; idempotente si ya es miembro.
	AddMember(teamID, userID string) error
	// RemoveMember quita un usuario del equipo; no-op si no era miembro.
	RemoveMember(teamID, userID string) error
	// ListMembers devuelve los usuarios miembros del equipo, ordenados por username.
	ListMembers(teamID string) ([]*entity.User, error)
	// MemberIDs devuelve solo los IDs de los miembros actuales.
	MemberIDs(teamID string) ([]string, error)
}
