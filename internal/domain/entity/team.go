package entity

import "time"

// Team agrupa usuarios bajo un team lead. La membresía es un conjunto:
// agregar un miembro existente es idempotente y quitar un no-miembro es no-op.
// Un usuario puede liderar varios equipos y ser miembro del equipo que lidera.
type Team struct {
	ID        string
	Name      string
	LeadID    string // FK a users; puede quedar vacío si el lead fue eliminado
	CreatedAt time.Time
	UpdatedAt time.Time
}
