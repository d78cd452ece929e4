package entity

import "time"

// Customer representa un cliente contra el que se imputan horas.
// Un cliente inactivo conserva sus proyectos pero deja de aparecer como
// candidato al crear proyectos nuevos.
type Customer struct {
	ID        string
	Name      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
