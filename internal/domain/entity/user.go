package entity

import "time"

// Roles válidos para User. Conjunto cerrado: cualquier otro valor es rechazado
// por ParseRole antes de llegar a la persistencia.
const (
	RoleAdmin    = "ROLE_ADMIN"
	RoleTeamLead = "ROLE_TEAMLEAD"
	RoleUser     = "ROLE_USER"
)

// ParseRole valida que el string recibido sea uno de los roles del sistema.
// Devuelve ok=false si no pertenece al conjunto.
func ParseRole(s string) (string, bool) {
	switch s {
	case RoleAdmin, RoleTeamLead, RoleUser:
		return s, true
	}
	return "", false
}

// User representa una cuenta del sistema.
// Los usuarios auto-registrados nacen con IsApproved=false y no pueden
// autenticarse hasta que un admin los apruebe.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // ROLE_ADMIN, ROLE_TEAMLEAD, ROLE_USER
	IsApproved   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
