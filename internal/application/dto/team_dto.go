package dto

import "time"

// CreateTeamRequest entrada para crear un equipo. El lead debe ser un
// ROLE_TEAMLEAD aprobado.
type CreateTeamRequest struct {
	Name   string `json:"name" form:"name" validate:"required,min=1,max=150"`
	LeadID string `json:"lead_id" form:"lead_id" validate:"required,uuid"`
}

// MemberRequest entrada para agregar o quitar un miembro.
type MemberRequest struct {
	UserID string `json:"user_id" form:"user_id" validate:"required,uuid"`
}

// TeamResponse salida de un equipo.
type TeamResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	LeadID    string    `json:"lead_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TeamListResponse listado de equipos.
type TeamListResponse struct {
	Items []TeamResponse `json:"items"`
}

// TeamFormResponse candidatos a lead para el formulario de equipo nuevo.
type TeamFormResponse struct {
	Leads []UserResponse `json:"leads"`
}

// TeamMembersResponse vista de membresía: miembros actuales y candidatos
// disponibles (ROLE_USER aprobados que aún no pertenecen al equipo).
type TeamMembersResponse struct {
	Team      TeamResponse   `json:"team"`
	Members   []UserResponse `json:"members"`
	Available []UserResponse `json:"available"`
}
