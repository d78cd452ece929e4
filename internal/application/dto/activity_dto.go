package dto

import "time"

// CreateActivityRequest entrada para crear una actividad bajo un proyecto.
type CreateActivityRequest struct {
	Name       string `json:"name" form:"name" validate:"required,min=1,max=200"`
	ProjectID  string `json:"project_id" form:"project_id" validate:"required,uuid"`
	IsBillable bool   `json:"is_billable" form:"is_billable"`
}

// ActivityResponse salida de una actividad.
type ActivityResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	ProjectID  string    `json:"project_id"`
	IsBillable bool      `json:"is_billable"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ActivityListResponse listado de actividades.
type ActivityListResponse struct {
	Items []ActivityResponse `json:"items"`
}

// ActivityFormResponse candidatos para el formulario de actividad nueva:
// solo proyectos activos.
type ActivityFormResponse struct {
	Projects []ProjectResponse `json:"projects"`
}
