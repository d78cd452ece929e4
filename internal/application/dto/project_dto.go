package dto

import "time"

// CreateProjectRequest entrada para crear un proyecto bajo un cliente.
type CreateProjectRequest struct {
	Name       string `json:"name" form:"name" validate:"required,min=1,max=200"`
	CustomerID string `json:"customer_id" form:"customer_id" validate:"required,uuid"`
}

// ProjectResponse salida de un proyecto.
type ProjectResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	CustomerID string    `json:"customer_id"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ProjectListResponse listado de proyectos.
type ProjectListResponse struct {
	Items []ProjectResponse `json:"items"`
}

// ProjectFormResponse candidatos para el formulario de proyecto nuevo:
// solo clientes activos.
type ProjectFormResponse struct {
	Customers []CustomerResponse `json:"customers"`
}
