package dto

import "time"

// CreateEntryRequest entrada para registrar horas. StartTime y EndTime llegan
// como timestamps ISO-8601; el project_id se deriva de la actividad elegida.
type CreateEntryRequest struct {
	StartTime   string `json:"start_time" form:"start_time" validate:"required"`
	EndTime     string `json:"end_time" form:"end_time" validate:"required"`
	ActivityID  string `json:"activity_id" form:"activity_id" validate:"required,uuid"`
	Description string `json:"description" form:"description" validate:"max=2000"`
	IsBillable  bool   `json:"is_billable" form:"is_billable"`
	Tags        string `json:"tags" form:"tags" validate:"max=255"`
}

// EntryResponse salida de un registro de horas.
type EntryResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	ProjectID     string    `json:"project_id"`
	ActivityID    string    `json:"activity_id"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	DurationHours float64   `json:"duration_hours"`
	IsBillable    bool      `json:"is_billable"`
	Description   string    `json:"description"`
	State         string    `json:"state"`
	Tags          string    `json:"tags"`
	IsApproved    bool      `json:"is_approved"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// EntryListResponse listado de registros de horas.
type EntryListResponse struct {
	Items []EntryResponse `json:"items"`
}

// EntryFormResponse candidatos para el formulario de registro nuevo:
// solo actividades activas.
type EntryFormResponse struct {
	Activities []ActivityResponse `json:"activities"`
}
