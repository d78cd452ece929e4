package entity

import "time"

// EntryStateStopped estado inicial de un registro de horas.
const EntryStateStopped = "stopped"

// TimesheetEntry representa un registro de horas de un usuario contra una
// actividad. ProjectID se denormaliza desde la actividad para consultas.
// La aprobación es una transición de un solo sentido: false -> true.
type TimesheetEntry struct {
	ID            string
	UserID        string
	ProjectID     string
	ActivityID    string
	StartTime     time.Time
	EndTime       time.Time
	DurationHours float64
	IsBillable    bool
	Description   string
	State         string // stopped
	Tags          string
	IsApproved    bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ComputeDurationHours calcula la duración en horas (fraccionaria) entre dos
// instantes. Se calcula una sola vez al crear el registro y no se revalida.
// Un fin anterior al inicio produce un valor negativo: se conserva tal cual.
func ComputeDurationHours(start, end time.Time) float64 {
	return end.Sub(start).Hours()
}
