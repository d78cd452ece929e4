package entity

import "time"

// Activity representa una unidad de trabajo facturable o no, anidada bajo un Project.
type Activity struct {
	ID         string
	Name       string
	ProjectID  string
	IsBillable bool
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
