package entity

import "time"

// Project representa un proyecto de un cliente.
type Project struct {
	ID         string
	Name       string
	CustomerID string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
