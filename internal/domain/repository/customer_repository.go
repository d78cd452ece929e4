package repository

import "github.com/tu-usuario/timesheet-pro/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	// List devuelve todos los clientes ordenados alfabéticamente por nombre.
	List() ([]*entity.Customer, error)
	// ListActive devuelve solo clientes activos (candidatos para proyectos nuevos).
	ListActive() ([]*entity.Customer, error)
}
