package repository

import "github.com/felipefpires/erp-api/internal/domain/entity"

// CustomerFilter filtros de búsqueda para el listado de clientes.
type CustomerFilter struct {
	Search string // nombre, email o teléfono (ILIKE)
	Status string // active, inactive, prospect; vacío = todos
}

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
	List(filter CustomerFilter, limit, offset int) ([]*entity.Customer, error)
	Count(filter CustomerFilter) (int, error)
}
