package entity

import "time"

// Estados de cliente.
const (
	CustomerStatusActive   = "active"
	CustomerStatusInactive = "inactive"
	CustomerStatusProspect = "prospect"
)

// Customer representa un cliente del CRM.
type Customer struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Instagram string
	Address   string
	City      string
	State     string
	ZipCode   string
	Company   string
	TaxID     string // CPF o CNPJ
	Status    string // active, inactive, prospect
	CreatedAt time.Time
	UpdatedAt time.Time
}
