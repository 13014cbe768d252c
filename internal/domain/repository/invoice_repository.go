package repository

import "github.com/felipefpires/erp-api/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	GetByNumber(invoiceNumber string) (*entity.Invoice, error)
	Update(invoice *entity.Invoice) error
	List(status string, limit, offset int) ([]*entity.Invoice, error)
}
