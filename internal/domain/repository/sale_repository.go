package repository

import "github.com/felipefpires/erp-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale y sus líneas.
type SaleRepository interface {
	// Create persiste la venta y todas sus líneas.
	Create(sale *entity.Sale) error
	// GetByID devuelve la venta con sus líneas cargadas.
	GetByID(id string) (*entity.Sale, error)
	// UpdateStatus cambia el estado solo si aún no es el pedido: ErrConflict
	// si otro caller llegó primero, ErrNotFound si la venta no existe.
	UpdateStatus(id, status string) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Sale, error)
	CountByCustomer(customerID string) (int, error)
	CountItemsByProduct(productID string) (int, error)
}
