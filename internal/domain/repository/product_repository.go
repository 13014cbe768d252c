package repository

import "github.com/felipefpires/erp-api/internal/domain/entity"

// ProductFilter filtros y orden para el listado de productos.
type ProductFilter struct {
	Search      string // nombre, sku, barcode o descripción (ILIKE)
	CategoryID  string
	Status      string // active, inactive; vacío = todos
	StockStatus string // in_stock, low_stock, high_stock, out_of_stock; vacío = todos
	Sort        string // name, price, stock, created_at
}

// ProductRepository define el puerto de persistencia para Product.
// UpdateStock y GetForUpdate existen solo para el libro de movimientos:
// el resto del CRUD nunca escribe current_stock.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando su fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(productID string, newStock int) error
	Delete(id string) error
	List(filter ProductFilter, limit, offset int) ([]*entity.Product, error)
	Count(filter ProductFilter) (int, error)
	ListActive() ([]*entity.Product, error)
}
