// Package inventory contiene la lógica pura del libro de stock (servicio de dominio):
// cálculo del stock resultante de un movimiento y clasificación derivada del estado
// de stock. Sin efectos secundarios ni acceso a persistencia.
package inventory

import (
	"github.com/felipefpires/erp-api/internal/domain"
	"github.com/felipefpires/erp-api/internal/domain/entity"
)

// Estados de stock derivados. Nunca se persisten; se recalculan en cada lectura.
const (
	StatusOutOfStock = "out_of_stock"
	StatusLowStock   = "low_stock"
	StatusHighStock  = "high_stock"
	StatusInStock    = "in_stock"
)

// NextStock calcula el stock resultante de aplicar un movimiento.
// Para entry/exit, quantity es un delta; para adjustment es el valor objetivo
// absoluto (semántica heredada del formulario de movimientos; ver StockMovement).
// No muta nada: el caso de uso decide si persiste el resultado.
func NextStock(movementType string, previousStock, quantity int) (int, error) {
	if quantity <= 0 {
		return 0, domain.ErrInvalidQuantity
	}
	switch movementType {
	case entity.MovementTypeEntry:
		return previousStock + quantity, nil
	case entity.MovementTypeExit:
		if previousStock < quantity {
			return 0, domain.ErrInsufficientStock
		}
		return previousStock - quantity, nil
	case entity.MovementTypeAdjustment:
		return quantity, nil
	default:
		return 0, domain.ErrInvalidMovementType
	}
}

// Status clasifica el stock actual contra los umbrales configurados.
// Precedencia: sin stock gana sobre stock bajo aunque minStock sea 0
// (un producto con minStock=0 y currentStock=0 es out_of_stock, no low_stock).
// maxStock en 0 significa sin techo, por lo que nunca produce high_stock.
func Status(currentStock, minStock, maxStock int) string {
	if currentStock <= 0 {
		return StatusOutOfStock
	}
	if currentStock <= minStock {
		return StatusLowStock
	}
	if maxStock > 0 && currentStock >= maxStock {
		return StatusHighStock
	}
	return StatusInStock
}

// ProductStatus aplica Status sobre los campos del producto.
func ProductStatus(p *entity.Product) string {
	return Status(p.CurrentStock, p.MinStock, p.MaxStock)
}
