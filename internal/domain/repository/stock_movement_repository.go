package repository

import (
	"time"

	"github.com/felipefpires/erp-api/internal/domain/entity"
)

// StockMovementRepository define el puerto de persistencia para StockMovement.
// El libro es append-only: no hay Update ni Delete.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	// ListByProduct devuelve el historial del producto en orden cronológico inverso.
	ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error)
	List(limit, offset int) ([]*entity.StockMovement, error)
	ListByDateRange(from, to time.Time) ([]*entity.StockMovement, error)
	CountByProduct(productID string) (int, error)
	Count() (int, error)
}
