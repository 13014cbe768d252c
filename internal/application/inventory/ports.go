package inventory

import (
	"context"

	"github.com/felipefpires/erp-api/internal/domain/repository"
)

// TxRunner ejecuta un callback dentro de una transacción SQL, con los repos
// atados a la tx. Commit si fn retorna nil; Rollback en cualquier otro caso.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}
