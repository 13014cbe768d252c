package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/felipefpires/erp-api/internal/domain"
	"github.com/felipefpires/erp-api/internal/domain/entity"
	dominv "github.com/felipefpires/erp-api/internal/domain/inventory"
	"github.com/felipefpires/erp-api/internal/domain/repository"
)

// LedgerUseCase aplica movimientos de stock de forma transaccional.
//
// Garantía central: después de cada ApplyMovement exitoso, CurrentStock del
// producto es igual al NewStock del último movimiento, y reproducir todos los
// movimientos en orden de creación desde 0 reconstruye CurrentStock exacto.
// La fila del producto se bloquea (SELECT FOR UPDATE) durante la aplicación,
// así dos salidas concurrentes no pueden sobregirar el stock.
type LedgerUseCase struct {
	txRunner TxRunner
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(txRunner TxRunner) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner}
}

// MovementInput entrada para aplicar un movimiento de stock.
// ActorID viene siempre del contexto autenticado del caller, nunca de estado global.
type MovementInput struct {
	ProductID string
	Type      string // entry, exit, adjustment
	Quantity  int    // delta para entry/exit; objetivo absoluto para adjustment
	UnitCost  *decimal.Decimal
	Reference string
	Notes     string
	ActorID   string
}

// ApplyMovement valida la entrada, bloquea la fila del producto, calcula el
// stock resultante, actualiza current_stock e inserta el registro de auditoría,
// todo en una sola transacción. Devuelve el movimiento creado; los callers leen
// NewStock de ahí para el mensaje de confirmación.
//
// Fallos de validación (cantidad, tipo, producto inexistente, stock
// insuficiente) no escriben nada. Fallos de persistencia hacen rollback total.
func (uc *LedgerUseCase) ApplyMovement(ctx context.Context, input MovementInput) (*entity.StockMovement, error) {
	// Validaciones puras antes de abrir transacción.
	if input.ProductID == "" || input.ActorID == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	switch input.Type {
	case entity.MovementTypeEntry, entity.MovementTypeExit, entity.MovementTypeAdjustment:
	default:
		return nil, domain.ErrInvalidMovementType
	}

	var created *entity.StockMovement
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		product, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		mov, err := applyTo(productRepo, movementRepo, product, input, time.Now())
		if err != nil {
			return err
		}
		created = mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ApplyExitInTx aplica una salida usando los repos del caller (misma transacción).
// Lo usa la creación de ventas para descontar stock por cada línea sin abrir
// una transacción propia. El caller ya debe haber bloqueado la fila vía
// GetForUpdate; aquí se vuelve a bloquear por producto para mantener el orden.
func (uc *LedgerUseCase) ApplyExitInTx(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	productID string,
	quantity int,
	reference string,
	actorID string,
	now time.Time,
) (*entity.StockMovement, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	product, err := productRepo.GetForUpdate(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return applyTo(productRepo, movementRepo, product, MovementInput{
		ProductID: productID,
		Type:      entity.MovementTypeExit,
		Quantity:  quantity,
		UnitCost:  &product.CostPrice,
		Reference: reference,
		ActorID:   actorID,
	}, now)
}

// ApplyEntryInTx aplica una entrada usando los repos del caller (misma
// transacción). Lo usa la cancelación de ventas para devolver el stock de cada
// línea con rastro en el libro.
func (uc *LedgerUseCase) ApplyEntryInTx(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	productID string,
	quantity int,
	reference string,
	actorID string,
	now time.Time,
) (*entity.StockMovement, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	product, err := productRepo.GetForUpdate(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return applyTo(productRepo, movementRepo, product, MovementInput{
		ProductID: productID,
		Type:      entity.MovementTypeEntry,
		Quantity:  quantity,
		UnitCost:  &product.CostPrice,
		Reference: reference,
		ActorID:   actorID,
	}, now)
}

// applyTo calcula el stock resultante y persiste la pareja update+insert.
// El producto ya viene bloqueado por el caller.
func applyTo(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	product *entity.Product,
	input MovementInput,
	now time.Time,
) (*entity.StockMovement, error) {
	previous := product.CurrentStock
	next, err := dominv.NextStock(input.Type, previous, input.Quantity)
	if err != nil {
		return nil, err
	}

	unitCost := decimal.Zero
	if input.UnitCost != nil {
		unitCost = *input.UnitCost
	}

	if err := productRepo.UpdateStock(product.ID, next); err != nil {
		return nil, err
	}
	mov := &entity.StockMovement{
		ID:            uuid.New().String(),
		ProductID:     product.ID,
		Type:          input.Type,
		Quantity:      input.Quantity,
		PreviousStock: previous,
		NewStock:      next,
		UnitCost:      unitCost,
		TotalCost:     decimal.NewFromInt(int64(input.Quantity)).Mul(unitCost),
		Reference:     input.Reference,
		Notes:         input.Notes,
		UserID:        input.ActorID,
		MovementDate:  now,
	}
	if err := movementRepo.Create(mov); err != nil {
		return nil, err
	}
	return mov, nil
}
