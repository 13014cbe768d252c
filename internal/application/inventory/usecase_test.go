package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinv "github.com/felipefpires/erp-api/internal/application/inventory"
	"github.com/felipefpires/erp-api/internal/domain"
	"github.com/felipefpires/erp-api/internal/domain/entity"
	dominv "github.com/felipefpires/erp-api/internal/domain/inventory"
	"github.com/felipefpires/erp-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria con semántica transaccional: el runner toma un snapshot del
// estado antes de fn y lo restaura si fn falla, igual que un rollback real.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	products  map[string]*entity.Product
	movements []*entity.StockMovement

	failUpdateStock    bool // simula fallo de persistencia en el UPDATE
	failCreateMovement bool // simula fallo de persistencia en el INSERT
}

func newFakeStore(products ...*entity.Product) *fakeStore {
	s := &fakeStore{products: map[string]*entity.Product{}}
	for _, p := range products {
		cp := *p
		s.products[p.ID] = &cp
	}
	return s
}

func (s *fakeStore) snapshot() *fakeStore {
	cp := &fakeStore{products: map[string]*entity.Product{}}
	for id, p := range s.products {
		pc := *p
		cp.products[id] = &pc
	}
	cp.movements = append([]*entity.StockMovement(nil), s.movements...)
	return cp
}

func (s *fakeStore) restore(from *fakeStore) {
	s.products = from.products
	s.movements = from.movements
}

// fakeProductRepo implementa repository.ProductRepository sobre el store.
type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) Create(p *entity.Product) error { r.s.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.s.products[id], nil
}
func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.s.products[id], nil
}
func (r *fakeProductRepo) Update(p *entity.Product) error { r.s.products[p.ID] = p; return nil }
func (r *fakeProductRepo) UpdateStock(productID string, newStock int) error {
	if r.s.failUpdateStock {
		return errors.New("update stock: connection reset")
	}
	p, ok := r.s.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.CurrentStock = newStock
	return nil
}
func (r *fakeProductRepo) Delete(id string) error { delete(r.s.products, id); return nil }
func (r *fakeProductRepo) List(repository.ProductFilter, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) Count(repository.ProductFilter) (int, error) { return 0, nil }
func (r *fakeProductRepo) ListActive() ([]*entity.Product, error)      { return nil, nil }

// fakeMovementRepo implementa repository.StockMovementRepository (append-only).
type fakeMovementRepo struct{ s *fakeStore }

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	if r.s.failCreateMovement {
		return errors.New("insert movement: connection reset")
	}
	r.s.movements = append(r.s.movements, m)
	return nil
}
func (r *fakeMovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for i := len(r.s.movements) - 1; i >= 0; i-- {
		if r.s.movements[i].ProductID == productID {
			out = append(out, r.s.movements[i])
		}
	}
	return out, nil
}
func (r *fakeMovementRepo) List(limit, offset int) ([]*entity.StockMovement, error) {
	return r.s.movements, nil
}
func (r *fakeMovementRepo) ListByDateRange(from, to time.Time) ([]*entity.StockMovement, error) {
	return r.s.movements, nil
}
func (r *fakeMovementRepo) CountByProduct(productID string) (int, error) {
	n := 0
	for _, m := range r.s.movements {
		if m.ProductID == productID {
			n++
		}
	}
	return n, nil
}
func (r *fakeMovementRepo) Count() (int, error) { return len(r.s.movements), nil }

// fakeTxRunner ejecuta fn con snapshot/restore para emular commit/rollback.
type fakeTxRunner struct{ s *fakeStore }

func (t *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	snap := t.s.snapshot()
	if err := fn(&fakeProductRepo{s: t.s}, &fakeMovementRepo{s: t.s}); err != nil {
		t.s.restore(snap)
		return err
	}
	return nil
}

func newLedger(s *fakeStore) *appinv.LedgerUseCase {
	return appinv.NewLedgerUseCase(&fakeTxRunner{s: s})
}

func producto(id string, stock int) *entity.Product {
	return &entity.Product{
		ID:           id,
		Name:         "Produto " + id,
		CostPrice:    decimal.NewFromInt(10),
		SalePrice:    decimal.NewFromInt(25),
		CurrentStock: stock,
		IsActive:     true,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ApplyMovement
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyMovement_Entrada(t *testing.T) {
	s := newFakeStore(producto("p1", 10))
	uc := newLedger(s)

	cost := decimal.NewFromInt(7)
	mov, err := uc.ApplyMovement(context.Background(), appinv.MovementInput{
		ProductID: "p1",
		Type:      entity.MovementTypeEntry,
		Quantity:  5,
		UnitCost:  &cost,
		Reference: "NF-1001",
		ActorID:   "u1",
	})
	require.NoError(t, err)

	assert.Equal(t, 10, mov.PreviousStock)
	assert.Equal(t, 15, mov.NewStock)
	assert.Equal(t, 15, s.products["p1"].CurrentStock)
	assert.True(t, mov.TotalCost.Equal(decimal.NewFromInt(35)), "total_cost = quantity * unit_cost")
	assert.Equal(t, "u1", mov.UserID)
	require.Len(t, s.movements, 1)
}

func TestApplyMovement_SalidaExitosa(t *testing.T) {
	s := newFakeStore(producto("p1", 10))
	uc := newLedger(s)

	mov, err := uc.ApplyMovement(context.Background(), appinv.MovementInput{
		ProductID: "p1", Type: entity.MovementTypeExit, Quantity: 4, ActorID: "u1",
	})
	require.NoError(t, err)
	assert.Equal(t, 6, mov.NewStock)
	assert.Equal(t, 6, s.products["p1"].CurrentStock)
}

func TestApplyMovement_SalidaSinStock_NoMuta(t *testing.T) {
	s := newFakeStore(producto("p1", 3))
	uc := newLedger(s)

	_, err := uc.ApplyMovement(context.Background(), appinv.MovementInput{
		ProductID: "p1", Type: entity.MovementTypeExit, Quantity: 5, ActorID: "u1",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 3, s.products["p1"].CurrentStock, "el stock no debe cambiar")
	assert.Empty(t, s.movements, "no debe crearse ningún movimiento")
}

func TestApplyMovement_AjusteFijaStockAbsoluto(t *testing.T) {
	s := newFakeStore(producto("p1", 7))
	uc := newLedger(s)

	mov, err := uc.ApplyMovement(context.Background(), appinv.MovementInput{
		ProductID: "p1", Type: entity.MovementTypeAdjustment, Quantity: 20, ActorID: "u1",
	})
	require.NoError(t, err)
	assert.Equal(t, 7, mov.PreviousStock)
	assert.Equal(t, 20, mov.NewStock, "el ajuste fija el stock, no suma")
	assert.Equal(t, 20, s.products["p1"].CurrentStock)
}

func TestApplyMovement_CantidadInvalida_NoMuta(t *testing.T) {
	s := newFakeStore(producto("p1", 10))
	uc := newLedger(s)

	for _, qty := range []int{0, -3} {
		_, err := uc.ApplyMovement(context.Background(), appinv.MovementInput{
			ProductID: "p1", Type: entity.MovementTypeEntry, Quantity: qty, ActorID: "u1",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "quantity=%d", qty)
	}
	assert.Equal(t, 10, s.products["p1"].CurrentStock)
	assert.Empty(t, s.movements)
}

func TestApplyMovement_TipoInvalido(t *testing.T) {
	s := newFakeStore(producto("p1", 10))
	uc := newLedger(s)

	_, err := uc.ApplyMovement(context.Background(), appinv.MovementInput{
		ProductID: "p1", Type: "loan", Quantity: 1, ActorID: "u1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidMovementType)
	assert.Empty(t, s.movements)
}

func TestApplyMovement_ProductoInexistente(t *testing.T) {
	s := newFakeStore()
	uc := newLedger(s)

	_, err := uc.ApplyMovement(context.Background(), appinv.MovementInput{
		ProductID: "nope", Type: entity.MovementTypeEntry, Quantity: 1, ActorID: "u1",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Fallo de persistencia al insertar el movimiento: rollback total, el UPDATE
// de stock que ya se había aplicado dentro de la tx no debe quedar visible.
func TestApplyMovement_FalloPersistencia_RollbackTotal(t *testing.T) {
	s := newFakeStore(producto("p1", 10))
	s.failCreateMovement = true
	uc := newLedger(s)

	_, err := uc.ApplyMovement(context.Background(), appinv.MovementInput{
		ProductID: "p1", Type: entity.MovementTypeEntry, Quantity: 5, ActorID: "u1",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Equal(t, 10, s.products["p1"].CurrentStock, "rollback debe restaurar el stock")
	assert.Empty(t, s.movements)
}

func TestApplyMovement_FalloUpdateStock_NoCreaMovimiento(t *testing.T) {
	s := newFakeStore(producto("p1", 10))
	s.failUpdateStock = true
	uc := newLedger(s)

	_, err := uc.ApplyMovement(context.Background(), appinv.MovementInput{
		ProductID: "p1", Type: entity.MovementTypeExit, Quantity: 2, ActorID: "u1",
	})
	require.Error(t, err)
	assert.Equal(t, 10, s.products["p1"].CurrentStock)
	assert.Empty(t, s.movements)
}

// ──────────────────────────────────────────────────────────────────────────────
// Invariantes del libro
// ──────────────────────────────────────────────────────────────────────────────

// Reproducir todos los movimientos de un producto en orden de creación desde 0
// debe dar exactamente su CurrentStock.
func TestLedger_InvarianteDeReconstruccion(t *testing.T) {
	s := newFakeStore(producto("p1", 0))
	uc := newLedger(s)
	ctx := context.Background()

	steps := []appinv.MovementInput{
		{ProductID: "p1", Type: entity.MovementTypeEntry, Quantity: 50, ActorID: "u1"},
		{ProductID: "p1", Type: entity.MovementTypeExit, Quantity: 12, ActorID: "u1"},
		{ProductID: "p1", Type: entity.MovementTypeAdjustment, Quantity: 30, ActorID: "u2"},
		{ProductID: "p1", Type: entity.MovementTypeExit, Quantity: 30, ActorID: "u1"},
		{ProductID: "p1", Type: entity.MovementTypeEntry, Quantity: 8, ActorID: "u2"},
	}
	for _, in := range steps {
		_, err := uc.ApplyMovement(ctx, in)
		require.NoError(t, err)
	}

	// Replay puro con la función de dominio.
	replayed := 0
	for _, m := range s.movements {
		next, err := dominv.NextStock(m.Type, replayed, m.Quantity)
		require.NoError(t, err)
		assert.Equal(t, m.PreviousStock, replayed, "previous_stock debe encadenar")
		assert.Equal(t, m.NewStock, next, "new_stock debe encadenar")
		replayed = next
	}
	assert.Equal(t, s.products["p1"].CurrentStock, replayed,
		"reproducir el libro desde 0 debe reconstruir el stock actual")
}

// El libro es monótono: los rechazos no agregan filas y nada las borra.
func TestLedger_AuditoriaMonotona(t *testing.T) {
	s := newFakeStore(producto("p1", 5))
	uc := newLedger(s)
	ctx := context.Background()

	_, err := uc.ApplyMovement(ctx, appinv.MovementInput{
		ProductID: "p1", Type: entity.MovementTypeEntry, Quantity: 1, ActorID: "u1",
	})
	require.NoError(t, err)
	require.Len(t, s.movements, 1)

	_, err = uc.ApplyMovement(ctx, appinv.MovementInput{
		ProductID: "p1", Type: entity.MovementTypeExit, Quantity: 100, ActorID: "u1",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Len(t, s.movements, 1, "un rechazo no debe tocar el historial")
}

// ──────────────────────────────────────────────────────────────────────────────
// ApplyExitInTx (integración con ventas)
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyExitInTx_DescuentaAlCostoActual(t *testing.T) {
	s := newFakeStore(producto("p1", 10))
	uc := newLedger(s)

	mov, err := uc.ApplyExitInTx(
		&fakeProductRepo{s: s}, &fakeMovementRepo{s: s},
		"p1", 3, "venta v1", "u1", time.Now(),
	)
	require.NoError(t, err)
	assert.Equal(t, 7, mov.NewStock)
	assert.True(t, mov.UnitCost.Equal(decimal.NewFromInt(10)), "usa el costo del producto")
	assert.Equal(t, "venta v1", mov.Reference)
}
