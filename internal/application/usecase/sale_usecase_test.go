package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felipefpires/erp-api/internal/application/dto"
	appinv "github.com/felipefpires/erp-api/internal/application/inventory"
	"github.com/felipefpires/erp-api/internal/domain"
	"github.com/felipefpires/erp-api/internal/domain/entity"
	"github.com/felipefpires/erp-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria con semántica transaccional: el runner serializa los
// callbacks y toma un snapshot que restaura si fn falla, igual que el commit y
// rollback reales. onGetSale permite entrelazar lecturas desde los tests.
// ──────────────────────────────────────────────────────────────────────────────

type fakeSaleStore struct {
	mu        sync.Mutex
	sales     map[string]*entity.Sale
	products  map[string]*entity.Product
	movements []*entity.StockMovement

	onGetSale func() // se invoca tras cada lectura de venta, fuera del lock
}

func newFakeSaleStore() *fakeSaleStore {
	return &fakeSaleStore{
		sales:    map[string]*entity.Sale{},
		products: map[string]*entity.Product{},
	}
}

func (s *fakeSaleStore) snapshot() *fakeSaleStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := newFakeSaleStore()
	for id, sale := range s.sales {
		sc := *sale
		cp.sales[id] = &sc
	}
	for id, p := range s.products {
		pc := *p
		cp.products[id] = &pc
	}
	cp.movements = append([]*entity.StockMovement(nil), s.movements...)
	return cp
}

func (s *fakeSaleStore) restore(from *fakeSaleStore) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sales = from.sales
	s.products = from.products
	s.movements = from.movements
}

// fakeSaleRepo implementa repository.SaleRepository sobre el store. El
// UpdateStatus es condicional, igual que el UPDATE del adaptador real.
type fakeSaleRepo struct{ s *fakeSaleStore }

func (r *fakeSaleRepo) Create(sale *entity.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *sale
	r.s.sales[sale.ID] = &cp
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	r.s.mu.Lock()
	sale, ok := r.s.sales[id]
	var cp *entity.Sale
	if ok {
		c := *sale
		cp = &c
	}
	r.s.mu.Unlock()
	if r.s.onGetSale != nil {
		r.s.onGetSale()
	}
	return cp, nil
}

func (r *fakeSaleRepo) UpdateStatus(id, status string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sale, ok := r.s.sales[id]
	if !ok {
		return domain.ErrNotFound
	}
	if sale.Status == status {
		return domain.ErrConflict
	}
	sale.Status = status
	return nil
}

func (r *fakeSaleRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.sales, id)
	return nil
}

func (r *fakeSaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Sale, 0, len(r.s.sales))
	for _, sale := range r.s.sales {
		cp := *sale
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeSaleRepo) CountByCustomer(customerID string) (int, error) { return 0, nil }

func (r *fakeSaleRepo) CountItemsByProduct(productID string) (int, error) { return 0, nil }

// fakeSaleProductRepo implementa repository.ProductRepository sobre el store.
type fakeSaleProductRepo struct{ s *fakeSaleStore }

func (r *fakeSaleProductRepo) Create(p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products[p.ID] = p
	return nil
}

func (r *fakeSaleProductRepo) GetByID(id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.products[id], nil
}

func (r *fakeSaleProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.products[id], nil
}

func (r *fakeSaleProductRepo) Update(p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products[p.ID] = p
	return nil
}

func (r *fakeSaleProductRepo) UpdateStock(productID string, newStock int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.CurrentStock = newStock
	return nil
}

func (r *fakeSaleProductRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.products, id)
	return nil
}

func (r *fakeSaleProductRepo) List(repository.ProductFilter, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *fakeSaleProductRepo) Count(repository.ProductFilter) (int, error) { return 0, nil }
func (r *fakeSaleProductRepo) ListActive() ([]*entity.Product, error)      { return nil, nil }

// fakeSaleMovementRepo implementa repository.StockMovementRepository (append-only).
type fakeSaleMovementRepo struct{ s *fakeSaleStore }

func (r *fakeSaleMovementRepo) Create(m *entity.StockMovement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.movements = append(r.s.movements, m)
	return nil
}

func (r *fakeSaleMovementRepo) ListByProduct(string, int, int) ([]*entity.StockMovement, error) {
	return nil, nil
}
func (r *fakeSaleMovementRepo) List(int, int) ([]*entity.StockMovement, error) { return nil, nil }
func (r *fakeSaleMovementRepo) ListByDateRange(from, to time.Time) ([]*entity.StockMovement, error) {
	return nil, nil
}
func (r *fakeSaleMovementRepo) CountByProduct(string) (int, error) { return 0, nil }
func (r *fakeSaleMovementRepo) Count() (int, error)                { return 0, nil }

// fakeSaleRunner serializa las transacciones con un mutex, como hace la fila
// bloqueada en PostgreSQL, y hace rollback por snapshot si fn falla.
type fakeSaleRunner struct {
	s    *fakeSaleStore
	txMu sync.Mutex
}

func (r *fakeSaleRunner) RunSale(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()
	snap := r.s.snapshot()
	if err := fn(&fakeSaleRepo{s: r.s}, &fakeSaleProductRepo{s: r.s}, &fakeSaleMovementRepo{s: r.s}); err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}

func (r *fakeSaleRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()
	snap := r.s.snapshot()
	if err := fn(&fakeSaleProductRepo{s: r.s}, &fakeSaleMovementRepo{s: r.s}); err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}

// fakeSaleCustomerRepo solo resuelve el cliente de las ventas.
type fakeSaleCustomerRepo struct{ customer *entity.Customer }

func (f *fakeSaleCustomerRepo) Create(*entity.Customer) error { return nil }
func (f *fakeSaleCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	if f.customer != nil && f.customer.ID == id {
		cp := *f.customer
		return &cp, nil
	}
	return nil, nil
}
func (f *fakeSaleCustomerRepo) Update(*entity.Customer) error { return nil }
func (f *fakeSaleCustomerRepo) Delete(string) error           { return nil }
func (f *fakeSaleCustomerRepo) List(repository.CustomerFilter, int, int) ([]*entity.Customer, error) {
	return nil, nil
}
func (f *fakeSaleCustomerRepo) Count(repository.CustomerFilter) (int, error) { return 0, nil }

func setupSaleTest(t *testing.T, stock int) (*SaleUseCase, *fakeSaleStore) {
	t.Helper()
	store := newFakeSaleStore()
	store.products["prod-1"] = &entity.Product{
		ID:           "prod-1",
		Name:         "Tinta negra 500ml",
		CurrentStock: stock,
		CostPrice:    decimal.NewFromInt(3),
		SalePrice:    decimal.NewFromInt(5),
		IsActive:     true,
	}
	runner := &fakeSaleRunner{s: store}
	uc := NewSaleUseCase(
		runner,
		&fakeSaleRepo{s: store},
		&fakeSaleCustomerRepo{customer: &entity.Customer{ID: "cust-1", Name: "María Lopes"}},
		appinv.NewLedgerUseCase(runner),
	)
	return uc, store
}

func productStock(t *testing.T, store *fakeSaleStore, id string) int {
	t.Helper()
	store.mu.Lock()
	defer store.mu.Unlock()
	p, ok := store.products[id]
	require.True(t, ok)
	return p.CurrentStock
}

func countMovements(store *fakeSaleStore, movementType string) int {
	store.mu.Lock()
	defer store.mu.Unlock()
	n := 0
	for _, m := range store.movements {
		if m.Type == movementType {
			n++
		}
	}
	return n
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestSaleCreate_DescuentaStockPorLinea(t *testing.T) {
	uc, store := setupSaleTest(t, 5)

	resp, err := uc.Create(context.Background(), "user-1", dto.CreateSaleRequest{
		CustomerID: "cust-1",
		Items: []dto.SaleItemRequest{
			{ProductID: "prod-1", Quantity: 3, UnitPrice: decimal.NewFromInt(5)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusCompleted, resp.Status)
	assert.Equal(t, 2, productStock(t, store, "prod-1"))
	assert.Equal(t, 1, countMovements(store, entity.MovementTypeExit))
}

func TestSaleCreate_SinStockSuficienteNoPersisteNada(t *testing.T) {
	uc, store := setupSaleTest(t, 5)

	_, err := uc.Create(context.Background(), "user-1", dto.CreateSaleRequest{
		CustomerID: "cust-1",
		Items: []dto.SaleItemRequest{
			{ProductID: "prod-1", Quantity: 6, UnitPrice: decimal.NewFromInt(5)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 5, productStock(t, store, "prod-1"),
		"un rechazo por stock no debe dejar descuentos parciales")
	assert.Equal(t, 0, countMovements(store, entity.MovementTypeExit))
	store.mu.Lock()
	assert.Empty(t, store.sales, "la venta rechazada no debe quedar persistida")
	store.mu.Unlock()
}

// ──────────────────────────────────────────────────────────────────────────────
// Cancel
// ──────────────────────────────────────────────────────────────────────────────

func TestSaleCancel_DevuelveStockUnaVez(t *testing.T) {
	uc, store := setupSaleTest(t, 5)

	resp, err := uc.Create(context.Background(), "user-1", dto.CreateSaleRequest{
		CustomerID: "cust-1",
		Items: []dto.SaleItemRequest{
			{ProductID: "prod-1", Quantity: 5, UnitPrice: decimal.NewFromInt(5)},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 0, productStock(t, store, "prod-1"))

	require.NoError(t, uc.Cancel(context.Background(), resp.ID, "user-1"))
	assert.Equal(t, 5, productStock(t, store, "prod-1"))
	assert.Equal(t, 1, countMovements(store, entity.MovementTypeEntry))

	// Una segunda cancelación sobre una venta ya cancelada se rechaza.
	err = uc.Cancel(context.Background(), resp.ID, "user-1")
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, 5, productStock(t, store, "prod-1"))
}

func TestSaleCancel_ConcurrentesSoloUnaDevuelveStock(t *testing.T) {
	uc, store := setupSaleTest(t, 5)

	resp, err := uc.Create(context.Background(), "user-1", dto.CreateSaleRequest{
		CustomerID: "cust-1",
		Items: []dto.SaleItemRequest{
			{ProductID: "prod-1", Quantity: 5, UnitPrice: decimal.NewFromInt(5)},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 0, productStock(t, store, "prod-1"))

	// Ambas cancelaciones leen la venta como completed antes de que ninguna
	// escriba: las dos pasan la verificación de estado con datos viejos.
	var reads sync.WaitGroup
	reads.Add(2)
	store.onGetSale = func() {
		reads.Done()
		reads.Wait()
	}

	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			errs <- uc.Cancel(context.Background(), resp.ID, "user-1")
		}()
	}
	first, second := <-errs, <-errs

	var okCount, conflictCount int
	for _, err := range []error{first, second} {
		switch {
		case err == nil:
			okCount++
		case assert.ErrorIs(t, err, domain.ErrConflict):
			conflictCount++
		}
	}
	assert.Equal(t, 1, okCount, "exactamente una cancelación debe ganar")
	assert.Equal(t, 1, conflictCount, "la perdedora debe recibir conflicto")

	assert.Equal(t, 5, productStock(t, store, "prod-1"),
		"el stock debe devolverse una sola vez")
	assert.Equal(t, 1, countMovements(store, entity.MovementTypeEntry),
		"solo la cancelación ganadora escribe movimientos de entrada")
}
