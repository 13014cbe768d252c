package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felipefpires/erp-api/internal/application/dto"
	"github.com/felipefpires/erp-api/internal/domain"
	"github.com/felipefpires/erp-api/internal/domain/entity"
	"github.com/felipefpires/erp-api/internal/domain/repository"
)

// fakeAccountRepo repositorio de cuentas en memoria. failAdjust simula un
// fallo de persistencia en el ajuste de balance.
type fakeAccountRepo struct {
	accounts   map[string]*entity.Account
	failAdjust error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[string]*entity.Account)}
}

func (f *fakeAccountRepo) Create(a *entity.Account) error {
	cp := *a
	f.accounts[a.ID] = &cp
	return nil
}

func (f *fakeAccountRepo) GetByID(id string) (*entity.Account, error) {
	a, ok := f.accounts[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAccountRepo) Update(a *entity.Account) error {
	cp := *a
	f.accounts[a.ID] = &cp
	return nil
}

func (f *fakeAccountRepo) Delete(id string) error {
	delete(f.accounts, id)
	return nil
}

func (f *fakeAccountRepo) List() ([]*entity.Account, error) {
	out := make([]*entity.Account, 0, len(f.accounts))
	for _, a := range f.accounts {
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeAccountRepo) AdjustBalance(accountID string, delta decimal.Decimal) error {
	if f.failAdjust != nil {
		return f.failAdjust
	}
	a, ok := f.accounts[accountID]
	if !ok {
		return domain.ErrNotFound
	}
	a.CurrentBalance = a.CurrentBalance.Add(delta)
	return nil
}

func (f *fakeAccountRepo) CountTransactions(accountID string) (int, error) {
	return 0, nil
}

// fakeTransactionRepo repositorio de transacciones en memoria.
type fakeTransactionRepo struct {
	txs map[string]*entity.Transaction
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{txs: make(map[string]*entity.Transaction)}
}

func (f *fakeTransactionRepo) Create(tx *entity.Transaction) error {
	cp := *tx
	f.txs[tx.ID] = &cp
	return nil
}

func (f *fakeTransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	tx, ok := f.txs[id]
	if !ok {
		return nil, nil
	}
	cp := *tx
	return &cp, nil
}

func (f *fakeTransactionRepo) Update(tx *entity.Transaction) error {
	cp := *tx
	f.txs[tx.ID] = &cp
	return nil
}

func (f *fakeTransactionRepo) Delete(id string) error {
	delete(f.txs, id)
	return nil
}

func (f *fakeTransactionRepo) List(filter repository.TransactionFilter, limit, offset int) ([]*entity.Transaction, error) {
	out := make([]*entity.Transaction, 0, len(f.txs))
	for _, tx := range f.txs {
		cp := *tx
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeTransactionRepo) Count(filter repository.TransactionFilter) (int, error) {
	return len(f.txs), nil
}

// fakeFinanceRunner emula la transacción SQL: snapshot antes de fn y restore
// si fn falla, igual que un rollback real.
type fakeFinanceRunner struct {
	txs      *fakeTransactionRepo
	accounts *fakeAccountRepo
}

func (f *fakeFinanceRunner) RunFinance(ctx context.Context, fn func(
	transactionRepo repository.TransactionRepository,
	accountRepo repository.AccountRepository,
) error) error {
	txSnap := make(map[string]*entity.Transaction, len(f.txs.txs))
	for id, tx := range f.txs.txs {
		cp := *tx
		txSnap[id] = &cp
	}
	accSnap := make(map[string]*entity.Account, len(f.accounts.accounts))
	for id, a := range f.accounts.accounts {
		cp := *a
		accSnap[id] = &cp
	}
	if err := fn(f.txs, f.accounts); err != nil {
		f.txs.txs = txSnap
		f.accounts.accounts = accSnap
		return err
	}
	return nil
}

func setupTransactionTest(t *testing.T) (*TransactionUseCase, *fakeAccountRepo, string) {
	t.Helper()
	accountRepo := newFakeAccountRepo()
	account := &entity.Account{
		ID:             "acc-1",
		Name:           "Caja",
		AccountType:    "cash",
		InitialBalance: decimal.NewFromInt(100),
		CurrentBalance: decimal.NewFromInt(100),
		IsActive:       true,
		CreatedAt:      time.Now(),
	}
	require.NoError(t, accountRepo.Create(account))
	txRepo := newFakeTransactionRepo()
	runner := &fakeFinanceRunner{txs: txRepo, accounts: accountRepo}
	uc := NewTransactionUseCase(runner, txRepo, accountRepo)
	return uc, accountRepo, account.ID
}

func balance(t *testing.T, repo *fakeAccountRepo, id string) decimal.Decimal {
	t.Helper()
	a, err := repo.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, a)
	return a.CurrentBalance
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestTransactionCreate_PendienteNoAjustaBalance(t *testing.T) {
	uc, accountRepo, accID := setupTransactionTest(t)

	resp, err := uc.Create(context.Background(), "user-1", dto.CreateTransactionRequest{
		AccountID:   accID,
		Type:        entity.TransactionTypeIncome,
		Description: "venta mostrador",
		Amount:      decimal.NewFromInt(50),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionStatusPending, resp.Status,
		"sin status explícito la transacción nace pendiente")
	assert.True(t, balance(t, accountRepo, accID).Equal(decimal.NewFromInt(100)),
		"una transacción pendiente no toca el balance")
}

func TestTransactionCreate_CompletadaAjustaEnElActo(t *testing.T) {
	uc, accountRepo, accID := setupTransactionTest(t)

	_, err := uc.Create(context.Background(), "user-1", dto.CreateTransactionRequest{
		AccountID:   accID,
		Type:        entity.TransactionTypeExpense,
		Description: "compra insumos",
		Amount:      decimal.NewFromInt(30),
		Status:      entity.TransactionStatusCompleted,
	})
	require.NoError(t, err)
	assert.True(t, balance(t, accountRepo, accID).Equal(decimal.NewFromInt(70)),
		"un gasto completado debe restar del balance")
}

func TestTransactionCreate_CompletadaConFalloDeBalanceNoPersisteNada(t *testing.T) {
	uc, accountRepo, accID := setupTransactionTest(t)
	accountRepo.failAdjust = assert.AnError

	_, err := uc.Create(context.Background(), "user-1", dto.CreateTransactionRequest{
		AccountID:   accID,
		Type:        entity.TransactionTypeIncome,
		Description: "cobro con balance caído",
		Amount:      decimal.NewFromInt(50),
		Status:      entity.TransactionStatusCompleted,
	})
	require.Error(t, err)

	list, lerr := uc.List(repository.TransactionFilter{}, 20, 0)
	require.NoError(t, lerr)
	assert.Empty(t, list.Transactions,
		"si el ajuste de balance falla, la transacción tampoco debe quedar creada")
	assert.True(t, balance(t, accountRepo, accID).Equal(decimal.NewFromInt(100)))
}

func TestTransactionCreate_MontoInvalido(t *testing.T) {
	uc, _, accID := setupTransactionTest(t)

	_, err := uc.Create(context.Background(), "user-1", dto.CreateTransactionRequest{
		AccountID:   accID,
		Type:        entity.TransactionTypeIncome,
		Description: "monto cero",
		Amount:      decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTransactionCreate_CuentaInexistente(t *testing.T) {
	uc, _, _ := setupTransactionTest(t)

	_, err := uc.Create(context.Background(), "user-1", dto.CreateTransactionRequest{
		AccountID:   "no-existe",
		Type:        entity.TransactionTypeIncome,
		Description: "cuenta fantasma",
		Amount:      decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Complete / Cancel / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestTransactionComplete_IngresoSumaAlBalance(t *testing.T) {
	uc, accountRepo, accID := setupTransactionTest(t)

	resp, err := uc.Create(context.Background(), "user-1", dto.CreateTransactionRequest{
		AccountID:   accID,
		Type:        entity.TransactionTypeIncome,
		Description: "cobro pendiente",
		Amount:      decimal.NewFromInt(40),
	})
	require.NoError(t, err)

	completed, err := uc.Complete(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionStatusCompleted, completed.Status)
	assert.True(t, balance(t, accountRepo, accID).Equal(decimal.NewFromInt(140)))

	// Completar dos veces no debe duplicar el ajuste.
	_, err = uc.Complete(context.Background(), resp.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.True(t, balance(t, accountRepo, accID).Equal(decimal.NewFromInt(140)))
}

func TestTransactionComplete_FalloDeBalanceNoDejaEstadoParcial(t *testing.T) {
	uc, accountRepo, accID := setupTransactionTest(t)

	resp, err := uc.Create(context.Background(), "user-1", dto.CreateTransactionRequest{
		AccountID:   accID,
		Type:        entity.TransactionTypeIncome,
		Description: "cobro pendiente",
		Amount:      decimal.NewFromInt(40),
	})
	require.NoError(t, err)

	accountRepo.failAdjust = assert.AnError
	_, err = uc.Complete(context.Background(), resp.ID)
	require.Error(t, err)

	stored, gerr := uc.Get(resp.ID)
	require.NoError(t, gerr)
	assert.Equal(t, entity.TransactionStatusPending, stored.Status,
		"si el ajuste de balance falla, el cambio de estado también debe revertirse")
	assert.True(t, balance(t, accountRepo, accID).Equal(decimal.NewFromInt(100)))

	// Recuperado el backend, completar vuelve a ser posible y ajusta una vez.
	accountRepo.failAdjust = nil
	_, err = uc.Complete(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.True(t, balance(t, accountRepo, accID).Equal(decimal.NewFromInt(140)))
}

func TestTransactionCancel_RevierteSiEstabaCompletada(t *testing.T) {
	uc, accountRepo, accID := setupTransactionTest(t)

	resp, err := uc.Create(context.Background(), "user-1", dto.CreateTransactionRequest{
		AccountID:   accID,
		Type:        entity.TransactionTypeExpense,
		Description: "gasto completado",
		Amount:      decimal.NewFromInt(25),
		Status:      entity.TransactionStatusCompleted,
	})
	require.NoError(t, err)
	require.True(t, balance(t, accountRepo, accID).Equal(decimal.NewFromInt(75)))

	require.NoError(t, uc.Cancel(context.Background(), resp.ID))
	assert.True(t, balance(t, accountRepo, accID).Equal(decimal.NewFromInt(100)),
		"cancelar una transacción completada debe revertir el balance")
}

func TestTransactionCancel_FalloDeBalanceNoCancelaAMedias(t *testing.T) {
	uc, accountRepo, accID := setupTransactionTest(t)

	resp, err := uc.Create(context.Background(), "user-1", dto.CreateTransactionRequest{
		AccountID:   accID,
		Type:        entity.TransactionTypeExpense,
		Description: "gasto completado",
		Amount:      decimal.NewFromInt(25),
		Status:      entity.TransactionStatusCompleted,
	})
	require.NoError(t, err)

	accountRepo.failAdjust = assert.AnError
	require.Error(t, uc.Cancel(context.Background(), resp.ID))

	stored, gerr := uc.Get(resp.ID)
	require.NoError(t, gerr)
	assert.Equal(t, entity.TransactionStatusCompleted, stored.Status,
		"una cancelación cuyo ajuste falla no debe dejar la transacción cancelada")
	assert.True(t, balance(t, accountRepo, accID).Equal(decimal.NewFromInt(75)))
}

func TestTransactionCancel_PendienteNoTocaBalance(t *testing.T) {
	uc, accountRepo, accID := setupTransactionTest(t)

	resp, err := uc.Create(context.Background(), "user-1", dto.CreateTransactionRequest{
		AccountID:   accID,
		Type:        entity.TransactionTypeIncome,
		Description: "cobro que no llegó",
		Amount:      decimal.NewFromInt(60),
	})
	require.NoError(t, err)

	require.NoError(t, uc.Cancel(context.Background(), resp.ID))
	assert.True(t, balance(t, accountRepo, accID).Equal(decimal.NewFromInt(100)))
}

func TestTransactionDelete_SoloPendientes(t *testing.T) {
	uc, _, accID := setupTransactionTest(t)

	resp, err := uc.Create(context.Background(), "user-1", dto.CreateTransactionRequest{
		AccountID:   accID,
		Type:        entity.TransactionTypeIncome,
		Description: "para completar",
		Amount:      decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	_, err = uc.Complete(context.Background(), resp.ID)
	require.NoError(t, err)

	err = uc.Delete(resp.ID)
	assert.ErrorIs(t, err, domain.ErrConflict,
		"una transacción completada queda como historial")
}
