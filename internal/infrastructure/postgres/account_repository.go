package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/felipefpires/erp-api/internal/domain"
	"github.com/felipefpires/erp-api/internal/domain/entity"
	"github.com/felipefpires/erp-api/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

const accountColumns = `id, name, account_type, account_number, bank_name,
	initial_balance, current_balance, is_active, created_at`

// AccountRepo implementación del puerto AccountRepository sobre PostgreSQL.
type AccountRepo struct {
	q Querier
}

// NewAccountRepository construye el adaptador de cuentas. Pasar pool o tx.
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

// Create persiste una cuenta nueva.
func (r *AccountRepo) Create(account *entity.Account) error {
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		account.ID, account.Name, account.AccountType, nullable(account.AccountNumber),
		nullable(account.BankName), account.InitialBalance, account.CurrentBalance,
		account.IsActive, account.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta por ID. Devuelve nil si no existe.
func (r *AccountRepo) GetByID(id string) (*entity.Account, error) {
	var a entity.Account
	var accountNumber, bankName *string
	err := r.q.QueryRow(context.Background(),
		`SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id,
	).Scan(
		&a.ID, &a.Name, &a.AccountType, &accountNumber, &bankName,
		&a.InitialBalance, &a.CurrentBalance, &a.IsActive, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	a.AccountNumber = deref(accountNumber)
	a.BankName = deref(bankName)
	return &a, nil
}

// Update actualiza los datos de la cuenta. Los balances no se tocan aquí.
func (r *AccountRepo) Update(account *entity.Account) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE accounts SET name = $2, account_number = $3, bank_name = $4, is_active = $5 WHERE id = $1`,
		account.ID, account.Name, nullable(account.AccountNumber), nullable(account.BankName), account.IsActive,
	)
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una cuenta por ID.
func (r *AccountRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete account: %w", err)
	}
	return nil
}

// List devuelve todas las cuentas ordenadas por nombre.
func (r *AccountRepo) List() ([]*entity.Account, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+accountColumns+` FROM accounts ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var list []*entity.Account
	for rows.Next() {
		var a entity.Account
		var accountNumber, bankName *string
		if err := rows.Scan(&a.ID, &a.Name, &a.AccountType, &accountNumber, &bankName,
			&a.InitialBalance, &a.CurrentBalance, &a.IsActive, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		a.AccountNumber = deref(accountNumber)
		a.BankName = deref(bankName)
		list = append(list, &a)
	}
	return list, rows.Err()
}

// AdjustBalance suma delta (positivo o negativo) a current_balance, de forma
// atómica en el servidor.
func (r *AccountRepo) AdjustBalance(accountID string, delta decimal.Decimal) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE accounts SET current_balance = current_balance + $2 WHERE id = $1`,
		accountID, delta,
	)
	if err != nil {
		return fmt.Errorf("adjust balance: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountTransactions cuenta las transacciones de la cuenta.
func (r *AccountRepo) CountTransactions(accountID string) (int, error) {
	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM transactions WHERE account_id = $1`, accountID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count account transactions: %w", err)
	}
	return total, nil
}
