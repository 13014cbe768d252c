package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/felipefpires/erp-api/internal/domain"
	"github.com/felipefpires/erp-api/internal/domain/entity"
	"github.com/felipefpires/erp-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

const transactionColumns = `id, account_id, type, category, description, amount,
	transaction_date, due_date, status, payment_method, reference, notes, user_id, created_at`

// TransactionRepo implementación del puerto TransactionRepository sobre PostgreSQL.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador de transacciones. Pasar pool o tx.
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste una transacción nueva.
func (r *TransactionRepo) Create(tx *entity.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.AccountID, tx.Type, nullable(tx.Category), tx.Description, tx.Amount,
		tx.TransactionDate, tx.DueDate, tx.Status, nullable(tx.PaymentMethod),
		nullable(tx.Reference), nullable(tx.Notes), tx.UserID, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una transacción por ID. Devuelve nil si no existe.
func (r *TransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	var t entity.Transaction
	var category, paymentMethod, reference, notes *string
	err := r.q.QueryRow(context.Background(),
		`SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id,
	).Scan(
		&t.ID, &t.AccountID, &t.Type, &category, &t.Description, &t.Amount,
		&t.TransactionDate, &t.DueDate, &t.Status, &paymentMethod, &reference, &notes,
		&t.UserID, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	t.Category = deref(category)
	t.PaymentMethod = deref(paymentMethod)
	t.Reference = deref(reference)
	t.Notes = deref(notes)
	return &t, nil
}

// Update actualiza el estado y los datos de la transacción.
func (r *TransactionRepo) Update(tx *entity.Transaction) error {
	query := `
		UPDATE transactions SET category = $2, description = $3, amount = $4,
			transaction_date = $5, due_date = $6, status = $7, payment_method = $8,
			reference = $9, notes = $10
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		tx.ID, nullable(tx.Category), tx.Description, tx.Amount,
		tx.TransactionDate, tx.DueDate, tx.Status, nullable(tx.PaymentMethod),
		nullable(tx.Reference), nullable(tx.Notes),
	)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una transacción por ID.
func (r *TransactionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

// List lista transacciones según filtros, más recientes primero.
func (r *TransactionRepo) List(filter repository.TransactionFilter, limit, offset int) ([]*entity.Transaction, error) {
	query, args := buildTransactionQuery(`SELECT `+transactionColumns+` FROM transactions`, filter)
	query += fmt.Sprintf(" ORDER BY transaction_date DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		var category, paymentMethod, reference, notes *string
		if err := rows.Scan(&t.ID, &t.AccountID, &t.Type, &category, &t.Description, &t.Amount,
			&t.TransactionDate, &t.DueDate, &t.Status, &paymentMethod, &reference, &notes,
			&t.UserID, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		t.Category = deref(category)
		t.PaymentMethod = deref(paymentMethod)
		t.Reference = deref(reference)
		t.Notes = deref(notes)
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Count cuenta transacciones según filtros.
func (r *TransactionRepo) Count(filter repository.TransactionFilter) (int, error) {
	query, args := buildTransactionQuery(`SELECT count(*) FROM transactions`, filter)
	var total int
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return total, nil
}

func buildTransactionQuery(base string, filter repository.TransactionFilter) (string, []any) {
	query := base + ` WHERE 1=1`
	var args []any
	if filter.AccountID != "" {
		query += fmt.Sprintf(" AND account_id = $%d", len(args)+1)
		args = append(args, filter.AccountID)
	}
	if filter.Type != "" {
		query += fmt.Sprintf(" AND type = $%d", len(args)+1)
		args = append(args, filter.Type)
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", len(args)+1)
		args = append(args, filter.Status)
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND transaction_date >= $%d", len(args)+1)
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND transaction_date <= $%d", len(args)+1)
		args = append(args, *filter.To)
	}
	return query, args
}
