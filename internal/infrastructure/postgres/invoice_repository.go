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

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

const invoiceColumns = `id, invoice_number, customer_id, sale_id, issue_date, due_date,
	total_amount, paid_amount, status, payment_date, notes, created_at`

// InvoiceRepo implementación del puerto InvoiceRepository sobre PostgreSQL.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador de facturas. Pasar pool o tx.
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste una factura nueva.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.InvoiceNumber, invoice.CustomerID, invoice.SaleID,
		invoice.IssueDate, invoice.DueDate, invoice.TotalAmount, invoice.PaidAmount,
		invoice.Status, invoice.PaymentDate, nullable(invoice.Notes), invoice.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID. Devuelve nil si no existe.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	return r.get(`SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id)
}

// GetByNumber obtiene una factura por su número único. Devuelve nil si no existe.
func (r *InvoiceRepo) GetByNumber(invoiceNumber string) (*entity.Invoice, error) {
	return r.get(`SELECT `+invoiceColumns+` FROM invoices WHERE invoice_number = $1`, invoiceNumber)
}

func (r *InvoiceRepo) get(query, arg string) (*entity.Invoice, error) {
	var i entity.Invoice
	var notes *string
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&i.ID, &i.InvoiceNumber, &i.CustomerID, &i.SaleID, &i.IssueDate, &i.DueDate,
		&i.TotalAmount, &i.PaidAmount, &i.Status, &i.PaymentDate, &notes, &i.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	i.Notes = deref(notes)
	return &i, nil
}

// Update actualiza pagos, estado y notas de la factura.
func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	query := `
		UPDATE invoices SET due_date = $2, paid_amount = $3, status = $4, payment_date = $5, notes = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.DueDate, invoice.PaidAmount, invoice.Status,
		invoice.PaymentDate, nullable(invoice.Notes),
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista facturas, opcionalmente por estado, más recientes primero.
func (r *InvoiceRepo) List(status string, limit, offset int) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices`
	var args []any
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	query += fmt.Sprintf(" ORDER BY issue_date DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	for rows.Next() {
		var i entity.Invoice
		var notes *string
		if err := rows.Scan(&i.ID, &i.InvoiceNumber, &i.CustomerID, &i.SaleID, &i.IssueDate,
			&i.DueDate, &i.TotalAmount, &i.PaidAmount, &i.Status, &i.PaymentDate, &notes,
			&i.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		i.Notes = deref(notes)
		list = append(list, &i)
	}
	return list, rows.Err()
}
