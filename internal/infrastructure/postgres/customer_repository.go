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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, name, email, phone, instagram, address, city, state, zip_code,
	company, tax_id, status, created_at, updated_at`

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador de clientes. Pasar pool o tx.
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un cliente nuevo.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, nullable(customer.Email), nullable(customer.Phone),
		nullable(customer.Instagram), nullable(customer.Address), nullable(customer.City),
		nullable(customer.State), nullable(customer.ZipCode), nullable(customer.Company),
		nullable(customer.TaxID), customer.Status, customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. Devuelve nil si no existe.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	var c entity.Customer
	var email, phone, instagram, address, city, state, zipCode, company, taxID *string
	err := r.q.QueryRow(context.Background(),
		`SELECT `+customerColumns+` FROM customers WHERE id = $1`, id,
	).Scan(
		&c.ID, &c.Name, &email, &phone, &instagram, &address, &city, &state, &zipCode,
		&company, &taxID, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	c.Email = deref(email)
	c.Phone = deref(phone)
	c.Instagram = deref(instagram)
	c.Address = deref(address)
	c.City = deref(city)
	c.State = deref(state)
	c.ZipCode = deref(zipCode)
	c.Company = deref(company)
	c.TaxID = deref(taxID)
	return &c, nil
}

// Update actualiza un cliente.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE customers SET name = $2, email = $3, phone = $4, instagram = $5, address = $6,
			city = $7, state = $8, zip_code = $9, company = $10, tax_id = $11, status = $12,
			updated_at = $13
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, nullable(customer.Email), nullable(customer.Phone),
		nullable(customer.Instagram), nullable(customer.Address), nullable(customer.City),
		nullable(customer.State), nullable(customer.ZipCode), nullable(customer.Company),
		nullable(customer.TaxID), customer.Status, customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente por ID.
func (r *CustomerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

// List lista clientes según filtros, con paginación.
func (r *CustomerRepo) List(filter repository.CustomerFilter, limit, offset int) ([]*entity.Customer, error) {
	query, args := buildCustomerQuery(`SELECT `+customerColumns+` FROM customers`, filter)
	query += fmt.Sprintf(" ORDER BY name ASC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		var email, phone, instagram, address, city, state, zipCode, company, taxID *string
		if err := rows.Scan(&c.ID, &c.Name, &email, &phone, &instagram, &address, &city,
			&state, &zipCode, &company, &taxID, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		c.Email = deref(email)
		c.Phone = deref(phone)
		c.Instagram = deref(instagram)
		c.Address = deref(address)
		c.City = deref(city)
		c.State = deref(state)
		c.ZipCode = deref(zipCode)
		c.Company = deref(company)
		c.TaxID = deref(taxID)
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Count cuenta clientes según filtros.
func (r *CustomerRepo) Count(filter repository.CustomerFilter) (int, error) {
	query, args := buildCustomerQuery(`SELECT count(*) FROM customers`, filter)
	var total int
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return total, nil
}

func buildCustomerQuery(base string, filter repository.CustomerFilter) (string, []any) {
	query := base + ` WHERE 1=1`
	var args []any
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query += fmt.Sprintf(" AND (name ILIKE $%d OR email ILIKE $%d OR phone ILIKE $%d)",
			len(args)+1, len(args)+1, len(args)+1)
		args = append(args, pattern)
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", len(args)+1)
		args = append(args, filter.Status)
	}
	return query, args
}
