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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, description, sku, barcode, category_id, cost_price, sale_price,
	current_stock, min_stock, max_stock, unit, is_active, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de productos. Pasar pool o tx.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto nuevo.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, nullable(product.SKU), nullable(product.Barcode),
		nullable(product.CategoryID), product.CostPrice, product.SalePrice,
		product.CurrentStock, product.MinStock, product.MaxStock,
		product.Unit, product.IsActive, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.get(`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

// GetForUpdate obtiene el producto bloqueando su fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.get(`SELECT `+productColumns+` FROM products WHERE id = $1 FOR UPDATE`, id)
}

func (r *ProductRepo) get(query, id string) (*entity.Product, error) {
	var p entity.Product
	var sku, barcode, categoryID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Description, &sku, &barcode, &categoryID,
		&p.CostPrice, &p.SalePrice, &p.CurrentStock, &p.MinStock, &p.MaxStock,
		&p.Unit, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	p.SKU = deref(sku)
	p.Barcode = deref(barcode)
	p.CategoryID = deref(categoryID)
	return &p, nil
}

// Update actualiza los datos del producto. No toca current_stock: eso es del
// libro de movimientos.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, sku = $4, barcode = $5, category_id = $6,
			cost_price = $7, sale_price = $8, min_stock = $9, max_stock = $10, unit = $11,
			is_active = $12, updated_at = $13
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, nullable(product.SKU), nullable(product.Barcode),
		nullable(product.CategoryID), product.CostPrice, product.SalePrice,
		product.MinStock, product.MaxStock, product.Unit, product.IsActive, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStock escribe el stock resultante de un movimiento. Solo lo llama el
// ledger dentro de su transacción.
func (r *ProductRepo) UpdateStock(productID string, newStock int) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET current_stock = $2, updated_at = now() WHERE id = $1`,
		productID, newStock,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// List lista productos según filtros, con paginación.
func (r *ProductRepo) List(filter repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
	query, args := buildProductQuery(`SELECT `+productColumns+` FROM products`, filter)
	query += fmt.Sprintf(" ORDER BY %s LIMIT $%d OFFSET $%d", productOrder(filter.Sort), len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		var sku, barcode, categoryID *string
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &sku, &barcode, &categoryID,
			&p.CostPrice, &p.SalePrice, &p.CurrentStock, &p.MinStock, &p.MaxStock,
			&p.Unit, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.SKU = deref(sku)
		p.Barcode = deref(barcode)
		p.CategoryID = deref(categoryID)
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Count cuenta productos según filtros.
func (r *ProductRepo) Count(filter repository.ProductFilter) (int, error) {
	query, args := buildProductQuery(`SELECT count(*) FROM products`, filter)
	var total int
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return total, nil
}

// ListActive lista todos los productos activos, sin paginación.
func (r *ProductRepo) ListActive() ([]*entity.Product, error) {
	return r.List(repository.ProductFilter{Status: "active"}, 10000, 0)
}

// buildProductQuery arma el WHERE a partir de los filtros.
func buildProductQuery(base string, filter repository.ProductFilter) (string, []any) {
	query := base + ` WHERE 1=1`
	var args []any
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query += fmt.Sprintf(" AND (name ILIKE $%d OR sku ILIKE $%d OR barcode ILIKE $%d OR description ILIKE $%d)",
			len(args)+1, len(args)+1, len(args)+1, len(args)+1)
		args = append(args, pattern)
	}
	if filter.CategoryID != "" {
		query += fmt.Sprintf(" AND category_id = $%d", len(args)+1)
		args = append(args, filter.CategoryID)
	}
	switch filter.Status {
	case "active":
		query += " AND is_active = true"
	case "inactive":
		query += " AND is_active = false"
	}
	switch filter.StockStatus {
	case "out_of_stock":
		query += " AND current_stock <= 0"
	case "low_stock":
		query += " AND current_stock > 0 AND current_stock <= min_stock"
	case "in_stock":
		// Excluye los que ya tocaron el techo, para no solaparse con high_stock.
		query += " AND current_stock > min_stock AND (max_stock <= 0 OR current_stock < max_stock)"
	case "high_stock":
		query += " AND max_stock > 0 AND current_stock >= max_stock"
	}
	return query, args
}

// productOrder mapea el parámetro sort a una cláusula segura (nunca interpola
// entrada del usuario).
func productOrder(sort string) string {
	switch sort {
	case "price":
		return "sale_price ASC"
	case "stock":
		return "current_stock ASC"
	case "created_at":
		return "created_at DESC"
	default:
		return "name ASC"
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
