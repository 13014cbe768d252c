package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/felipefpires/erp-api/internal/domain/entity"
	"github.com/felipefpires/erp-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas agregadas de solo lectura sobre PostgreSQL.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes. Pasar pool o tx.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// StockSummary totales globales: unidades y valor al costo.
func (r *ReportRepo) StockSummary(ctx context.Context) (repository.StockSummaryResult, error) {
	var res repository.StockSummaryResult
	err := r.q.QueryRow(ctx,
		`SELECT coalesce(sum(current_stock), 0),
			coalesce(sum(current_stock * cost_price), 0)
		 FROM products WHERE is_active = true`,
	).Scan(&res.TotalQuantity, &res.TotalValue)
	if err != nil {
		return res, fmt.Errorf("stock summary: %w", err)
	}
	return res, nil
}

// InventoryCounts conteos del reporte de inventario. Low y High replican la
// misma regla que el estado derivado de stock.
func (r *ReportRepo) InventoryCounts(ctx context.Context) (repository.InventoryCountsResult, error) {
	var res repository.InventoryCountsResult
	err := r.q.QueryRow(ctx,
		`SELECT count(*),
			count(*) FILTER (WHERE is_active),
			count(*) FILTER (WHERE is_active AND current_stock <= min_stock),
			count(*) FILTER (WHERE is_active AND max_stock > 0 AND current_stock >= max_stock)
		 FROM products`,
	).Scan(&res.TotalProducts, &res.ActiveProducts, &res.LowStock, &res.HighStock)
	if err != nil {
		return res, fmt.Errorf("inventory counts: %w", err)
	}
	return res, nil
}

// LowStockProducts productos activos con stock en o bajo el mínimo.
func (r *ReportRepo) LowStockProducts(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+productColumns+`
		 FROM products WHERE is_active = true AND current_stock <= min_stock
		 ORDER BY current_stock ASC`)
	if err != nil {
		return nil, fmt.Errorf("low stock products: %w", err)
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

// ProductsByCategory productos activos agrupados por categoría. Los productos
// sin categoría se agrupan bajo "Sin categoría".
func (r *ReportRepo) ProductsByCategory(ctx context.Context) ([]repository.CategoryCountResult, error) {
	rows, err := r.q.Query(ctx,
		`SELECT coalesce(c.name, 'Sin categoría'), count(p.id)
		 FROM products p LEFT JOIN categories c ON c.id = p.category_id
		 WHERE p.is_active = true
		 GROUP BY c.name ORDER BY count(p.id) DESC`)
	if err != nil {
		return nil, fmt.Errorf("products by category: %w", err)
	}
	defer rows.Close()

	var list []repository.CategoryCountResult
	for rows.Next() {
		var c repository.CategoryCountResult
		if err := rows.Scan(&c.CategoryName, &c.Count); err != nil {
			return nil, fmt.Errorf("scan category count: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// SalesMetrics ingresos por ventas completadas en el período.
func (r *ReportRepo) SalesMetrics(ctx context.Context, from, to time.Time) (repository.SalesMetricsResult, error) {
	var res repository.SalesMetricsResult
	err := r.q.QueryRow(ctx,
		`SELECT coalesce(sum(total_amount), 0), count(*)
		 FROM sales WHERE status = 'completed' AND sale_date >= $1 AND sale_date <= $2`,
		from, to,
	).Scan(&res.Total, &res.Count)
	if err != nil {
		return res, fmt.Errorf("sales metrics: %w", err)
	}
	return res, nil
}

// PendingTransactions total pendiente por tipo (income/expense).
func (r *ReportRepo) PendingTransactions(ctx context.Context, txType string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT coalesce(sum(amount), 0)
		 FROM transactions WHERE status = 'pending' AND type = $1`,
		txType,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("pending transactions: %w", err)
	}
	return total, nil
}
