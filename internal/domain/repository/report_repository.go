package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/felipefpires/erp-api/internal/domain/entity"
)

// StockSummaryResult totales globales de inventario.
type StockSummaryResult struct {
	TotalQuantity int
	TotalValue    decimal.Decimal // sum(current_stock * cost_price)
}

// InventoryCountsResult conteos para el reporte de inventario.
type InventoryCountsResult struct {
	TotalProducts  int
	ActiveProducts int
	LowStock       int // current_stock <= min_stock
	HighStock      int // max_stock > 0 y current_stock >= max_stock
}

// CategoryCountResult productos por categoría.
type CategoryCountResult struct {
	CategoryName string
	Count        int
}

// SalesMetricsResult ingresos del período.
type SalesMetricsResult struct {
	Total decimal.Decimal
	Count int
}

// ReportRepository consultas agregadas de solo lectura (nunca muta el ledger).
type ReportRepository interface {
	StockSummary(ctx context.Context) (StockSummaryResult, error)
	InventoryCounts(ctx context.Context) (InventoryCountsResult, error)
	LowStockProducts(ctx context.Context) ([]*entity.Product, error)
	ProductsByCategory(ctx context.Context) ([]CategoryCountResult, error)
	SalesMetrics(ctx context.Context, from, to time.Time) (SalesMetricsResult, error)
	// PendingTransactions devuelve totales pendientes por tipo (income/expense).
	PendingTransactions(ctx context.Context, txType string) (decimal.Decimal, error)
}
