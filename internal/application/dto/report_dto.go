package dto

import "github.com/shopspring/decimal"

// InventoryReportResponse body de GET /api/inventory/reports.
type InventoryReportResponse struct {
	TotalProducts    int               `json:"total_products"`
	ActiveProducts   int               `json:"active_products"`
	LowStockProducts int               `json:"low_stock_products"`
	TotalStockValue  decimal.Decimal   `json:"total_stock_value"`
	LowStock         []ProductResponse `json:"low_stock"`
	ByCategory       []CategoryCount   `json:"by_category"`
	StockStatus      StockStatusCounts `json:"stock_status"`
}

// CategoryCount productos por categoría (para gráficos).
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// StockStatusCounts distribución de productos por estado de stock.
type StockStatusCounts struct {
	Normal int `json:"normal"`
	Low    int `json:"low"`
	High   int `json:"high"`
}

// DashboardSummaryResponse body de GET /api/dashboard.
type DashboardSummaryResponse struct {
	TodaySales           decimal.Decimal       `json:"today_sales"`
	MonthlySales         decimal.Decimal       `json:"monthly_sales"`
	MonthlySalesCount    int                   `json:"monthly_sales_count"`
	PendingIncome        decimal.Decimal       `json:"pending_income"`
	PendingExpense       decimal.Decimal       `json:"pending_expense"`
	LowStockProducts     int                   `json:"low_stock_products"`
	UpcomingAppointments []AppointmentResponse `json:"upcoming_appointments"`
}
