package reports

import (
	"context"
	"time"

	"github.com/felipefpires/erp-api/internal/application/dto"
	appinv "github.com/felipefpires/erp-api/internal/application/inventory"
	"github.com/felipefpires/erp-api/internal/domain/entity"
	dominv "github.com/felipefpires/erp-api/internal/domain/inventory"
	"github.com/felipefpires/erp-api/internal/domain/repository"
)

// SummaryUseCase reportes agregados de solo lectura: dashboard e inventario.
type SummaryUseCase struct {
	reportRepo      repository.ReportRepository
	appointmentRepo repository.AppointmentRepository
}

// NewSummaryUseCase construye el caso de uso de reportes.
func NewSummaryUseCase(
	reportRepo repository.ReportRepository,
	appointmentRepo repository.AppointmentRepository,
) *SummaryUseCase {
	return &SummaryUseCase{reportRepo: reportRepo, appointmentRepo: appointmentRepo}
}

// Dashboard arma el resumen principal: ventas de hoy y del mes, pendientes
// financieros, productos con stock bajo y próximas citas.
func (uc *SummaryUseCase) Dashboard(ctx context.Context) (*dto.DashboardSummaryResponse, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	today, err := uc.reportRepo.SalesMetrics(ctx, startOfDay, now)
	if err != nil {
		return nil, err
	}
	monthly, err := uc.reportRepo.SalesMetrics(ctx, startOfMonth, now)
	if err != nil {
		return nil, err
	}
	pendingIncome, err := uc.reportRepo.PendingTransactions(ctx, entity.TransactionTypeIncome)
	if err != nil {
		return nil, err
	}
	pendingExpense, err := uc.reportRepo.PendingTransactions(ctx, entity.TransactionTypeExpense)
	if err != nil {
		return nil, err
	}
	counts, err := uc.reportRepo.InventoryCounts(ctx)
	if err != nil {
		return nil, err
	}
	upcoming, err := uc.appointmentRepo.ListUpcoming(now, 5)
	if err != nil {
		return nil, err
	}

	appointments := make([]dto.AppointmentResponse, 0, len(upcoming))
	for _, a := range upcoming {
		appointments = append(appointments, dto.AppointmentResponse{
			ID:              a.ID,
			CustomerID:      a.CustomerID,
			UserID:          a.UserID,
			Title:           a.Title,
			AppointmentDate: a.AppointmentDate,
			DurationMinutes: a.DurationMinutes,
			Type:            a.Type,
			Status:          a.Status,
			Location:        a.Location,
			CreatedAt:       a.CreatedAt,
		})
	}

	return &dto.DashboardSummaryResponse{
		TodaySales:           today.Total,
		MonthlySales:         monthly.Total,
		MonthlySalesCount:    monthly.Count,
		PendingIncome:        pendingIncome,
		PendingExpense:       pendingExpense,
		LowStockProducts:     counts.LowStock,
		UpcomingAppointments: appointments,
	}, nil
}

// Inventory arma el reporte de inventario: conteos, valor total del stock,
// productos bajo mínimo y distribución por categoría y estado.
func (uc *SummaryUseCase) Inventory(ctx context.Context) (*dto.InventoryReportResponse, error) {
	counts, err := uc.reportRepo.InventoryCounts(ctx)
	if err != nil {
		return nil, err
	}
	summary, err := uc.reportRepo.StockSummary(ctx)
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.reportRepo.LowStockProducts(ctx)
	if err != nil {
		return nil, err
	}
	byCategory, err := uc.reportRepo.ProductsByCategory(ctx)
	if err != nil {
		return nil, err
	}

	low := make([]dto.ProductResponse, 0, len(lowStock))
	for _, p := range lowStock {
		low = append(low, dto.ProductResponse{
			ID:           p.ID,
			Name:         p.Name,
			SKU:          p.SKU,
			CategoryID:   p.CategoryID,
			CostPrice:    p.CostPrice,
			SalePrice:    p.SalePrice,
			CurrentStock: p.CurrentStock,
			MinStock:     p.MinStock,
			MaxStock:     p.MaxStock,
			Unit:         p.Unit,
			IsActive:     p.IsActive,
			StockStatus:  dominv.ProductStatus(p),
			CreatedAt:    p.CreatedAt,
			UpdatedAt:    p.UpdatedAt,
		})
	}
	categories := make([]dto.CategoryCount, 0, len(byCategory))
	for _, c := range byCategory {
		categories = append(categories, dto.CategoryCount{Category: c.CategoryName, Count: c.Count})
	}

	normal := counts.ActiveProducts - counts.LowStock - counts.HighStock
	if normal < 0 {
		normal = 0
	}
	return &dto.InventoryReportResponse{
		TotalProducts:    counts.TotalProducts,
		ActiveProducts:   counts.ActiveProducts,
		LowStockProducts: counts.LowStock,
		TotalStockValue:  summary.TotalValue,
		LowStock:         low,
		ByCategory:       categories,
		StockStatus: dto.StockStatusCounts{
			Normal: normal,
			Low:    counts.LowStock,
			High:   counts.HighStock,
		},
	}, nil
}

// Movements expone el listado de movimientos por rango de fechas para los
// reportes de auditoría.
type MovementsUseCase struct {
	movementRepo repository.StockMovementRepository
}

// NewMovementsUseCase construye el caso de uso de reporte de movimientos.
func NewMovementsUseCase(movementRepo repository.StockMovementRepository) *MovementsUseCase {
	return &MovementsUseCase{movementRepo: movementRepo}
}

// ByDateRange devuelve los movimientos dentro de la ventana dada.
func (uc *MovementsUseCase) ByDateRange(from, to time.Time) ([]dto.MovementResponse, error) {
	list, err := uc.movementRepo.ListByDateRange(from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, appinv.ToMovementResponse(m))
	}
	return out, nil
}
