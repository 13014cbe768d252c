package inventory

import (
	"context"

	"github.com/felipefpires/erp-api/internal/application/dto"
	"github.com/felipefpires/erp-api/internal/domain/entity"
	"github.com/felipefpires/erp-api/internal/domain/repository"
)

// QueryUseCase lecturas del libro de movimientos y resumen de stock.
// Solo consulta; nunca muta el ledger.
type QueryUseCase struct {
	movementRepo repository.StockMovementRepository
	reportRepo   repository.ReportRepository
}

// NewQueryUseCase construye el caso de uso de consulta.
func NewQueryUseCase(movementRepo repository.StockMovementRepository, reportRepo repository.ReportRepository) *QueryUseCase {
	return &QueryUseCase{movementRepo: movementRepo, reportRepo: reportRepo}
}

// ListMovements lista movimientos globales en orden cronológico inverso.
func (uc *QueryUseCase) ListMovements(limit, offset int) (*dto.MovementListResponse, error) {
	list, err := uc.movementRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.movementRepo.Count()
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Movements: out,
		Page:      dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// ProductHistory devuelve el historial de un producto, más reciente primero.
func (uc *QueryUseCase) ProductHistory(productID string, limit, offset int) ([]dto.MovementResponse, error) {
	list, err := uc.movementRepo.ListByProduct(productID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToMovementResponse(m))
	}
	return out, nil
}

// StockSummary totales globales: cantidad y valor (sum(current_stock * cost_price)).
func (uc *QueryUseCase) StockSummary(ctx context.Context) (*dto.StockSummaryResponse, error) {
	res, err := uc.reportRepo.StockSummary(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.StockSummaryResponse{
		TotalQuantity: res.TotalQuantity,
		TotalValue:    res.TotalValue,
	}, nil
}

// ToMovementResponse mapea la entidad al DTO de respuesta.
func ToMovementResponse(m *entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:            m.ID,
		ProductID:     m.ProductID,
		Type:          m.Type,
		Quantity:      m.Quantity,
		PreviousStock: m.PreviousStock,
		NewStock:      m.NewStock,
		UnitCost:      m.UnitCost,
		TotalCost:     m.TotalCost,
		Reference:     m.Reference,
		Notes:         m.Notes,
		UserID:        m.UserID,
		MovementDate:  m.MovementDate,
	}
}
