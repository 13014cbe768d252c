package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/felipefpires/erp-api/internal/application/dto"
	appinv "github.com/felipefpires/erp-api/internal/application/inventory"
	"github.com/felipefpires/erp-api/internal/domain"
	"github.com/felipefpires/erp-api/internal/domain/entity"
	"github.com/felipefpires/erp-api/internal/domain/repository"
)

// SaleTxRunner ejecuta un callback con los repos de venta, producto y
// movimientos atados a la misma transacción SQL. La creación de una venta y el
// descuento de stock de todas sus líneas viven o mueren juntos.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}

// SaleUseCase creación y consulta de ventas.
type SaleUseCase struct {
	txRunner     SaleTxRunner
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
	ledger       *appinv.LedgerUseCase
}

// NewSaleUseCase construye el caso de uso de ventas.
func NewSaleUseCase(
	txRunner SaleTxRunner,
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	ledger *appinv.LedgerUseCase,
) *SaleUseCase {
	return &SaleUseCase{
		txRunner:     txRunner,
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		ledger:       ledger,
	}
}

// Create registra la venta y descuenta stock línea por línea, todo en una
// transacción. Si alguna línea no tiene stock suficiente, nada se persiste:
// ni la venta, ni las líneas anteriores, ni sus movimientos.
func (uc *SaleUseCase) Create(ctx context.Context, actorID string, req dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if req.CustomerID == "" || actorID == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(req.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range req.Items {
		if item.ProductID == "" {
			return nil, domain.ErrInvalidInput
		}
		if item.Quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
	}

	customer, err := uc.customerRepo.GetByID(req.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		CustomerID:    req.CustomerID,
		UserID:        actorID,
		SaleDate:      now,
		Discount:      req.Discount,
		Tax:           req.Tax,
		Status:        entity.SaleStatusCompleted,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	}

	subtotal := decimal.Zero
	for _, item := range req.Items {
		lineTotal := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(lineTotal)
		sale.Items = append(sale.Items, entity.SaleItem{
			ID:         uuid.New().String(),
			SaleID:     sale.ID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: lineTotal,
		})
	}
	sale.TotalAmount = subtotal.Sub(req.Discount).Add(req.Tax)

	err = uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for _, item := range sale.Items {
			_, err := uc.ledger.ApplyExitInTx(
				productRepo, movementRepo,
				item.ProductID, item.Quantity,
				"venta "+sale.ID, actorID, now,
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := toSaleResponse(sale)
	return &resp, nil
}

// Get devuelve una venta con sus líneas.
func (uc *SaleUseCase) Get(id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	resp := toSaleResponse(sale)
	return &resp, nil
}

// List devuelve la página de ventas, más recientes primero.
func (uc *SaleUseCase) List(limit, offset int) (*dto.SaleListResponse, error) {
	sales, err := uc.saleRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, toSaleResponse(s))
	}
	return &dto.SaleListResponse{
		Sales: out,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Cancel marca la venta como cancelada y devuelve el stock de cada línea como
// movimientos de entrada, dejando rastro completo en el libro. El UPDATE de
// estado es condicional dentro de la transacción: si dos cancelaciones
// concurrentes pasan la verificación de estado con una lectura vieja, solo una
// gana y la otra recibe ErrConflict sin devolver stock.
func (uc *SaleUseCase) Cancel(ctx context.Context, id, actorID string) error {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return err
	}
	if sale == nil {
		return domain.ErrNotFound
	}
	if sale.Status == entity.SaleStatusCancelled {
		return domain.ErrConflict
	}

	now := time.Now()
	return uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		if err := saleRepo.UpdateStatus(id, entity.SaleStatusCancelled); err != nil {
			return err
		}
		for _, item := range sale.Items {
			_, err := uc.ledger.ApplyEntryInTx(
				productRepo, movementRepo,
				item.ProductID, item.Quantity,
				"cancelación venta "+sale.ID, actorID, now,
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func toSaleResponse(s *entity.Sale) dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ID:         it.ID,
			ProductID:  it.ProductID,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			TotalPrice: it.TotalPrice,
		})
	}
	return dto.SaleResponse{
		ID:            s.ID,
		CustomerID:    s.CustomerID,
		UserID:        s.UserID,
		SaleDate:      s.SaleDate,
		TotalAmount:   s.TotalAmount,
		Discount:      s.Discount,
		Tax:           s.Tax,
		Status:        s.Status,
		PaymentMethod: s.PaymentMethod,
		Notes:         s.Notes,
		Items:         items,
	}
}
