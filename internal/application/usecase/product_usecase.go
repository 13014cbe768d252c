package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/felipefpires/erp-api/internal/application/dto"
	appinv "github.com/felipefpires/erp-api/internal/application/inventory"
	"github.com/felipefpires/erp-api/internal/domain"
	"github.com/felipefpires/erp-api/internal/domain/entity"
	dominv "github.com/felipefpires/erp-api/internal/domain/inventory"
	"github.com/felipefpires/erp-api/internal/domain/repository"
)

// ProductUseCase CRUD de productos. Nunca escribe current_stock después de la
// creación; eso es territorio exclusivo del libro de movimientos.
type ProductUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	movementRepo repository.StockMovementRepository
	saleRepo     repository.SaleRepository
}

// NewProductUseCase construye el caso de uso de productos.
func NewProductUseCase(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	movementRepo repository.StockMovementRepository,
	saleRepo repository.SaleRepository,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		movementRepo: movementRepo,
		saleRepo:     saleRepo,
	}
}

// Create da de alta un producto. El stock inicial se acepta aquí una única vez;
// a partir de entonces solo cambia vía movimientos.
func (uc *ProductUseCase) Create(req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if req.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if req.CurrentStock < 0 || req.MinStock < 0 || req.MaxStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if req.CategoryID != "" {
		cat, err := uc.categoryRepo.GetByID(req.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	unit := req.Unit
	if unit == "" {
		unit = "un"
	}
	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Description:  req.Description,
		SKU:          req.SKU,
		Barcode:      req.Barcode,
		CategoryID:   req.CategoryID,
		CostPrice:    req.CostPrice,
		SalePrice:    req.SalePrice,
		CurrentStock: req.CurrentStock,
		MinStock:     req.MinStock,
		MaxStock:     req.MaxStock,
		Unit:         unit,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// Get devuelve un producto por ID.
func (uc *ProductUseCase) Get(id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// GetDetail devuelve el producto con su historial de movimientos.
func (uc *ProductUseCase) GetDetail(id string, limit, offset int) (*dto.ProductDetailResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	movements, err := uc.movementRepo.ListByProduct(id, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, appinv.ToMovementResponse(m))
	}
	return &dto.ProductDetailResponse{
		Product:   toProductResponse(product),
		Movements: out,
	}, nil
}

// List devuelve la página de productos según filtros.
func (uc *ProductUseCase) List(filter repository.ProductFilter, limit, offset int) (*dto.ProductListResponse, error) {
	products, err := uc.productRepo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.productRepo.Count(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Products: out,
		Page:     dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// Update modifica los datos del producto. Ignora cualquier intento de tocar el
// stock: el request no lo trae y aquí se preserva el valor actual.
func (uc *ProductUseCase) Update(id string, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if req.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if req.CategoryID != "" && req.CategoryID != product.CategoryID {
		cat, err := uc.categoryRepo.GetByID(req.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, domain.ErrNotFound
		}
	}

	product.Name = req.Name
	product.Description = req.Description
	product.SKU = req.SKU
	product.Barcode = req.Barcode
	product.CategoryID = req.CategoryID
	product.CostPrice = req.CostPrice
	product.SalePrice = req.SalePrice
	product.MinStock = req.MinStock
	product.MaxStock = req.MaxStock
	if req.Unit != "" {
		product.Unit = req.Unit
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	product.UpdatedAt = time.Now()

	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// Delete elimina un producto solo si no tiene historial: con movimientos o
// líneas de venta asociadas se rechaza con ErrConflict para no romper la
// auditoría.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	movements, err := uc.movementRepo.CountByProduct(id)
	if err != nil {
		return err
	}
	if movements > 0 {
		return domain.ErrConflict
	}
	saleItems, err := uc.saleRepo.CountItemsByProduct(id)
	if err != nil {
		return err
	}
	if saleItems > 0 {
		return domain.ErrConflict
	}
	return uc.productRepo.Delete(id)
}

// toProductResponse mapea la entidad y deriva stock_status al vuelo.
func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		SKU:          p.SKU,
		Barcode:      p.Barcode,
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
	}
}
