package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	SKU          string          `json:"sku,omitempty"`
	Barcode      string          `json:"barcode,omitempty"`
	CategoryID   string          `json:"category_id,omitempty"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SalePrice    decimal.Decimal `json:"sale_price"`
	CurrentStock int             `json:"current_stock"` // stock inicial, usualmente 0
	MinStock     int             `json:"min_stock"`
	MaxStock     int             `json:"max_stock"` // 0 = sin techo
	Unit         string          `json:"unit,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id.
// No incluye current_stock: el stock solo cambia vía movimientos.
type UpdateProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	SKU         string          `json:"sku,omitempty"`
	Barcode     string          `json:"barcode,omitempty"`
	CategoryID  string          `json:"category_id,omitempty"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	SalePrice   decimal.Decimal `json:"sale_price"`
	MinStock    int             `json:"min_stock"`
	MaxStock    int             `json:"max_stock"`
	Unit        string          `json:"unit,omitempty"`
	IsActive    *bool           `json:"is_active,omitempty"`
}

// ProductResponse producto con su estado de stock derivado.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	SKU          string          `json:"sku,omitempty"`
	Barcode      string          `json:"barcode,omitempty"`
	CategoryID   string          `json:"category_id,omitempty"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SalePrice    decimal.Decimal `json:"sale_price"`
	CurrentStock int             `json:"current_stock"`
	MinStock     int             `json:"min_stock"`
	MaxStock     int             `json:"max_stock"`
	Unit         string          `json:"unit"`
	IsActive     bool            `json:"is_active"`
	StockStatus  string          `json:"stock_status"` // derivado, nunca persistido
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse página de productos.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Page     PageResponse      `json:"page"`
}

// ProductDetailResponse producto con su historial de movimientos.
type ProductDetailResponse struct {
	Product   ProductResponse    `json:"product"`
	Movements []MovementResponse `json:"movements"`
}
