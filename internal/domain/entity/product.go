package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// CurrentStock lo muta exclusivamente el libro de movimientos (ledger); el CRUD
// de productos nunca lo toca después de la creación. MaxStock en 0 significa
// "sin techo configurado".
type Product struct {
	ID           string
	Name         string
	Description  string
	SKU          string
	Barcode      string
	CategoryID   string // vacío = sin categoría
	CostPrice    decimal.Decimal
	SalePrice    decimal.Decimal
	CurrentStock int
	MinStock     int
	MaxStock     int
	Unit         string // un, kg, l, etc.
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
