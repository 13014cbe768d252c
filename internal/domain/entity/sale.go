package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de venta.
const (
	SaleStatusPending   = "pending"
	SaleStatusCompleted = "completed"
	SaleStatusCancelled = "cancelled"
)

// Sale representa una venta a un cliente.
type Sale struct {
	ID            string
	CustomerID    string
	UserID        string
	SaleDate      time.Time
	TotalAmount   decimal.Decimal
	Discount      decimal.Decimal
	Tax           decimal.Decimal
	Status        string // pending, completed, cancelled
	PaymentMethod string
	Notes         string
	Items         []SaleItem
}

// SaleItem es una línea de venta. TotalPrice = Quantity * UnitPrice.
type SaleItem struct {
	ID         string
	SaleID     string
	ProductID  string
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}
