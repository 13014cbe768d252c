package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de factura.
const (
	InvoiceStatusPending   = "pending"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusOverdue   = "overdue"
	InvoiceStatusCancelled = "cancelled"
)

// Invoice representa una factura emitida a partir de una venta.
type Invoice struct {
	ID            string
	InvoiceNumber string // único
	CustomerID    string
	SaleID        string
	IssueDate     time.Time
	DueDate       time.Time
	TotalAmount   decimal.Decimal
	PaidAmount    decimal.Decimal
	Status        string // pending, paid, overdue, cancelled
	PaymentDate   *time.Time
	Notes         string
	CreatedAt     time.Time
}

// IsOverdue indica si la factura sigue pendiente después de su fecha de vencimiento.
// Derivado en lectura, nunca persistido.
func (i *Invoice) IsOverdue(now time.Time) bool {
	return i.Status == InvoiceStatusPending && i.DueDate.Before(now)
}
