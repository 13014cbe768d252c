package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos y estados de transacción financiera.
const (
	TransactionTypeIncome   = "income"
	TransactionTypeExpense  = "expense"
	TransactionTypeTransfer = "transfer"

	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusCancelled = "cancelled"
)

// Transaction representa un ingreso, gasto o transferencia sobre una cuenta.
type Transaction struct {
	ID              string
	AccountID       string
	Type            string // income, expense, transfer
	Category        string
	Description     string
	Amount          decimal.Decimal
	TransactionDate time.Time
	DueDate         *time.Time
	Status          string // pending, completed, cancelled
	PaymentMethod   string
	Reference       string
	Notes           string
	UserID          string
	CreatedAt       time.Time
}
