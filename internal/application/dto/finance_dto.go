package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAccountRequest body para POST /api/finance/accounts.
type CreateAccountRequest struct {
	Name           string          `json:"name"`
	AccountType    string          `json:"account_type"` // bank, cash, card
	AccountNumber  string          `json:"account_number,omitempty"`
	BankName       string          `json:"bank_name,omitempty"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
}

// AccountResponse cuenta financiera.
type AccountResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	AccountType    string          `json:"account_type"`
	AccountNumber  string          `json:"account_number,omitempty"`
	BankName       string          `json:"bank_name,omitempty"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
}

// CreateTransactionRequest body para POST /api/finance/transactions.
type CreateTransactionRequest struct {
	AccountID       string          `json:"account_id"`
	Type            string          `json:"type"` // income, expense, transfer
	Category        string          `json:"category,omitempty"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate time.Time       `json:"transaction_date"`
	DueDate         *time.Time      `json:"due_date,omitempty"`
	Status          string          `json:"status,omitempty"` // default pending
	PaymentMethod   string          `json:"payment_method,omitempty"`
	Reference       string          `json:"reference,omitempty"`
	Notes           string          `json:"notes,omitempty"`
}

// TransactionResponse transacción financiera.
type TransactionResponse struct {
	ID              string          `json:"id"`
	AccountID       string          `json:"account_id"`
	Type            string          `json:"type"`
	Category        string          `json:"category,omitempty"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate time.Time       `json:"transaction_date"`
	DueDate         *time.Time      `json:"due_date,omitempty"`
	Status          string          `json:"status"`
	PaymentMethod   string          `json:"payment_method,omitempty"`
	Reference       string          `json:"reference,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	UserID          string          `json:"user_id"`
	CreatedAt       time.Time       `json:"created_at"`
}

// TransactionListResponse página de transacciones.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Page         PageResponse          `json:"page"`
}

// CreateInvoiceRequest body para POST /api/finance/invoices.
type CreateInvoiceRequest struct {
	SaleID        string     `json:"sale_id"`
	InvoiceNumber string     `json:"invoice_number,omitempty"` // se genera si viene vacío
	DueDate       *time.Time `json:"due_date,omitempty"`       // default: issue_date + invoice_due_days
	Notes         string     `json:"notes,omitempty"`
}

// InvoiceResponse factura con el vencimiento derivado.
type InvoiceResponse struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	CustomerID    string          `json:"customer_id"`
	SaleID        string          `json:"sale_id"`
	IssueDate     time.Time       `json:"issue_date"`
	DueDate       time.Time       `json:"due_date"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	Status        string          `json:"status"`
	PaymentDate   *time.Time      `json:"payment_date,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	IsOverdue     bool            `json:"is_overdue"` // derivado en lectura
	CreatedAt     time.Time       `json:"created_at"`
}
