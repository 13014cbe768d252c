package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de cuenta financiera.
const (
	AccountTypeBank = "bank"
	AccountTypeCash = "cash"
	AccountTypeCard = "card"
)

// Account representa una cuenta financiera (banco, caja o tarjeta).
// CurrentBalance se actualiza al completar transacciones.
type Account struct {
	ID             string
	Name           string
	AccountType    string
	AccountNumber  string
	BankName       string
	InitialBalance decimal.Decimal
	CurrentBalance decimal.Decimal
	IsActive       bool
	CreatedAt      time.Time
}
