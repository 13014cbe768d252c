package repository

import (
	"github.com/shopspring/decimal"

	"github.com/felipefpires/erp-api/internal/domain/entity"
)

// AccountRepository define el puerto de persistencia para Account.
type AccountRepository interface {
	Create(account *entity.Account) error
	GetByID(id string) (*entity.Account, error)
	Update(account *entity.Account) error
	Delete(id string) error
	List() ([]*entity.Account, error)
	// AdjustBalance suma delta (positivo o negativo) a current_balance.
	AdjustBalance(accountID string, delta decimal.Decimal) error
	CountTransactions(accountID string) (int, error)
}
