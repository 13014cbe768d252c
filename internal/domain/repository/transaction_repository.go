package repository

import (
	"time"

	"github.com/felipefpires/erp-api/internal/domain/entity"
)

// TransactionFilter filtros para el listado de transacciones.
type TransactionFilter struct {
	AccountID string
	Type      string // income, expense, transfer
	Status    string // pending, completed, cancelled
	From      *time.Time
	To        *time.Time
}

// TransactionRepository define el puerto de persistencia para Transaction.
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	GetByID(id string) (*entity.Transaction, error)
	Update(tx *entity.Transaction) error
	Delete(id string) error
	List(filter TransactionFilter, limit, offset int) ([]*entity.Transaction, error)
	Count(filter TransactionFilter) (int, error)
}
