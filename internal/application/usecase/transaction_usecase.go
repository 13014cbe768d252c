package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/felipefpires/erp-api/internal/application/dto"
	"github.com/felipefpires/erp-api/internal/domain"
	"github.com/felipefpires/erp-api/internal/domain/entity"
	"github.com/felipefpires/erp-api/internal/domain/repository"
)

// FinanceTxRunner ejecuta un callback con los repos de transacciones y cuentas
// atados a la misma transacción SQL. El cambio de estado de una transacción y
// el ajuste de balance de su cuenta se confirman juntos o no se confirman.
type FinanceTxRunner interface {
	RunFinance(ctx context.Context, fn func(
		transactionRepo repository.TransactionRepository,
		accountRepo repository.AccountRepository,
	) error) error
}

// TransactionUseCase registro de ingresos y gastos. Al completar una
// transacción se ajusta el balance de la cuenta: income suma, expense resta.
type TransactionUseCase struct {
	txRunner        FinanceTxRunner
	transactionRepo repository.TransactionRepository
	accountRepo     repository.AccountRepository
}

// NewTransactionUseCase construye el caso de uso de transacciones.
func NewTransactionUseCase(
	txRunner FinanceTxRunner,
	transactionRepo repository.TransactionRepository,
	accountRepo repository.AccountRepository,
) *TransactionUseCase {
	return &TransactionUseCase{txRunner: txRunner, transactionRepo: transactionRepo, accountRepo: accountRepo}
}

// Create registra una transacción. Si nace completed, el balance de la cuenta
// se ajusta en el acto.
func (uc *TransactionUseCase) Create(ctx context.Context, actorID string, req dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if req.AccountID == "" || req.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	switch req.Type {
	case entity.TransactionTypeIncome, entity.TransactionTypeExpense, entity.TransactionTypeTransfer:
	default:
		return nil, domain.ErrInvalidInput
	}
	status := req.Status
	if status == "" {
		status = entity.TransactionStatusPending
	}
	switch status {
	case entity.TransactionStatusPending, entity.TransactionStatusCompleted:
	default:
		return nil, domain.ErrInvalidInput
	}

	account, err := uc.accountRepo.GetByID(req.AccountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}

	txDate := req.TransactionDate
	if txDate.IsZero() {
		txDate = time.Now()
	}
	tx := &entity.Transaction{
		ID:              uuid.New().String(),
		AccountID:       req.AccountID,
		Type:            req.Type,
		Category:        req.Category,
		Description:     req.Description,
		Amount:          req.Amount,
		TransactionDate: txDate,
		DueDate:         req.DueDate,
		Status:          status,
		PaymentMethod:   req.PaymentMethod,
		Reference:       req.Reference,
		Notes:           req.Notes,
		UserID:          actorID,
		CreatedAt:       time.Now(),
	}
	if status == entity.TransactionStatusCompleted {
		// Alta y ajuste de balance viven o mueren juntos.
		err = uc.txRunner.RunFinance(ctx, func(
			transactionRepo repository.TransactionRepository,
			accountRepo repository.AccountRepository,
		) error {
			if err := transactionRepo.Create(tx); err != nil {
				return err
			}
			return accountRepo.AdjustBalance(tx.AccountID, balanceDelta(tx))
		})
	} else {
		err = uc.transactionRepo.Create(tx)
	}
	if err != nil {
		return nil, err
	}
	resp := toTransactionResponse(tx)
	return &resp, nil
}

// Get devuelve una transacción por ID.
func (uc *TransactionUseCase) Get(id string) (*dto.TransactionResponse, error) {
	tx, err := uc.transactionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, domain.ErrNotFound
	}
	resp := toTransactionResponse(tx)
	return &resp, nil
}

// List devuelve la página de transacciones según filtros.
func (uc *TransactionUseCase) List(filter repository.TransactionFilter, limit, offset int) (*dto.TransactionListResponse, error) {
	txs, err := uc.transactionRepo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.transactionRepo.Count(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionResponse, 0, len(txs))
	for _, t := range txs {
		out = append(out, toTransactionResponse(t))
	}
	return &dto.TransactionListResponse{
		Transactions: out,
		Page:         dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// Complete marca una transacción pendiente como completada y ajusta el balance.
// Ambas escrituras van en la misma transacción SQL: si el ajuste falla, el
// estado no queda completado a medias.
func (uc *TransactionUseCase) Complete(ctx context.Context, id string) (*dto.TransactionResponse, error) {
	tx, err := uc.transactionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, domain.ErrNotFound
	}
	if tx.Status != entity.TransactionStatusPending {
		return nil, domain.ErrConflict
	}
	tx.Status = entity.TransactionStatusCompleted
	err = uc.txRunner.RunFinance(ctx, func(
		transactionRepo repository.TransactionRepository,
		accountRepo repository.AccountRepository,
	) error {
		if err := transactionRepo.Update(tx); err != nil {
			return err
		}
		return accountRepo.AdjustBalance(tx.AccountID, balanceDelta(tx))
	})
	if err != nil {
		return nil, err
	}
	resp := toTransactionResponse(tx)
	return &resp, nil
}

// Cancel marca la transacción como cancelada. Si ya estaba completada, revierte
// el ajuste de balance en la misma transacción SQL que el cambio de estado.
func (uc *TransactionUseCase) Cancel(ctx context.Context, id string) error {
	tx, err := uc.transactionRepo.GetByID(id)
	if err != nil {
		return err
	}
	if tx == nil {
		return domain.ErrNotFound
	}
	if tx.Status == entity.TransactionStatusCancelled {
		return domain.ErrConflict
	}
	wasCompleted := tx.Status == entity.TransactionStatusCompleted
	tx.Status = entity.TransactionStatusCancelled
	if !wasCompleted {
		return uc.transactionRepo.Update(tx)
	}
	return uc.txRunner.RunFinance(ctx, func(
		transactionRepo repository.TransactionRepository,
		accountRepo repository.AccountRepository,
	) error {
		if err := transactionRepo.Update(tx); err != nil {
			return err
		}
		return accountRepo.AdjustBalance(tx.AccountID, balanceDelta(tx).Neg())
	})
}

// Delete elimina una transacción pendiente; completadas o canceladas quedan
// como historial.
func (uc *TransactionUseCase) Delete(id string) error {
	tx, err := uc.transactionRepo.GetByID(id)
	if err != nil {
		return err
	}
	if tx == nil {
		return domain.ErrNotFound
	}
	if tx.Status != entity.TransactionStatusPending {
		return domain.ErrConflict
	}
	return uc.transactionRepo.Delete(id)
}

// balanceDelta signo del ajuste según el tipo: income suma, el resto resta.
func balanceDelta(tx *entity.Transaction) decimal.Decimal {
	if tx.Type == entity.TransactionTypeIncome {
		return tx.Amount
	}
	return tx.Amount.Neg()
}

func toTransactionResponse(t *entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:              t.ID,
		AccountID:       t.AccountID,
		Type:            t.Type,
		Category:        t.Category,
		Description:     t.Description,
		Amount:          t.Amount,
		TransactionDate: t.TransactionDate,
		DueDate:         t.DueDate,
		Status:          t.Status,
		PaymentMethod:   t.PaymentMethod,
		Reference:       t.Reference,
		Notes:           t.Notes,
		UserID:          t.UserID,
		CreatedAt:       t.CreatedAt,
	}
}
