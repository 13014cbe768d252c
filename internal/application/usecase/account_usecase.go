package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/felipefpires/erp-api/internal/application/dto"
	"github.com/felipefpires/erp-api/internal/domain"
	"github.com/felipefpires/erp-api/internal/domain/entity"
	"github.com/felipefpires/erp-api/internal/domain/repository"
)

// AccountUseCase CRUD de cuentas financieras.
type AccountUseCase struct {
	accountRepo repository.AccountRepository
}

// NewAccountUseCase construye el caso de uso de cuentas.
func NewAccountUseCase(accountRepo repository.AccountRepository) *AccountUseCase {
	return &AccountUseCase{accountRepo: accountRepo}
}

// Create da de alta una cuenta; el balance actual nace igual al inicial.
func (uc *AccountUseCase) Create(req dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	if req.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	switch req.AccountType {
	case entity.AccountTypeBank, entity.AccountTypeCash, entity.AccountTypeCard:
	default:
		return nil, domain.ErrInvalidInput
	}

	account := &entity.Account{
		ID:             uuid.New().String(),
		Name:           req.Name,
		AccountType:    req.AccountType,
		AccountNumber:  req.AccountNumber,
		BankName:       req.BankName,
		InitialBalance: req.InitialBalance,
		CurrentBalance: req.InitialBalance,
		IsActive:       true,
		CreatedAt:      time.Now(),
	}
	if err := uc.accountRepo.Create(account); err != nil {
		return nil, err
	}
	resp := toAccountResponse(account)
	return &resp, nil
}

// Get devuelve una cuenta por ID.
func (uc *AccountUseCase) Get(id string) (*dto.AccountResponse, error) {
	account, err := uc.accountRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	resp := toAccountResponse(account)
	return &resp, nil
}

// List devuelve todas las cuentas.
func (uc *AccountUseCase) List() ([]dto.AccountResponse, error) {
	accounts, err := uc.accountRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toAccountResponse(a))
	}
	return out, nil
}

// Update modifica los datos de la cuenta. No toca los balances: el actual solo
// cambia al completar transacciones.
func (uc *AccountUseCase) Update(id string, req dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	if req.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	account, err := uc.accountRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	account.Name = req.Name
	account.AccountNumber = req.AccountNumber
	account.BankName = req.BankName
	if err := uc.accountRepo.Update(account); err != nil {
		return nil, err
	}
	resp := toAccountResponse(account)
	return &resp, nil
}

// Delete elimina una cuenta sin transacciones; con historial devuelve
// ErrConflict.
func (uc *AccountUseCase) Delete(id string) error {
	account, err := uc.accountRepo.GetByID(id)
	if err != nil {
		return err
	}
	if account == nil {
		return domain.ErrNotFound
	}
	count, err := uc.accountRepo.CountTransactions(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrConflict
	}
	return uc.accountRepo.Delete(id)
}

func toAccountResponse(a *entity.Account) dto.AccountResponse {
	return dto.AccountResponse{
		ID:             a.ID,
		Name:           a.Name,
		AccountType:    a.AccountType,
		AccountNumber:  a.AccountNumber,
		BankName:       a.BankName,
		InitialBalance: a.InitialBalance,
		CurrentBalance: a.CurrentBalance,
		IsActive:       a.IsActive,
		CreatedAt:      a.CreatedAt,
	}
}
