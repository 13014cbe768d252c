package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/felipefpires/erp-api/internal/application/dto"
	"github.com/felipefpires/erp-api/internal/domain"
	"github.com/felipefpires/erp-api/internal/domain/entity"
	"github.com/felipefpires/erp-api/internal/domain/repository"
)

// CustomerUseCase CRUD de clientes del CRM.
type CustomerUseCase struct {
	customerRepo    repository.CustomerRepository
	saleRepo        repository.SaleRepository
	appointmentRepo repository.AppointmentRepository
}

// NewCustomerUseCase construye el caso de uso de clientes.
func NewCustomerUseCase(
	customerRepo repository.CustomerRepository,
	saleRepo repository.SaleRepository,
	appointmentRepo repository.AppointmentRepository,
) *CustomerUseCase {
	return &CustomerUseCase{
		customerRepo:    customerRepo,
		saleRepo:        saleRepo,
		appointmentRepo: appointmentRepo,
	}
}

// Create da de alta un cliente. Solo el nombre es obligatorio.
func (uc *CustomerUseCase) Create(req dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if req.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	status := req.Status
	if status == "" {
		status = entity.CustomerStatusActive
	}
	if !validCustomerStatus(status) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Instagram: req.Instagram,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
		Company:   req.Company,
		TaxID:     req.TaxID,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	resp := toCustomerResponse(customer)
	return &resp, nil
}

// Get devuelve un cliente por ID.
func (uc *CustomerUseCase) Get(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	resp := toCustomerResponse(customer)
	return &resp, nil
}

// List devuelve la página de clientes según filtros.
func (uc *CustomerUseCase) List(filter repository.CustomerFilter, limit, offset int) (*dto.CustomerListResponse, error) {
	if filter.Status != "" && !validCustomerStatus(filter.Status) {
		return nil, domain.ErrInvalidInput
	}
	customers, err := uc.customerRepo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.customerRepo.Count(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, toCustomerResponse(c))
	}
	return &dto.CustomerListResponse{
		Customers: out,
		Page:      dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// Update modifica un cliente.
func (uc *CustomerUseCase) Update(id string, req dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	if req.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if req.Status != "" {
		if !validCustomerStatus(req.Status) {
			return nil, domain.ErrInvalidInput
		}
		customer.Status = req.Status
	}

	customer.Name = req.Name
	customer.Email = req.Email
	customer.Phone = req.Phone
	customer.Instagram = req.Instagram
	customer.Address = req.Address
	customer.City = req.City
	customer.State = req.State
	customer.ZipCode = req.ZipCode
	customer.Company = req.Company
	customer.TaxID = req.TaxID
	customer.UpdatedAt = time.Now()

	if err := uc.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	resp := toCustomerResponse(customer)
	return &resp, nil
}

// Delete elimina un cliente sin ventas ni citas; con historial devuelve
// ErrConflict.
func (uc *CustomerUseCase) Delete(id string) error {
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	sales, err := uc.saleRepo.CountByCustomer(id)
	if err != nil {
		return err
	}
	if sales > 0 {
		return domain.ErrConflict
	}
	appointments, err := uc.appointmentRepo.CountByCustomer(id)
	if err != nil {
		return err
	}
	if appointments > 0 {
		return domain.ErrConflict
	}
	return uc.customerRepo.Delete(id)
}

func validCustomerStatus(s string) bool {
	switch s {
	case entity.CustomerStatusActive, entity.CustomerStatusInactive, entity.CustomerStatusProspect:
		return true
	}
	return false
}

func toCustomerResponse(c *entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Instagram: c.Instagram,
		Address:   c.Address,
		City:      c.City,
		State:     c.State,
		ZipCode:   c.ZipCode,
		Company:   c.Company,
		TaxID:     c.TaxID,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
