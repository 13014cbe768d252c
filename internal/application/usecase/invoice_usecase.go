package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/felipefpires/erp-api/internal/application/dto"
	"github.com/felipefpires/erp-api/internal/domain"
	"github.com/felipefpires/erp-api/internal/domain/entity"
	"github.com/felipefpires/erp-api/internal/domain/repository"
)

// InvoicePDFRenderer genera el PDF de una factura. productNames mapea
// product_id a nombre para las líneas de la tabla.
type InvoicePDFRenderer interface {
	Render(invoice *entity.Invoice, sale *entity.Sale, customer *entity.Customer, settings *entity.SystemSettings, productNames map[string]string) ([]byte, error)
}

// InvoiceMailer envía la factura por correo al cliente.
type InvoiceMailer interface {
	SendInvoice(to string, invoice *entity.Invoice, pdf []byte) error
}

const defaultInvoiceDueDays = 30

// InvoiceUseCase emisión y cobro de facturas a partir de ventas.
type InvoiceUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	settingsRepo repository.SettingsRepository
	pdf          InvoicePDFRenderer
	mailer       InvoiceMailer // nil si el SMTP no está configurado
}

// NewInvoiceUseCase construye el caso de uso de facturas.
func NewInvoiceUseCase(
	invoiceRepo repository.InvoiceRepository,
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	settingsRepo repository.SettingsRepository,
	pdf InvoicePDFRenderer,
	mailer InvoiceMailer,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		invoiceRepo:  invoiceRepo,
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		settingsRepo: settingsRepo,
		pdf:          pdf,
		mailer:       mailer,
	}
}

// Create emite una factura para una venta completada. El número se genera si
// no viene; el vencimiento por defecto sale de la configuración del sistema.
func (uc *InvoiceUseCase) Create(req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if req.SaleID == "" {
		return nil, domain.ErrInvalidInput
	}
	sale, err := uc.saleRepo.GetByID(req.SaleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if sale.Status != entity.SaleStatusCompleted {
		return nil, domain.ErrConflict
	}

	number := req.InvoiceNumber
	if number == "" {
		number = generateInvoiceNumber(time.Now())
	}
	existing, err := uc.invoiceRepo.GetByNumber(number)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	dueDate := now.AddDate(0, 0, uc.invoiceDueDays())
	if req.DueDate != nil {
		dueDate = *req.DueDate
	}

	invoice := &entity.Invoice{
		ID:            uuid.New().String(),
		InvoiceNumber: number,
		CustomerID:    sale.CustomerID,
		SaleID:        sale.ID,
		IssueDate:     now,
		DueDate:       dueDate,
		TotalAmount:   sale.TotalAmount,
		PaidAmount:    decimal.Zero,
		Status:        entity.InvoiceStatusPending,
		Notes:         req.Notes,
		CreatedAt:     now,
	}
	if err := uc.invoiceRepo.Create(invoice); err != nil {
		return nil, err
	}
	resp := toInvoiceResponse(invoice, now)
	return &resp, nil
}

// Get devuelve una factura por ID.
func (uc *InvoiceUseCase) Get(id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	resp := toInvoiceResponse(invoice, time.Now())
	return &resp, nil
}

// List devuelve facturas filtradas por estado.
func (uc *InvoiceUseCase) List(status string, limit, offset int) ([]dto.InvoiceResponse, error) {
	invoices, err := uc.invoiceRepo.List(status, limit, offset)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	out := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, toInvoiceResponse(inv, now))
	}
	return out, nil
}

// Pay registra un pago sobre la factura. Cuando el acumulado alcanza el total,
// la factura pasa a paid.
func (uc *InvoiceUseCase) Pay(id string, amount decimal.Decimal) (*dto.InvoiceResponse, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	if invoice.Status == entity.InvoiceStatusPaid || invoice.Status == entity.InvoiceStatusCancelled {
		return nil, domain.ErrConflict
	}

	invoice.PaidAmount = invoice.PaidAmount.Add(amount)
	if invoice.PaidAmount.GreaterThanOrEqual(invoice.TotalAmount) {
		now := time.Now()
		invoice.Status = entity.InvoiceStatusPaid
		invoice.PaymentDate = &now
	}
	if err := uc.invoiceRepo.Update(invoice); err != nil {
		return nil, err
	}
	resp := toInvoiceResponse(invoice, time.Now())
	return &resp, nil
}

// Cancel anula una factura pendiente.
func (uc *InvoiceUseCase) Cancel(id string) error {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return domain.ErrNotFound
	}
	if invoice.Status != entity.InvoiceStatusPending {
		return domain.ErrConflict
	}
	invoice.Status = entity.InvoiceStatusCancelled
	return uc.invoiceRepo.Update(invoice)
}

// RenderPDF genera el PDF de la factura con los datos de la venta y la empresa.
func (uc *InvoiceUseCase) RenderPDF(id string) ([]byte, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	sale, err := uc.saleRepo.GetByID(invoice.SaleID)
	if err != nil {
		return nil, err
	}
	customer, err := uc.customerRepo.GetByID(invoice.CustomerID)
	if err != nil {
		return nil, err
	}
	settings, err := uc.settingsRepo.GetSystem()
	if err != nil {
		return nil, err
	}

	productNames := map[string]string{}
	if sale != nil {
		for _, item := range sale.Items {
			if _, ok := productNames[item.ProductID]; ok {
				continue
			}
			product, err := uc.productRepo.GetByID(item.ProductID)
			if err != nil {
				return nil, err
			}
			if product != nil {
				productNames[item.ProductID] = product.Name
			}
		}
	}
	return uc.pdf.Render(invoice, sale, customer, settings, productNames)
}

// Send genera el PDF y lo envía por correo al cliente. Requiere SMTP
// configurado y un cliente con email.
func (uc *InvoiceUseCase) Send(id string) error {
	if uc.mailer == nil {
		return domain.ErrConflict
	}
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return domain.ErrNotFound
	}
	customer, err := uc.customerRepo.GetByID(invoice.CustomerID)
	if err != nil {
		return err
	}
	if customer == nil || customer.Email == "" {
		return domain.ErrInvalidInput
	}
	pdf, err := uc.RenderPDF(id)
	if err != nil {
		return err
	}
	return uc.mailer.SendInvoice(customer.Email, invoice, pdf)
}

func (uc *InvoiceUseCase) invoiceDueDays() int {
	settings, err := uc.settingsRepo.GetSystem()
	if err != nil || settings == nil || settings.InvoiceDueDays <= 0 {
		return defaultInvoiceDueDays
	}
	return settings.InvoiceDueDays
}

// generateInvoiceNumber FAT-AAAAMMDD-XXXXXX, con sufijo aleatorio corto.
func generateInvoiceNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return fmt.Sprintf("FAT-%s-%s", now.Format("20060102"), suffix)
}

func toInvoiceResponse(i *entity.Invoice, now time.Time) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:            i.ID,
		InvoiceNumber: i.InvoiceNumber,
		CustomerID:    i.CustomerID,
		SaleID:        i.SaleID,
		IssueDate:     i.IssueDate,
		DueDate:       i.DueDate,
		TotalAmount:   i.TotalAmount,
		PaidAmount:    i.PaidAmount,
		Status:        i.Status,
		PaymentDate:   i.PaymentDate,
		Notes:         i.Notes,
		IsOverdue:     i.IsOverdue(now),
		CreatedAt:     i.CreatedAt,
	}
}
