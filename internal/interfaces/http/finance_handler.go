package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/felipefpires/erp-api/internal/application/dto"
	"github.com/felipefpires/erp-api/internal/application/usecase"
	"github.com/felipefpires/erp-api/internal/domain/repository"
)

// FinanceHandler maneja cuentas, transacciones y facturas (protegido).
type FinanceHandler struct {
	accounts     *usecase.AccountUseCase
	transactions *usecase.TransactionUseCase
	invoices     *usecase.InvoiceUseCase
}

// NewFinanceHandler construye el handler financiero.
func NewFinanceHandler(
	accounts *usecase.AccountUseCase,
	transactions *usecase.TransactionUseCase,
	invoices *usecase.InvoiceUseCase,
) *FinanceHandler {
	return &FinanceHandler{accounts: accounts, transactions: transactions, invoices: invoices}
}

// ── Cuentas ──────────────────────────────────────────────────────────────────

// CreateAccount godoc
// @Summary      Crear cuenta financiera
// @Tags         finance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAccountRequest  true  "name, account_type (bank/cash/card)"
// @Success      201   {object}  dto.AccountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/finance/accounts [post]
func (h *FinanceHandler) CreateAccount(c *fiber.Ctx) error {
	var in dto.CreateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	account, err := h.accounts.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(account)
}

// ListAccounts godoc
// @Summary      Listar cuentas
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AccountResponse
// @Router       /api/finance/accounts [get]
func (h *FinanceHandler) ListAccounts(c *fiber.Ctx) error {
	out, err := h.accounts.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetAccount godoc
// @Summary      Obtener cuenta
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la cuenta"
// @Success      200  {object}  dto.AccountResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/finance/accounts/{id} [get]
func (h *FinanceHandler) GetAccount(c *fiber.Ctx) error {
	account, err := h.accounts.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(account)
}

// UpdateAccount godoc
// @Summary      Actualizar cuenta (no toca balances)
// @Tags         finance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la cuenta"
// @Param        body  body  dto.CreateAccountRequest  true  "datos de la cuenta"
// @Success      200   {object}  dto.AccountResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/finance/accounts/{id} [put]
func (h *FinanceHandler) UpdateAccount(c *fiber.Ctx) error {
	var in dto.CreateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	account, err := h.accounts.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(account)
}

// DeleteAccount godoc
// @Summary      Eliminar cuenta sin transacciones
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la cuenta"
// @Success      200  {object}  dto.MessageResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/finance/accounts/{id} [delete]
func (h *FinanceHandler) DeleteAccount(c *fiber.Ctx) error {
	if err := h.accounts.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "cuenta eliminada"})
}

// ── Transacciones ────────────────────────────────────────────────────────────

// CreateTransaction godoc
// @Summary      Registrar transacción (ingreso/gasto)
// @Tags         finance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransactionRequest  true  "account_id, type, description, amount"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/finance/transactions [post]
func (h *FinanceHandler) CreateTransaction(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	tx, err := h.transactions.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(tx)
}

// ListTransactions godoc
// @Summary      Listar transacciones
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        account_id  query  string  false  "filtrar por cuenta"
// @Param        type        query  string  false  "income | expense | transfer"
// @Param        status      query  string  false  "pending | completed | cancelled"
// @Param        from        query  string  false  "RFC 3339"
// @Param        to          query  string  false  "RFC 3339"
// @Param        limit       query  int     false  "default 20, max 100"
// @Param        offset      query  int     false  "default 0"
// @Success      200  {object}  dto.TransactionListResponse
// @Router       /api/finance/transactions [get]
func (h *FinanceHandler) ListTransactions(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	filter := repository.TransactionFilter{
		AccountID: c.Query("account_id"),
		Type:      c.Query("type"),
		Status:    c.Query("status"),
	}
	if from := c.Query("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido (RFC 3339)"})
		}
		filter.From = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido (RFC 3339)"})
		}
		filter.To = &t
	}

	out, err := h.transactions.List(filter, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CompleteTransaction godoc
// @Summary      Completar transacción pendiente
// @Description  Marca la transacción como completada y ajusta el balance de la
//               cuenta: income suma, expense resta.
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la transacción"
// @Success      200  {object}  dto.TransactionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/finance/transactions/{id}/complete [post]
func (h *FinanceHandler) CompleteTransaction(c *fiber.Ctx) error {
	tx, err := h.transactions.Complete(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tx)
}

// CancelTransaction godoc
// @Summary      Cancelar transacción
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la transacción"
// @Success      200  {object}  dto.MessageResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/finance/transactions/{id}/cancel [post]
func (h *FinanceHandler) CancelTransaction(c *fiber.Ctx) error {
	if err := h.transactions.Cancel(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "transacción cancelada"})
}

// DeleteTransaction godoc
// @Summary      Eliminar transacción pendiente
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la transacción"
// @Success      200  {object}  dto.MessageResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/finance/transactions/{id} [delete]
func (h *FinanceHandler) DeleteTransaction(c *fiber.Ctx) error {
	if err := h.transactions.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "transacción eliminada"})
}

// ── Facturas ─────────────────────────────────────────────────────────────────

// CreateInvoice godoc
// @Summary      Emitir factura a partir de una venta
// @Tags         finance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInvoiceRequest  true  "sale_id; número y vencimiento opcionales"
// @Success      201   {object}  dto.InvoiceResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/finance/invoices [post]
func (h *FinanceHandler) CreateInvoice(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	invoice, err := h.invoices.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// ListInvoices godoc
// @Summary      Listar facturas
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "pending | paid | overdue | cancelled"
// @Param        limit   query  int     false  "default 20, max 100"
// @Param        offset  query  int     false  "default 0"
// @Success      200  {array}  dto.InvoiceResponse
// @Router       /api/finance/invoices [get]
func (h *FinanceHandler) ListInvoices(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	out, err := h.invoices.List(c.Query("status"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetInvoice godoc
// @Summary      Obtener factura
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la factura"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/finance/invoices/{id} [get]
func (h *FinanceHandler) GetInvoice(c *fiber.Ctx) error {
	invoice, err := h.invoices.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(invoice)
}

// PayInvoice godoc
// @Summary      Registrar pago de factura
// @Tags         finance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string          true  "ID de la factura"
// @Param        body  body  map[string]any  true  "amount"
// @Success      200   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/finance/invoices/{id}/pay [post]
func (h *FinanceHandler) PayInvoice(c *fiber.Ctx) error {
	var in struct {
		Amount decimal.Decimal `json:"amount"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	invoice, err := h.invoices.Pay(c.Params("id"), in.Amount)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(invoice)
}

// CancelInvoice godoc
// @Summary      Anular factura pendiente
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la factura"
// @Success      200  {object}  dto.MessageResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/finance/invoices/{id}/cancel [post]
func (h *FinanceHandler) CancelInvoice(c *fiber.Ctx) error {
	if err := h.invoices.Cancel(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "factura anulada"})
}

// InvoicePDF godoc
// @Summary      Descargar factura en PDF
// @Tags         finance
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la factura"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/finance/invoices/{id}/pdf [get]
func (h *FinanceHandler) InvoicePDF(c *fiber.Ctx) error {
	pdf, err := h.invoices.RenderPDF(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="factura.pdf"`)
	return c.Send(pdf)
}

// SendInvoice godoc
// @Summary      Enviar factura por correo al cliente
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la factura"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/finance/invoices/{id}/send [post]
func (h *FinanceHandler) SendInvoice(c *fiber.Ctx) error {
	if err := h.invoices.Send(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "factura enviada"})
}
