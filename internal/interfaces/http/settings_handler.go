package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/felipefpires/erp-api/internal/application/dto"
	"github.com/felipefpires/erp-api/internal/application/usecase"
)

// SettingsHandler maneja la configuración del sistema (solo admin).
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler construye el handler de configuración.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// GetSystem godoc
// @Summary      Configuración general de la empresa
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SystemSettingsResponse
// @Router       /api/settings/system [get]
func (h *SettingsHandler) GetSystem(c *fiber.Ctx) error {
	out, err := h.uc.GetSystem()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateSystem godoc
// @Summary      Actualizar configuración general
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SystemSettingsRequest  true  "company_name requerido"
// @Success      200   {object}  dto.SystemSettingsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings/system [put]
func (h *SettingsHandler) UpdateSystem(c *fiber.Ctx) error {
	var in dto.SystemSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateSystem(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetEmail godoc
// @Summary      Configuración SMTP (sin contraseña)
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.EmailSettingsResponse
// @Router       /api/settings/email [get]
func (h *SettingsHandler) GetEmail(c *fiber.Ctx) error {
	out, err := h.uc.GetEmail()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateEmail godoc
// @Summary      Actualizar configuración SMTP
// @Description  Una contraseña vacía en el request conserva la anterior.
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EmailSettingsRequest  true  "smtp_server requerido"
// @Success      200   {object}  dto.EmailSettingsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings/email [put]
func (h *SettingsHandler) UpdateEmail(c *fiber.Ctx) error {
	var in dto.EmailSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateEmail(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetBackup godoc
// @Summary      Política de respaldos
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BackupSettingsResponse
// @Router       /api/settings/backup [get]
func (h *SettingsHandler) GetBackup(c *fiber.Ctx) error {
	out, err := h.uc.GetBackup()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateBackup godoc
// @Summary      Actualizar política de respaldos
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BackupSettingsRequest  true  "frequency: daily | weekly | monthly"
// @Success      200   {object}  dto.BackupSettingsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings/backup [put]
func (h *SettingsHandler) UpdateBackup(c *fiber.Ctx) error {
	var in dto.BackupSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateBackup(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
