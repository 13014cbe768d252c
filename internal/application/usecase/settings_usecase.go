package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/felipefpires/erp-api/internal/application/dto"
	"github.com/felipefpires/erp-api/internal/domain"
	"github.com/felipefpires/erp-api/internal/domain/entity"
	"github.com/felipefpires/erp-api/internal/domain/repository"
)

// SettingsUseCase filas únicas de configuración del sistema.
type SettingsUseCase struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso de configuración.
func NewSettingsUseCase(settingsRepo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{settingsRepo: settingsRepo}
}

// GetSystem devuelve la configuración general; defaults si aún no existe.
func (uc *SettingsUseCase) GetSystem() (*dto.SystemSettingsResponse, error) {
	s, err := uc.settingsRepo.GetSystem()
	if err != nil {
		return nil, err
	}
	if s == nil {
		s = defaultSystemSettings()
	}
	return &dto.SystemSettingsResponse{
		CompanyName:       s.CompanyName,
		CompanyEmail:      s.CompanyEmail,
		CompanyPhone:      s.CompanyPhone,
		CompanyAddress:    s.CompanyAddress,
		Currency:          s.Currency,
		Timezone:          s.Timezone,
		LowStockThreshold: s.LowStockThreshold,
		InvoiceDueDays:    s.InvoiceDueDays,
		UpdatedAt:         s.UpdatedAt,
	}, nil
}

// UpdateSystem guarda la configuración general (upsert de fila única).
func (uc *SettingsUseCase) UpdateSystem(req dto.SystemSettingsRequest) (*dto.SystemSettingsResponse, error) {
	if req.CompanyName == "" {
		return nil, domain.ErrInvalidInput
	}
	s, err := uc.settingsRepo.GetSystem()
	if err != nil {
		return nil, err
	}
	if s == nil {
		s = defaultSystemSettings()
		s.ID = uuid.New().String()
		s.CreatedAt = time.Now()
	}

	s.CompanyName = req.CompanyName
	s.CompanyEmail = req.CompanyEmail
	s.CompanyPhone = req.CompanyPhone
	s.CompanyAddress = req.CompanyAddress
	if req.Currency != "" {
		s.Currency = req.Currency
	}
	if req.Timezone != "" {
		s.Timezone = req.Timezone
	}
	if req.LowStockThreshold > 0 {
		s.LowStockThreshold = req.LowStockThreshold
	}
	if req.InvoiceDueDays > 0 {
		s.InvoiceDueDays = req.InvoiceDueDays
	}
	s.UpdatedAt = time.Now()

	if err := uc.settingsRepo.UpsertSystem(s); err != nil {
		return nil, err
	}
	return uc.GetSystem()
}

// GetEmail devuelve la configuración SMTP sin exponer la contraseña.
func (uc *SettingsUseCase) GetEmail() (*dto.EmailSettingsResponse, error) {
	s, err := uc.settingsRepo.GetEmail()
	if err != nil {
		return nil, err
	}
	if s == nil {
		return &dto.EmailSettingsResponse{SMTPPort: 587, SMTPUseTLS: true}, nil
	}
	return &dto.EmailSettingsResponse{
		SMTPServer:   s.SMTPServer,
		SMTPPort:     s.SMTPPort,
		SMTPUsername: s.SMTPUsername,
		SMTPUseTLS:   s.SMTPUseTLS,
		UpdatedAt:    s.UpdatedAt,
	}, nil
}

// UpdateEmail guarda la configuración SMTP. Una contraseña vacía en el request
// conserva la anterior.
func (uc *SettingsUseCase) UpdateEmail(req dto.EmailSettingsRequest) (*dto.EmailSettingsResponse, error) {
	if req.SMTPServer == "" {
		return nil, domain.ErrInvalidInput
	}
	s, err := uc.settingsRepo.GetEmail()
	if err != nil {
		return nil, err
	}
	if s == nil {
		s = &entity.EmailSettings{
			ID:         uuid.New().String(),
			SMTPPort:   587,
			SMTPUseTLS: true,
			CreatedAt:  time.Now(),
		}
	}

	s.SMTPServer = req.SMTPServer
	if req.SMTPPort > 0 {
		s.SMTPPort = req.SMTPPort
	}
	s.SMTPUsername = req.SMTPUsername
	if req.SMTPPassword != "" {
		s.SMTPPassword = req.SMTPPassword
	}
	if req.SMTPUseTLS != nil {
		s.SMTPUseTLS = *req.SMTPUseTLS
	}
	s.UpdatedAt = time.Now()

	if err := uc.settingsRepo.UpsertEmail(s); err != nil {
		return nil, err
	}
	return uc.GetEmail()
}

// GetBackup devuelve la política de respaldos; defaults si aún no existe.
func (uc *SettingsUseCase) GetBackup() (*dto.BackupSettingsResponse, error) {
	s, err := uc.settingsRepo.GetBackup()
	if err != nil {
		return nil, err
	}
	if s == nil {
		return &dto.BackupSettingsResponse{Frequency: "weekly", RetentionDays: 30}, nil
	}
	return &dto.BackupSettingsResponse{
		Frequency:     s.Frequency,
		RetentionDays: s.RetentionDays,
		LastBackup:    s.LastBackup,
		UpdatedAt:     s.UpdatedAt,
	}, nil
}

// UpdateBackup guarda la política de respaldos.
func (uc *SettingsUseCase) UpdateBackup(req dto.BackupSettingsRequest) (*dto.BackupSettingsResponse, error) {
	switch req.Frequency {
	case "", "daily", "weekly", "monthly":
	default:
		return nil, domain.ErrInvalidInput
	}
	s, err := uc.settingsRepo.GetBackup()
	if err != nil {
		return nil, err
	}
	if s == nil {
		s = &entity.BackupSettings{
			ID:            uuid.New().String(),
			Frequency:     "weekly",
			RetentionDays: 30,
			CreatedAt:     time.Now(),
		}
	}
	if req.Frequency != "" {
		s.Frequency = req.Frequency
	}
	if req.RetentionDays > 0 {
		s.RetentionDays = req.RetentionDays
	}
	s.UpdatedAt = time.Now()

	if err := uc.settingsRepo.UpsertBackup(s); err != nil {
		return nil, err
	}
	return uc.GetBackup()
}

func defaultSystemSettings() *entity.SystemSettings {
	return &entity.SystemSettings{
		CompanyName:       "Mi Empresa",
		Currency:          "BRL",
		Timezone:          "America/Sao_Paulo",
		LowStockThreshold: 5,
		InvoiceDueDays:    defaultInvoiceDueDays,
	}
}
