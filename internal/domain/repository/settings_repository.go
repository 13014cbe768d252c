package repository

import "github.com/felipefpires/erp-api/internal/domain/entity"

// SettingsRepository define el puerto para las filas únicas de configuración.
// Get* devuelve nil (sin error) cuando la fila aún no existe.
type SettingsRepository interface {
	GetSystem() (*entity.SystemSettings, error)
	UpsertSystem(s *entity.SystemSettings) error
	GetEmail() (*entity.EmailSettings, error)
	UpsertEmail(s *entity.EmailSettings) error
	GetBackup() (*entity.BackupSettings, error)
	UpsertBackup(s *entity.BackupSettings) error
}
