package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/felipefpires/erp-api/internal/domain/entity"
	"github.com/felipefpires/erp-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementación del puerto SettingsRepository sobre PostgreSQL.
// Cada tabla de configuración tiene a lo sumo una fila.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador de configuración. Pasar pool o tx.
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// GetSystem devuelve la configuración general o nil si aún no existe.
func (r *SettingsRepo) GetSystem() (*entity.SystemSettings, error) {
	var s entity.SystemSettings
	err := r.q.QueryRow(context.Background(),
		`SELECT id, company_name, company_email, company_phone, company_address, currency,
			timezone, low_stock_threshold, invoice_due_days, created_at, updated_at
		 FROM system_settings LIMIT 1`,
	).Scan(
		&s.ID, &s.CompanyName, &s.CompanyEmail, &s.CompanyPhone, &s.CompanyAddress,
		&s.Currency, &s.Timezone, &s.LowStockThreshold, &s.InvoiceDueDays,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get system settings: %w", err)
	}
	return &s, nil
}

// UpsertSystem inserta o actualiza la fila única de configuración general.
func (r *SettingsRepo) UpsertSystem(s *entity.SystemSettings) error {
	query := `
		INSERT INTO system_settings (id, company_name, company_email, company_phone,
			company_address, currency, timezone, low_stock_threshold, invoice_due_days,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			company_email = EXCLUDED.company_email,
			company_phone = EXCLUDED.company_phone,
			company_address = EXCLUDED.company_address,
			currency = EXCLUDED.currency,
			timezone = EXCLUDED.timezone,
			low_stock_threshold = EXCLUDED.low_stock_threshold,
			invoice_due_days = EXCLUDED.invoice_due_days,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.CompanyName, s.CompanyEmail, s.CompanyPhone, s.CompanyAddress,
		s.Currency, s.Timezone, s.LowStockThreshold, s.InvoiceDueDays,
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert system settings: %w", err)
	}
	return nil
}

// GetEmail devuelve la configuración SMTP o nil si aún no existe.
func (r *SettingsRepo) GetEmail() (*entity.EmailSettings, error) {
	var s entity.EmailSettings
	err := r.q.QueryRow(context.Background(),
		`SELECT id, smtp_server, smtp_port, smtp_username, smtp_password, smtp_use_tls,
			created_at, updated_at
		 FROM email_settings LIMIT 1`,
	).Scan(
		&s.ID, &s.SMTPServer, &s.SMTPPort, &s.SMTPUsername, &s.SMTPPassword,
		&s.SMTPUseTLS, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get email settings: %w", err)
	}
	return &s, nil
}

// UpsertEmail inserta o actualiza la fila única de configuración SMTP.
func (r *SettingsRepo) UpsertEmail(s *entity.EmailSettings) error {
	query := `
		INSERT INTO email_settings (id, smtp_server, smtp_port, smtp_username, smtp_password,
			smtp_use_tls, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			smtp_server = EXCLUDED.smtp_server,
			smtp_port = EXCLUDED.smtp_port,
			smtp_username = EXCLUDED.smtp_username,
			smtp_password = EXCLUDED.smtp_password,
			smtp_use_tls = EXCLUDED.smtp_use_tls,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.SMTPServer, s.SMTPPort, s.SMTPUsername, s.SMTPPassword,
		s.SMTPUseTLS, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert email settings: %w", err)
	}
	return nil
}

// GetBackup devuelve la política de respaldos o nil si aún no existe.
func (r *SettingsRepo) GetBackup() (*entity.BackupSettings, error) {
	var s entity.BackupSettings
	err := r.q.QueryRow(context.Background(),
		`SELECT id, frequency, retention_days, last_backup, created_at, updated_at
		 FROM backup_settings LIMIT 1`,
	).Scan(&s.ID, &s.Frequency, &s.RetentionDays, &s.LastBackup, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get backup settings: %w", err)
	}
	return &s, nil
}

// UpsertBackup inserta o actualiza la fila única de política de respaldos.
func (r *SettingsRepo) UpsertBackup(s *entity.BackupSettings) error {
	query := `
		INSERT INTO backup_settings (id, frequency, retention_days, last_backup, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			frequency = EXCLUDED.frequency,
			retention_days = EXCLUDED.retention_days,
			last_backup = EXCLUDED.last_backup,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Frequency, s.RetentionDays, s.LastBackup, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert backup settings: %w", err)
	}
	return nil
}
