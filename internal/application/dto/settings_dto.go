package dto

import "time"

// SystemSettingsRequest body para PUT /api/settings/system.
type SystemSettingsRequest struct {
	CompanyName       string `json:"company_name"`
	CompanyEmail      string `json:"company_email,omitempty"`
	CompanyPhone      string `json:"company_phone,omitempty"`
	CompanyAddress    string `json:"company_address,omitempty"`
	Currency          string `json:"currency,omitempty"` // default BRL
	Timezone          string `json:"timezone,omitempty"`
	LowStockThreshold int    `json:"low_stock_threshold,omitempty"`
	InvoiceDueDays    int    `json:"invoice_due_days,omitempty"`
}

// SystemSettingsResponse configuración general.
type SystemSettingsResponse struct {
	CompanyName       string    `json:"company_name"`
	CompanyEmail      string    `json:"company_email,omitempty"`
	CompanyPhone      string    `json:"company_phone,omitempty"`
	CompanyAddress    string    `json:"company_address,omitempty"`
	Currency          string    `json:"currency"`
	Timezone          string    `json:"timezone"`
	LowStockThreshold int       `json:"low_stock_threshold"`
	InvoiceDueDays    int       `json:"invoice_due_days"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// EmailSettingsRequest body para PUT /api/settings/email.
type EmailSettingsRequest struct {
	SMTPServer   string `json:"smtp_server"`
	SMTPPort     int    `json:"smtp_port,omitempty"` // default 587
	SMTPUsername string `json:"smtp_username,omitempty"`
	SMTPPassword string `json:"smtp_password,omitempty"`
	SMTPUseTLS   *bool  `json:"smtp_use_tls,omitempty"` // default true
}

// EmailSettingsResponse configuración SMTP (sin exponer la contraseña).
type EmailSettingsResponse struct {
	SMTPServer   string    `json:"smtp_server"`
	SMTPPort     int       `json:"smtp_port"`
	SMTPUsername string    `json:"smtp_username,omitempty"`
	SMTPUseTLS   bool      `json:"smtp_use_tls"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BackupSettingsRequest body para PUT /api/settings/backup.
type BackupSettingsRequest struct {
	Frequency     string `json:"frequency,omitempty"` // daily, weekly, monthly
	RetentionDays int    `json:"retention_days,omitempty"`
}

// BackupSettingsResponse política de respaldos.
type BackupSettingsResponse struct {
	Frequency     string     `json:"frequency"`
	RetentionDays int        `json:"retention_days"`
	LastBackup    *time.Time `json:"last_backup,omitempty"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
