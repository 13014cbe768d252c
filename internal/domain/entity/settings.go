package entity

import "time"

// SystemSettings datos generales de la empresa (fila única).
type SystemSettings struct {
	ID                string
	CompanyName       string
	CompanyEmail      string
	CompanyPhone      string
	CompanyAddress    string
	Currency          string // ISO 4217, ej. BRL
	Timezone          string
	LowStockThreshold int
	InvoiceDueDays    int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// EmailSettings configuración SMTP persistida (fila única).
type EmailSettings struct {
	ID           string
	SMTPServer   string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPUseTLS   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BackupSettings política de respaldos (fila única).
type BackupSettings struct {
	ID            string
	Frequency     string // daily, weekly, monthly
	RetentionDays int
	LastBackup    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
