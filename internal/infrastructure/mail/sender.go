// Package mail envía correos vía SMTP usando la configuración persistida en
// la base de datos.
package mail

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"

	"github.com/felipefpires/erp-api/internal/application/usecase"
	"github.com/felipefpires/erp-api/internal/domain"
	"github.com/felipefpires/erp-api/internal/domain/entity"
	"github.com/felipefpires/erp-api/internal/domain/repository"
)

var _ usecase.InvoiceMailer = (*Sender)(nil)

// Sender envía correos con la configuración SMTP vigente. La configuración se
// lee en cada envío, así los cambios desde la pantalla de ajustes aplican sin
// reiniciar.
type Sender struct {
	settingsRepo repository.SettingsRepository
	from         string
}

// NewSender construye el sender. from es el remitente por defecto cuando la
// configuración no define usuario SMTP.
func NewSender(settingsRepo repository.SettingsRepository, from string) *Sender {
	return &Sender{settingsRepo: settingsRepo, from: from}
}

// SendInvoice envía la factura en PDF como adjunto.
func (s *Sender) SendInvoice(to string, invoice *entity.Invoice, pdf []byte) error {
	cfg, err := s.settingsRepo.GetEmail()
	if err != nil {
		return err
	}
	if cfg == nil || cfg.SMTPServer == "" {
		return domain.ErrConflict
	}

	from := s.from
	if cfg.SMTPUsername != "" {
		from = cfg.SMTPUsername
	}

	e := email.NewEmail()
	e.From = from
	e.To = []string{to}
	e.Subject = "Factura " + invoice.InvoiceNumber
	e.Text = []byte(fmt.Sprintf(
		"Adjuntamos la factura %s por un total de %s, con vencimiento el %s.",
		invoice.InvoiceNumber,
		invoice.TotalAmount.StringFixed(2),
		invoice.DueDate.Format("02/01/2006"),
	))
	if _, err := e.Attach(bytes.NewReader(pdf), invoice.InvoiceNumber+".pdf", "application/pdf"); err != nil {
		return fmt.Errorf("adjuntar pdf: %w", err)
	}

	addr := fmt.Sprintf("%s:%d", cfg.SMTPServer, cfg.SMTPPort)
	var auth smtp.Auth
	if cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPServer)
	}
	if cfg.SMTPUseTLS {
		return e.SendWithStartTLS(addr, auth, &tls.Config{ServerName: cfg.SMTPServer})
	}
	return e.Send(addr, auth)
}
