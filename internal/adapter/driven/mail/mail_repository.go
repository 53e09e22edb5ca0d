package mail

import (
	"fmt"

	"github.com/diillson/ec2-metrics-reporter/internal/domain/repository"
	"github.com/diillson/ec2-metrics-reporter/internal/shared/types"
	"gopkg.in/gomail.v2"
)

// MailRepositoryImpl envia o relatório por SMTP com STARTTLS.
type MailRepositoryImpl struct {
	cfg types.SMTPConfig
}

// NewMailRepository cria uma nova implementação do MailRepository.
// A configuração já chega validada (ver types.NewSMTPConfig).
func NewMailRepository(cfg types.SMTPConfig) repository.MailRepository {
	return &MailRepositoryImpl{cfg: cfg}
}

// Send builds a multipart message with a plain-text body and the report file
// attached, and submits it over an authenticated STARTTLS connection. Erros
// de autenticação ou transporte voltam para o chamador e encerram o run.
func (r *MailRepositoryImpl) Send(subject, body, attachmentPath string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", r.cfg.Sender)
	msg.SetHeader("To", r.cfg.Recipient)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	msg.Attach(attachmentPath)

	// DialAndSend negocia STARTTLS quando o servidor anuncia suporte, que é
	// o caso da porta 587 de submissão.
	dialer := gomail.NewDialer(r.cfg.Host, r.cfg.Port, r.cfg.Sender, r.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("error sending report email to %s: %w", r.cfg.Recipient, err)
	}

	return nil
}
