package types

import (
	"fmt"
	"os"
)

// Default submission endpoint, matching the original report tooling.
const (
	DefaultSMTPHost = "smtp.gmail.com"
	DefaultSMTPPort = 587
)

// Environment variables recognized as fallbacks for mail credentials.
const (
	EnvEmailSource    = "EMAIL_SOURCE"
	EnvEmailPassword  = "EMAIL_PASSWORD"
	EnvEmailRecipient = "EMAIL_RECIPIENT"
)

// SMTPConfig is the validated set of options the mailer needs. It is built
// once at startup so a missing credential fails before any AWS call instead
// of deep inside the send path.
type SMTPConfig struct {
	Host      string
	Port      int
	Sender    string
	Password  string
	Recipient string
}

// NewSMTPConfig resolves mail settings from the email section of the config
// file, falling back to the environment for sender, password and recipient.
// An explicit recipient argument (from the --recipient flag) wins over both.
func NewSMTPConfig(email EmailConfig, recipientOverride string) (SMTPConfig, error) {
	cfg := SMTPConfig{
		Host:      email.Host,
		Port:      email.Port,
		Sender:    email.Sender,
		Password:  email.Password,
		Recipient: email.Recipient,
	}

	if cfg.Host == "" {
		cfg.Host = DefaultSMTPHost
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultSMTPPort
	}
	if cfg.Sender == "" {
		cfg.Sender = os.Getenv(EnvEmailSource)
	}
	if cfg.Password == "" {
		cfg.Password = os.Getenv(EnvEmailPassword)
	}
	if cfg.Recipient == "" {
		cfg.Recipient = os.Getenv(EnvEmailRecipient)
	}
	if recipientOverride != "" {
		cfg.Recipient = recipientOverride
	}

	if cfg.Sender == "" {
		return SMTPConfig{}, fmt.Errorf("%w: sender address (set email.sender or %s)", ErrMailConfigIncomplete, EnvEmailSource)
	}
	if cfg.Password == "" {
		return SMTPConfig{}, fmt.Errorf("%w: sender password (set email.password or %s)", ErrMailConfigIncomplete, EnvEmailPassword)
	}
	if cfg.Recipient == "" {
		return SMTPConfig{}, fmt.Errorf("%w: recipient address (set email.recipient, --recipient or %s)", ErrMailConfigIncomplete, EnvEmailRecipient)
	}

	return cfg, nil
}
