package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSMTPConfigDefaults(t *testing.T) {
	cfg, err := NewSMTPConfig(EmailConfig{
		Sender:    "sender@example.com",
		Password:  "app-token",
		Recipient: "ops@example.com",
	}, "")

	assert.NoError(t, err)
	assert.Equal(t, DefaultSMTPHost, cfg.Host)
	assert.Equal(t, DefaultSMTPPort, cfg.Port)
	assert.Equal(t, "ops@example.com", cfg.Recipient)
}

func TestNewSMTPConfigEnvFallback(t *testing.T) {
	t.Setenv(EnvEmailSource, "env-sender@example.com")
	t.Setenv(EnvEmailPassword, "env-token")
	t.Setenv(EnvEmailRecipient, "env-ops@example.com")

	cfg, err := NewSMTPConfig(EmailConfig{}, "")

	assert.NoError(t, err)
	assert.Equal(t, "env-sender@example.com", cfg.Sender)
	assert.Equal(t, "env-token", cfg.Password)
	assert.Equal(t, "env-ops@example.com", cfg.Recipient)
}

func TestNewSMTPConfigFileWinsOverEnv(t *testing.T) {
	t.Setenv(EnvEmailSource, "env-sender@example.com")

	cfg, err := NewSMTPConfig(EmailConfig{
		Sender:    "file-sender@example.com",
		Password:  "token",
		Recipient: "ops@example.com",
	}, "")

	assert.NoError(t, err)
	assert.Equal(t, "file-sender@example.com", cfg.Sender)
}

func TestNewSMTPConfigRecipientOverride(t *testing.T) {
	cfg, err := NewSMTPConfig(EmailConfig{
		Sender:    "sender@example.com",
		Password:  "token",
		Recipient: "ops@example.com",
	}, "boss@example.com")

	assert.NoError(t, err)
	assert.Equal(t, "boss@example.com", cfg.Recipient)
}

func TestNewSMTPConfigFailsFastOnMissingFields(t *testing.T) {
	t.Setenv(EnvEmailSource, "")
	t.Setenv(EnvEmailPassword, "")
	t.Setenv(EnvEmailRecipient, "")

	_, err := NewSMTPConfig(EmailConfig{}, "")
	assert.ErrorIs(t, err, ErrMailConfigIncomplete)

	_, err = NewSMTPConfig(EmailConfig{Sender: "s@example.com"}, "")
	assert.ErrorIs(t, err, ErrMailConfigIncomplete)

	_, err = NewSMTPConfig(EmailConfig{Sender: "s@example.com", Password: "x"}, "")
	assert.ErrorIs(t, err, ErrMailConfigIncomplete)
}
