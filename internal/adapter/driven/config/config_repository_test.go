package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	return path
}

func TestLoadConfigFileTOML(t *testing.T) {
	path := writeFile(t, "config.toml", `
profiles = ["default", "staging"]
regions = ["us-east-1"]
report_name = "fleet_metrics"
report_type = ["csv", "pdf"]
dir = "/reports"

[email]
sender = "sender@example.com"
recipient = "ops@example.com"
subject = "Weekly metrics"
`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"default", "staging"}, cfg.Profiles)
	assert.Equal(t, []string{"us-east-1"}, cfg.Regions)
	assert.Equal(t, "fleet_metrics", cfg.ReportName)
	assert.Equal(t, []string{"csv", "pdf"}, cfg.ReportType)
	assert.Equal(t, "/reports", cfg.Dir)
	assert.Equal(t, "sender@example.com", cfg.Email.Sender)
	assert.Equal(t, "Weekly metrics", cfg.Email.Subject)
}

func TestLoadConfigFileYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
profiles:
  - default
report_type:
  - json
email:
  recipient: ops@example.com
  port: 465
`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"default"}, cfg.Profiles)
	assert.Equal(t, []string{"json"}, cfg.ReportType)
	assert.Equal(t, "ops@example.com", cfg.Email.Recipient)
	assert.Equal(t, 465, cfg.Email.Port)
}

func TestLoadConfigFileJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{
  "profiles": ["default"],
  "report_name": "metrics",
  "email": {"sender": "sender@example.com"}
}`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)

	require.NoError(t, err)
	assert.Equal(t, "metrics", cfg.ReportName)
	assert.Equal(t, "sender@example.com", cfg.Email.Sender)
}

func TestLoadConfigFileUnsupportedFormat(t *testing.T) {
	path := writeFile(t, "config.ini", "profiles = default")

	repo := NewConfigRepository()
	_, err := repo.LoadConfigFile(path)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config file format")
}

func TestLoadConfigFileMissing(t *testing.T) {
	repo := NewConfigRepository()
	_, err := repo.LoadConfigFile(filepath.Join(t.TempDir(), "missing.toml"))

	assert.Error(t, err)
}
