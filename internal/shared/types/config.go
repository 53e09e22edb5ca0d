package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Profiles   []string    `json:"profiles" yaml:"profiles" toml:"profiles"`
	Regions    []string    `json:"regions" yaml:"regions" toml:"regions"`
	ReportName string      `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType []string    `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir        string      `json:"dir" yaml:"dir" toml:"dir"`
	Email      EmailConfig `json:"email" yaml:"email" toml:"email"`
}

// EmailConfig holds the delivery settings for the report email.
// Sender, Password e Recipient podem vir do ambiente (EMAIL_SOURCE,
// EMAIL_PASSWORD, EMAIL_RECIPIENT) quando ausentes do arquivo.
type EmailConfig struct {
	Host      string `json:"host" yaml:"host" toml:"host"`
	Port      int    `json:"port" yaml:"port" toml:"port"`
	Sender    string `json:"sender" yaml:"sender" toml:"sender"`
	Password  string `json:"password" yaml:"password" toml:"password"`
	Recipient string `json:"recipient" yaml:"recipient" toml:"recipient"`
	Subject   string `json:"subject" yaml:"subject" toml:"subject"`
}
