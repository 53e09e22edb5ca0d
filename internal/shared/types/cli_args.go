package types

// CLIArgs represents the command-line arguments, merged with any values from
// the configuration file (flags win).
type CLIArgs struct {
	ConfigFile string
	Profiles   []string
	Regions    []string
	ReportName string
	ReportType []string
	Dir        string
	Recipient  string
	Subject    string
	NoEmail    bool

	// Email carrega a seção [email] do arquivo de configuração, quando houver.
	Email EmailConfig
}
