package cli

import (
	"context"

	"github.com/diillson/ec2-metrics-reporter/internal/application/usecase"
	"github.com/diillson/ec2-metrics-reporter/internal/shared/types"
	"github.com/diillson/ec2-metrics-reporter/pkg/version"
	"github.com/spf13/cobra"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd       *cobra.Command
	reportUseCase *usecase.ReportUseCase
	version       string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "ec2-metrics",
		Short:   "EC2 fleet metrics report CLI",
		Long:    "Collects CloudWatch metrics for every EC2 instance visible to the configured AWS profiles, exports a tabular report and emails it.",
		Version: formattedVersion,
		RunE:    app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "EC2 Metrics Reporter version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringSliceP("profiles", "p", nil, "Specific AWS profiles to report on (comma-separated; default: every profile in ~/.aws/config)")
	rootCmd.PersistentFlags().StringSliceP("regions", "r", nil, "Override the region of each selected profile (comma-separated)")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Base name for the report file (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", nil, "Report types: csv, json, pdf, xlsx (default: csv)")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	rootCmd.PersistentFlags().String("recipient", "", "Recipient address for the report email (default: email.recipient or EMAIL_RECIPIENT)")
	rootCmd.PersistentFlags().String("subject", "", "Subject of the report email")
	rootCmd.PersistentFlags().Bool("no-email", false, "Skip email delivery and keep only the exported files")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	configFile, _ := app.rootCmd.Flags().GetString("config-file")
	profiles, _ := app.rootCmd.Flags().GetStringSlice("profiles")
	regions, _ := app.rootCmd.Flags().GetStringSlice("regions")
	reportName, _ := app.rootCmd.Flags().GetString("report-name")
	reportType, _ := app.rootCmd.Flags().GetStringSlice("report-type")
	dir, _ := app.rootCmd.Flags().GetString("dir")
	recipient, _ := app.rootCmd.Flags().GetString("recipient")
	subject, _ := app.rootCmd.Flags().GetString("subject")
	noEmail, _ := app.rootCmd.Flags().GetBool("no-email")

	args := &types.CLIArgs{
		ConfigFile: configFile,
		Profiles:   profiles,
		Regions:    regions,
		ReportName: reportName,
		ReportType: reportType,
		Dir:        dir,
		Recipient:  recipient,
		Subject:    subject,
		NoEmail:    noEmail,
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	displayWelcomeBanner(app.version)

	go version.CheckLatestVersion(app.version)

	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	ctx := context.Background()
	return app.reportUseCase.Run(ctx, cliArgs)
}

// SetReportUseCase sets the report use case for the CLI app.
func (app *CLIApp) SetReportUseCase(useCase *usecase.ReportUseCase) {
	app.reportUseCase = useCase
}
