package main

import (
	"fmt"
	"os"

	"github.com/diillson/ec2-metrics-reporter/internal/adapter/driven/aws"
	"github.com/diillson/ec2-metrics-reporter/internal/adapter/driven/config"
	"github.com/diillson/ec2-metrics-reporter/internal/adapter/driven/export"
	"github.com/diillson/ec2-metrics-reporter/internal/adapter/driven/mail"
	"github.com/diillson/ec2-metrics-reporter/internal/adapter/driven/profile"
	"github.com/diillson/ec2-metrics-reporter/internal/adapter/driving/cli"
	"github.com/diillson/ec2-metrics-reporter/internal/application/usecase"
	"github.com/diillson/ec2-metrics-reporter/pkg/console"
	"github.com/diillson/ec2-metrics-reporter/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	consoleImpl := console.NewConsole()
	awsRepo := aws.NewAWSRepository(consoleImpl)
	profileRepo := profile.NewProfileRepository("", consoleImpl)
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()

	// Inicializa o caso de uso
	reportUseCase := usecase.NewReportUseCase(
		awsRepo,
		profileRepo,
		exportRepo,
		configRepo,
		mail.NewMailRepository,
		consoleImpl,
	)

	// Define o caso de uso no aplicativo CLI
	app.SetReportUseCase(reportUseCase)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
