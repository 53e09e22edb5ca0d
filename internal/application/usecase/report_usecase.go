package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/diillson/ec2-metrics-reporter/internal/domain/entity"
	"github.com/diillson/ec2-metrics-reporter/internal/domain/repository"
	"github.com/diillson/ec2-metrics-reporter/internal/shared/types"
)

const (
	defaultSubject = "EC2 Metrics Report"
	defaultBody    = "Please find attached the EC2 metrics report."
)

// MailFactory builds a mailer from a validated SMTP configuration. Indireção
// necessária porque as credenciais só são resolvidas depois do parse dos
// argumentos.
type MailFactory func(cfg types.SMTPConfig) repository.MailRepository

// ReportUseCase orchestrates the collection pipeline: profiles → instances →
// metrics → report → export → email.
type ReportUseCase struct {
	awsRepo     repository.AWSRepository
	profileRepo repository.ProfileRepository
	exportRepo  repository.ExportRepository
	configRepo  repository.ConfigRepository
	mailFactory MailFactory
	console     types.ConsoleInterface
}

// NewReportUseCase creates a new report use case.
func NewReportUseCase(
	awsRepo repository.AWSRepository,
	profileRepo repository.ProfileRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	mailFactory MailFactory,
	console types.ConsoleInterface,
) *ReportUseCase {
	return &ReportUseCase{
		awsRepo:     awsRepo,
		profileRepo: profileRepo,
		exportRepo:  exportRepo,
		configRepo:  configRepo,
		mailFactory: mailFactory,
		console:     console,
	}
}

// Run executa o pipeline completo de uma execução.
func (uc *ReportUseCase) Run(ctx context.Context, args *types.CLIArgs) error {
	if args.ConfigFile != "" {
		cfg, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return err
		}
		mergeConfig(args, cfg)
	}

	// Credenciais de e-mail são validadas antes de qualquer chamada à AWS,
	// para que um run longo não morra só na hora do envio.
	var mailer repository.MailRepository
	if !args.NoEmail {
		smtpCfg, err := types.NewSMTPConfig(args.Email, args.Recipient)
		if err != nil {
			return err
		}
		mailer = uc.mailFactory(smtpCfg)
	}

	profiles, err := uc.ResolveProfiles(args)
	if err != nil {
		return err
	}

	report := uc.BuildReport(ctx, profiles)

	uc.displayReport(report)

	artifacts, err := uc.exportReport(report, args)
	if err != nil {
		return err
	}

	if args.NoEmail {
		uc.console.LogInfo("Email delivery disabled; report kept at %s", strings.Join(artifacts, ", "))
		return nil
	}

	subject := args.Subject
	if subject == "" {
		subject = defaultSubject
	}

	// O primeiro artefato gerado vai como anexo.
	if err := mailer.Send(subject, defaultBody, artifacts[0]); err != nil {
		return err
	}
	uc.console.LogSuccess("Report emailed with attachment: %s", artifacts[0])

	return nil
}

// ResolveProfiles determines which profiles the run iterates over, preserving
// the discovery order of the AWS config file. A seleção via --profiles filtra
// sem reordenar; --regions substitui a região de cada perfil selecionado.
func (uc *ReportUseCase) ResolveProfiles(args *types.CLIArgs) ([]entity.Profile, error) {
	available, err := uc.profileRepo.ListProfiles()
	if err != nil {
		return nil, err
	}

	selected := available
	if len(args.Profiles) > 0 {
		wanted := make(map[string]bool, len(args.Profiles))
		for _, name := range args.Profiles {
			wanted[name] = true
		}

		selected = nil
		for _, profile := range available {
			if wanted[profile.Name] {
				selected = append(selected, profile)
				delete(wanted, profile.Name)
			}
		}
		for name := range wanted {
			uc.console.LogWarning("Profile '%s' not found in AWS configuration", name)
		}
		if len(selected) == 0 {
			return nil, types.ErrNoValidProfilesFound
		}
	}

	if len(args.Regions) > 0 {
		var expanded []entity.Profile
		for _, profile := range selected {
			for _, region := range args.Regions {
				expanded = append(expanded, entity.Profile{Name: profile.Name, Region: region})
			}
		}
		selected = expanded
	}

	return selected, nil
}

// BuildReport iterates profiles×instances sequentially and assembles one row
// per instance. Perfis sem instâncias (ou com falha de credencial) contribuem
// com zero linhas; o run nunca aborta aqui.
func (uc *ReportUseCase) BuildReport(ctx context.Context, profiles []entity.Profile) *entity.Report {
	report := &entity.Report{GeneratedAt: time.Now().UTC()}

	if len(profiles) == 0 {
		uc.console.LogWarning("No profiles to report on; the report will be empty")
		return report
	}

	progress := uc.console.ProgressWithTotal(len(profiles))
	defer progress.Stop()

	for _, profile := range profiles {
		uc.console.LogInfo("Checking metrics for profile: %s in region: %s", profile.Name, profile.Region)

		if accountID, err := uc.awsRepo.GetAccountID(ctx, profile.Name); err == nil {
			uc.console.LogInfo("Profile %s resolves to account %s", profile.Name, accountID)
		}

		instanceIDs := uc.awsRepo.ListInstances(ctx, profile.Name, profile.Region)
		if len(instanceIDs) == 0 {
			uc.console.LogInfo("No instances found for profile %s", profile.Name)
			progress.Increment()
			continue
		}

		for _, instanceID := range instanceIDs {
			metrics := uc.awsRepo.GetInstanceMetrics(ctx, profile.Name, profile.Region, instanceID)
			uc.logInstanceMetrics(instanceID, metrics)
			report.Append(entity.NewInstanceReportRow(profile.Name, profile.Region, instanceID, metrics))
		}

		progress.Increment()
	}

	return report
}

func (uc *ReportUseCase) logInstanceMetrics(instanceID string, metrics entity.InstanceMetrics) {
	uc.console.LogInfo("Metrics for Instance ID: %s", instanceID)
	for _, name := range entity.MetricNames {
		uc.console.LogInfo("%s: %s", name, metrics[name])
	}
}

func (uc *ReportUseCase) displayReport(report *entity.Report) {
	table := uc.console.CreateTable()
	table.AddColumn("Profile")
	table.AddColumn("Region")
	table.AddColumn("Instance ID")
	for _, name := range entity.MetricNames {
		table.AddColumn(string(name))
	}

	for _, row := range report.Rows {
		cells := []interface{}{
			pterm.FgMagenta.Sprint(row.Profile),
			row.Region,
			row.InstanceID,
		}
		for _, name := range entity.MetricNames {
			sample := row.Metrics[name]
			if sample.Available() {
				cells = append(cells, sample.String())
			} else {
				cells = append(cells, pterm.FgYellow.Sprint(entity.Unavailable))
			}
		}
		table.AddRow(cells...)
	}

	uc.console.Print(table.Render())
}

// exportReport serializa o relatório em cada formato pedido. Falha de
// exportação é fatal: o chamador decide encerrar o processo.
func (uc *ReportUseCase) exportReport(report *entity.Report, args *types.CLIArgs) ([]string, error) {
	reportName := args.ReportName
	if reportName == "" {
		reportName = "ec2_metrics_report"
	}

	reportTypes := args.ReportType
	if len(reportTypes) == 0 {
		reportTypes = []string{"csv"}
	}

	var artifacts []string
	for _, reportType := range reportTypes {
		var (
			path string
			err  error
		)
		switch reportType {
		case "csv":
			path, err = uc.exportRepo.ExportToCSV(report, reportName, args.Dir)
		case "json":
			path, err = uc.exportRepo.ExportToJSON(report, reportName, args.Dir)
		case "pdf":
			path, err = uc.exportRepo.ExportToPDF(report, reportName, args.Dir)
		case "xlsx":
			path, err = uc.exportRepo.ExportToXLSX(report, reportName, args.Dir)
		default:
			return nil, fmt.Errorf("%w: %s", types.ErrUnknownReportType, reportType)
		}
		if err != nil {
			return nil, err
		}
		uc.console.LogSuccess("Data exported to %s", path)
		artifacts = append(artifacts, path)
	}

	return artifacts, nil
}

// mergeConfig preenche argumentos vazios com os valores do arquivo de
// configuração. Flags explícitas têm precedência.
func mergeConfig(args *types.CLIArgs, cfg *types.Config) {
	if len(args.Profiles) == 0 {
		args.Profiles = cfg.Profiles
	}
	if len(args.Regions) == 0 {
		args.Regions = cfg.Regions
	}
	if args.ReportName == "" {
		args.ReportName = cfg.ReportName
	}
	if len(args.ReportType) == 0 {
		args.ReportType = cfg.ReportType
	}
	if args.Dir == "" {
		args.Dir = cfg.Dir
	}
	if args.Recipient == "" {
		args.Recipient = cfg.Email.Recipient
	}
	if args.Subject == "" {
		args.Subject = cfg.Email.Subject
	}
	args.Email = cfg.Email
}
