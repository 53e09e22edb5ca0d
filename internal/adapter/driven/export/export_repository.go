package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/diillson/ec2-metrics-reporter/internal/domain/entity"
	"github.com/diillson/ec2-metrics-reporter/internal/domain/repository"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// headerColumns is the fixed column order of every export format.
func headerColumns() []string {
	headers := []string{"Profile", "Region", "Instance ID"}
	for _, name := range entity.MetricNames {
		headers = append(headers, string(name))
	}
	return headers
}

// rowCells renders one report row in header order.
func rowCells(row entity.InstanceReportRow) []string {
	cells := []string{row.Profile, row.Region, row.InstanceID}
	for _, name := range entity.MetricNames {
		cells = append(cells, row.Metrics[name].String())
	}
	return cells
}

func (r *ExportRepositoryImpl) ExportToCSV(report *entity.Report, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(headerColumns()); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, row := range report.Rows {
		if err := writer.Write(rowCells(row)); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("error flushing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToJSON(report *entity.Report, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToXLSX(report *entity.Report, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "xlsx")
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"

	for col, header := range headerColumns() {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return "", fmt.Errorf("error addressing XLSX cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return "", fmt.Errorf("error writing XLSX header: %w", err)
		}
	}

	for i, row := range report.Rows {
		cells := []interface{}{row.Profile, row.Region, row.InstanceID}
		for _, name := range entity.MetricNames {
			sample := row.Metrics[name]
			if sample.Available() {
				// Valores numéricos ficam como números na planilha.
				cells = append(cells, sample.Value)
			} else {
				cells = append(cells, entity.Unavailable)
			}
		}
		for col, value := range cells {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return "", fmt.Errorf("error addressing XLSX cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return "", fmt.Errorf("error writing XLSX record: %w", err)
			}
		}
	}

	if err := f.SaveAs(outputFilename); err != nil {
		return "", fmt.Errorf("error writing XLSX file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToPDF(report *entity.Report, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	// Larguras: identificação + uma coluna por métrica (paisagem, 277mm úteis).
	widths := []float64{45, 35, 45, 38, 38, 38, 38}
	headers := headerColumns()

	pdf.AddPage()

	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  EC2 Metrics Report"), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Generated at: %s | Instances: %d",
		report.GeneratedAt.Format("2006-01-02 15:04:05 MST"), report.Len())), "", 1, "L", true, 0, "")
	pdf.Ln(6)

	drawHeaderRow := func() {
		pdf.SetFont("Arial", "B", 9)
		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		for i, header := range headers {
			pdf.CellFormat(widths[i], 8, tr(header), "B", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 9)
	}
	drawHeaderRow()

	for _, row := range report.Rows {
		if pdf.GetY() > 185 {
			pdf.AddPage()
			drawHeaderRow()
		}
		for i, cell := range rowCells(row) {
			pdf.CellFormat(widths[i], 7, tr(cell), "", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if report.Len() == 0 {
		pdf.CellFormat(0, 7, tr("No instances found for the configured profiles."), "", 1, "L", false, 0, "")
	}

	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("Generated by EC2 Metrics Reporter | %s", time.Now().Format("2006-01-02"))), "", 0, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
