package repository

import (
	"github.com/diillson/ec2-metrics-reporter/internal/domain/entity"
)

// ExportRepository serializes a report into file artifacts.
type ExportRepository interface {
	ExportToCSV(report *entity.Report, filename string, outputDir string) (string, error)
	ExportToJSON(report *entity.Report, filename string, outputDir string) (string, error)
	ExportToPDF(report *entity.Report, filename string, outputDir string) (string, error)
	ExportToXLSX(report *entity.Report, filename string, outputDir string) (string, error)
}
