package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/diillson/ec2-metrics-reporter/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleReport() *entity.Report {
	report := &entity.Report{GeneratedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)}
	report.Append(entity.NewInstanceReportRow("default", "us-east-1", "i-0abc", entity.InstanceMetrics{
		entity.MetricCPUUtilization:    entity.Sample(12.5),
		entity.MetricMemoryUtilization: entity.Sample(40.25),
		entity.MetricThreadsRunning:    entity.Sample(128),
		entity.MetricProcessesRunning:  entity.Sample(42),
	}))
	report.Append(entity.NewInstanceReportRow("staging", "eu-west-1", "i-0def", entity.InstanceMetrics{
		entity.MetricCPUUtilization:    entity.Sample(3.75),
		entity.MetricMemoryUtilization: entity.NoDataSample(),
		entity.MetricThreadsRunning:    entity.NoDataSample(),
		entity.MetricProcessesRunning:  entity.NoDataSample(),
	}))
	return report
}

func TestExportToCSV(t *testing.T) {
	repo := NewExportRepository()
	dir := t.TempDir()

	path, err := repo.ExportToCSV(sampleReport(), "metrics_test", dir)
	require.NoError(t, err)

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{
		"Profile", "Region", "Instance ID",
		"CPU Utilization", "Memory Utilization", "Threads Running", "Processes Running",
	}, records[0])
	assert.Equal(t, []string{"default", "us-east-1", "i-0abc", "12.50", "40.25", "128.00", "42.00"}, records[1])
	assert.Equal(t, []string{"staging", "eu-west-1", "i-0def", "3.75", "N/A", "N/A", "N/A"}, records[2])
}

func TestExportToJSON(t *testing.T) {
	repo := NewExportRepository()
	dir := t.TempDir()

	path, err := repo.ExportToJSON(sampleReport(), "metrics_test", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded entity.Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Rows, 2)
	assert.Equal(t, "i-0abc", decoded.Rows[0].InstanceID)
	assert.Equal(t, "staging", decoded.Rows[1].Profile)
}

func TestExportToXLSX(t *testing.T) {
	repo := NewExportRepository()
	dir := t.TempDir()

	path, err := repo.ExportToXLSX(sampleReport(), "metrics_test", dir)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Profile", rows[0][0])
	assert.Equal(t, "i-0abc", rows[1][2])
	// Células indisponíveis ficam com o sentinel em texto.
	assert.Equal(t, entity.Unavailable, rows[2][4])
}

func TestExportToPDF(t *testing.T) {
	repo := NewExportRepository()
	dir := t.TempDir()

	path, err := repo.ExportToPDF(sampleReport(), "metrics_test", dir)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestGenerateFilenameCreatesDir(t *testing.T) {
	dir := t.TempDir() + "/nested/output"

	path, err := generateFilename("report", dir, "csv")
	require.NoError(t, err)

	assert.Contains(t, path, "report_")
	assert.Contains(t, path, ".csv")
	_, err = os.Stat(dir)
	assert.NoError(t, err)
}
