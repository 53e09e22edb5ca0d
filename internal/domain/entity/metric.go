package entity

import "fmt"

// MetricName identifies one of the instance metrics collected per run.
type MetricName string

const (
	MetricCPUUtilization    MetricName = "CPU Utilization"
	MetricMemoryUtilization MetricName = "Memory Utilization"
	MetricThreadsRunning    MetricName = "Threads Running"
	MetricProcessesRunning  MetricName = "Processes Running"
)

// MetricNames is the fixed, ordered set of metrics every report row carries.
// A ordem aqui define a ordem das colunas em todos os formatos de exportação.
var MetricNames = []MetricName{
	MetricCPUUtilization,
	MetricMemoryUtilization,
	MetricThreadsRunning,
	MetricProcessesRunning,
}

// SampleStatus indicates how a metric sample was resolved.
type SampleStatus string

const (
	// SampleOK means the monitoring API returned at least one datapoint.
	SampleOK SampleStatus = "ok"
	// SampleNoData means the query succeeded but returned no datapoints,
	// e.g. the CloudWatch agent is not installed on the instance.
	SampleNoData SampleStatus = "no_data"
	// SampleError means the query itself failed (credentials, throttling).
	SampleError SampleStatus = "error"
)

// Unavailable is the cell value rendered for samples without a datapoint.
const Unavailable = "N/A"

// MetricSample holds the average statistic for a single metric, or the
// reason it is absent. Status distingue "agente não instalado" de falha
// de consulta, mesmo que ambos sejam exibidos como N/A.
type MetricSample struct {
	Value  float64      `json:"value"`
	Status SampleStatus `json:"status"`
}

// Sample returns a resolved sample.
func Sample(value float64) MetricSample {
	return MetricSample{Value: value, Status: SampleOK}
}

// NoDataSample returns a sample for a query that yielded no datapoints.
func NoDataSample() MetricSample {
	return MetricSample{Status: SampleNoData}
}

// ErrorSample returns a sample for a failed query.
func ErrorSample() MetricSample {
	return MetricSample{Status: SampleError}
}

// Available reports whether the sample holds a usable value.
func (s MetricSample) Available() bool {
	return s.Status == SampleOK
}

// String renders the sample the way it appears in report cells.
func (s MetricSample) String() string {
	if !s.Available() {
		return Unavailable
	}
	return fmt.Sprintf("%.2f", s.Value)
}

// InstanceMetrics maps every metric of the fixed set to its sample.
type InstanceMetrics map[MetricName]MetricSample
