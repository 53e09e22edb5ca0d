package entity

import "time"

// InstanceReportRow is one line of the report: a single EC2 instance seen
// under a profile/region, with a sample for every metric of the fixed set.
// Imutável depois de criada.
type InstanceReportRow struct {
	Profile    string          `json:"profile"`
	Region     string          `json:"region"`
	InstanceID string          `json:"instance_id"`
	Metrics    InstanceMetrics `json:"metrics"`
}

// NewInstanceReportRow builds a row, filling any metric missing from the
// samples with an error sample so every row carries the complete set.
func NewInstanceReportRow(profile, region, instanceID string, metrics InstanceMetrics) InstanceReportRow {
	complete := make(InstanceMetrics, len(MetricNames))
	for _, name := range MetricNames {
		if sample, ok := metrics[name]; ok {
			complete[name] = sample
		} else {
			complete[name] = ErrorSample()
		}
	}
	return InstanceReportRow{
		Profile:    profile,
		Region:     region,
		InstanceID: instanceID,
		Metrics:    complete,
	}
}

// Report is the ordered set of rows assembled during one run.
// A ordem das linhas segue a ordem de descoberta (perfil, depois instância).
type Report struct {
	GeneratedAt time.Time           `json:"generated_at"`
	Rows        []InstanceReportRow `json:"rows"`
}

// Append adds a row preserving discovery order.
func (r *Report) Append(row InstanceReportRow) {
	r.Rows = append(r.Rows, row)
}

// Len returns the number of rows in the report.
func (r *Report) Len() int {
	return len(r.Rows)
}
