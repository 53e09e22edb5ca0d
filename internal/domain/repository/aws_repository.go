package repository

import (
	"context"

	"github.com/diillson/ec2-metrics-reporter/internal/domain/entity"
)

// AWSRepository defines the interface for AWS API interactions.
type AWSRepository interface {
	// GetAccountID resolves the account behind a profile via STS.
	GetAccountID(ctx context.Context, profile string) (string, error)

	// ListInstances returns the IDs of every EC2 instance visible under
	// profile/region. Credential or API failures yield an empty list, never
	// an error: the run continues with zero instances for that profile.
	ListInstances(ctx context.Context, profile, region string) []string

	// GetInstanceMetrics queries the average of each metric of the fixed set
	// over the trailing collection window. Failure is per metric: a sample is
	// always present for every metric name.
	GetInstanceMetrics(ctx context.Context, profile, region, instanceID string) entity.InstanceMetrics
}
