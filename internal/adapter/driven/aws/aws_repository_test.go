package aws

import (
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	cwTypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2Types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/diillson/ec2-metrics-reporter/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestFirstAverage(t *testing.T) {
	assert.Equal(t, entity.NoDataSample(), firstAverage(nil))
	assert.Equal(t, entity.NoDataSample(), firstAverage([]cwTypes.Datapoint{{}}))

	sample := firstAverage([]cwTypes.Datapoint{
		{Average: awssdk.Float64(12.5)},
		{Average: awssdk.Float64(99.9)},
	})
	assert.Equal(t, entity.Sample(12.5), sample)
}

func TestFlattenReservations(t *testing.T) {
	output := &ec2.DescribeInstancesOutput{
		Reservations: []ec2Types.Reservation{
			{Instances: []ec2Types.Instance{
				{InstanceId: awssdk.String("i-1")},
				{InstanceId: awssdk.String("i-2")},
			}},
			{Instances: []ec2Types.Instance{
				{InstanceId: awssdk.String("i-3")},
				{InstanceId: nil},
			}},
		},
	}

	assert.Equal(t, []string{"i-1", "i-2", "i-3"}, flattenReservations(output))
}

func TestMetricQueriesCoverEveryMetric(t *testing.T) {
	for _, name := range entity.MetricNames {
		query, ok := metricQueries[name]
		assert.True(t, ok, "metric %s must have a CloudWatch query", name)
		assert.NotEmpty(t, query.namespace)
		assert.NotEmpty(t, query.metricName)
	}
	assert.Equal(t, "AWS/EC2", metricQueries[entity.MetricCPUUtilization].namespace)
	assert.Equal(t, "CWAgent", metricQueries[entity.MetricMemoryUtilization].namespace)
}
