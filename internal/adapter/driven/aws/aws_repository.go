package aws

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwTypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/diillson/ec2-metrics-reporter/internal/domain/entity"
	"github.com/diillson/ec2-metrics-reporter/internal/domain/repository"
	"github.com/diillson/ec2-metrics-reporter/internal/shared/types"
)

// Janela de coleta: média dos últimos 10 minutos, em buckets de 60s.
const (
	metricWindow = 10 * time.Minute
	metricPeriod = int32(60)
)

// metricQuery liga um nome de métrica do relatório à métrica CloudWatch
// correspondente. As métricas do CWAgent só existem quando o agente está
// instalado na instância.
type metricQuery struct {
	namespace  string
	metricName string
}

var metricQueries = map[entity.MetricName]metricQuery{
	entity.MetricCPUUtilization:    {namespace: "AWS/EC2", metricName: "CPUUtilization"},
	entity.MetricMemoryUtilization: {namespace: "CWAgent", metricName: "mem_used_percent"},
	entity.MetricThreadsRunning:    {namespace: "CWAgent", metricName: "procstat_threads"},
	entity.MetricProcessesRunning:  {namespace: "CWAgent", metricName: "procstat_processes"},
}

// AWSRepositoryImpl implementa o AWSRepository com cache de clientes.
type AWSRepositoryImpl struct {
	console     types.ConsoleInterface
	cfgCache    map[string]aws.Config
	clientCache map[string]interface{}
	mu          sync.Mutex
}

// NewAWSRepository cria uma nova implementação do AWSRepository.
func NewAWSRepository(console types.ConsoleInterface) repository.AWSRepository {
	return &AWSRepositoryImpl{
		console:     console,
		cfgCache:    make(map[string]aws.Config),
		clientCache: make(map[string]interface{}),
	}
}

func (r *AWSRepositoryImpl) getAWSConfig(ctx context.Context, profile string) (aws.Config, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cfg, ok := r.cfgCache[profile]; ok {
		return cfg, nil
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithSharedConfigProfile(profile))
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config for profile %s: %w", profile, err)
	}

	r.cfgCache[profile] = cfg
	return cfg, nil
}

func (r *AWSRepositoryImpl) getServiceClient(ctx context.Context, profile, region, service string) (interface{}, error) {
	cacheKey := fmt.Sprintf("%s-%s-%s", profile, region, service)

	r.mu.Lock()
	if client, ok := r.clientCache[cacheKey]; ok {
		r.mu.Unlock()
		return client, nil
	}
	r.mu.Unlock()

	cfg, err := r.getAWSConfig(ctx, profile)
	if err != nil {
		return nil, err
	}

	regionalCfg := cfg.Copy()
	if region != "" {
		regionalCfg.Region = region
	}

	var client interface{}
	switch service {
	case "sts":
		client = sts.NewFromConfig(regionalCfg)
	case "ec2":
		client = ec2.NewFromConfig(regionalCfg)
	case "cloudwatch":
		client = cloudwatch.NewFromConfig(regionalCfg)
	default:
		return nil, fmt.Errorf("unsupported service: %s", service)
	}

	r.mu.Lock()
	r.clientCache[cacheKey] = client
	r.mu.Unlock()

	return client, nil
}

// GetAccountID resolves the account behind a profile via STS.
func (r *AWSRepositoryImpl) GetAccountID(ctx context.Context, profile string) (string, error) {
	client, err := r.getServiceClient(ctx, profile, "us-east-1", "sts")
	if err != nil {
		return "", err
	}
	stsClient := client.(*sts.Client)

	result, err := stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("error getting account ID for profile %s: %w", profile, err)
	}
	return *result.Account, nil
}

// ListInstances returns every instance ID visible under profile/region,
// flattening the reservation→instance nesting. Falhas de credencial ou da
// API são registradas e resultam em lista vazia; o run segue para o próximo
// perfil.
func (r *AWSRepositoryImpl) ListInstances(ctx context.Context, profile, region string) []string {
	client, err := r.getServiceClient(ctx, profile, region, "ec2")
	if err != nil {
		r.console.LogError("Credential error for profile %s: %s", profile, err)
		return nil
	}
	ec2Client := client.(*ec2.Client)

	var instanceIDs []string
	paginator := ec2.NewDescribeInstancesPaginator(ec2Client, &ec2.DescribeInstancesInput{})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			r.console.LogError("Error accessing AWS for profile %s: %s", profile, err)
			return nil
		}
		instanceIDs = append(instanceIDs, flattenReservations(output)...)
	}

	return instanceIDs
}

// GetInstanceMetrics queries the average of each metric of the fixed set over
// the trailing window. Cada métrica falha sozinha: erro de consulta ou zero
// datapoints viram uma amostra indisponível, nunca abortam a instância.
func (r *AWSRepositoryImpl) GetInstanceMetrics(ctx context.Context, profile, region, instanceID string) entity.InstanceMetrics {
	metrics := make(entity.InstanceMetrics, len(entity.MetricNames))

	client, err := r.getServiceClient(ctx, profile, region, "cloudwatch")
	if err != nil {
		r.console.LogError("Credential error for instance %s: %s", instanceID, err)
		for _, name := range entity.MetricNames {
			metrics[name] = entity.ErrorSample()
		}
		return metrics
	}
	cwClient := client.(*cloudwatch.Client)

	endTime := time.Now().UTC()
	startTime := endTime.Add(-metricWindow)

	for _, name := range entity.MetricNames {
		query := metricQueries[name]
		metrics[name] = r.getMetricStatistics(ctx, cwClient, instanceID, query, startTime, endTime)
	}

	return metrics
}

func (r *AWSRepositoryImpl) getMetricStatistics(
	ctx context.Context,
	client *cloudwatch.Client,
	instanceID string,
	query metricQuery,
	startTime, endTime time.Time,
) entity.MetricSample {
	output, err := client.GetMetricStatistics(ctx, &cloudwatch.GetMetricStatisticsInput{
		Namespace:  aws.String(query.namespace),
		MetricName: aws.String(query.metricName),
		Dimensions: []cwTypes.Dimension{
			{Name: aws.String("InstanceId"), Value: aws.String(instanceID)},
		},
		StartTime:  aws.Time(startTime),
		EndTime:    aws.Time(endTime),
		Period:     aws.Int32(metricPeriod),
		Statistics: []cwTypes.Statistic{cwTypes.StatisticAverage},
	})
	if err != nil {
		r.console.LogError("Error querying %s for instance %s: %s", query.metricName, instanceID, err)
		return entity.ErrorSample()
	}

	return firstAverage(output.Datapoints)
}

// firstAverage consome apenas o primeiro datapoint retornado, mesmo quando a
// API devolve vários buckets.
func firstAverage(datapoints []cwTypes.Datapoint) entity.MetricSample {
	if len(datapoints) == 0 {
		return entity.NoDataSample()
	}
	if datapoints[0].Average == nil {
		return entity.NoDataSample()
	}
	return entity.Sample(*datapoints[0].Average)
}

func flattenReservations(output *ec2.DescribeInstancesOutput) []string {
	var ids []string
	for _, reservation := range output.Reservations {
		for _, instance := range reservation.Instances {
			if instance.InstanceId != nil {
				ids = append(ids, *instance.InstanceId)
			}
		}
	}
	return ids
}
