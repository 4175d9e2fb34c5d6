package metrics

import (
	"context"
	"errors"

	cw "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/aws/smithy-go"
	"github.com/ashurstore/commerce-api/internal/aws"
	"go.uber.org/zap"
)

// Namespace groups the shop's business metrics in CloudWatch.
const Namespace = "CommerceAPI"

// Publisher emits business counters to CloudWatch. Every publish is
// best-effort: failures are logged and swallowed so metrics can never fail
// a request.
type Publisher struct {
	client aws.CloudWatchAPI
	logger *zap.Logger
}

func NewPublisher(client aws.CloudWatchAPI, logger *zap.Logger) *Publisher {
	return &Publisher{client: client, logger: logger}
}

// Count adds value to the named counter.
func (p *Publisher) Count(ctx context.Context, name string, value float64) {
	_, err := p.client.PutMetricData(ctx, &cw.PutMetricDataInput{
		Namespace: strPtr(Namespace),
		MetricData: []cwtypes.MetricDatum{
			{
				MetricName: &name,
				Value:      &value,
				Unit:       cwtypes.StandardUnitCount,
			},
		},
	})
	if err != nil {
		fields := []zap.Field{zap.String("metric", name), zap.Error(err)}
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			fields = append(fields, zap.String("aws_error_code", apiErr.ErrorCode()))
		}
		p.logger.Warn("metric publish failed", fields...)
	}
}

func strPtr(s string) *string { return &s }
