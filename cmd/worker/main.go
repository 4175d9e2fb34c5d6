package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/ashurstore/commerce-api/internal/aws"
	"github.com/ashurstore/commerce-api/internal/config"
	"github.com/ashurstore/commerce-api/internal/metrics"
	"github.com/ashurstore/commerce-api/internal/notify"
	"github.com/ashurstore/commerce-api/internal/orders"
	"github.com/ashurstore/commerce-api/internal/reports"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.FromEnv()

	clients, err := aws.NewClients(context.Background())
	if err != nil {
		logger.Fatal("failed to init aws clients", zap.Error(err))
	}

	orderStore := orders.NewStore(clients.DynamoDB, cfg.OrdersTable)
	mailer := notify.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	// JOB=daily-report runs the report pipeline instead of the notification
	// consumer; an EventBridge schedule invokes this variant once a day.
	if os.Getenv("JOB") == "daily-report" {
		sink := metrics.NewPublisher(clients.CloudWatch, logger)
		job := reports.NewDailyJob(reports.NewService(orderStore, sink, logger), mailer, cfg.AdminEmail, logger)

		if cfg.RunLocal {
			job.Run()
			return
		}
		lambda.Start(func(ctx context.Context, ev events.CloudWatchEvent) error {
			job.Run()
			return nil
		})
		return
	}

	p := NewProcessor(orderStore, mailer, cfg.AdminEmail, logger)

	// If RUN_LOCAL=true, simulate a single SQS event for local testing.
	if cfg.RunLocal {
		testBody := os.Getenv("LOCAL_SQS_BODY")
		if testBody == "" {
			testBody = `{"kind":"order_placed","order_id":"local-order-1"}`
		}
		event := events.SQSEvent{
			Records: []events.SQSMessage{
				{Body: testBody},
			},
		}
		if err := p.Handle(context.Background(), event); err != nil {
			logger.Fatal("local handler error", zap.Error(err))
		}
		return
	}

	lambda.Start(p.Handle)
}
