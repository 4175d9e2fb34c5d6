package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"github.com/ashurstore/commerce-api/internal/notify"
	"github.com/ashurstore/commerce-api/internal/orders"
)

// OrderSource is the slice of the order store the worker needs.
type OrderSource interface {
	Get(ctx context.Context, orderID string) (*orders.Order, error)
}

// Processor handles notification jobs: it re-reads the referenced order and
// sends the matching email.
type Processor struct {
	orders     OrderSource
	mailer     notify.Mailer
	adminEmail string
	logger     *zap.Logger
}

func NewProcessor(source OrderSource, mailer notify.Mailer, adminEmail string, logger *zap.Logger) *Processor {
	return &Processor{
		orders:     source,
		mailer:     mailer,
		adminEmail: adminEmail,
		logger:     logger,
	}
}

// Handle receives an SQS batch event and processes each message.
func (p *Processor) Handle(ctx context.Context, ev events.SQSEvent) error {
	for _, rec := range ev.Records {
		if err := p.processMessage(ctx, rec); err != nil {
			// Return error: Lambda will retry. If failed too many times,
			// the message goes to the DLQ.
			p.logger.Error("worker error", zap.Error(err))
			return err
		}
	}
	return nil
}

func (p *Processor) processMessage(ctx context.Context, rec events.SQSMessage) error {
	var job notify.Job
	if err := json.Unmarshal([]byte(rec.Body), &job); err != nil {
		return fmt.Errorf("invalid message body: %w", err)
	}

	p.logger.Info("received notification job",
		zap.String("kind", job.Kind), zap.String("order_id", job.OrderID))

	o, err := p.orders.Get(ctx, job.OrderID)
	if err != nil {
		return fmt.Errorf("failed to fetch order: %w", err)
	}
	if o == nil {
		// Order deleted between enqueue and delivery; nothing to send.
		p.logger.Warn("order no longer exists, dropping job", zap.String("order_id", job.OrderID))
		return nil
	}

	var msg notify.Message
	switch job.Kind {
	case notify.JobOrderPlaced:
		msg = notify.BuildVerificationEmail(*o)
	case notify.JobOrderVerified:
		msg = notify.BuildAdminOrderEmail(*o, p.adminEmail)
	default:
		p.logger.Warn("unknown job kind, dropping", zap.String("kind", job.Kind))
		return nil
	}

	if err := p.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send %s email for order %s: %w", job.Kind, job.OrderID, err)
	}

	p.logger.Info("notification sent",
		zap.String("kind", job.Kind), zap.String("order_id", job.OrderID))
	return nil
}
