package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ashurstore/commerce-api/internal/aws"
	"github.com/ashurstore/commerce-api/internal/orders"
)

// Job kinds carried on the notifications queue.
const (
	JobOrderPlaced   = "order_placed"
	JobOrderVerified = "order_verified"
)

// Job is the payload sent from API -> SQS -> worker. The worker re-reads
// the order, so only the reference travels.
type Job struct {
	Kind    string `json:"kind"`
	OrderID string `json:"order_id"`
}

// QueueNotifier implements orders.Notifier by enqueueing notification jobs;
// the worker does the actual SMTP delivery.
type QueueNotifier struct {
	publisher *aws.Publisher
}

func NewQueueNotifier(publisher *aws.Publisher) *QueueNotifier {
	return &QueueNotifier{publisher: publisher}
}

func (q *QueueNotifier) OrderPlaced(ctx context.Context, o orders.Order) error {
	return q.enqueue(ctx, Job{Kind: JobOrderPlaced, OrderID: o.OrderID})
}

func (q *QueueNotifier) OrderVerified(ctx context.Context, o orders.Order) error {
	return q.enqueue(ctx, Job{Kind: JobOrderVerified, OrderID: o.OrderID})
}

func (q *QueueNotifier) enqueue(ctx context.Context, job Job) error {
	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal notification job: %w", err)
	}
	return q.publisher.SendNotification(ctx, string(body), map[string]string{
		"kind":     job.Kind,
		"order_id": job.OrderID,
	})
}
