package reports

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ashurstore/commerce-api/internal/notify"
	"github.com/ashurstore/commerce-api/internal/orders"
	"go.uber.org/zap"
)

type fakeOrderSource struct {
	byDay map[string][]orders.Order
}

func (f fakeOrderSource) ListByDay(ctx context.Context, day time.Time) ([]orders.Order, error) {
	return f.byDay[day.Format("2006-01-02")], nil
}

type nopMetrics struct{}

func (nopMetrics) Count(ctx context.Context, name string, value float64) {}

type recordingMailer struct {
	sent []notify.Message
	fail bool
}

func (m *recordingMailer) Send(ctx context.Context, msg notify.Message) error {
	if m.fail {
		return errors.New("smtp down")
	}
	m.sent = append(m.sent, msg)
	return nil
}

var reportDay = time.Date(2026, 8, 29, 23, 59, 0, 0, time.UTC)

func sampleOrders() []orders.Order {
	return []orders.Order{
		{
			OrderID:     "order-1",
			Customer:    orders.CustomerDetails{Name: "Sara Oda", Email: "sara@example.com", City: "Erbil", Country: "Iraq"},
			Lines:       []orders.Line{{ReferenceID: "prod-1", Type: "Product", Quantity: 2, Price: 10}},
			TotalAmount: 20,
			Status:      orders.StatusConfirmed,
			CreatedAt:   reportDay.Add(-time.Hour),
		},
	}
}

func TestBuild_ProducesPDF(t *testing.T) {
	pdf, err := Build("Order Report for 2026-08-29", "2026-08-29", sampleOrders())
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF, starts with %q", pdf[:min(8, len(pdf))])
	}
}

func TestForDate_NoOrders(t *testing.T) {
	svc := NewService(fakeOrderSource{byDay: map[string][]orders.Order{}}, nopMetrics{}, zap.NewNop())

	_, err := svc.ForDate(context.Background(), reportDay)
	if !errors.Is(err, orders.ErrNoOrdersForDate) {
		t.Fatalf("expected ErrNoOrdersForDate, got %v", err)
	}
}

func TestForDate_RendersOrders(t *testing.T) {
	svc := NewService(fakeOrderSource{byDay: map[string][]orders.Order{
		"2026-08-29": sampleOrders(),
	}}, nopMetrics{}, zap.NewNop())

	pdf, err := svc.ForDate(context.Background(), reportDay)
	if err != nil {
		t.Fatalf("for date failed: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("expected non-empty pdf")
	}
}

func TestDailyJob_SendsReportEmail(t *testing.T) {
	svc := NewService(fakeOrderSource{byDay: map[string][]orders.Order{
		"2026-08-29": sampleOrders(),
	}}, nopMetrics{}, zap.NewNop())

	mailer := &recordingMailer{}
	job := NewDailyJob(svc, mailer, "admin@example.com", zap.NewNop())
	job.nowFunc = func() time.Time { return reportDay }
	svc.nowFunc = job.nowFunc

	job.Run()

	if len(mailer.sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(mailer.sent))
	}
	msg := mailer.sent[0]
	if msg.To != "admin@example.com" {
		t.Fatalf("unexpected recipient %q", msg.To)
	}
	if len(msg.Attachments) != 1 || msg.Attachments[0].Name != "orders-report-2026-08-29.pdf" {
		t.Fatalf("unexpected attachments: %+v", msg.Attachments)
	}
}

func TestDailyJob_SkipsEmptyDay(t *testing.T) {
	svc := NewService(fakeOrderSource{byDay: map[string][]orders.Order{}}, nopMetrics{}, zap.NewNop())

	mailer := &recordingMailer{}
	job := NewDailyJob(svc, mailer, "admin@example.com", zap.NewNop())
	job.nowFunc = func() time.Time { return reportDay }
	svc.nowFunc = job.nowFunc

	job.Run()

	if len(mailer.sent) != 0 {
		t.Fatalf("expected no email for an empty day, got %d", len(mailer.sent))
	}
}
