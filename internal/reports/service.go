package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/ashurstore/commerce-api/internal/orders"
	"go.uber.org/zap"
)

// OrderSource is the read-only slice of the order store the reports use.
type OrderSource interface {
	ListByDay(ctx context.Context, day time.Time) ([]orders.Order, error)
}

// MetricSink records report runs, best-effort.
type MetricSink interface {
	Count(ctx context.Context, name string, value float64)
}

// Service aggregates persisted orders into PDF exports.
type Service struct {
	source  OrderSource
	metrics MetricSink
	logger  *zap.Logger
	nowFunc func() time.Time
}

func NewService(source OrderSource, metrics MetricSink, logger *zap.Logger) *Service {
	return &Service{
		source:  source,
		metrics: metrics,
		logger:  logger,
		nowFunc: time.Now,
	}
}

// ForDate renders the report for one calendar day. Returns
// orders.ErrNoOrdersForDate when the day has no orders.
func (s *Service) ForDate(ctx context.Context, day time.Time) ([]byte, error) {
	list, err := s.source.ListByDay(ctx, day)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, orders.ErrNoOrdersForDate
	}

	label := day.Format("2006-01-02")
	pdf, err := Build(fmt.Sprintf("Order Report for %s", label), label, list)
	if err != nil {
		return nil, err
	}
	s.metrics.Count(ctx, "ReportRuns", 1)
	s.logger.Info("report generated", zap.String("date", label), zap.Int("orders", len(list)))
	return pdf, nil
}

// Today renders the daily report for the current day.
func (s *Service) Today(ctx context.Context) ([]byte, error) {
	return s.ForDate(ctx, s.nowFunc().UTC())
}
