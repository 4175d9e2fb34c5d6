package reports

import (
	"context"
	"errors"
	"time"

	"github.com/ashurstore/commerce-api/internal/notify"
	"github.com/ashurstore/commerce-api/internal/orders"
	"go.uber.org/zap"
)

// DailyJob emails the end-of-day report to the admin address. A day with no
// orders is skipped, not an error.
type DailyJob struct {
	reports    *Service
	mailer     notify.Mailer
	adminEmail string
	logger     *zap.Logger
	nowFunc    func() time.Time
}

func NewDailyJob(reports *Service, mailer notify.Mailer, adminEmail string, logger *zap.Logger) *DailyJob {
	return &DailyJob{
		reports:    reports,
		mailer:     mailer,
		adminEmail: adminEmail,
		logger:     logger,
		nowFunc:    time.Now,
	}
}

// Run generates and mails today's report. Failures are logged and swallowed;
// the job runs again tomorrow regardless.
func (j *DailyJob) Run() {
	ctx := context.Background()
	date := j.nowFunc().UTC().Format("2006-01-02")

	pdf, err := j.reports.Today(ctx)
	if errors.Is(err, orders.ErrNoOrdersForDate) {
		j.logger.Info("no orders today, skipping daily report", zap.String("date", date))
		return
	}
	if err != nil {
		j.logger.Error("daily report generation failed", zap.Error(err))
		return
	}

	msg := notify.BuildDailyReportEmail(date, pdf, j.adminEmail)
	if err := j.mailer.Send(ctx, msg); err != nil {
		j.logger.Error("daily report email failed", zap.Error(err))
		return
	}
	j.logger.Info("daily report sent", zap.String("date", date))
}
