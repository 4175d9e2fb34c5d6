package reports

import (
	"github.com/robfig/cron/v3"
)

// Scheduler triggers recurring jobs. The reporting component receives one
// rather than owning the schedule, so tests can fire jobs directly.
type Scheduler interface {
	Schedule(spec string, job func()) error
	Start()
	Stop()
}

// CronScheduler implements Scheduler on robfig/cron.
type CronScheduler struct {
	c *cron.Cron
}

func NewCronScheduler() *CronScheduler {
	return &CronScheduler{c: cron.New()}
}

func (s *CronScheduler) Schedule(spec string, job func()) error {
	_, err := s.c.AddFunc(spec, job)
	return err
}

func (s *CronScheduler) Start() { s.c.Start() }

func (s *CronScheduler) Stop() { s.c.Stop() }
