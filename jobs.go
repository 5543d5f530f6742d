package main

import (
	"context"
	"runtime/debug"
	"sync/atomic"
	"time"

	"agriadmin/metrics"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

const sweepTimeout = 10 * time.Minute

type cropSweeper interface {
	DeactivateHarvested(ctx context.Context, today time.Time) (int64, error)
}

// sweepJob marks crops whose harvest date has passed as inactive.
type sweepJob struct {
	crops   cropSweeper
	metrics *metrics.Metrics
	running atomic.Bool
	now     func() time.Time
}

func newSweepJob(crops cropSweeper, m *metrics.Metrics) *sweepJob {
	return &sweepJob{crops: crops, metrics: m, now: time.Now}
}

// Run implements cron.Job. Overlapping runs are skipped.
func (j *sweepJob) Run() {
	if !j.running.CompareAndSwap(false, true) {
		log.Warn("previous crop sweep still running, skipping this run")
		return
	}
	defer j.running.Store(false)

	defer func() {
		if r := recover(); r != nil {
			log.WithFields(log.Fields{"panic": r, "stack": string(debug.Stack())}).Error("crop sweep panicked")
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	n, err := j.crops.DeactivateHarvested(ctx, j.now())
	if err != nil {
		log.WithError(err).Error("crop sweep failed")
		return
	}
	if j.metrics != nil {
		j.metrics.CropsDeactivated(n)
	}
	log.WithField("deactivated", n).Info("crop sweep completed")
}

func startScheduler(schedule string, job cron.Job) (*cron.Cron, error) {
	c := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(log.StandardLogger().WithField("component", "cron"))))
	if _, err := c.AddJob(schedule, job); err != nil {
		return nil, err
	}
	c.Start()
	log.WithField("schedule", schedule).Info("crop sweep scheduled")
	return c, nil
}
