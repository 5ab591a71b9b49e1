package jobs

import (
	"context"
	"log/slog"
	"time"

	"comanda/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// counterCleanupSchedule runs shortly after the day rolls over, when the
// previous day's counter has just gone stale.
const counterCleanupSchedule = "0 30 3 * * *"

// CounterCleanupJob drops daily order-number counter rows that fell out of
// the retention window. Issued order numbers are never affected.
type CounterCleanupJob struct {
	handler   commands.PurgeOrderCountersCommandHandler
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewCounterCleanupJob creates the cleanup job. Counter rows older than
// retention are purged on each run.
func NewCounterCleanupJob(
	handler commands.PurgeOrderCountersCommandHandler,
	retention time.Duration,
	logger *slog.Logger,
) *CounterCleanupJob {
	return &CounterCleanupJob{
		handler:   handler,
		retention: retention,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "counter_cleanup_job"),
	}
}

// Start schedules the cleanup to run once per day.
func (j *CounterCleanupJob) Start() error {
	_, err := j.cron.AddFunc(counterCleanupSchedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewPurgeOrderCountersCommand(j.retention)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Counter cleanup job misconfigured", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Counter cleanup job failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Counter cleanup job started (running daily)")
	return nil
}

// Stop stops the cleanup job.
func (j *CounterCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Counter cleanup job stopped")
}
