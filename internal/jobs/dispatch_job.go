package jobs

import (
	"context"
	"errors"
	"log/slog"

	"github.com/robfig/cron/v3"

	"tracker/internal/core/application/usecases/commands"
)

// DispatchJob assigns pending orders to available delivery partners.
// Runs every second so a fresh order waits at most one tick for a rider.
type DispatchJob struct {
	handler commands.DispatchPartnerCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

func NewDispatchJob(handler commands.DispatchPartnerCommandHandler, logger *slog.Logger) *DispatchJob {
	return &DispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "dispatch_job"),
	}
}

// Start schedules the dispatch tick to run every second.
func (j *DispatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewDispatchPartnerCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty queue and an empty roster are idle states, not failures.
			if !errors.Is(err, commands.ErrNoPendingOrder) && !errors.Is(err, commands.ErrNoAvailablePartners) {
				j.logger.ErrorContext(ctx, "dispatch tick failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "dispatch job started")
	return nil
}

// Stop stops the dispatch job.
func (j *DispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "dispatch job stopped")
}
