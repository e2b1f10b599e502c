package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"tracker/internal/core/application/usecases/commands"
)

// MovementJob advances the demo simulation: every second each assigned
// partner takes one step along their route and orders progress as waypoints
// are reached. Only scheduled when the simulation flag is on.
type MovementJob struct {
	handler commands.SimulateMovementCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

func NewMovementJob(handler commands.SimulateMovementCommandHandler, logger *slog.Logger) *MovementJob {
	return &MovementJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "movement_job"),
	}
}

// Start schedules the movement tick to run every second.
func (j *MovementJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewSimulateMovementCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "movement tick failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "movement job started")
	return nil
}

// Stop stops the movement job.
func (j *MovementJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "movement job stopped")
}
