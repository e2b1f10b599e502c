package jobs

import (
	"fmt"
	"log/slog"

	"tracker/internal/core/application/usecases/commands"
)

// JobManager coordinates the scheduled jobs of the service with a unified
// start and stop interface.
type JobManager struct {
	dispatchJob *DispatchJob
	movementJob *MovementJob
}

// NewJobManager wires up all background jobs. The movement job is only
// created when simulate is true; without it the service relies on real
// partner devices for position reports.
func NewJobManager(
	dispatchHandler commands.DispatchPartnerCommandHandler,
	movementHandler commands.SimulateMovementCommandHandler,
	simulate bool,
	logger *slog.Logger,
) *JobManager {
	manager := &JobManager{
		dispatchJob: NewDispatchJob(dispatchHandler, logger),
	}
	if simulate {
		manager.movementJob = NewMovementJob(movementHandler, logger)
	}
	return manager
}

// StartAll starts every configured job, stopping already started jobs when
// a later one fails.
func (jm *JobManager) StartAll() error {
	if err := jm.dispatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start dispatch job: %w", err)
	}

	if jm.movementJob != nil {
		if err := jm.movementJob.Start(); err != nil {
			jm.dispatchJob.Stop()
			return fmt.Errorf("failed to start movement job: %w", err)
		}
	}

	return nil
}

// StopAll stops all running jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.movementJob != nil {
		jm.movementJob.Stop()
	}
	jm.dispatchJob.Stop()
}
