package jobs

import (
	"fmt"
	"log/slog"

	"github.com/Pandalivraison/ALOUETTE/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	driverRestDayJob *DriverRestDayJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	syncRestDaysHandler commands.SyncDriverRestDaysCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		driverRestDayJob: NewDriverRestDayJob(syncRestDaysHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.driverRestDayJob.Start(); err != nil {
		return fmt.Errorf("failed to start driver rest day job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.driverRestDayJob.Stop()
}
