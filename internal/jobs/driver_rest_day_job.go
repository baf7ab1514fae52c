package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/Pandalivraison/ALOUETTE/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// frenchWeekdays maps Go weekdays to the French names drivers pick
// their rest days from.
var frenchWeekdays = map[time.Weekday]string{
	time.Monday:    "Lundi",
	time.Tuesday:   "Mardi",
	time.Wednesday: "Mercredi",
	time.Thursday:  "Jeudi",
	time.Friday:    "Vendredi",
	time.Saturday:  "Samedi",
	time.Sunday:    "Dimanche",
}

// FrenchWeekday returns the French name for a weekday.
func FrenchWeekday(day time.Weekday) string {
	return frenchWeekdays[day]
}

// DriverRestDayJob keeps driver availability in sync with the weekly
// rest-day schedule. Runs shortly after midnight so the fleet is
// correct before the restaurant opens.
type DriverRestDayJob struct {
	handler commands.SyncDriverRestDaysCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
	now     func() time.Time
}

// NewDriverRestDayJob creates the rest-day sync job.
func NewDriverRestDayJob(handler commands.SyncDriverRestDaysCommandHandler, logger *slog.Logger) *DriverRestDayJob {
	return &DriverRestDayJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "driver_rest_day_job"),
		now:     time.Now,
	}
}

// Start schedules the sync to run daily at 00:05 and runs it once
// immediately so a restart never leaves stale availability.
func (j *DriverRestDayJob) Start() error {
	_, err := j.cron.AddFunc("5 0 * * *", j.run)
	if err != nil {
		return err
	}

	j.run()
	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Driver rest day job started (running daily at 00:05)")
	return nil
}

// Stop stops the rest-day sync job.
func (j *DriverRestDayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Driver rest day job stopped")
}

func (j *DriverRestDayJob) run() {
	ctx := context.Background()
	day := FrenchWeekday(j.now().Weekday())

	cmd, err := commands.NewSyncDriverRestDaysCommand(day)
	if err != nil {
		j.logger.ErrorContext(ctx, "Driver rest day command invalid", "error", err)
		return
	}

	if err := j.handler.Handle(ctx, cmd); err != nil {
		j.logger.ErrorContext(ctx, "Driver rest day sync failed", "day", day, "error", err)
	}
}
