// Package jobs provides scheduled background tasks for the restaurant.
//
// Jobs are built on github.com/robfig/cron/v3 and managed through
// JobManager, which wires them to their command handlers:
//
//	jobManager := jobs.NewJobManager(syncRestDaysHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// DriverRestDayJob runs daily at 00:05 (and once at startup) to put
// drivers on their scheduled rest days and bring them back afterwards.
// Drivers out on a delivery are skipped until the delivery completes.
package jobs
