// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the back office.
//
// # Available Jobs
//
// 1. OverdueShipmentJob - Runs every minute to flag shipments whose estimated
// delivery date has passed as Delayed and append a tracking entry.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(markOverdueHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweep uses the cron expression "0 * * * * *", running at the top of
// every minute. Overdue detection does not need sub-minute latency.
//
// # Error Handling
//
// - Sweep errors are logged and the next run proceeds normally
// - Failed job starts are reported to the caller
package jobs
