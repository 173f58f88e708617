// Package jobs provides scheduled background tasks for the shop.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. DeliveryCompletionJob - Runs every minute to complete deliveries of
// orders that have been in transit longer than the lead time.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(completeDueDeliveriesHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Job failures are logged and the next scheduled run retries the sweep;
// a single failed sweep never stops the scheduler.
package jobs
