// Package jobs provides scheduled background tasks for the planner.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field expressions with
// seconds). A tick is skipped while the previous run of the same job is still
// busy.
//
// # Available Jobs
//
// 1. ClassificationJob - classifies every OPEN order
// 2. GroupingJob - groups CALCULATED groupage orders into their lane groups
//
// # Usage
//
//	jobManager := jobs.NewJobManager(classifyAllHandler, groupingHandler, jobs.Schedules{
//		Classification: "0 */5 * * * *",
//		Grouping:       "0 0 * * * *",
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and the job keeps its schedule. Failed job starts
// stop any already running jobs.
package jobs
