package jobs

import (
	"fmt"
	"log/slog"
)

// Schedules are the cron expressions of the jobs, with seconds. An empty
// expression disables the job.
type Schedules struct {
	Classification string
	Grouping       string
}

type job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	jobs  []job
	names []string
}

// NewJobManager creates the jobs whose schedule is set.
func NewJobManager(
	classifyHandler classifyAllHandler,
	groupingHandler groupingHandler,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{}
	if schedules.Classification != "" {
		jm.add("classification", NewClassificationJob(classifyHandler, schedules.Classification, logger))
	}
	if schedules.Grouping != "" {
		jm.add("grouping", NewGroupingJob(groupingHandler, schedules.Grouping, logger))
	}
	return jm
}

func (jm *JobManager) add(name string, j job) {
	jm.jobs = append(jm.jobs, j)
	jm.names = append(jm.names, name)
}

// StartAll starts all scheduled jobs.
// Jobs already started are stopped again when one fails to start.
func (jm *JobManager) StartAll() error {
	for i, j := range jm.jobs {
		if err := j.Start(); err != nil {
			for _, started := range jm.jobs[:i] {
				started.Stop()
			}
			return fmt.Errorf("failed to start %s job: %w", jm.names[i], err)
		}
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	for _, j := range jm.jobs {
		j.Stop()
	}
}
