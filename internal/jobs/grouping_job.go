package jobs

import (
	"context"
	"log/slog"

	"freight/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type groupingHandler interface {
	Handle(ctx context.Context, cmd commands.ExecuteGroupingCommand) (commands.GroupingResult, error)
}

// GroupingJob groups the CALCULATED groupage orders of every ship date.
type GroupingJob struct {
	handler  groupingHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewGroupingJob creates a job that runs lane grouping for every pending ship
// date on the cron schedule.
func NewGroupingJob(handler groupingHandler, schedule string, logger *slog.Logger) *GroupingJob {
	return &GroupingJob{
		handler:  handler,
		schedule: schedule,
		cron:     newCron(),
		logger:   logger.With("component", "grouping_job"),
	}
}

func (j *GroupingJob) Run(ctx context.Context) {
	result, err := j.handler.Handle(ctx, commands.NewExecuteGroupingCommand(nil))
	if err != nil {
		j.logger.ErrorContext(ctx, "Grouping job failed", "error", err)
		return
	}
	if result.Grouped+result.Skipped > 0 {
		j.logger.InfoContext(ctx, "Groupage orders grouped", "grouped", result.Grouped, "skipped", result.Skipped)
	}
}

func (j *GroupingJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Grouping job started", "schedule", j.schedule)
	return nil
}

func (j *GroupingJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Grouping job stopped")
}
