package jobs

import (
	"context"
	"log/slog"

	"freight/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type classifyAllHandler interface {
	Handle(ctx context.Context, cmd commands.ClassifyAllOpenCommand) (commands.ClassifyAllResult, error)
}

// ClassificationJob classifies every OPEN order on a schedule.
type ClassificationJob struct {
	handler  classifyAllHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewClassificationJob creates a job that classifies the OPEN backlog on the
// cron schedule. The job does nothing until Start is called.
func NewClassificationJob(handler classifyAllHandler, schedule string, logger *slog.Logger) *ClassificationJob {
	return &ClassificationJob{
		handler:  handler,
		schedule: schedule,
		cron:     newCron(),
		logger:   logger.With("component", "classification_job"),
	}
}

// Run performs one classification pass.
func (j *ClassificationJob) Run(ctx context.Context) {
	result, err := j.handler.Handle(ctx, commands.NewClassifyAllOpenCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Classification job failed", "error", err)
		return
	}
	if result.Classified+result.Failed > 0 {
		j.logger.InfoContext(ctx, "Open orders classified",
			"classified", result.Classified,
			"skipped", result.Skipped,
			"failed", result.Failed,
		)
	}
}

func (j *ClassificationJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Classification job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running pass to finish.
func (j *ClassificationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Classification job stopped")
}

// newCron parses six-field expressions and skips a tick while the previous
// run is still busy.
func newCron() *cron.Cron {
	return cron.New(
		cron.WithSeconds(),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
}
