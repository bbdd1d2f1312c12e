package jobs

import (
	"context"
	"log/slog"

	"orderdesk/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// BoardRefreshJob periodically replaces the board with the backend's current
// orders and stats.
type BoardRefreshJob struct {
	handler  commands.RefreshBoardCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewBoardRefreshJob(
	handler commands.RefreshBoardCommandHandler,
	schedule string,
	logger *slog.Logger,
) *BoardRefreshJob {
	return &BoardRefreshJob{
		handler:  handler,
		schedule: schedule,
		cron:     newScheduler(),
		logger:   logger.With("component", "board_refresh_job"),
	}
}

// Start schedules the job. A disabled schedule is not an error.
func (j *BoardRefreshJob) Start() error {
	if isDisabled(j.schedule) {
		j.logger.InfoContext(context.Background(), "Board refresh job disabled")
		return nil
	}

	if _, err := j.cron.AddFunc(j.schedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Board refresh job started", "schedule", j.schedule)
	return nil
}

func (j *BoardRefreshJob) run(ctx context.Context) {
	if err := j.handler.Handle(ctx, commands.NewRefreshBoardCommand()); err != nil {
		j.logger.WarnContext(ctx, "Board refresh job failed", "error", err)
	}
}

// Stop waits for a running refresh to finish.
func (j *BoardRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Board refresh job stopped")
}
