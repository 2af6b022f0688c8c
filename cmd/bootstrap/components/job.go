package components

import (
	"context"
	"log/slog"

	"meetup-capture/internal/job"
	"meetup-capture/internal/pkg/config"
	"meetup-capture/internal/schedule"

	"go.uber.org/fx"
)

var JobModule = fx.Module("job",
	fx.Provide(
		job.NewCaptureDispatcher,
		job.NewCaptureReconciler,
		job.NewMeetupExpirySweeper,
		func(logger *slog.Logger) *schedule.CronScheduler {
			return schedule.NewCronScheduler(logger)
		},
	),
	fx.Invoke(RegisterJobs),
)

type jobParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Config     config.Config
	Logger     *slog.Logger
	Scheduler  *schedule.CronScheduler
	Dispatcher *job.CaptureDispatcher
	Reconciler *job.CaptureReconciler
	Sweeper    *job.MeetupExpirySweeper
}

// RegisterJobs always starts the post-commit dispatcher; cron entries are optional
// so several replicas can share one scheduler instance.
func RegisterJobs(p jobParams) error {
	if p.Config.Jobs.Enabled {
		entries := []struct {
			job  schedule.Job
			spec string
		}{
			{p.Dispatcher, p.Config.Jobs.CaptureDispatchSpec},
			{p.Reconciler, p.Config.Jobs.CaptureReconcileSpec},
			{p.Sweeper, p.Config.Jobs.ExpirySweepSpec},
		}
		for _, e := range entries {
			if err := p.Scheduler.AddJob(e.job, e.spec); err != nil {
				return err
			}
		}
	}

	runCtx, cancel := context.WithCancel(context.Background())
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			p.Dispatcher.Start(runCtx)
			if p.Config.Jobs.Enabled {
				p.Scheduler.Start(runCtx)
				p.Logger.Info("background jobs started", "jobs", p.Scheduler.Entries())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			if p.Config.Jobs.Enabled {
				p.Scheduler.Stop()
			}
			cancel()
			p.Dispatcher.Stop()
			return nil
		},
	})
	return nil
}
