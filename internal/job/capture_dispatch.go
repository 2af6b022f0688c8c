package job

import (
	"context"
	"log/slog"
	"sync"

	"meetup-capture/internal/usecase/commands"
)

// CaptureDispatcher drains the capture outbox. Verify signals it through Notify after
// commit; the cron entry picks up retries and anything missed while the process was down.
type CaptureDispatcher struct {
	maintenance commands.MaintenanceCommands
	logger      *slog.Logger
	wake        chan struct{}
	stopOnce    sync.Once
	stop        chan struct{}
	done        chan struct{}
}

func NewCaptureDispatcher(maintenance commands.MaintenanceCommands, logger *slog.Logger) *CaptureDispatcher {
	return &CaptureDispatcher{
		maintenance: maintenance,
		logger:      logger,
		wake:        make(chan struct{}, 1),
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
}

func (d *CaptureDispatcher) Name() string { return "capture_dispatch" }

func (d *CaptureDispatcher) Run(ctx context.Context) error {
	n, err := d.maintenance.DispatchCaptures(ctx)
	if n > 0 {
		d.logger.Info("capture requests dispatched", "count", n)
	}
	return err
}

// Notify never blocks; pending signals coalesce into one dispatch pass.
func (d *CaptureDispatcher) Notify() {
	select {
	case d.wake <- struct{}{}:
	default:
	}
}

// Start runs the notification loop until Stop is called or ctx is done.
func (d *CaptureDispatcher) Start(ctx context.Context) {
	go func() {
		defer close(d.done)
		for {
			select {
			case <-ctx.Done():
				return
			case <-d.stop:
				return
			case <-d.wake:
				if err := d.Run(ctx); err != nil {
					d.logger.Warn("capture dispatch failed", "error", err)
				}
			}
		}
	}()
}

func (d *CaptureDispatcher) Stop() {
	d.stopOnce.Do(func() { close(d.stop) })
	<-d.done
}
