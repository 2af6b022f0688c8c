package job

import (
	"context"
	"log/slog"

	"meetup-capture/internal/usecase/commands"
)

type CaptureReconciler struct {
	maintenance commands.MaintenanceCommands
	logger      *slog.Logger
}

func NewCaptureReconciler(maintenance commands.MaintenanceCommands, logger *slog.Logger) *CaptureReconciler {
	return &CaptureReconciler{maintenance: maintenance, logger: logger}
}

func (r *CaptureReconciler) Name() string { return "capture_reconcile" }

func (r *CaptureReconciler) Run(ctx context.Context) error {
	n, err := r.maintenance.ReconcileCaptures(ctx)
	if n > 0 {
		r.logger.Info("settled meetups from transaction status", "count", n)
	}
	return err
}
