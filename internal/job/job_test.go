//go:build unit

package job_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	errs "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"meetup-capture/internal/job"
	commandsmock "meetup-capture/tests/mock/commands"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCaptureDispatcher_NotifyRunsDispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	maintenance := commandsmock.NewMockMaintenanceCommands(ctrl)

	called := make(chan struct{}, 4)
	maintenance.EXPECT().DispatchCaptures(gomock.Any()).DoAndReturn(func(context.Context) (int, error) {
		called <- struct{}{}
		return 1, nil
	}).MinTimes(1)

	dispatcher := job.NewCaptureDispatcher(maintenance, discardLogger())
	dispatcher.Start(context.Background())
	dispatcher.Notify()

	select {
	case <-called:
	case <-time.After(time.Second):
		t.Fatal("dispatch did not run after Notify")
	}
	dispatcher.Stop()
}

func TestCaptureDispatcher_NotifyDoesNotBlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	maintenance := commandsmock.NewMockMaintenanceCommands(ctrl)

	// Not started: the buffered signal absorbs the first call, the rest coalesce.
	dispatcher := job.NewCaptureDispatcher(maintenance, discardLogger())
	done := make(chan struct{})
	go func() {
		for range 10 {
			dispatcher.Notify()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked")
	}
}

func TestCaptureDispatcher_StopsWithContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	maintenance := commandsmock.NewMockMaintenanceCommands(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	dispatcher := job.NewCaptureDispatcher(maintenance, discardLogger())
	dispatcher.Start(ctx)
	cancel()

	stopped := make(chan struct{})
	go func() {
		dispatcher.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after context cancellation")
	}
}

func TestJobs_Run(t *testing.T) {
	boom := errs.New("database unavailable")

	tests := []struct {
		name    string
		setup   func(m *commandsmock.MockMaintenanceCommands)
		build   func(m *commandsmock.MockMaintenanceCommands) interface {
			Name() string
			Run(context.Context) error
		}
		wantName string
		wantErr  error
	}{
		{
			name: "dispatch",
			setup: func(m *commandsmock.MockMaintenanceCommands) {
				m.EXPECT().DispatchCaptures(gomock.Any()).Return(2, nil)
			},
			build: func(m *commandsmock.MockMaintenanceCommands) interface {
				Name() string
				Run(context.Context) error
			} {
				return job.NewCaptureDispatcher(m, discardLogger())
			},
			wantName: "capture_dispatch",
		},
		{
			name: "reconcile error is returned",
			setup: func(m *commandsmock.MockMaintenanceCommands) {
				m.EXPECT().ReconcileCaptures(gomock.Any()).Return(0, boom)
			},
			build: func(m *commandsmock.MockMaintenanceCommands) interface {
				Name() string
				Run(context.Context) error
			} {
				return job.NewCaptureReconciler(m, discardLogger())
			},
			wantName: "capture_reconcile",
			wantErr:  boom,
		},
		{
			name: "expiry",
			setup: func(m *commandsmock.MockMaintenanceCommands) {
				m.EXPECT().ExpireStaleMeetups(gomock.Any()).Return(3, nil)
			},
			build: func(m *commandsmock.MockMaintenanceCommands) interface {
				Name() string
				Run(context.Context) error
			} {
				return job.NewMeetupExpirySweeper(m, discardLogger())
			},
			wantName: "meetup_expiry",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			maintenance := commandsmock.NewMockMaintenanceCommands(ctrl)
			tt.setup(maintenance)

			j := tt.build(maintenance)
			assert.Equal(t, tt.wantName, j.Name())

			err := j.Run(context.Background())
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
		})
	}
}
