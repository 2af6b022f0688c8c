//go:build unit

package schedule_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetup-capture/internal/schedule"
)

type noopJob struct{ name string }

func (j noopJob) Name() string { return j.name }
func (j noopJob) Run(ctx context.Context) error { return nil }

func TestCronScheduler_AddJob(t *testing.T) {
	s := schedule.NewCronScheduler(slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.NoError(t, s.AddJob(noopJob{name: "capture_dispatch"}, "@every 15s"))
	require.NoError(t, s.AddJob(noopJob{name: "meetup_expiry"}, "*/5 * * * *"))
	assert.ElementsMatch(t, []string{"capture_dispatch", "meetup_expiry"}, s.Entries())

	err := s.AddJob(noopJob{name: "broken"}, "not a cron spec")
	require.Error(t, err)
	assert.NotContains(t, s.Entries(), "broken")

	s.Start(context.Background())
	s.Stop()
}
