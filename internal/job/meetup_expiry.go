package job

import (
	"context"
	"log/slog"

	"meetup-capture/internal/usecase/commands"
)

type MeetupExpirySweeper struct {
	maintenance commands.MaintenanceCommands
	logger      *slog.Logger
}

func NewMeetupExpirySweeper(maintenance commands.MaintenanceCommands, logger *slog.Logger) *MeetupExpirySweeper {
	return &MeetupExpirySweeper{maintenance: maintenance, logger: logger}
}

func (s *MeetupExpirySweeper) Name() string { return "meetup_expiry" }

func (s *MeetupExpirySweeper) Run(ctx context.Context) error {
	n, err := s.maintenance.ExpireStaleMeetups(ctx)
	if n > 0 {
		s.logger.Info("expired stale meetups", "count", n)
	}
	return err
}
