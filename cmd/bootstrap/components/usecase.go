package components

import (
	"meetup-capture/internal/domain/meetup"
	"meetup-capture/internal/domain/verification"
	"meetup-capture/internal/job"
	"meetup-capture/internal/pkg/codehash"
	"meetup-capture/internal/pkg/config"
	"meetup-capture/internal/usecase"
	"meetup-capture/internal/usecase/commands"
	"meetup-capture/internal/usecase/queries"
	"meetup-capture/internal/usecase/shared"
	"meetup-capture/internal/usecase/watcher"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	fx.Annotate(
		verification.NewRandomGenerator,
		fx.As(new(verification.Generator)),
	),
	fx.Annotate(
		NewCodeHasher,
		fx.As(new(commands.CodeDigester)),
	),
	fx.Annotate(
		func(d *job.CaptureDispatcher) *job.CaptureDispatcher { return d },
		fx.As(new(commands.CaptureNotifier)),
	),
	NewVerificationPolicy,
	NewMaintenancePolicy,
	NewCaptureWatcher,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewMeetupUseCase,
		commands.NewVerificationUseCase,
		commands.NewMaintenanceUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewMeetupQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewCodeHasher(cfg config.Config) (*codehash.Hasher, error) {
	return codehash.New(cfg.Verification.DigestKey)
}

func NewVerificationPolicy(cfg config.Config) commands.VerificationPolicy {
	return commands.VerificationPolicy{
		CodeTTL: cfg.Verification.CodeTTL,
		Attempts: meetup.AttemptLimit{
			Max:    cfg.Verification.MaxFailedAttempts,
			Window: cfg.Verification.Lockout,
		},
	}
}

func NewMaintenancePolicy(cfg config.Config) commands.MaintenancePolicy {
	return commands.MaintenancePolicy{
		BatchSize:          cfg.Jobs.BatchSize,
		MaxCaptureAttempts: int(cfg.Jobs.MaxCaptureAttempts),
		ExpiryGrace:        cfg.Jobs.MeetupExpiryGrace,
		ClaimLease:         cfg.Jobs.CaptureClaimLease,
	}
}

func NewCaptureWatcher(cfg config.Config, gateway shared.PaymentGateway) *watcher.Watcher {
	return watcher.New(gateway, watcher.Config{
		Interval: cfg.Capture.PollInterval,
		Attempts: cfg.Capture.PollAttempts,
	})
}
