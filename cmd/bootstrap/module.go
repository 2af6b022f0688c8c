package bootstrap

import (
	"meetup-capture/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	LoggerModule,
	JWTModule,
	components.PersistenceModule,
	components.PaymentModule,
	components.UseCaseModule,
	components.JobModule,
	components.HandlerModule,
)
