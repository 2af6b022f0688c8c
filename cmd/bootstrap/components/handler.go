package components

import (
	"meetup-capture/internal/handler"
	"meetup-capture/internal/handler/api"
	"meetup-capture/internal/handler/middleware"
	"meetup-capture/internal/usecase/watcher"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		fx.Annotate(
			func(w *watcher.Watcher) *watcher.Watcher { return w },
			fx.As(new(api.CaptureWatcher)),
		),
		api.NewMeetupHandler,
		api.NewTransactionHandler,
		api.NewPaymentWebhookHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
