package components

import (
	"log/slog"

	"meetup-capture/internal/infra/payment"
	"meetup-capture/internal/pkg/config"
	"meetup-capture/internal/usecase/shared"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		NewPaymentGateway,
	),
)

// NewPaymentGateway picks the HTTP client or the in-memory stub by PAYMENT_MODE.
// Both sit behind the final-status cache.
func NewPaymentGateway(cfg config.Config, logger *slog.Logger) (shared.PaymentGateway, error) {
	var next shared.PaymentGateway
	switch cfg.Payment.Mode {
	case "stub":
		logger.Warn("using in-memory payment gateway")
		next = payment.NewStubGateway()
	default:
		next = payment.NewClient(payment.ClientConfig{
			BaseURL: cfg.Payment.BaseURL,
			APIKey:  cfg.Payment.APIKey,
			Timeout: cfg.Payment.Timeout,
		})
	}
	return payment.WrapWithStatusCache(next, cfg.Payment.StatusCache)
}
