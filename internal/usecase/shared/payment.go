package shared

import (
	"context"

	"meetup-capture/internal/domain/payment"

	"github.com/google/uuid"
)

// PaymentGateway is the external Transaction service. Both calls are safe to repeat.
type PaymentGateway interface {
	GetTransactionStatus(ctx context.Context, transactionID uuid.UUID) (*payment.Transaction, error)
	RequestCapture(ctx context.Context, transactionID uuid.UUID) error
}
