package payment

import (
	"context"

	"meetup-capture/internal/domain/payment"
	"meetup-capture/internal/usecase/shared"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedGateway remembers final statuses only; they can never change, so no TTL is needed.
type CachedGateway struct {
	next  shared.PaymentGateway
	cache *lru.Cache[uuid.UUID, payment.Status]
}

func WrapWithStatusCache(next shared.PaymentGateway, size int) (shared.PaymentGateway, error) {
	if size <= 0 {
		return next, nil
	}
	cache, err := lru.New[uuid.UUID, payment.Status](size)
	if err != nil {
		return nil, err
	}
	return &CachedGateway{next: next, cache: cache}, nil
}

func (g *CachedGateway) GetTransactionStatus(ctx context.Context, id uuid.UUID) (*payment.Transaction, error) {
	if status, ok := g.cache.Get(id); ok {
		return &payment.Transaction{ID: id, PaymentStatus: status}, nil
	}
	tx, err := g.next.GetTransactionStatus(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx.PaymentStatus.IsFinal() {
		g.cache.Add(id, tx.PaymentStatus)
	}
	return tx, nil
}

func (g *CachedGateway) RequestCapture(ctx context.Context, id uuid.UUID) error {
	return g.next.RequestCapture(ctx, id)
}
