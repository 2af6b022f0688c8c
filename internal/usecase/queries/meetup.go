package queries

import (
	"context"
	"time"

	"meetup-capture/internal/domain/payment"
	"meetup-capture/internal/infra"
	"meetup-capture/internal/pkg/errs"
	"meetup-capture/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=meetup.go -destination=../../../tests/mock/queries/meetup.go -package=queriesmock

var (
	ErrMeetupNotFound      = errs.New("meetup not found")
	ErrMeetupAccess        = errs.New("meetup not accessible")
	ErrTransactionNotFound = errs.New("transaction not found")
	ErrTransactionAccess   = errs.New("transaction not accessible")
)

// MeetupView never carries a code value; only what a countdown screen needs.
type MeetupView struct {
	ID             uuid.UUID  `json:"id"`
	Kind           string     `json:"kind"`
	SellerID       uuid.UUID  `json:"seller_id"`
	BuyerID        uuid.UUID  `json:"buyer_id"`
	TransactionID  *uuid.UUID `json:"transaction_id,omitempty"`
	Status         string     `json:"status"`
	FailedAttempts int32      `json:"failed_attempts"`
	CodeType       *string    `json:"code_type,omitempty"`
	CodeCreatedBy  *uuid.UUID `json:"code_created_by,omitempty"`
	CodeExpiresAt  *time.Time `json:"code_expires_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (v *MeetupView) IsParticipant(userID uuid.UUID) bool {
	return v.SellerID == userID || v.BuyerID == userID
}

type MeetupReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*MeetupView, error)
	IsTransactionParticipant(ctx context.Context, transactionID, userID uuid.UUID) (bool, error)
}

type MeetupQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, id uuid.UUID) (*MeetupView, error)
	GetTransactionStatus(ctx context.Context, actorID uuid.UUID, transactionID uuid.UUID) (*payment.Transaction, error)
}

type meetupQueriesImpl struct {
	repo    MeetupReadStore
	gateway shared.PaymentGateway
}

func NewMeetupQueries(repo MeetupReadStore, gateway shared.PaymentGateway) MeetupQueries {
	return &meetupQueriesImpl{repo: repo, gateway: gateway}
}

func (q *meetupQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, id uuid.UUID) (*MeetupView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrMeetupNotFound)
		}
		return nil, err
	}
	if !view.IsParticipant(actorID) {
		return nil, ErrMeetupAccess
	}
	return view, nil
}

func (q *meetupQueriesImpl) GetTransactionStatus(ctx context.Context, actorID uuid.UUID, transactionID uuid.UUID) (*payment.Transaction, error) {
	ok, err := q.repo.IsTransactionParticipant(ctx, transactionID, actorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrTransactionAccess
	}
	txn, err := q.gateway.GetTransactionStatus(ctx, transactionID)
	if err != nil {
		if errs.Is(err, payment.ErrTransactionNotFound) {
			return nil, errs.Mark(err, ErrTransactionNotFound)
		}
		return nil, err
	}
	return txn, nil
}
