package commands

import (
	"context"
	"log/slog"

	"meetup-capture/internal/domain/meetup"
	"meetup-capture/internal/domain/payment"
	"meetup-capture/internal/pkg/clock"
	"meetup-capture/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=meetup.go -destination=../../../tests/mock/commands/meetup.go -package=commandsmock

type CreateMeetupRequest struct {
	Kind          string
	SellerID      uuid.UUID
	BuyerID       uuid.UUID
	TransactionID *uuid.UUID
}

type MeetupResult struct {
	MeetupID uuid.UUID
	Status   meetup.Status
}

type MeetupCommands interface {
	CreateMeetup(ctx context.Context, req CreateMeetupRequest, actorID uuid.UUID) (*MeetupResult, error)
	ApplyPaymentStatus(ctx context.Context, meetupID uuid.UUID, status payment.Status) (*MeetupResult, error)
	ApplyTransactionStatus(ctx context.Context, transactionID uuid.UUID, status payment.Status) error
}

type meetupUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewMeetupUseCase(uow shared.UnitOfWork, clk clock.Clock) MeetupCommands {
	return &meetupUseCaseImpl{uow: uow, clock: clk}
}

func (uc *meetupUseCaseImpl) CreateMeetup(ctx context.Context, req CreateMeetupRequest, actorID uuid.UUID) (*MeetupResult, error) {
	kind, err := meetup.NewKind(req.Kind)
	if err != nil {
		return nil, translate(err)
	}
	m, err := meetup.NewMeetup(kind, req.SellerID, req.BuyerID, req.TransactionID, uc.clock.Now())
	if err != nil {
		return nil, translate(err)
	}
	if !m.IsParticipant(actorID) {
		return nil, translate(meetup.ErrNotParticipant)
	}
	if kind != meetup.KindSale && !m.HasTransaction() {
		return nil, ErrInvalidMeetup
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Meetups().Create(ctx, tx.DB(), m)
	})
	if err != nil {
		return nil, translate(err)
	}
	return &MeetupResult{MeetupID: m.ID(), Status: m.Status()}, nil
}

// ApplyPaymentStatus settles a verified sale once its capture outcome is known.
// Anything else is left untouched, so repeated deliveries are harmless.
func (uc *meetupUseCaseImpl) ApplyPaymentStatus(ctx context.Context, meetupID uuid.UUID, status payment.Status) (*MeetupResult, error) {
	if !status.IsValid() {
		return nil, translate(payment.ErrInvalidStatus)
	}

	var result *MeetupResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		m, derr := tx.Meetups().LockByID(ctx, tx.DB(), meetupID)
		if derr != nil {
			return derr
		}
		result = &MeetupResult{MeetupID: m.ID(), Status: m.Status()}
		if m.Status() != meetup.StatusVerified {
			return nil
		}

		now := uc.clock.Now()
		switch status {
		case payment.StatusCaptured:
			derr = m.ConfirmCapture(now)
		case payment.StatusFailed:
			derr = m.FailCapture(now)
		default:
			return nil
		}
		if derr != nil {
			return derr
		}
		if derr = tx.Meetups().Save(ctx, tx.DB(), m); derr != nil {
			return derr
		}
		result.Status = m.Status()
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}
	return result, nil
}

func (uc *meetupUseCaseImpl) ApplyTransactionStatus(ctx context.Context, transactionID uuid.UUID, status payment.Status) error {
	meetups, err := uc.uow.CommandReads().MeetupsByTransaction(ctx, transactionID)
	if err != nil {
		return translate(err)
	}
	for _, snap := range meetups {
		if snap.Status != string(meetup.StatusVerified) {
			continue
		}
		res, err := uc.ApplyPaymentStatus(ctx, snap.ID, status)
		if err != nil {
			return err
		}
		slog.InfoContext(ctx, "payment status applied",
			"meetup_id", res.MeetupID,
			"transaction_id", transactionID,
			"payment_status", status,
			"meetup_status", res.Status)
	}
	return nil
}
