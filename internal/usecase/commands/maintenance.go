package commands

import (
	"context"
	"log/slog"
	"time"

	"meetup-capture/internal/domain/meetup"
	"meetup-capture/internal/domain/payment"
	"meetup-capture/internal/pkg/clock"
	"meetup-capture/internal/pkg/errs"
	"meetup-capture/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=maintenance.go -destination=../../../tests/mock/commands/maintenance.go -package=commandsmock

const (
	captureBackoffBase = 5 * time.Second
	captureBackoffMax  = 5 * time.Minute
)

type MaintenancePolicy struct {
	BatchSize          int32
	MaxCaptureAttempts int
	ExpiryGrace        time.Duration
	ClaimLease         time.Duration
}

// MaintenanceCommands are the background halves of the protocol, run by scheduled jobs.
type MaintenanceCommands interface {
	DispatchCaptures(ctx context.Context) (int, error)
	ReconcileCaptures(ctx context.Context) (int, error)
	ExpireStaleMeetups(ctx context.Context) (int, error)
}

type maintenanceUseCaseImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	gateway shared.PaymentGateway
	meetups MeetupCommands
	policy  MaintenancePolicy
}

func NewMaintenanceUseCase(
	uow shared.UnitOfWork,
	clk clock.Clock,
	gateway shared.PaymentGateway,
	meetups MeetupCommands,
	policy MaintenancePolicy,
) MaintenanceCommands {
	return &maintenanceUseCaseImpl{
		uow:     uow,
		clock:   clk,
		gateway: gateway,
		meetups: meetups,
		policy:  policy,
	}
}

// DispatchCaptures sends queued capture requests. Requests are leased in one short
// transaction and the outcome recorded in another, so no row lock is held across the call.
// A capture the Transaction service rejects outright fails the meetup.
func (uc *maintenanceUseCaseImpl) DispatchCaptures(ctx context.Context) (int, error) {
	now := uc.clock.Now()
	var claimed []shared.CaptureRequest
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		claimed, derr = tx.CaptureRequests().ClaimDue(ctx, tx.DB(), now, now.Add(uc.policy.ClaimLease), uc.policy.BatchSize)
		return derr
	})
	if err != nil {
		return 0, translate(err)
	}

	sent := 0
	for _, req := range claimed {
		capErr := uc.gateway.RequestCapture(ctx, req.TransactionID)
		if err := uc.recordDispatch(ctx, req, capErr); err != nil {
			return sent, translate(err)
		}
		if capErr == nil {
			sent++
			continue
		}
		if captureRejected(capErr) {
			if _, err := uc.meetups.ApplyPaymentStatus(ctx, req.MeetupID, payment.StatusFailed); err != nil {
				return sent, err
			}
		}
	}
	return sent, nil
}

func captureRejected(err error) bool {
	return errs.Is(err, payment.ErrCaptureRejected) || errs.Is(err, payment.ErrTransactionNotFound)
}

func (uc *maintenanceUseCaseImpl) recordDispatch(ctx context.Context, req shared.CaptureRequest, capErr error) error {
	now := uc.clock.Now()
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		repo := tx.CaptureRequests()
		switch {
		case capErr == nil:
			slog.InfoContext(ctx, "capture requested",
				"transaction_id", req.TransactionID,
				"meetup_id", req.MeetupID,
				"attempt", req.Attempts)
			return repo.MarkSent(ctx, tx.DB(), req.ID, now)
		case captureRejected(capErr), req.Attempts >= uc.policy.MaxCaptureAttempts:
			slog.ErrorContext(ctx, "capture request abandoned",
				"transaction_id", req.TransactionID,
				"attempt", req.Attempts,
				"error", capErr.Error())
			return repo.MarkFailed(ctx, tx.DB(), req.ID, capErr.Error(), now)
		default:
			runAt := now.Add(captureBackoff(req.Attempts))
			slog.WarnContext(ctx, "capture request will be retried",
				"transaction_id", req.TransactionID,
				"attempt", req.Attempts,
				"run_at", runAt,
				"error", capErr.Error())
			return repo.MarkRetry(ctx, tx.DB(), req.ID, capErr.Error(), runAt, now)
		}
	})
}

func captureBackoff(attempts int) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	d := captureBackoffBase
	for i := 1; i < attempts; i++ {
		d *= 2
		if d >= captureBackoffMax {
			return captureBackoffMax
		}
	}
	return d
}

// ReconcileCaptures covers captures that settle out-of-band, when nobody is watching.
// Requests the dispatcher gave up on are included: the transaction's own status decides.
func (uc *maintenanceUseCaseImpl) ReconcileCaptures(ctx context.Context) (int, error) {
	pending, err := uc.uow.CommandReads().AwaitingCapture(ctx, uc.policy.BatchSize)
	if err != nil {
		return 0, translate(err)
	}

	applied := 0
	for _, p := range pending {
		txn, err := uc.gateway.GetTransactionStatus(ctx, p.TransactionID)
		if err != nil {
			slog.WarnContext(ctx, "reconcile: transaction status unavailable",
				"transaction_id", p.TransactionID,
				"error", err.Error())
			continue
		}
		if !txn.PaymentStatus.IsFinal() {
			if p.Status == shared.CaptureFailed {
				slog.WarnContext(ctx, "reconcile: capture abandoned while transaction is still open",
					"transaction_id", p.TransactionID,
					"meetup_id", p.MeetupID,
					"payment_status", txn.PaymentStatus)
			}
			continue
		}
		res, err := uc.meetups.ApplyPaymentStatus(ctx, p.MeetupID, txn.PaymentStatus)
		if err != nil {
			return applied, err
		}
		if res.Status.IsTerminal() {
			applied++
		}
	}
	return applied, nil
}

// ExpireStaleMeetups moves code_active meetups to expired once their newest code lapsed
// more than ExpiryGrace ago. Verification reports Expired as soon as a code's TTL passes;
// the grace period only delays the status change, so the holder can still issue a new code.
func (uc *maintenanceUseCaseImpl) ExpireStaleMeetups(ctx context.Context) (int, error) {
	now := uc.clock.Now()
	cutoff := now.Add(-uc.policy.ExpiryGrace)
	ids, err := uc.uow.CommandReads().ExpirableMeetups(ctx, cutoff, uc.policy.BatchSize)
	if err != nil {
		return 0, translate(err)
	}

	expired := 0
	for _, id := range ids {
		ok, err := uc.expireOne(ctx, id, cutoff)
		if err != nil {
			return expired, translate(err)
		}
		if ok {
			expired++
		}
	}
	return expired, nil
}

func (uc *maintenanceUseCaseImpl) expireOne(ctx context.Context, id uuid.UUID, cutoff time.Time) (bool, error) {
	expired := false
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		expired = false
		m, err := tx.Meetups().LockByID(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		if m.Status() != meetup.StatusCodeActive {
			return nil
		}
		codes, err := tx.Codes().ListByMeetup(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		// a code issued after the candidate scan keeps the meetup alive
		for _, c := range codes {
			if c.ExpiresAt().After(cutoff) {
				return nil
			}
		}
		now := uc.clock.Now()
		if err := m.Expire(now); err != nil {
			return err
		}
		if _, err := tx.Codes().SupersedeOpen(ctx, tx.DB(), id, now); err != nil {
			return err
		}
		if err := tx.Meetups().Save(ctx, tx.DB(), m); err != nil {
			return err
		}
		expired = true
		return nil
	})
	if err != nil {
		return false, err
	}
	if expired {
		slog.InfoContext(ctx, "meetup expired", "meetup_id", id)
	}
	return expired, nil
}
