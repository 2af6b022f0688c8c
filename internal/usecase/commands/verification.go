package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"meetup-capture/internal/domain/meetup"
	"meetup-capture/internal/domain/payment"
	"meetup-capture/internal/domain/verification"
	"meetup-capture/internal/infra"
	"meetup-capture/internal/pkg/clock"
	"meetup-capture/internal/pkg/errs"
	"meetup-capture/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=verification.go -destination=../../../tests/mock/commands/verification.go -package=commandsmock

type VerificationPolicy struct {
	CodeTTL  time.Duration
	Attempts meetup.AttemptLimit
}

// CodeDigester turns code values into the digests the code store keeps.
type CodeDigester interface {
	verification.Matcher
	Digest(meetupID, value string) string
}

// CaptureNotifier wakes the capture dispatcher after a commit that queued a capture.
type CaptureNotifier interface {
	Notify()
}

type GenerateCodeRequest struct {
	MeetupID    uuid.UUID
	CodeType    string
	RequestedBy uuid.UUID
}

type GeneratedCode struct {
	CodeID       uuid.UUID
	MeetupID     uuid.UUID
	CodeValue    string
	CodeType     verification.CodeType
	ExpiresAt    time.Time
	MeetupStatus meetup.Status
}

type VerifyCodeRequest struct {
	MeetupID    uuid.UUID
	CodeValue   string
	SubmittedBy uuid.UUID
}

type VerificationResult struct {
	Verified          bool
	MeetupID          uuid.UUID
	MeetupStatus      meetup.Status
	TransactionID     *uuid.UUID
	TransactionStatus *payment.Status
	PaymentCaptured   bool
	IsPurchase        bool
	IsTransaction     bool
	CaptureRequested  bool
}

type VerificationCommands interface {
	GenerateCode(ctx context.Context, req GenerateCodeRequest) (*GeneratedCode, error)
	VerifyCode(ctx context.Context, req VerifyCodeRequest) (*VerificationResult, error)
}

type verificationUseCaseImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	generator verification.Generator
	digester  CodeDigester
	gateway   shared.PaymentGateway
	notifier  CaptureNotifier
	policy    VerificationPolicy
}

func NewVerificationUseCase(
	uow shared.UnitOfWork,
	clk clock.Clock,
	generator verification.Generator,
	digester CodeDigester,
	gateway shared.PaymentGateway,
	notifier CaptureNotifier,
	policy VerificationPolicy,
) VerificationCommands {
	return &verificationUseCaseImpl{
		uow:       uow,
		clock:     clk,
		generator: generator,
		digester:  digester,
		gateway:   gateway,
		notifier:  notifier,
		policy:    policy,
	}
}

func (uc *verificationUseCaseImpl) GenerateCode(ctx context.Context, req GenerateCodeRequest) (*GeneratedCode, error) {
	codeType, err := verification.NewCodeType(req.CodeType)
	if err != nil {
		return nil, translate(err)
	}
	value, err := uc.generator.Generate(codeType)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate code value")
	}

	var result *GeneratedCode
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		m, derr := tx.Meetups().LockByID(ctx, tx.DB(), req.MeetupID)
		if derr != nil {
			return derr
		}
		if derr = m.CanShowCode(req.RequestedBy); derr != nil {
			return derr
		}
		if derr = m.EnsureAcceptsCodes(); derr != nil {
			return derr
		}
		if m.Kind() == meetup.KindReturn {
			if _, derr = uc.lockInProgressPickup(ctx, tx, m); derr != nil {
				return derr
			}
		}

		now := uc.clock.Now()
		if _, derr = tx.Codes().SupersedeOpen(ctx, tx.DB(), m.ID(), now); derr != nil {
			return derr
		}
		digest := uc.digester.Digest(m.ID().String(), value)
		code, derr := verification.IssueCode(m.ID(), codeType, digest, req.RequestedBy, now, uc.policy.CodeTTL)
		if derr != nil {
			return derr
		}
		if derr = tx.Codes().Insert(ctx, tx.DB(), code); derr != nil {
			return derr
		}
		if derr = m.ActivateCode(now); derr != nil {
			return derr
		}
		if derr = tx.Meetups().Save(ctx, tx.DB(), m); derr != nil {
			return derr
		}

		result = &GeneratedCode{
			CodeID:       code.ID(),
			MeetupID:     m.ID(),
			CodeValue:    value,
			CodeType:     code.Type(),
			ExpiresAt:    code.ExpiresAt(),
			MeetupStatus: m.Status(),
		}
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}

	slog.InfoContext(ctx, "verification code issued",
		"meetup_id", result.MeetupID,
		"code_type", result.CodeType,
		"expires_at", result.ExpiresAt)
	return result, nil
}

func (uc *verificationUseCaseImpl) VerifyCode(ctx context.Context, req VerifyCodeRequest) (*VerificationResult, error) {
	value, err := verification.NormalizeValue(req.CodeValue)
	if err != nil {
		return nil, translate(err)
	}

	var (
		result   *VerificationResult
		rejected error
		enqueued bool
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result, rejected, enqueued = nil, nil, false

		m, derr := tx.Meetups().LockByID(ctx, tx.DB(), req.MeetupID)
		if derr != nil {
			return derr
		}
		codes, derr := tx.Codes().ListByMeetup(ctx, tx.DB(), m.ID())
		if derr != nil {
			return derr
		}

		now := uc.clock.Now()
		attempt := verification.Attempt{Value: value, SubmittedBy: req.SubmittedBy, At: now}
		code, verr := verification.Verify(m, codes, attempt, uc.policy.Attempts, uc.digester)
		if errors.Is(verr, verification.ErrCodeMismatch) {
			// the failed attempt must survive the rejection
			rejected = verr
			return tx.Meetups().Save(ctx, tx.DB(), m)
		}
		if verr != nil {
			return verr
		}

		consumed, derr := tx.Codes().MarkConsumed(ctx, tx.DB(), code)
		if derr != nil {
			return derr
		}
		if !consumed {
			return verification.ErrAlreadyConsumed
		}

		if derr = m.CompleteVerification(now); derr != nil {
			return derr
		}
		if m.Kind() == meetup.KindReturn {
			pickup, perr := uc.lockInProgressPickup(ctx, tx, m)
			if perr != nil {
				return perr
			}
			if perr = pickup.CompleteRental(m, now); perr != nil {
				return perr
			}
			if perr = tx.Meetups().Save(ctx, tx.DB(), pickup); perr != nil {
				return perr
			}
		}
		if derr = tx.Meetups().Save(ctx, tx.DB(), m); derr != nil {
			return derr
		}

		if m.RequiresCapture() {
			enqueued, derr = tx.CaptureRequests().Enqueue(ctx, tx.DB(), *m.TransactionID(), m.ID(), now)
			if derr != nil {
				return derr
			}
		}

		result = &VerificationResult{
			Verified:         true,
			MeetupID:         m.ID(),
			MeetupStatus:     m.Status(),
			TransactionID:    m.TransactionID(),
			IsPurchase:       m.Kind() == meetup.KindSale,
			IsTransaction:    m.HasTransaction(),
			CaptureRequested: m.RequiresCapture(),
		}
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}
	if rejected != nil {
		slog.WarnContext(ctx, "verification code mismatch", "meetup_id", req.MeetupID)
		return nil, translate(rejected)
	}

	// capture is requested only once the transition is committed
	if enqueued {
		uc.notifier.Notify()
	}
	uc.attachTransactionStatus(ctx, result)

	slog.InfoContext(ctx, "meetup verified",
		"meetup_id", result.MeetupID,
		"meetup_status", result.MeetupStatus,
		"capture_requested", result.CaptureRequested)
	return result, nil
}

func (uc *verificationUseCaseImpl) lockInProgressPickup(ctx context.Context, tx shared.Tx, ret *meetup.Meetup) (*meetup.Meetup, error) {
	if !ret.HasTransaction() {
		return nil, errs.Wrap(ErrPickupNotInProgress, "return meetup has no transaction")
	}
	pickup, err := tx.Meetups().LockPaired(ctx, tx.DB(), *ret.TransactionID(), meetup.KindPickup)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrap(ErrPickupNotInProgress, "no pickup for transaction")
		}
		return nil, err
	}
	if pickup.Status() != meetup.StatusInProgress {
		return nil, errs.Wrap(ErrPickupNotInProgress, "pickup is "+pickup.Status().String())
	}
	return pickup, nil
}

// attachTransactionStatus is best effort; the capture outcome is observed through the watcher.
func (uc *verificationUseCaseImpl) attachTransactionStatus(ctx context.Context, result *VerificationResult) {
	if result.TransactionID == nil {
		return
	}
	txn, err := uc.gateway.GetTransactionStatus(ctx, *result.TransactionID)
	if err != nil {
		slog.WarnContext(ctx, "transaction status unavailable after verification",
			"transaction_id", *result.TransactionID,
			"error", err.Error())
		return
	}
	status := txn.PaymentStatus
	result.TransactionStatus = &status
	result.PaymentCaptured = status == payment.StatusCaptured
}
