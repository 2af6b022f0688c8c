package shared

import (
	"context"
	"time"

	"meetup-capture/internal/domain/meetup"
	"meetup-capture/internal/domain/verification"
	sqlc "meetup-capture/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Meetups() MeetupRepository
	Codes() CodeRepository
	CaptureRequests() CaptureRequestRepository
	DB() sqlc.DBTX
}

type CommandReads interface {
	MeetupByID(ctx context.Context, id uuid.UUID) (*MeetupSnapshot, error)
	MeetupsByTransaction(ctx context.Context, transactionID uuid.UUID) ([]MeetupSnapshot, error)
	ExpirableMeetups(ctx context.Context, codeExpiredBefore time.Time, limit int32) ([]uuid.UUID, error)
	AwaitingCapture(ctx context.Context, limit int32) ([]CaptureSnapshot, error)
}

// MeetupRepository loads aggregates with a row lock; every write path goes through LockByID first.
type MeetupRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, m *meetup.Meetup) error
	LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*meetup.Meetup, error)
	LockPaired(ctx context.Context, tx sqlc.DBTX, transactionID uuid.UUID, kind meetup.Kind) (*meetup.Meetup, error)
	Save(ctx context.Context, tx sqlc.DBTX, m *meetup.Meetup) error
}

type CodeRepository interface {
	ListByMeetup(ctx context.Context, tx sqlc.DBTX, meetupID uuid.UUID) ([]*verification.Code, error)
	SupersedeOpen(ctx context.Context, tx sqlc.DBTX, meetupID uuid.UUID, now time.Time) (int64, error)
	Insert(ctx context.Context, tx sqlc.DBTX, c *verification.Code) error
	// MarkConsumed reports false when another writer consumed the code first.
	MarkConsumed(ctx context.Context, tx sqlc.DBTX, c *verification.Code) (bool, error)
}

type CaptureRequestRepository interface {
	// Enqueue reports false when the transaction already has a capture request.
	Enqueue(ctx context.Context, tx sqlc.DBTX, transactionID, meetupID uuid.UUID, now time.Time) (bool, error)
	// ClaimDue leases due requests until leaseUntil so concurrent dispatchers skip them.
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now, leaseUntil time.Time, limit int32) ([]CaptureRequest, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, now time.Time) error
	MarkRetry(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, lastErr string, runAt, now time.Time) error
	MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, lastErr string, now time.Time) error
}
