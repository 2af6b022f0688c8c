package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"meetup-capture/internal/infra/readstore"
	"meetup-capture/internal/infra/repository"
	sqlc "meetup-capture/internal/infra/sqlc/generated"
	"meetup-capture/internal/pkg/clock"
	"meetup-capture/internal/pkg/errs"
	"meetup-capture/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool  *pgxpool.Pool
	q     *sqlc.Queries
	clock clock.Clock
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, clk clock.Clock) shared.UnitOfWork {
	return &PostgresUoW{
		pool:  pool,
		q:     q,
		clock: clk,
	}
}

// ReadCommitted is enough because every writer takes the meetup row lock first.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	meetupRepo  shared.MeetupRepository
	codeRepo    shared.CodeRepository
	captureRepo shared.CaptureRequestRepository
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Meetups() shared.MeetupRepository {
	if t.meetupRepo == nil {
		t.meetupRepo = repository.NewMeetupRepository(t.uow.q, t.dbtx)
	}
	return t.meetupRepo
}

func (t *pgTx) Codes() shared.CodeRepository {
	if t.codeRepo == nil {
		t.codeRepo = repository.NewCodeRepository(t.uow.q, t.dbtx)
	}
	return t.codeRepo
}

func (t *pgTx) CaptureRequests() shared.CaptureRequestRepository {
	if t.captureRepo == nil {
		t.captureRepo = repository.NewCaptureRequestRepository(t.uow.q, t.dbtx)
	}
	return t.captureRepo
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstore
	meetupStore *readstore.MeetupReadStore
}

func (r *commandReads) store() *readstore.MeetupReadStore {
	if r.meetupStore == nil {
		r.meetupStore = readstore.NewMeetupReadStore(r.uow.q, r.dbtx, r.uow.clock)
	}
	return r.meetupStore
}

func (r *commandReads) MeetupByID(ctx context.Context, id uuid.UUID) (*shared.MeetupSnapshot, error) {
	return r.store().Snapshot(ctx, id)
}

func (r *commandReads) MeetupsByTransaction(ctx context.Context, transactionID uuid.UUID) ([]shared.MeetupSnapshot, error) {
	return r.store().ByTransaction(ctx, transactionID)
}

func (r *commandReads) ExpirableMeetups(ctx context.Context, codeExpiredBefore time.Time, limit int32) ([]uuid.UUID, error) {
	return r.store().Expirable(ctx, codeExpiredBefore, limit)
}

func (r *commandReads) AwaitingCapture(ctx context.Context, limit int32) ([]shared.CaptureSnapshot, error) {
	return r.store().AwaitingCapture(ctx, limit)
}
