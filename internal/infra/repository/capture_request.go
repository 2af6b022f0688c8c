package repository

import (
	"context"
	"time"

	"meetup-capture/internal/infra"
	"meetup-capture/internal/infra/repository/converter"
	sqlc "meetup-capture/internal/infra/sqlc/generated"
	"meetup-capture/internal/pkg/pgconv"
	"meetup-capture/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=capture_request.go -destination=../../../tests/mock/repository/capture_request.go -package=repositorymock

type CaptureRequestWriteQueries interface {
	EnqueueCaptureRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.EnqueueCaptureRequestParams) (int64, error)
	ClaimDueCaptureRequests(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueCaptureRequestsParams) ([]sqlc.CaptureRequests, error)
	MarkCaptureRequestSent(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkCaptureRequestSentParams) error
	MarkCaptureRequestRetry(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkCaptureRequestRetryParams) error
	MarkCaptureRequestFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkCaptureRequestFailedParams) error
}

// CaptureRequestRepository is the outbox for capture calls to the Transaction service.
type CaptureRequestRepository struct {
	queries CaptureRequestWriteQueries
	db      sqlc.DBTX
}

func NewCaptureRequestRepository(queries CaptureRequestWriteQueries, db sqlc.DBTX) *CaptureRequestRepository {
	return &CaptureRequestRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CaptureRequestRepository) Enqueue(ctx context.Context, tx sqlc.DBTX, transactionID, meetupID uuid.UUID, now time.Time) (bool, error) {
	n, err := r.queries.EnqueueCaptureRequest(ctx, tx, sqlc.EnqueueCaptureRequestParams{
		ID:            uuid.New(),
		TransactionID: transactionID,
		MeetupID:      meetupID,
		RunAt:         pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to enqueue capture request", err)
	}
	return n == 1, nil
}

func (r *CaptureRequestRepository) ClaimDue(ctx context.Context, tx sqlc.DBTX, now, leaseUntil time.Time, limit int32) ([]shared.CaptureRequest, error) {
	rows, err := r.queries.ClaimDueCaptureRequests(ctx, tx, sqlc.ClaimDueCaptureRequestsParams{
		LeaseUntil: pgconv.TimeToPgtype(leaseUntil),
		Now:        pgconv.TimeToPgtype(now),
		BatchSize:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim capture requests", err)
	}
	out := make([]shared.CaptureRequest, 0, len(rows))
	for _, row := range rows {
		out = append(out, converter.CaptureRequestFromRow(row))
	}
	return out, nil
}

func (r *CaptureRequestRepository) MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, now time.Time) error {
	err := r.queries.MarkCaptureRequestSent(ctx, tx, sqlc.MarkCaptureRequestSentParams{
		Now: pgconv.TimeToPgtype(now),
		ID:  id,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark capture request sent", err)
	}
	return nil
}

func (r *CaptureRequestRepository) MarkRetry(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, lastErr string, runAt, now time.Time) error {
	err := r.queries.MarkCaptureRequestRetry(ctx, tx, sqlc.MarkCaptureRequestRetryParams{
		ID:        id,
		LastError: pgconv.StringToPgtype(lastErr),
		RunAt:     pgconv.TimeToPgtype(runAt),
		UpdatedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to reschedule capture request", err)
	}
	return nil
}

func (r *CaptureRequestRepository) MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, lastErr string, now time.Time) error {
	err := r.queries.MarkCaptureRequestFailed(ctx, tx, sqlc.MarkCaptureRequestFailedParams{
		ID:        id,
		LastError: pgconv.StringToPgtype(lastErr),
		UpdatedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark capture request failed", err)
	}
	return nil
}
