package readstore

import (
	"context"
	"time"

	"meetup-capture/internal/infra"
	"meetup-capture/internal/infra/repository/converter"
	sqlc "meetup-capture/internal/infra/sqlc/generated"
	"meetup-capture/internal/pkg/clock"
	"meetup-capture/internal/pkg/pgconv"
	"meetup-capture/internal/usecase/queries"
	"meetup-capture/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=meetup.go -destination=../../../tests/mock/readstore/meetup.go -package=readstoremock

type MeetupViewQueries interface {
	GetMeetupByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Meetups, error)
	GetMeetupView(ctx context.Context, db sqlc.DBTX, arg sqlc.GetMeetupViewParams) (sqlc.GetMeetupViewRow, error)
	IsTransactionParticipant(ctx context.Context, db sqlc.DBTX, arg sqlc.IsTransactionParticipantParams) (bool, error)
	ListMeetupsByTransaction(ctx context.Context, db sqlc.DBTX, transactionID pgtype.UUID) ([]sqlc.Meetups, error)
	ListExpirableMeetupIDs(ctx context.Context, db sqlc.DBTX, arg sqlc.ListExpirableMeetupIDsParams) ([]uuid.UUID, error)
	ListAwaitingCapture(ctx context.Context, db sqlc.DBTX, batchSize int32) ([]sqlc.ListAwaitingCaptureRow, error)
}

type MeetupReadStore struct {
	queries MeetupViewQueries
	db      sqlc.DBTX
	clock   clock.Clock
}

func NewMeetupReadStore(queries MeetupViewQueries, db sqlc.DBTX, clk clock.Clock) *MeetupReadStore {
	return &MeetupReadStore{
		queries: queries,
		db:      db,
		clock:   clk,
	}
}

func (r *MeetupReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.MeetupView, error) {
	row, err := r.queries.GetMeetupView(ctx, r.db, sqlc.GetMeetupViewParams{
		Now: pgconv.TimeToPgtype(r.clock.Now()),
		ID:  id,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("meetup not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get meetup view by id", err)
	}
	return &queries.MeetupView{
		ID:             row.ID,
		Kind:           row.Kind,
		SellerID:       row.SellerID,
		BuyerID:        row.BuyerID,
		TransactionID:  pgconv.UUIDPtrFromPgtype(row.TransactionID),
		Status:         row.Status,
		FailedAttempts: row.FailedAttempts,
		CodeType:       pgconv.StringPtrFromPgtype(row.CodeType),
		CodeCreatedBy:  pgconv.UUIDPtrFromPgtype(row.CodeCreatedBy),
		CodeExpiresAt:  pgconv.TimePtrFromPgtype(row.CodeExpiresAt),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *MeetupReadStore) IsTransactionParticipant(ctx context.Context, transactionID, userID uuid.UUID) (bool, error) {
	ok, err := r.queries.IsTransactionParticipant(ctx, r.db, sqlc.IsTransactionParticipantParams{
		TransactionID: pgconv.UUIDToPgtype(transactionID),
		UserID:        userID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check transaction participant", err)
	}
	return ok, nil
}

func (r *MeetupReadStore) Snapshot(ctx context.Context, id uuid.UUID) (*shared.MeetupSnapshot, error) {
	row, err := r.queries.GetMeetupByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("meetup not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get meetup by id", err)
	}
	snap := converter.MeetupSnapshotFromRow(row)
	return &snap, nil
}

func (r *MeetupReadStore) ByTransaction(ctx context.Context, transactionID uuid.UUID) ([]shared.MeetupSnapshot, error) {
	rows, err := r.queries.ListMeetupsByTransaction(ctx, r.db, pgconv.UUIDToPgtype(transactionID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list meetups by transaction", err)
	}
	out := make([]shared.MeetupSnapshot, 0, len(rows))
	for _, row := range rows {
		out = append(out, converter.MeetupSnapshotFromRow(row))
	}
	return out, nil
}

func (r *MeetupReadStore) Expirable(ctx context.Context, codeExpiredBefore time.Time, limit int32) ([]uuid.UUID, error) {
	ids, err := r.queries.ListExpirableMeetupIDs(ctx, r.db, sqlc.ListExpirableMeetupIDsParams{
		Cutoff:    pgconv.TimeToPgtype(codeExpiredBefore),
		BatchSize: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expirable meetups", err)
	}
	return ids, nil
}

func (r *MeetupReadStore) AwaitingCapture(ctx context.Context, limit int32) ([]shared.CaptureSnapshot, error) {
	rows, err := r.queries.ListAwaitingCapture(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list meetups awaiting capture", err)
	}
	out := make([]shared.CaptureSnapshot, 0, len(rows))
	for _, row := range rows {
		out = append(out, shared.CaptureSnapshot{
			MeetupID:      row.MeetupID,
			TransactionID: row.TransactionID,
			Status:        shared.CaptureRequestStatus(row.Status),
			UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
		})
	}
	return out, nil
}
