package repository

import (
	"context"

	"meetup-capture/internal/domain/meetup"
	"meetup-capture/internal/infra"
	"meetup-capture/internal/infra/repository/converter"
	sqlc "meetup-capture/internal/infra/sqlc/generated"
	"meetup-capture/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=meetup.go -destination=../../../tests/mock/repository/meetup.go -package=repositorymock

type MeetupWriteQueries interface {
	CreateMeetup(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateMeetupParams) error
	LockMeetupByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Meetups, error)
	LockMeetupByTransactionAndKind(ctx context.Context, db sqlc.DBTX, arg sqlc.LockMeetupByTransactionAndKindParams) (sqlc.Meetups, error)
	UpdateMeetupState(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateMeetupStateParams) (int64, error)
}

type MeetupRepository struct {
	queries MeetupWriteQueries
	db      sqlc.DBTX
}

func NewMeetupRepository(queries MeetupWriteQueries, db sqlc.DBTX) *MeetupRepository {
	return &MeetupRepository{
		queries: queries,
		db:      db,
	}
}

func (r *MeetupRepository) Create(ctx context.Context, tx sqlc.DBTX, m *meetup.Meetup) error {
	if err := r.queries.CreateMeetup(ctx, tx, converter.MeetupToCreateParams(m)); err != nil {
		return infra.WrapRepoErr("failed to create meetup", err)
	}
	return nil
}

// LockByID holds the row until the surrounding transaction ends.
func (r *MeetupRepository) LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*meetup.Meetup, error) {
	row, err := r.queries.LockMeetupByID(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock meetup", err)
	}
	return converter.MeetupFromRow(row), nil
}

func (r *MeetupRepository) LockPaired(ctx context.Context, tx sqlc.DBTX, transactionID uuid.UUID, kind meetup.Kind) (*meetup.Meetup, error) {
	row, err := r.queries.LockMeetupByTransactionAndKind(ctx, tx, sqlc.LockMeetupByTransactionAndKindParams{
		TransactionID: pgconv.UUIDToPgtype(transactionID),
		Kind:          kind.String(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock paired meetup", err)
	}
	return converter.MeetupFromRow(row), nil
}

func (r *MeetupRepository) Save(ctx context.Context, tx sqlc.DBTX, m *meetup.Meetup) error {
	n, err := r.queries.UpdateMeetupState(ctx, tx, converter.MeetupToStateParams(m))
	if err != nil {
		return infra.WrapRepoErr("failed to update meetup", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("meetup not found for update", nil, infra.KindNotFound)
	}
	return nil
}
