package repository

import (
	"context"
	"time"

	"meetup-capture/internal/domain/verification"
	"meetup-capture/internal/infra"
	"meetup-capture/internal/infra/repository/converter"
	sqlc "meetup-capture/internal/infra/sqlc/generated"
	"meetup-capture/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=verification_code.go -destination=../../../tests/mock/repository/verification_code.go -package=repositorymock

type CodeWriteQueries interface {
	InsertVerificationCode(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertVerificationCodeParams) error
	ListVerificationCodesByMeetup(ctx context.Context, db sqlc.DBTX, meetupID uuid.UUID) ([]sqlc.VerificationCodes, error)
	SupersedeOpenVerificationCodes(ctx context.Context, db sqlc.DBTX, arg sqlc.SupersedeOpenVerificationCodesParams) (int64, error)
	ConsumeVerificationCode(ctx context.Context, db sqlc.DBTX, arg sqlc.ConsumeVerificationCodeParams) (int64, error)
}

// CodeRepository is the code store. Rows are append-only apart from the
// consume and supersede stamps.
type CodeRepository struct {
	queries CodeWriteQueries
	db      sqlc.DBTX
}

func NewCodeRepository(queries CodeWriteQueries, db sqlc.DBTX) *CodeRepository {
	return &CodeRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CodeRepository) ListByMeetup(ctx context.Context, tx sqlc.DBTX, meetupID uuid.UUID) ([]*verification.Code, error) {
	rows, err := r.queries.ListVerificationCodesByMeetup(ctx, tx, meetupID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list verification codes", err)
	}
	codes := make([]*verification.Code, 0, len(rows))
	for _, row := range rows {
		codes = append(codes, converter.CodeFromRow(row))
	}
	return codes, nil
}

func (r *CodeRepository) SupersedeOpen(ctx context.Context, tx sqlc.DBTX, meetupID uuid.UUID, now time.Time) (int64, error) {
	n, err := r.queries.SupersedeOpenVerificationCodes(ctx, tx, sqlc.SupersedeOpenVerificationCodesParams{
		Now:      pgconv.TimeToPgtype(now),
		MeetupID: meetupID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to supersede verification codes", err)
	}
	return n, nil
}

// Insert fails with DUPLICATE_KEY if an open code still exists for the meetup.
func (r *CodeRepository) Insert(ctx context.Context, tx sqlc.DBTX, c *verification.Code) error {
	if err := r.queries.InsertVerificationCode(ctx, tx, converter.CodeToInsertParams(c)); err != nil {
		return infra.WrapRepoErr("failed to insert verification code", err)
	}
	return nil
}

func (r *CodeRepository) MarkConsumed(ctx context.Context, tx sqlc.DBTX, c *verification.Code) (bool, error) {
	n, err := r.queries.ConsumeVerificationCode(ctx, tx, sqlc.ConsumeVerificationCodeParams{
		ID:         c.ID(),
		ConsumedAt: pgconv.TimePtrToPgtype(c.ConsumedAt()),
		ConsumedBy: pgconv.UUIDPtrToPgtype(c.ConsumedBy()),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to consume verification code", err)
	}
	return n == 1, nil
}
