//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"meetup-capture/internal/infra"
	"meetup-capture/internal/infra/repository"
	sqlc "meetup-capture/internal/infra/sqlc/generated"
	"meetup-capture/internal/pkg/pgconv"
	"meetup-capture/tests/common/builder"
	repositorymock "meetup-capture/tests/mock/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCodeRepository_Insert(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: digest stored"},
		{
			name:       "error: meetup already has an open code",
			dbErr:      &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"},
			expectKind: infra.KindDuplicateKey,
		},
		{name: "error: database error occurs", dbErr: errors.New("database connection error"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockCodeWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			code := builder.NewCodeBuilder(builder.NewMeetupBuilder()).BuildDomain()

			mockQueries.EXPECT().InsertVerificationCode(ctx, mockDB, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ sqlc.DBTX, arg sqlc.InsertVerificationCodeParams) error {
					assert.Equal(t, code.ID(), arg.ID)
					assert.Equal(t, "digest:0427", arg.CodeDigest)
					assert.Equal(t, "pin", arg.CodeType)
					return tc.dbErr
				})

			err := repository.NewCodeRepository(mockQueries, mockDB).Insert(ctx, mockDB, code)
			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCodeRepository_ListByMeetup(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockCodeWriteQueries(ctrl)
	mockDB := &mockDBTX{}

	mb := builder.NewMeetupBuilder()
	consumedAt := mb.CreatedAt.Add(time.Minute)
	rows := []sqlc.VerificationCodes{
		{
			ID: mb.ID, MeetupID: mb.ID, CodeType: "qr", CodeDigest: "d1", CreatedBy: mb.SellerID,
			CreatedAt:  pgconv.TimeToPgtype(mb.CreatedAt),
			ExpiresAt:  pgconv.TimeToPgtype(mb.CreatedAt.Add(10 * time.Minute)),
			ConsumedAt: pgconv.TimeToPgtype(consumedAt),
			ConsumedBy: pgconv.UUIDToPgtype(mb.BuyerID),
		},
	}
	mockQueries.EXPECT().ListVerificationCodesByMeetup(ctx, mockDB, mb.ID).Return(rows, nil)

	codes, err := repository.NewCodeRepository(mockQueries, mockDB).ListByMeetup(ctx, mockDB, mb.ID)
	require.NoError(t, err)
	require.Len(t, codes, 1)
	assert.True(t, codes[0].IsConsumed())
	assert.Equal(t, mb.BuyerID, *codes[0].ConsumedBy())
	assert.False(t, codes[0].IsSuperseded())
}

func TestCodeRepository_MarkConsumed(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name     string
		affected int64
		expect   bool
	}{
		{name: "success: code consumed", affected: 1, expect: true},
		{name: "lost race: another writer consumed it first", affected: 0, expect: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockCodeWriteQueries(ctrl)
			mockDB := &mockDBTX{}

			mb := builder.NewMeetupBuilder()
			code := builder.NewCodeBuilder(mb).Consumed(mb.BuyerID, mb.CreatedAt.Add(time.Minute)).BuildDomain()
			mockQueries.EXPECT().ConsumeVerificationCode(ctx, mockDB, sqlc.ConsumeVerificationCodeParams{
				ID:         code.ID(),
				ConsumedAt: pgconv.TimePtrToPgtype(code.ConsumedAt()),
				ConsumedBy: pgconv.UUIDToPgtype(mb.BuyerID),
			}).Return(tc.affected, nil)

			ok, err := repository.NewCodeRepository(mockQueries, mockDB).MarkConsumed(ctx, mockDB, code)
			require.NoError(t, err)
			assert.Equal(t, tc.expect, ok)
		})
	}
}

func TestCaptureRequestRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

	t.Run("enqueue reports whether a request was created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockCaptureRequestWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewCaptureRequestRepository(mockQueries, mockDB)
		mb := builder.NewMeetupBuilder()

		gomock.InOrder(
			mockQueries.EXPECT().EnqueueCaptureRequest(ctx, mockDB, gomock.Any()).Return(int64(1), nil),
			mockQueries.EXPECT().EnqueueCaptureRequest(ctx, mockDB, gomock.Any()).Return(int64(0), nil),
		)

		created, err := repo.Enqueue(ctx, mockDB, *mb.TransactionID, mb.ID, now)
		require.NoError(t, err)
		assert.True(t, created)

		created, err = repo.Enqueue(ctx, mockDB, *mb.TransactionID, mb.ID, now)
		require.NoError(t, err)
		assert.False(t, created, "one capture request per transaction")
	})

	t.Run("claim converts leased rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockCaptureRequestWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mb := builder.NewMeetupBuilder()

		mockQueries.EXPECT().ClaimDueCaptureRequests(ctx, mockDB, sqlc.ClaimDueCaptureRequestsParams{
			LeaseUntil: pgconv.TimeToPgtype(now.Add(time.Minute)),
			Now:        pgconv.TimeToPgtype(now),
			BatchSize:  5,
		}).Return([]sqlc.CaptureRequests{{
			ID:            mb.ID,
			TransactionID: *mb.TransactionID,
			MeetupID:      mb.ID,
			Status:        "queued",
			Attempts:      2,
			LastError:     pgconv.StringToPgtype("timeout"),
			RunAt:         pgconv.TimeToPgtype(now.Add(time.Minute)),
		}}, nil)

		claimed, err := repository.NewCaptureRequestRepository(mockQueries, mockDB).ClaimDue(ctx, mockDB, now, now.Add(time.Minute), 5)
		require.NoError(t, err)
		require.Len(t, claimed, 1)
		assert.Equal(t, 2, claimed[0].Attempts)
		assert.Equal(t, "timeout", *claimed[0].LastError)
		assert.Equal(t, *mb.TransactionID, claimed[0].TransactionID)
	})

	t.Run("mark failures are classified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockCaptureRequestWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewCaptureRequestRepository(mockQueries, mockDB)
		mb := builder.NewMeetupBuilder()

		mockQueries.EXPECT().MarkCaptureRequestSent(ctx, mockDB, gomock.Any()).Return(nil)
		mockQueries.EXPECT().MarkCaptureRequestRetry(ctx, mockDB, sqlc.MarkCaptureRequestRetryParams{
			ID:        mb.ID,
			LastError: pgconv.StringToPgtype("network"),
			RunAt:     pgconv.TimeToPgtype(now.Add(5 * time.Second)),
			UpdatedAt: pgconv.TimeToPgtype(now),
		}).Return(nil)
		mockQueries.EXPECT().MarkCaptureRequestFailed(ctx, mockDB, gomock.Any()).Return(errors.New("database connection error"))

		assert.NoError(t, repo.MarkSent(ctx, mockDB, mb.ID, now))
		assert.NoError(t, repo.MarkRetry(ctx, mockDB, mb.ID, "network", now.Add(5*time.Second), now))
		err := repo.MarkFailed(ctx, mockDB, mb.ID, "rejected", now)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure), "got %v", err)
	})
}
