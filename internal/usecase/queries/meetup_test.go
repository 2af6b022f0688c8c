//go:build unit

package queries_test

import (
	"context"
	"testing"

	"meetup-capture/internal/domain/payment"
	"meetup-capture/internal/infra"
	paymentinfra "meetup-capture/internal/infra/payment"
	"meetup-capture/internal/pkg/errs"
	"meetup-capture/internal/usecase/queries"
	queriesmock "meetup-capture/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMeetupQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	seller, buyer := uuid.New(), uuid.New()
	view := &queries.MeetupView{ID: uuid.New(), Kind: "sale", SellerID: seller, BuyerID: buyer, Status: "created"}

	testCases := []struct {
		name      string
		actor     uuid.UUID
		storeErr  error
		expectErr error
	}{
		{name: "success: seller", actor: seller},
		{name: "success: buyer", actor: buyer},
		{name: "error: outsider", actor: uuid.New(), expectErr: queries.ErrMeetupAccess},
		{name: "error: missing meetup", actor: seller, storeErr: infra.WrapRepoErr("meetup not found", pgx.ErrNoRows), expectErr: queries.ErrMeetupNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockMeetupReadStore(ctrl)
			if tc.storeErr != nil {
				store.EXPECT().FindByID(ctx, view.ID).Return(nil, tc.storeErr)
			} else {
				store.EXPECT().FindByID(ctx, view.ID).Return(view, nil)
			}

			got, err := queries.NewMeetupQueries(store, paymentinfra.NewStubGateway()).GetByID(ctx, tc.actor, view.ID)
			if tc.expectErr != nil {
				assert.True(t, errs.Is(err, tc.expectErr), "expected %v, got %v", tc.expectErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view, got)
		})
	}
}

func TestMeetupQueries_GetTransactionStatus(t *testing.T) {
	ctx := context.Background()
	actor, txID := uuid.New(), uuid.New()

	t.Run("success: participant sees the payment status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockMeetupReadStore(ctrl)
		gateway := paymentinfra.NewStubGateway()
		gateway.SetStatus(txID, payment.StatusAuthorized)
		store.EXPECT().IsTransactionParticipant(ctx, txID, actor).Return(true, nil)

		txn, err := queries.NewMeetupQueries(store, gateway).GetTransactionStatus(ctx, actor, txID)
		require.NoError(t, err)
		assert.Equal(t, payment.StatusAuthorized, txn.PaymentStatus)
	})

	t.Run("error: non participant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockMeetupReadStore(ctrl)
		store.EXPECT().IsTransactionParticipant(ctx, txID, actor).Return(false, nil)

		_, err := queries.NewMeetupQueries(store, paymentinfra.NewStubGateway()).GetTransactionStatus(ctx, actor, txID)
		assert.True(t, errs.Is(err, queries.ErrTransactionAccess), "got %v", err)
	})

	t.Run("error: unknown to the transaction service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockMeetupReadStore(ctrl)
		store.EXPECT().IsTransactionParticipant(ctx, txID, actor).Return(true, nil)

		_, err := queries.NewMeetupQueries(store, paymentinfra.NewStubGateway()).GetTransactionStatus(ctx, actor, txID)
		assert.True(t, errs.Is(err, queries.ErrTransactionNotFound), "got %v", err)
	})
}
