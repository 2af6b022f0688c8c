//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"meetup-capture/internal/domain/meetup"
	"meetup-capture/internal/domain/payment"
	"meetup-capture/internal/usecase/shared"
	"meetup-capture/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// verifiedSale walks a sale through generate and verify so a capture request is queued.
func verifiedSale(t *testing.T, e *env) *builder.MeetupBuilder {
	t.Helper()
	mb := builder.NewMeetupBuilder()
	e.seed(mb)
	e.authorized(mb)
	e.generate(t, mb)
	_, err := verify(e, mb, "4821", mb.BuyerID)
	require.NoError(t, err)
	return mb
}

func TestDispatchCaptures(t *testing.T) {
	ctx := context.Background()

	t.Run("success: sends a queued capture once", func(t *testing.T) {
		e := newEnv(t)
		mb := verifiedSale(t, e)

		sent, err := e.maintenance.DispatchCaptures(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, sent)

		req, _ := e.uow.CaptureRequest(*mb.TransactionID)
		assert.Equal(t, shared.CaptureSent, req.Status)
		assert.Equal(t, 1, req.Attempts)
		assert.Equal(t, 1, e.gateway.CaptureCount(*mb.TransactionID))

		sent, err = e.maintenance.DispatchCaptures(ctx)
		require.NoError(t, err)
		assert.Zero(t, sent)
		assert.Equal(t, 1, e.gateway.CaptureCount(*mb.TransactionID))
	})

	t.Run("retry: transient failures back off and then give up", func(t *testing.T) {
		e := newEnv(t)
		mb := verifiedSale(t, e)
		e.gateway.SetCaptureError(*mb.TransactionID, payment.ErrNetwork)

		sent, err := e.maintenance.DispatchCaptures(ctx)
		require.NoError(t, err)
		assert.Zero(t, sent)
		req, _ := e.uow.CaptureRequest(*mb.TransactionID)
		assert.Equal(t, shared.CaptureQueued, req.Status)
		assert.Equal(t, e.clock.Now().Add(5*time.Second), req.RunAt)
		require.NotNil(t, req.LastError)

		// not yet due
		_, err = e.maintenance.DispatchCaptures(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, e.gateway.CaptureCount(*mb.TransactionID))

		e.clock.Add(5 * time.Second)
		_, err = e.maintenance.DispatchCaptures(ctx)
		require.NoError(t, err)
		req, _ = e.uow.CaptureRequest(*mb.TransactionID)
		assert.Equal(t, e.clock.Now().Add(10*time.Second), req.RunAt)

		e.clock.Add(10 * time.Second)
		_, err = e.maintenance.DispatchCaptures(ctx)
		require.NoError(t, err)
		req, _ = e.uow.CaptureRequest(*mb.TransactionID)
		assert.Equal(t, shared.CaptureFailed, req.Status, "abandoned after the attempt budget")
		assert.Equal(t, 3, e.gateway.CaptureCount(*mb.TransactionID))
		assert.Equal(t, meetup.StatusVerified, e.uow.Meetup(mb.ID).Status(), "the meetup waits for the payment status")

		applied, err := e.maintenance.ReconcileCaptures(ctx)
		require.NoError(t, err)
		assert.Zero(t, applied, "transaction still authorized")

		e.gateway.SetStatus(*mb.TransactionID, payment.StatusFailed)
		applied, err = e.maintenance.ReconcileCaptures(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, applied)
		assert.Equal(t, meetup.StatusFailed, e.uow.Meetup(mb.ID).Status())
	})

	t.Run("failure: rejected capture is not retried", func(t *testing.T) {
		e := newEnv(t)
		mb := verifiedSale(t, e)
		e.gateway.SetCaptureError(*mb.TransactionID, payment.ErrCaptureRejected)

		_, err := e.maintenance.DispatchCaptures(ctx)
		require.NoError(t, err)

		req, _ := e.uow.CaptureRequest(*mb.TransactionID)
		assert.Equal(t, shared.CaptureFailed, req.Status)
		assert.Equal(t, 1, req.Attempts)
		assert.Equal(t, meetup.StatusFailed, e.uow.Meetup(mb.ID).Status())
	})

	t.Run("failure: unknown transaction fails the meetup", func(t *testing.T) {
		e := newEnv(t)
		mb := verifiedSale(t, e)
		e.gateway.SetCaptureError(*mb.TransactionID, payment.ErrTransactionNotFound)

		_, err := e.maintenance.DispatchCaptures(ctx)
		require.NoError(t, err)
		assert.Equal(t, meetup.StatusFailed, e.uow.Meetup(mb.ID).Status())
	})
}

func TestReconcileCaptures(t *testing.T) {
	ctx := context.Background()

	t.Run("success: settles captures confirmed out of band", func(t *testing.T) {
		e := newEnv(t)
		mb := verifiedSale(t, e)
		e.gateway.SetCaptureOutcome(*mb.TransactionID, payment.StatusAuthorized)

		_, err := e.maintenance.DispatchCaptures(ctx)
		require.NoError(t, err)

		applied, err := e.maintenance.ReconcileCaptures(ctx)
		require.NoError(t, err)
		assert.Zero(t, applied, "still authorized")
		assert.Equal(t, meetup.StatusVerified, e.uow.Meetup(mb.ID).Status())

		e.gateway.SetStatus(*mb.TransactionID, payment.StatusCaptured)
		applied, err = e.maintenance.ReconcileCaptures(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, applied)
		assert.Equal(t, meetup.StatusCompleted, e.uow.Meetup(mb.ID).Status())

		applied, err = e.maintenance.ReconcileCaptures(ctx)
		require.NoError(t, err)
		assert.Zero(t, applied, "completed meetups drop out of the scan")
	})

	t.Run("failure: failed payment fails the meetup", func(t *testing.T) {
		e := newEnv(t)
		mb := verifiedSale(t, e)
		e.gateway.SetCaptureOutcome(*mb.TransactionID, payment.StatusFailed)

		_, err := e.maintenance.DispatchCaptures(ctx)
		require.NoError(t, err)

		applied, err := e.maintenance.ReconcileCaptures(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, applied)
		assert.Equal(t, meetup.StatusFailed, e.uow.Meetup(mb.ID).Status())
	})

	t.Run("success: abandoned request settles from the transaction status", func(t *testing.T) {
		e := newEnv(t)
		mb := verifiedSale(t, e)
		e.gateway.SetCaptureError(*mb.TransactionID, payment.ErrNetwork)
		for i := 0; i < 3; i++ {
			_, err := e.maintenance.DispatchCaptures(ctx)
			require.NoError(t, err)
			e.clock.Add(time.Minute)
		}
		req, _ := e.uow.CaptureRequest(*mb.TransactionID)
		require.Equal(t, shared.CaptureFailed, req.Status)

		e.gateway.SetStatus(*mb.TransactionID, payment.StatusCaptured)
		applied, err := e.maintenance.ReconcileCaptures(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, applied)
		assert.Equal(t, meetup.StatusCompleted, e.uow.Meetup(mb.ID).Status())
	})

	t.Run("skip: unsent requests are left to the dispatcher", func(t *testing.T) {
		e := newEnv(t)
		mb := verifiedSale(t, e)
		e.gateway.SetStatus(*mb.TransactionID, payment.StatusCaptured)

		applied, err := e.maintenance.ReconcileCaptures(ctx)
		require.NoError(t, err)
		assert.Zero(t, applied)
	})
}

func TestExpireStaleMeetups(t *testing.T) {
	ctx := context.Background()

	e := newEnv(t)
	stale := builder.NewMeetupBuilder()
	fresh := builder.NewMeetupBuilder()
	idle := builder.NewMeetupBuilder()
	e.seed(stale, fresh, idle)

	e.generate(t, stale)
	e.clock.Add(2 * time.Hour)
	e.generate(t, fresh)

	expired, err := e.maintenance.ExpireStaleMeetups(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, expired)

	assert.Equal(t, meetup.StatusExpired, e.uow.Meetup(stale.ID).Status())
	assert.Equal(t, meetup.StatusCodeActive, e.uow.Meetup(fresh.ID).Status())
	assert.Equal(t, meetup.StatusCreated, e.uow.Meetup(idle.ID).Status(), "meetups without codes are not swept")
	for _, c := range e.uow.Codes(stale.ID) {
		assert.False(t, c.IsOpen())
	}

	expired, err = e.maintenance.ExpireStaleMeetups(ctx)
	require.NoError(t, err)
	assert.Zero(t, expired)
}
