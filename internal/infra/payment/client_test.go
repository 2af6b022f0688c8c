//go:build unit

package payment_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	domain "meetup-capture/internal/domain/payment"
	"meetup-capture/internal/infra/payment"
	"meetup-capture/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, h http.HandlerFunc) *payment.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return payment.NewClient(payment.ClientConfig{BaseURL: srv.URL + "/", APIKey: "k", Timeout: time.Second})
}

func TestClient_GetTransactionStatus(t *testing.T) {
	txID := uuid.New()

	t.Run("decodes status", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/transactions/"+txID.String(), r.URL.Path)
			assert.Equal(t, "Bearer k", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"` + txID.String() + `","paymentStatus":"authorized"}`))
		})

		tx, err := c.GetTransactionStatus(context.Background(), txID)
		require.NoError(t, err)
		assert.Equal(t, txID, tx.ID)
		assert.Equal(t, domain.StatusAuthorized, tx.PaymentStatus)
	})

	t.Run("error mapping", func(t *testing.T) {
		cases := []struct {
			name   string
			status int
			want   error
		}{
			{name: "not found", status: http.StatusNotFound, want: domain.ErrTransactionNotFound},
			{name: "gateway timeout", status: http.StatusGatewayTimeout, want: domain.ErrTimeout},
			{name: "server error", status: http.StatusInternalServerError, want: domain.ErrNetwork},
			{name: "bad request", status: http.StatusBadRequest, want: domain.ErrCaptureRejected},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
					w.WriteHeader(tc.status)
				})
				_, err := c.GetTransactionStatus(context.Background(), txID)
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.want), "got %v", err)
			})
		}
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"paymentStatus":"refunded"}`))
		})
		_, err := c.GetTransactionStatus(context.Background(), txID)
		assert.True(t, errs.Is(err, domain.ErrInvalidStatus))
	})

	t.Run("deadline maps to timeout", func(t *testing.T) {
		c := newClient(t, func(_ http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		})
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err := c.GetTransactionStatus(ctx, txID)
		assert.True(t, errs.Is(err, domain.ErrTimeout), "got %v", err)
	})

	t.Run("unreachable maps to network", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()
		c := payment.NewClient(payment.ClientConfig{BaseURL: url, Timeout: time.Second})
		_, err := c.GetTransactionStatus(context.Background(), txID)
		assert.True(t, errs.Is(err, domain.ErrNetwork), "got %v", err)
	})
}

func TestClient_RequestCapture(t *testing.T) {
	txID := uuid.New()

	t.Run("sends idempotency key", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/transactions/"+txID.String()+"/capture", r.URL.Path)
			assert.Equal(t, "capture-"+txID.String(), r.Header.Get("Idempotency-Key"))
			w.WriteHeader(http.StatusAccepted)
		})
		require.NoError(t, c.RequestCapture(context.Background(), txID))
	})

	t.Run("conflict is an ack", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusConflict)
		})
		require.NoError(t, c.RequestCapture(context.Background(), txID))
	})

	t.Run("unprocessable is rejected", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte("not authorized"))
		})
		err := c.RequestCapture(context.Background(), txID)
		assert.True(t, errs.Is(err, domain.ErrCaptureRejected))
		assert.Contains(t, err.Error(), "not authorized")
	})
}

func TestCachedGateway(t *testing.T) {
	txID := uuid.New()
	var calls atomic.Int32
	status := atomic.Value{}
	status.Store("authorized")

	c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"paymentStatus":"` + status.Load().(string) + `"}`))
	})
	gw, err := payment.WrapWithStatusCache(c, 8)
	require.NoError(t, err)

	for range 2 {
		tx, err := gw.GetTransactionStatus(context.Background(), txID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusAuthorized, tx.PaymentStatus)
	}
	assert.Equal(t, int32(2), calls.Load(), "non-final statuses are not cached")

	status.Store("captured")
	for range 3 {
		tx, err := gw.GetTransactionStatus(context.Background(), txID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCaptured, tx.PaymentStatus)
	}
	assert.Equal(t, int32(3), calls.Load())
}

func TestStubGateway(t *testing.T) {
	ctx := context.Background()
	stub := payment.NewStubGateway()
	txID := uuid.New()

	_, err := stub.GetTransactionStatus(ctx, txID)
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)

	stub.SetStatus(txID, domain.StatusAuthorized)
	require.NoError(t, stub.RequestCapture(ctx, txID))
	tx, err := stub.GetTransactionStatus(ctx, txID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCaptured, tx.PaymentStatus)

	require.NoError(t, stub.RequestCapture(ctx, txID))
	assert.Equal(t, 2, stub.CaptureCount(txID))

	held := uuid.New()
	stub.SetStatus(held, domain.StatusAuthorized)
	stub.SetCaptureOutcome(held, domain.StatusFailed)
	require.NoError(t, stub.RequestCapture(ctx, held))
	tx, err = stub.GetTransactionStatus(ctx, held)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFailed, tx.PaymentStatus)

	flaky := uuid.New()
	stub.SetStatus(flaky, domain.StatusAuthorized)
	stub.SetCaptureError(flaky, domain.ErrNetwork)
	assert.ErrorIs(t, stub.RequestCapture(ctx, flaky), domain.ErrNetwork)
	stub.SetCaptureError(flaky, nil)
	require.NoError(t, stub.RequestCapture(ctx, flaky))
	assert.Equal(t, 2, stub.CaptureCount(flaky))
}
