// Package payment talks to the external Transaction service that owns payment state.
package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"meetup-capture/internal/domain/payment"
	"meetup-capture/internal/pkg/errs"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

const maxErrorBody = 512

type ClientConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(cfg ClientConfig) *Client {
	return NewClientWithHTTP(cfg, &http.Client{Timeout: cfg.Timeout})
}

func NewClientWithHTTP(cfg ClientConfig, hc *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    hc,
	}
}

type transactionResponse struct {
	ID            uuid.UUID `json:"id"`
	PaymentStatus string    `json:"paymentStatus"`
}

func (c *Client) GetTransactionStatus(ctx context.Context, id uuid.UUID) (*payment.Transaction, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/transactions/"+id.String())
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classifyTransportErr(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, statusErr(resp, "get transaction")
	}

	var out transactionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errs.Wrap(err, "decode transaction response")
	}
	status, err := payment.NewStatus(out.PaymentStatus)
	if err != nil {
		return nil, errs.Wrap(err, fmt.Sprintf("transaction %s returned status %q", id, out.PaymentStatus))
	}
	return &payment.Transaction{ID: id, PaymentStatus: status}, nil
}

// RequestCapture is safe to repeat; the service deduplicates on the idempotency key
// and answers 409 once the transaction is already captured.
func (c *Client) RequestCapture(ctx context.Context, id uuid.UUID) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/transactions/"+id.String()+"/capture")
	if err != nil {
		return err
	}
	req.Header.Set("Idempotency-Key", "capture-"+id.String())

	resp, err := c.http.Do(req)
	if err != nil {
		return classifyTransportErr(err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusConflict:
		slog.Info("capture already acknowledged", "transaction_id", id)
		return nil
	default:
		return statusErr(resp, "request capture")
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, errs.Wrap(err, "build transaction service request")
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	return req, nil
}

func statusErr(resp *http.Response, op string) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	err := errors.Newf("%s failed: %s: %s", op, resp.Status, strings.TrimSpace(string(body)))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errs.Mark(err, payment.ErrTransactionNotFound)
	case resp.StatusCode == http.StatusGatewayTimeout || resp.StatusCode == http.StatusRequestTimeout:
		return errs.Mark(err, payment.ErrTimeout)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return errs.Mark(err, payment.ErrCaptureRejected)
	default:
		return errs.Mark(err, payment.ErrNetwork)
	}
}

func classifyTransportErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return errs.Mark(err, payment.ErrTimeout)
	}
	var te interface{ Timeout() bool }
	if errors.As(err, &te) && te.Timeout() {
		return errs.Mark(err, payment.ErrTimeout)
	}
	return errs.Mark(err, payment.ErrNetwork)
}
