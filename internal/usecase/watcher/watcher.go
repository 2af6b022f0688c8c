// Package watcher polls the Transaction service until a capture settles.
//
// A watch ends in exactly one of three callbacks, or in none when it is
// cancelled first. Poll failures are logged and spend an attempt; they never
// end the watch early.
package watcher

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"meetup-capture/internal/domain/payment"

	"github.com/google/uuid"
)

type Outcome int32

const (
	OutcomePending Outcome = iota
	OutcomeCaptured
	OutcomeFailed
	OutcomeTimedOut
	OutcomeCancelled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCaptured:
		return "captured"
	case OutcomeFailed:
		return "failed"
	case OutcomeTimedOut:
		return "timeout"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "pending"
	}
}

type StatusSource interface {
	GetTransactionStatus(ctx context.Context, transactionID uuid.UUID) (*payment.Transaction, error)
}

// Callbacks run on the watch goroutine. They must not call Cancel on their own handle.
type Callbacks struct {
	OnStatus   func(payment.Status)
	OnCaptured func()
	OnFailed   func()
	OnTimeout  func()
}

type Config struct {
	Interval time.Duration
	Attempts int
}

type Watcher struct {
	source StatusSource
	cfg    Config
}

func New(source StatusSource, cfg Config) *Watcher {
	return &Watcher{source: source, cfg: cfg}
}

const (
	stateRunning int32 = iota
	stateSettled
)

type Handle struct {
	state   atomic.Int32
	outcome atomic.Int32
	mu      sync.Mutex
	stop    context.CancelFunc
	done    chan struct{}
}

// Cancel stops the watch. It returns false when a terminal callback already won;
// once it returns, no callback is running or will run.
func (h *Handle) Cancel() bool {
	won := h.state.CompareAndSwap(stateRunning, stateSettled)
	if won {
		h.outcome.Store(int32(OutcomeCancelled))
	}
	h.stop()
	// wait out a callback that is already in flight
	h.mu.Lock()
	defer h.mu.Unlock()
	return won
}

func (h *Handle) Done() <-chan struct{} {
	return h.done
}

func (h *Handle) Outcome() Outcome {
	return Outcome(h.outcome.Load())
}

func (h *Handle) settle(o Outcome, fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.state.CompareAndSwap(stateRunning, stateSettled) {
		return
	}
	h.outcome.Store(int32(o))
	if fn != nil {
		fn()
	}
}

func (h *Handle) progress(fn func(payment.Status), s payment.Status) {
	if fn == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.state.Load() != stateRunning {
		return
	}
	fn(s)
}

// Watch returns immediately; polling happens on its own goroutine. The first poll
// is immediate, so the whole budget fits in Attempts × Interval.
func (w *Watcher) Watch(ctx context.Context, transactionID uuid.UUID, cb Callbacks) *Handle {
	ctx, stop := context.WithCancel(ctx)
	h := &Handle{stop: stop, done: make(chan struct{})}
	go w.run(ctx, h, transactionID, cb)
	return h
}

func (w *Watcher) run(ctx context.Context, h *Handle, transactionID uuid.UUID, cb Callbacks) {
	defer close(h.done)
	defer h.stop()

	ticker := time.NewTicker(w.cfg.Interval)
	defer ticker.Stop()

	for attempt := 1; attempt <= w.cfg.Attempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				h.settle(OutcomeCancelled, nil)
				return
			case <-ticker.C:
			}
		} else if ctx.Err() != nil {
			h.settle(OutcomeCancelled, nil)
			return
		}

		txn, err := w.source.GetTransactionStatus(ctx, transactionID)
		if err != nil {
			if ctx.Err() != nil {
				h.settle(OutcomeCancelled, nil)
				return
			}
			slog.Warn("capture poll failed",
				"transaction_id", transactionID,
				"attempt", attempt,
				"error", err.Error())
			continue
		}

		h.progress(cb.OnStatus, txn.PaymentStatus)
		switch txn.PaymentStatus {
		case payment.StatusCaptured:
			h.settle(OutcomeCaptured, cb.OnCaptured)
			return
		case payment.StatusFailed:
			h.settle(OutcomeFailed, cb.OnFailed)
			return
		}
	}

	h.settle(OutcomeTimedOut, cb.OnTimeout)
}
