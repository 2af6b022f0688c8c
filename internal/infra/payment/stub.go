package payment

import (
	"context"
	"sync"

	"meetup-capture/internal/domain/payment"

	"github.com/google/uuid"
)

// StubGateway keeps transactions in memory. Capturing an authorized transaction
// settles it immediately unless a capture outcome has been scripted.
type StubGateway struct {
	mu       sync.Mutex
	statuses map[uuid.UUID]payment.Status
	outcome  map[uuid.UUID]payment.Status
	captures map[uuid.UUID]int
	failures map[uuid.UUID]error
}

func NewStubGateway() *StubGateway {
	return &StubGateway{
		statuses: make(map[uuid.UUID]payment.Status),
		outcome:  make(map[uuid.UUID]payment.Status),
		captures: make(map[uuid.UUID]int),
		failures: make(map[uuid.UUID]error),
	}
}

func (s *StubGateway) SetStatus(id uuid.UUID, status payment.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses[id] = status
}

// SetCaptureOutcome makes the next captures leave the transaction in status.
// Use StatusAuthorized to simulate a capture that settles out of band later.
func (s *StubGateway) SetCaptureOutcome(id uuid.UUID, status payment.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outcome[id] = status
}

// SetCaptureError makes capture calls fail with err until it is cleared with nil.
func (s *StubGateway) SetCaptureError(id uuid.UUID, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, id)
		return
	}
	s.failures[id] = err
}

func (s *StubGateway) CaptureCount(id uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.captures[id]
}

func (s *StubGateway) GetTransactionStatus(_ context.Context, id uuid.UUID) (*payment.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	status, ok := s.statuses[id]
	if !ok {
		return nil, payment.ErrTransactionNotFound
	}
	return &payment.Transaction{ID: id, PaymentStatus: status}, nil
}

func (s *StubGateway) RequestCapture(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	status, ok := s.statuses[id]
	if !ok {
		return payment.ErrTransactionNotFound
	}
	s.captures[id]++
	if err := s.failures[id]; err != nil {
		return err
	}
	if status != payment.StatusAuthorized {
		return nil
	}
	if next, scripted := s.outcome[id]; scripted {
		s.statuses[id] = next
		return nil
	}
	s.statuses[id] = payment.StatusCaptured
	return nil
}
