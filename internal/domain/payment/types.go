package payment

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus       = errors.New("invalid payment status")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrNetwork             = errors.New("transaction service unreachable")
	ErrTimeout             = errors.New("transaction service timed out")
	ErrCaptureRejected     = errors.New("capture rejected by transaction service")
)

// Status mirrors the external Transaction service; this service never owns it.
type Status string

const (
	StatusPending    Status = "pending"
	StatusAuthorized Status = "authorized"
	StatusCaptured   Status = "captured"
	StatusFailed     Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAuthorized, StatusCaptured, StatusFailed:
		return true
	default:
		return false
	}
}

// IsFinal reports statuses that can no longer change.
func (s Status) IsFinal() bool {
	return s == StatusCaptured || s == StatusFailed
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

type Transaction struct {
	ID            uuid.UUID
	PaymentStatus Status
}
