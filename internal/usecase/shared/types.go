package shared

import (
	"time"

	"github.com/google/uuid"
)

type MeetupSnapshot struct {
	ID             uuid.UUID
	Kind           string
	SellerID       uuid.UUID
	BuyerID        uuid.UUID
	TransactionID  *uuid.UUID
	Status         string
	FailedAttempts int
	UpdatedAt      time.Time
}

type CaptureRequestStatus string

const (
	CaptureQueued CaptureRequestStatus = "queued"
	CaptureSent   CaptureRequestStatus = "sent"
	CaptureFailed CaptureRequestStatus = "failed"
)

type CaptureRequest struct {
	ID            uuid.UUID
	TransactionID uuid.UUID
	MeetupID      uuid.UUID
	Status        CaptureRequestStatus
	Attempts      int
	LastError     *string
	RunAt         time.Time
}

// CaptureSnapshot pairs a verified meetup with a capture request that left the queue,
// whether it was sent or abandoned.
type CaptureSnapshot struct {
	MeetupID      uuid.UUID
	TransactionID uuid.UUID
	Status        CaptureRequestStatus
	UpdatedAt     time.Time
}
