package meetup

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidKind       = errors.New("invalid meetup kind")
	ErrInvalidStatus     = errors.New("invalid meetup status")
	ErrSameParty         = errors.New("seller and buyer must be different users")
	ErrNotParticipant    = errors.New("user is not a participant of the meetup")
	ErrNotCodeHolder     = errors.New("user cannot show the code for this meetup")
	ErrAlreadyTerminal   = errors.New("meetup is already in a terminal state")
	ErrInvalidState      = errors.New("meetup does not accept codes in its current state")
	ErrInvalidTransition = errors.New("invalid meetup status transition")
	ErrNotPaired         = errors.New("meetups are not a pickup/return pair")
)

type AttemptLimit struct {
	Max    int
	Window time.Duration
}

// Meetup is one physical exchange between seller and buyer.
// Only status and the failed-attempt counter change after creation.
type Meetup struct {
	id             uuid.UUID
	kind           Kind
	sellerID       uuid.UUID
	buyerID        uuid.UUID
	transactionID  *uuid.UUID
	status         Status
	failedAttempts int
	lastFailedAt   *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

func NewMeetup(kind Kind, sellerID, buyerID uuid.UUID, transactionID *uuid.UUID, now time.Time) (*Meetup, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if sellerID == buyerID {
		return nil, ErrSameParty
	}
	return &Meetup{
		id:            uuid.New(),
		kind:          kind,
		sellerID:      sellerID,
		buyerID:       buyerID,
		transactionID: transactionID,
		status:        StatusCreated,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructMeetup(
	id uuid.UUID,
	kind Kind,
	sellerID, buyerID uuid.UUID,
	transactionID *uuid.UUID,
	status Status,
	failedAttempts int,
	lastFailedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Meetup {
	return &Meetup{
		id:             id,
		kind:           kind,
		sellerID:       sellerID,
		buyerID:        buyerID,
		transactionID:  transactionID,
		status:         status,
		failedAttempts: failedAttempts,
		lastFailedAt:   lastFailedAt,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (m *Meetup) ID() uuid.UUID             { return m.id }
func (m *Meetup) Kind() Kind                { return m.kind }
func (m *Meetup) SellerID() uuid.UUID       { return m.sellerID }
func (m *Meetup) BuyerID() uuid.UUID        { return m.buyerID }
func (m *Meetup) TransactionID() *uuid.UUID { return m.transactionID }
func (m *Meetup) Status() Status            { return m.status }
func (m *Meetup) FailedAttempts() int       { return m.failedAttempts }
func (m *Meetup) LastFailedAt() *time.Time  { return m.lastFailedAt }
func (m *Meetup) CreatedAt() time.Time      { return m.createdAt }
func (m *Meetup) UpdatedAt() time.Time      { return m.updatedAt }

func (m *Meetup) IsParticipant(userID uuid.UUID) bool {
	_, ok := m.PartyOf(userID)
	return ok
}

func (m *Meetup) PartyOf(userID uuid.UUID) (Party, bool) {
	switch userID {
	case m.sellerID:
		return PartySeller, true
	case m.buyerID:
		return PartyBuyer, true
	default:
		return "", false
	}
}

// CodeHolder is the party expected to show the code, or "" when either may.
// The current holder of the item shows it: the owner at pickup, the renter at return.
func (m *Meetup) CodeHolder() Party {
	switch m.kind {
	case KindPickup:
		return PartySeller
	case KindReturn:
		return PartyBuyer
	default:
		return ""
	}
}

func (m *Meetup) CanShowCode(userID uuid.UUID) error {
	party, ok := m.PartyOf(userID)
	if !ok {
		return ErrNotParticipant
	}
	if holder := m.CodeHolder(); holder != "" && holder != party {
		return ErrNotCodeHolder
	}
	return nil
}

func (m *Meetup) EnsureAcceptsCodes() error {
	if m.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	if m.status != StatusCreated && m.status != StatusCodeActive {
		return ErrInvalidState
	}
	return nil
}

func (m *Meetup) HasTransaction() bool {
	return m.transactionID != nil
}

// RequiresCapture reports whether a successful verification releases the payment.
// Rentals capture at return, never at pickup.
func (m *Meetup) RequiresCapture() bool {
	if !m.HasTransaction() {
		return false
	}
	return m.kind == KindSale || m.kind == KindReturn
}

func (m *Meetup) IsPairedWith(other *Meetup) bool {
	if other == nil || m.transactionID == nil || other.transactionID == nil {
		return false
	}
	if *m.transactionID != *other.transactionID {
		return false
	}
	return (m.kind == KindPickup && other.kind == KindReturn) ||
		(m.kind == KindReturn && other.kind == KindPickup)
}

func (m *Meetup) ActivateCode(now time.Time) error {
	if err := m.EnsureAcceptsCodes(); err != nil {
		return err
	}
	return m.transition(StatusCodeActive, now)
}

func (m *Meetup) CompleteVerification(now time.Time) error {
	if m.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	if m.status != StatusCodeActive {
		return ErrInvalidState
	}
	switch m.kind {
	case KindSale:
		return m.transition(StatusVerified, now)
	case KindPickup:
		return m.transition(StatusInProgress, now)
	case KindReturn:
		return m.transition(StatusCompleted, now)
	default:
		return ErrInvalidKind
	}
}

// CompleteRental closes a pickup meetup once its paired return was verified.
func (m *Meetup) CompleteRental(ret *Meetup, now time.Time) error {
	if m.kind != KindPickup || !m.IsPairedWith(ret) {
		return ErrNotPaired
	}
	return m.transitionFrom(StatusInProgress, StatusCompleted, now)
}

func (m *Meetup) ConfirmCapture(now time.Time) error {
	return m.transitionFrom(StatusVerified, StatusCompleted, now)
}

func (m *Meetup) FailCapture(now time.Time) error {
	return m.transitionFrom(StatusVerified, StatusFailed, now)
}

func (m *Meetup) Expire(now time.Time) error {
	return m.transitionFrom(StatusCodeActive, StatusExpired, now)
}

// IsLockedOut reports whether the meetup hit the attempt limit within the window.
// A non-positive window never lapses: the lock holds until a successful verification.
func (m *Meetup) IsLockedOut(now time.Time, limit AttemptLimit) bool {
	if limit.Max <= 0 || m.failedAttempts < limit.Max || m.lastFailedAt == nil {
		return false
	}
	if limit.Window <= 0 {
		return true
	}
	return now.Before(m.lastFailedAt.Add(limit.Window))
}

// RecordFailedAttempt counts consecutive mismatches; a streak older than the window starts over.
func (m *Meetup) RecordFailedAttempt(now time.Time, limit AttemptLimit) {
	if limit.Window > 0 && m.lastFailedAt != nil && !now.Before(m.lastFailedAt.Add(limit.Window)) {
		m.failedAttempts = 0
	}
	m.failedAttempts++
	m.lastFailedAt = &now
	m.updatedAt = now
}

func (m *Meetup) ResetAttempts() {
	m.failedAttempts = 0
	m.lastFailedAt = nil
}

func (m *Meetup) transition(next Status, now time.Time) error {
	if m.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	if !m.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	m.status = next
	m.updatedAt = now
	return nil
}

func (m *Meetup) transitionFrom(from, next Status, now time.Time) error {
	if m.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	if m.status != from {
		return ErrInvalidTransition
	}
	return m.transition(next, now)
}
