package verification

import (
	"time"

	"meetup-capture/internal/domain/meetup"

	"github.com/google/uuid"
)

type Matcher interface {
	Matches(meetupID, value, digest string) bool
}

type Attempt struct {
	Value       string
	SubmittedBy uuid.UUID
	At          time.Time
}

// Verify decides the outcome of one submitted value against every code ever issued
// for the meetup. On success it consumes the returned code and resets the meetup's
// attempt counter; the caller still has to advance the meetup.
//
// ErrCodeMismatch is the only failure that mutates the meetup (its attempt counter),
// and that change must be persisted even though the attempt fails.
func Verify(m *meetup.Meetup, codes []*Code, a Attempt, limit meetup.AttemptLimit, matcher Matcher) (*Code, error) {
	if !m.IsParticipant(a.SubmittedBy) {
		return nil, meetup.ErrNotParticipant
	}
	if m.IsLockedOut(a.At, limit) {
		return nil, ErrRateLimited
	}

	meetupID := m.ID().String()
	var active *Code
	for _, c := range codes {
		switch {
		case c.IsConsumed():
			if matcher.Matches(meetupID, a.Value, c.Digest()) {
				return nil, ErrAlreadyConsumed
			}
		case c.IsActive(a.At):
			active = c
		}
	}

	if m.Status().IsTerminal() {
		return nil, meetup.ErrAlreadyTerminal
	}
	switch m.Status() {
	case meetup.StatusCodeActive:
	case meetup.StatusCreated:
		// nothing issued yet reads the same as an expired code
		return nil, ErrCodeExpired
	default:
		return nil, meetup.ErrInvalidState
	}

	if active == nil {
		return nil, ErrCodeExpired
	}
	if !matcher.Matches(meetupID, a.Value, active.Digest()) {
		if matchesStale(codes, active, meetupID, a.Value, matcher) {
			return nil, ErrCodeExpired
		}
		m.RecordFailedAttempt(a.At, limit)
		return nil, ErrCodeMismatch
	}

	if a.SubmittedBy == active.CreatedBy() {
		return nil, ErrSelfVerification
	}
	if err := active.Consume(a.SubmittedBy, a.At); err != nil {
		return nil, err
	}
	m.ResetAttempts()
	return active, nil
}

// matchesStale reports a value that belongs to an older, superseded or expired code.
// Such a submission is a stale screen rather than a guess.
func matchesStale(codes []*Code, active *Code, meetupID, value string, matcher Matcher) bool {
	for _, c := range codes {
		if c == active || c.IsConsumed() {
			continue
		}
		if matcher.Matches(meetupID, value, c.Digest()) {
			return true
		}
	}
	return false
}
