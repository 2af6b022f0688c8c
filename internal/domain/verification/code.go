package verification

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCodeType   = errors.New("invalid code type")
	ErrCodeExpired       = errors.New("no active verification code")
	ErrCodeMismatch      = errors.New("verification code does not match")
	ErrSelfVerification  = errors.New("code cannot be verified by the user who generated it")
	ErrAlreadyConsumed   = errors.New("verification code was already used")
	ErrRateLimited       = errors.New("too many failed verification attempts")
	ErrInvalidCodeFormat = errors.New("invalid verification code format")
)

type CodeType string

const (
	CodeTypePin CodeType = "pin"
	CodeTypeQR  CodeType = "qr"
)

func (t CodeType) String() string {
	return string(t)
}

func (t CodeType) IsValid() bool {
	switch t {
	case CodeTypePin, CodeTypeQR:
		return true
	default:
		return false
	}
}

func NewCodeType(s string) (CodeType, error) {
	t := CodeType(s)
	if !t.IsValid() {
		return "", ErrInvalidCodeType
	}
	return t, nil
}

// Code is a single-use, time-boxed secret. Only its digest is persisted.
// It is mutated once on consumption and otherwise only superseded, never deleted.
type Code struct {
	id           uuid.UUID
	meetupID     uuid.UUID
	codeType     CodeType
	digest       string
	createdBy    uuid.UUID
	createdAt    time.Time
	expiresAt    time.Time
	consumedAt   *time.Time
	consumedBy   *uuid.UUID
	supersededAt *time.Time
}

func IssueCode(meetupID uuid.UUID, codeType CodeType, digest string, createdBy uuid.UUID, now time.Time, ttl time.Duration) (*Code, error) {
	if !codeType.IsValid() {
		return nil, ErrInvalidCodeType
	}
	return &Code{
		id:        uuid.New(),
		meetupID:  meetupID,
		codeType:  codeType,
		digest:    digest,
		createdBy: createdBy,
		createdAt: now,
		expiresAt: now.Add(ttl),
	}, nil
}

func ReconstructCode(
	id, meetupID uuid.UUID,
	codeType CodeType,
	digest string,
	createdBy uuid.UUID,
	createdAt, expiresAt time.Time,
	consumedAt *time.Time,
	consumedBy *uuid.UUID,
	supersededAt *time.Time,
) *Code {
	return &Code{
		id:           id,
		meetupID:     meetupID,
		codeType:     codeType,
		digest:       digest,
		createdBy:    createdBy,
		createdAt:    createdAt,
		expiresAt:    expiresAt,
		consumedAt:   consumedAt,
		consumedBy:   consumedBy,
		supersededAt: supersededAt,
	}
}

func (c *Code) ID() uuid.UUID            { return c.id }
func (c *Code) MeetupID() uuid.UUID      { return c.meetupID }
func (c *Code) Type() CodeType           { return c.codeType }
func (c *Code) Digest() string           { return c.digest }
func (c *Code) CreatedBy() uuid.UUID     { return c.createdBy }
func (c *Code) CreatedAt() time.Time     { return c.createdAt }
func (c *Code) ExpiresAt() time.Time     { return c.expiresAt }
func (c *Code) ConsumedAt() *time.Time   { return c.consumedAt }
func (c *Code) ConsumedBy() *uuid.UUID   { return c.consumedBy }
func (c *Code) SupersededAt() *time.Time { return c.supersededAt }

func (c *Code) IsConsumed() bool   { return c.consumedAt != nil }
func (c *Code) IsSuperseded() bool { return c.supersededAt != nil }

func (c *Code) IsExpired(now time.Time) bool {
	return !now.Before(c.expiresAt)
}

func (c *Code) IsActive(now time.Time) bool {
	return !c.IsConsumed() && !c.IsSuperseded() && !c.IsExpired(now)
}

// IsOpen reports codes that still occupy the meetup's single active slot in storage,
// regardless of TTL.
func (c *Code) IsOpen() bool {
	return !c.IsConsumed() && !c.IsSuperseded()
}

func (c *Code) Consume(by uuid.UUID, now time.Time) error {
	if c.IsConsumed() {
		return ErrAlreadyConsumed
	}
	if !c.IsActive(now) {
		return ErrCodeExpired
	}
	c.consumedAt = &now
	c.consumedBy = &by
	return nil
}

// Supersede logically expires an open code so it can never validate again.
func (c *Code) Supersede(now time.Time) {
	if !c.IsOpen() {
		return
	}
	c.supersededAt = &now
	if now.Before(c.expiresAt) {
		c.expiresAt = now
	}
}
