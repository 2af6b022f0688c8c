//go:build unit || e2e

package builder

import (
	"time"

	"meetup-capture/internal/domain/verification"

	"github.com/google/uuid"
)

// FakeMatcher compares digests as plain values so tests can read them.
type FakeMatcher struct{}

func (FakeMatcher) Digest(_ string, value string) string {
	return "digest:" + value
}

func (f FakeMatcher) Matches(meetupID, value, digest string) bool {
	return f.Digest(meetupID, value) == digest
}

type CodeBuilder struct {
	ID           uuid.UUID
	MeetupID     uuid.UUID
	CodeType     string
	Value        string
	CreatedBy    uuid.UUID
	CreatedAt    time.Time
	ExpiresAt    time.Time
	ConsumedAt   *time.Time
	ConsumedBy   *uuid.UUID
	SupersededAt *time.Time
}

func NewCodeBuilder(m *MeetupBuilder) *CodeBuilder {
	return &CodeBuilder{
		ID:        uuid.New(),
		MeetupID:  m.ID,
		CodeType:  "pin",
		Value:     "0427",
		CreatedBy: m.SellerID,
		CreatedAt: m.CreatedAt,
		ExpiresAt: m.CreatedAt.Add(10 * time.Minute),
	}
}

func (c *CodeBuilder) With(mutate func(*CodeBuilder)) *CodeBuilder {
	mutate(c)
	return c
}

func (c *CodeBuilder) WithValue(value string) *CodeBuilder {
	c.Value = value
	return c
}

func (c *CodeBuilder) Consumed(by uuid.UUID, at time.Time) *CodeBuilder {
	c.ConsumedAt = &at
	c.ConsumedBy = &by
	return c
}

func (c *CodeBuilder) Superseded(at time.Time) *CodeBuilder {
	c.SupersededAt = &at
	c.ExpiresAt = at
	return c
}

// Build methods
func (c *CodeBuilder) BuildDomain() *verification.Code {
	return verification.ReconstructCode(
		c.ID,
		c.MeetupID,
		verification.CodeType(c.CodeType),
		FakeMatcher{}.Digest(c.MeetupID.String(), c.Value),
		c.CreatedBy,
		c.CreatedAt,
		c.ExpiresAt,
		c.ConsumedAt,
		c.ConsumedBy,
		c.SupersededAt,
	)
}
