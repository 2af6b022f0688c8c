//go:build unit || e2e

package builder

import (
	"time"

	"meetup-capture/internal/domain/meetup"

	"github.com/google/uuid"
)

type MeetupBuilder struct {
	ID             uuid.UUID
	Kind           string
	SellerID       uuid.UUID
	BuyerID        uuid.UUID
	TransactionID  *uuid.UUID
	Status         string
	FailedAttempts int
	LastFailedAt   *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewMeetupBuilder() *MeetupBuilder {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	txID := uuid.New()
	return &MeetupBuilder{
		ID:            uuid.New(),
		Kind:          "sale",
		SellerID:      uuid.New(),
		BuyerID:       uuid.New(),
		TransactionID: &txID,
		Status:        "created",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (m *MeetupBuilder) With(mutate func(*MeetupBuilder)) *MeetupBuilder {
	mutate(m)
	return m
}

func (m *MeetupBuilder) WithKind(kind string) *MeetupBuilder {
	m.Kind = kind
	return m
}

func (m *MeetupBuilder) WithStatus(status string) *MeetupBuilder {
	m.Status = status
	return m
}

func (m *MeetupBuilder) WithoutTransaction() *MeetupBuilder {
	m.TransactionID = nil
	return m
}

// PairedReturn builds the return leg of a rental whose pickup is this builder.
func (m *MeetupBuilder) PairedReturn() *MeetupBuilder {
	return &MeetupBuilder{
		ID:            uuid.New(),
		Kind:          "return",
		SellerID:      m.SellerID,
		BuyerID:       m.BuyerID,
		TransactionID: m.TransactionID,
		Status:        "created",
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// Build methods
func (m *MeetupBuilder) BuildNew() (*meetup.Meetup, error) {
	kind, err := meetup.NewKind(m.Kind)
	if err != nil {
		return nil, err
	}
	return meetup.NewMeetup(kind, m.SellerID, m.BuyerID, m.TransactionID, m.CreatedAt)
}

func (m *MeetupBuilder) BuildDomain() *meetup.Meetup {
	return meetup.ReconstructMeetup(
		m.ID,
		meetup.Kind(m.Kind),
		m.SellerID,
		m.BuyerID,
		m.TransactionID,
		meetup.Status(m.Status),
		m.FailedAttempts,
		m.LastFailedAt,
		m.CreatedAt,
		m.UpdatedAt,
	)
}
