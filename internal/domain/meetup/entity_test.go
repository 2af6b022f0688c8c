//go:build unit

package meetup_test

import (
	"testing"
	"time"

	"meetup-capture/internal/domain/meetup"
	"meetup-capture/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(meetup.Meetup{}),
	cmpopts.EquateEmpty(),
}

var limit = meetup.AttemptLimit{Max: 5, Window: 15 * time.Minute}

func TestNewMeetup(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewMeetupBuilder()
		actual, err := b.BuildNew()
		require.NoError(t, err)

		kind, _ := meetup.NewKind("sale")
		expected, _ := meetup.NewMeetup(kind, b.SellerID, b.BuyerID, b.TransactionID, b.CreatedAt)
		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("Meetup mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, meetup.StatusCreated, actual.Status())
		assert.Zero(t, actual.FailedAttempts())
		assert.Nil(t, actual.LastFailedAt())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.MeetupBuilder)
			errIs  error
		}{
			{name: "pickup ok", mutate: func(b *builder.MeetupBuilder) { b.WithKind("pickup") }},
			{name: "no transaction ok", mutate: func(b *builder.MeetupBuilder) { b.WithoutTransaction() }},
			{
				name:   "unknown kind",
				mutate: func(b *builder.MeetupBuilder) { b.WithKind("swap") },
				errIs:  meetup.ErrInvalidKind,
			},
			{
				name:   "seller is buyer",
				mutate: func(b *builder.MeetupBuilder) { b.BuyerID = b.SellerID },
				errIs:  meetup.ErrSameParty,
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				m, err := builder.NewMeetupBuilder().With(tc.mutate).BuildNew()
				if tc.errIs != nil {
					require.ErrorIs(t, err, tc.errIs)
					assert.Nil(t, m)
					return
				}
				require.NoError(t, err)
				assert.NotNil(t, m)
			})
		}
	})
}

func TestMeetup_CanShowCode(t *testing.T) {
	cases := []struct {
		name   string
		kind   string
		seller bool
		buyer  bool
	}{
		{name: "sale lets either party show", kind: "sale", seller: true, buyer: true},
		{name: "pickup is shown by the owner", kind: "pickup", seller: true},
		{name: "return is shown by the renter", kind: "return", buyer: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewMeetupBuilder().WithKind(tc.kind)
			m := b.BuildDomain()

			check := func(userID uuid.UUID, allowed bool) {
				err := m.CanShowCode(userID)
				if allowed {
					assert.NoError(t, err)
				} else {
					assert.ErrorIs(t, err, meetup.ErrNotCodeHolder)
				}
			}
			check(b.SellerID, tc.seller)
			check(b.BuyerID, tc.buyer)
			assert.ErrorIs(t, m.CanShowCode(uuid.New()), meetup.ErrNotParticipant)
		})
	}
}

func TestMeetup_Transitions(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 5, 0, 0, time.UTC)

	t.Run("code issue activates and re-activates", func(t *testing.T) {
		m := builder.NewMeetupBuilder().BuildDomain()
		require.NoError(t, m.ActivateCode(now))
		assert.Equal(t, meetup.StatusCodeActive, m.Status())
		require.NoError(t, m.ActivateCode(now.Add(time.Minute)))
		assert.Equal(t, meetup.StatusCodeActive, m.Status())
		assert.Equal(t, now.Add(time.Minute), m.UpdatedAt())
	})

	t.Run("verification target depends on kind", func(t *testing.T) {
		cases := map[string]meetup.Status{
			"sale":   meetup.StatusVerified,
			"pickup": meetup.StatusInProgress,
			"return": meetup.StatusCompleted,
		}
		for kind, want := range cases {
			t.Run(kind, func(t *testing.T) {
				m := builder.NewMeetupBuilder().WithKind(kind).WithStatus("code_active").BuildDomain()
				require.NoError(t, m.CompleteVerification(now))
				assert.Equal(t, want, m.Status())
			})
		}
	})

	t.Run("verification requires an active code", func(t *testing.T) {
		m := builder.NewMeetupBuilder().BuildDomain()
		assert.ErrorIs(t, m.CompleteVerification(now), meetup.ErrInvalidState)
	})

	t.Run("terminal meetups reject every event", func(t *testing.T) {
		for _, status := range []string{"completed", "expired", "failed"} {
			t.Run(status, func(t *testing.T) {
				m := builder.NewMeetupBuilder().WithStatus(status).BuildDomain()
				assert.ErrorIs(t, m.ActivateCode(now), meetup.ErrAlreadyTerminal)
				assert.ErrorIs(t, m.CompleteVerification(now), meetup.ErrAlreadyTerminal)
				assert.ErrorIs(t, m.ConfirmCapture(now), meetup.ErrAlreadyTerminal)
				assert.ErrorIs(t, m.Expire(now), meetup.ErrAlreadyTerminal)
				assert.Equal(t, meetup.Status(status), m.Status())
			})
		}
	})

	t.Run("verified and in-progress meetups take no new codes", func(t *testing.T) {
		for _, status := range []string{"verified", "in_progress"} {
			m := builder.NewMeetupBuilder().WithStatus(status).BuildDomain()
			assert.ErrorIs(t, m.ActivateCode(now), meetup.ErrInvalidState)
		}
	})

	t.Run("capture outcome settles a verified sale", func(t *testing.T) {
		ok := builder.NewMeetupBuilder().WithStatus("verified").BuildDomain()
		require.NoError(t, ok.ConfirmCapture(now))
		assert.Equal(t, meetup.StatusCompleted, ok.Status())

		failed := builder.NewMeetupBuilder().WithStatus("verified").BuildDomain()
		require.NoError(t, failed.FailCapture(now))
		assert.Equal(t, meetup.StatusFailed, failed.Status())

		early := builder.NewMeetupBuilder().WithStatus("code_active").BuildDomain()
		assert.ErrorIs(t, early.ConfirmCapture(now), meetup.ErrInvalidTransition)
	})

	t.Run("expiry only applies to an active code", func(t *testing.T) {
		m := builder.NewMeetupBuilder().WithStatus("code_active").BuildDomain()
		require.NoError(t, m.Expire(now))
		assert.Equal(t, meetup.StatusExpired, m.Status())

		created := builder.NewMeetupBuilder().BuildDomain()
		assert.ErrorIs(t, created.Expire(now), meetup.ErrInvalidTransition)
	})
}

func TestMeetup_CompleteRental(t *testing.T) {
	now := time.Date(2026, 10, 17, 18, 0, 0, 0, time.UTC)
	pb := builder.NewMeetupBuilder().WithKind("pickup").WithStatus("in_progress")

	t.Run("paired return completes the pickup", func(t *testing.T) {
		pickup := pb.BuildDomain()
		ret := pb.PairedReturn().WithStatus("completed").BuildDomain()
		require.True(t, pickup.IsPairedWith(ret))
		require.NoError(t, pickup.CompleteRental(ret, now))
		assert.Equal(t, meetup.StatusCompleted, pickup.Status())
	})

	t.Run("unrelated return is rejected", func(t *testing.T) {
		pickup := pb.BuildDomain()
		other := builder.NewMeetupBuilder().WithKind("return").BuildDomain()
		assert.ErrorIs(t, pickup.CompleteRental(other, now), meetup.ErrNotPaired)
	})

	t.Run("pickup must be in progress", func(t *testing.T) {
		pickup := builder.NewMeetupBuilder().WithKind("pickup").WithStatus("code_active").BuildDomain()
		ret := builder.NewMeetupBuilder().WithKind("pickup").With(func(b *builder.MeetupBuilder) {
			b.TransactionID = pickup.TransactionID()
		}).PairedReturn().BuildDomain()
		assert.ErrorIs(t, pickup.CompleteRental(ret, now), meetup.ErrInvalidTransition)
	})
}

func TestMeetup_Attempts(t *testing.T) {
	start := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

	t.Run("locks after max consecutive failures", func(t *testing.T) {
		m := builder.NewMeetupBuilder().WithStatus("code_active").BuildDomain()
		for i := 0; i < limit.Max; i++ {
			assert.False(t, m.IsLockedOut(start, limit))
			m.RecordFailedAttempt(start.Add(time.Duration(i)*time.Second), limit)
		}
		last := start.Add(time.Duration(limit.Max-1) * time.Second)
		assert.True(t, m.IsLockedOut(last, limit))
		assert.True(t, m.IsLockedOut(last.Add(limit.Window-time.Nanosecond), limit))
		assert.False(t, m.IsLockedOut(last.Add(limit.Window), limit))
	})

	t.Run("stale streak starts over", func(t *testing.T) {
		m := builder.NewMeetupBuilder().With(func(b *builder.MeetupBuilder) {
			last := start
			b.FailedAttempts = 5
			b.LastFailedAt = &last
		}).BuildDomain()

		m.RecordFailedAttempt(start.Add(limit.Window), limit)
		assert.Equal(t, 1, m.FailedAttempts())
	})

	t.Run("reset clears the streak", func(t *testing.T) {
		m := builder.NewMeetupBuilder().BuildDomain()
		m.RecordFailedAttempt(start, limit)
		m.ResetAttempts()
		assert.Zero(t, m.FailedAttempts())
		assert.Nil(t, m.LastFailedAt())
	})
}
