//go:build unit

package verification_test

import (
	"testing"
	"time"

	"meetup-capture/internal/domain/meetup"
	"meetup-capture/internal/domain/verification"
	"meetup-capture/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var limit = meetup.AttemptLimit{Max: 5, Window: 15 * time.Minute}

type fixture struct {
	mb    *builder.MeetupBuilder
	m     *meetup.Meetup
	codes []*verification.Code
	now   time.Time
}

func newFixture(mutate func(mb *builder.MeetupBuilder), codes ...func(mb *builder.MeetupBuilder) *builder.CodeBuilder) *fixture {
	mb := builder.NewMeetupBuilder().WithStatus("code_active")
	if mutate != nil {
		mutate(mb)
	}
	f := &fixture{mb: mb, m: mb.BuildDomain(), now: mb.CreatedAt.Add(2 * time.Minute)}
	for _, c := range codes {
		f.codes = append(f.codes, c(mb).BuildDomain())
	}
	return f
}

func activeCode(mb *builder.MeetupBuilder) *builder.CodeBuilder {
	return builder.NewCodeBuilder(mb)
}

func (f *fixture) verify(value string, by uuid.UUID) (*verification.Code, error) {
	return verification.Verify(f.m, f.codes, verification.Attempt{Value: value, SubmittedBy: by, At: f.now}, limit, builder.FakeMatcher{})
}

func TestVerify_Success(t *testing.T) {
	f := newFixture(func(mb *builder.MeetupBuilder) {
		last := mb.CreatedAt
		mb.FailedAttempts = 2
		mb.LastFailedAt = &last
	}, activeCode)

	code, err := f.verify("0427", f.mb.BuyerID)
	require.NoError(t, err)
	require.NotNil(t, code)

	assert.True(t, code.IsConsumed())
	assert.Equal(t, f.mb.BuyerID, *code.ConsumedBy())
	assert.Equal(t, f.now, *code.ConsumedAt())
	assert.Zero(t, f.m.FailedAttempts())
	// the caller advances the meetup
	assert.Equal(t, meetup.StatusCodeActive, f.m.Status())
}

func TestVerify_Failures(t *testing.T) {
	cases := []struct {
		name        string
		meetup      func(*builder.MeetupBuilder)
		codes       []func(*builder.MeetupBuilder) *builder.CodeBuilder
		value       string
		submitter   func(*builder.MeetupBuilder) uuid.UUID
		errIs       error
		wantAttempt int
	}{
		{
			name:      "outsider",
			codes:     []func(*builder.MeetupBuilder) *builder.CodeBuilder{activeCode},
			value:     "0427",
			submitter: func(*builder.MeetupBuilder) uuid.UUID { return uuid.New() },
			errIs:     meetup.ErrNotParticipant,
		},
		{
			name: "locked out even with the right code",
			meetup: func(mb *builder.MeetupBuilder) {
				last := mb.CreatedAt.Add(time.Minute)
				mb.FailedAttempts = 5
				mb.LastFailedAt = &last
			},
			codes:       []func(*builder.MeetupBuilder) *builder.CodeBuilder{activeCode},
			value:       "0427",
			errIs:       verification.ErrRateLimited,
			wantAttempt: 5,
		},
		{
			name:   "replayed code after the meetup moved on",
			meetup: func(mb *builder.MeetupBuilder) { mb.WithStatus("verified") },
			codes: []func(*builder.MeetupBuilder) *builder.CodeBuilder{
				func(mb *builder.MeetupBuilder) *builder.CodeBuilder {
					return builder.NewCodeBuilder(mb).Consumed(mb.BuyerID, mb.CreatedAt.Add(time.Minute))
				},
			},
			value: "0427",
			errIs: verification.ErrAlreadyConsumed,
		},
		{
			name:   "terminal meetup",
			meetup: func(mb *builder.MeetupBuilder) { mb.WithStatus("completed") },
			value:  "0427",
			errIs:  meetup.ErrAlreadyTerminal,
		},
		{
			name:   "no code issued yet",
			meetup: func(mb *builder.MeetupBuilder) { mb.WithStatus("created") },
			value:  "0427",
			errIs:  verification.ErrCodeExpired,
		},
		{
			name:   "pickup already in progress",
			meetup: func(mb *builder.MeetupBuilder) { mb.WithStatus("in_progress") },
			value:  "0427",
			errIs:  meetup.ErrInvalidState,
		},
		{
			name: "code past its ttl",
			codes: []func(*builder.MeetupBuilder) *builder.CodeBuilder{
				func(mb *builder.MeetupBuilder) *builder.CodeBuilder {
					return builder.NewCodeBuilder(mb).With(func(c *builder.CodeBuilder) {
						c.ExpiresAt = mb.CreatedAt.Add(time.Minute)
					})
				},
			},
			value: "0427",
			errIs: verification.ErrCodeExpired,
		},
		{
			name: "superseded value is stale, not a guess",
			codes: []func(*builder.MeetupBuilder) *builder.CodeBuilder{
				func(mb *builder.MeetupBuilder) *builder.CodeBuilder {
					return builder.NewCodeBuilder(mb).WithValue("1111").Superseded(mb.CreatedAt.Add(time.Minute))
				},
				activeCode,
			},
			value: "1111",
			errIs: verification.ErrCodeExpired,
		},
		{
			name:        "wrong value counts as a failed attempt",
			codes:       []func(*builder.MeetupBuilder) *builder.CodeBuilder{activeCode},
			value:       "9999",
			errIs:       verification.ErrCodeMismatch,
			wantAttempt: 1,
		},
		{
			name:      "creator cannot verify their own code",
			codes:     []func(*builder.MeetupBuilder) *builder.CodeBuilder{activeCode},
			value:     "0427",
			submitter: func(mb *builder.MeetupBuilder) uuid.UUID { return mb.SellerID },
			errIs:     verification.ErrSelfVerification,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(tc.meetup, tc.codes...)
			submitter := f.mb.BuyerID
			if tc.submitter != nil {
				submitter = tc.submitter(f.mb)
			}

			code, err := f.verify(tc.value, submitter)
			require.ErrorIs(t, err, tc.errIs)
			assert.Nil(t, code)
			assert.Equal(t, tc.wantAttempt, f.m.FailedAttempts())
			for _, c := range f.codes {
				if c.ConsumedAt() == nil {
					assert.False(t, c.IsConsumed())
				}
			}
		})
	}
}

func TestVerify_LockoutAfterRepeatedMismatch(t *testing.T) {
	f := newFixture(nil, activeCode)

	for i := 0; i < limit.Max; i++ {
		_, err := f.verify("9999", f.mb.BuyerID)
		require.ErrorIs(t, err, verification.ErrCodeMismatch)
	}
	_, err := f.verify("0427", f.mb.BuyerID)
	require.ErrorIs(t, err, verification.ErrRateLimited)

	f.now = f.now.Add(limit.Window)
	f.codes[0] = builder.NewCodeBuilder(f.mb).With(func(c *builder.CodeBuilder) {
		c.ID = f.codes[0].ID()
		c.ExpiresAt = f.now.Add(time.Minute)
	}).BuildDomain()
	code, err := f.verify("0427", f.mb.BuyerID)
	require.NoError(t, err)
	assert.NotNil(t, code)
}

func TestVerify_ZeroWindowLocksUntilSuccess(t *testing.T) {
	f := newFixture(nil, activeCode)
	zero := meetup.AttemptLimit{Max: limit.Max}
	verify := func(value string) error {
		_, err := verification.Verify(f.m, f.codes, verification.Attempt{Value: value, SubmittedBy: f.mb.BuyerID, At: f.now}, zero, builder.FakeMatcher{})
		return err
	}

	for i := 0; i < zero.Max; i++ {
		require.ErrorIs(t, verify("9999"), verification.ErrCodeMismatch)
		f.now = f.now.Add(time.Second)
	}
	assert.Equal(t, zero.Max, f.m.FailedAttempts())

	require.ErrorIs(t, verify("0427"), verification.ErrRateLimited)
	assert.Nil(t, f.codes[0].ConsumedAt())
}
