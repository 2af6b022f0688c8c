//go:build unit

package verification_test

import (
	"bytes"
	"regexp"
	"testing"
	"time"

	"meetup-capture/internal/domain/verification"
	"meetup-capture/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueCode(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	meetupID, creator := uuid.New(), uuid.New()

	t.Run("sets ttl window", func(t *testing.T) {
		c, err := verification.IssueCode(meetupID, verification.CodeTypePin, "d", creator, now, 10*time.Minute)
		require.NoError(t, err)
		assert.Equal(t, now.Add(10*time.Minute), c.ExpiresAt())
		assert.True(t, c.IsActive(now))
		assert.True(t, c.IsActive(c.ExpiresAt().Add(-time.Nanosecond)))
		assert.False(t, c.IsActive(c.ExpiresAt()))
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := verification.IssueCode(meetupID, "nfc", "d", creator, now, time.Minute)
		assert.ErrorIs(t, err, verification.ErrInvalidCodeType)
	})
}

func TestCode_Lifecycle(t *testing.T) {
	mb := builder.NewMeetupBuilder()
	now := mb.CreatedAt.Add(time.Minute)

	t.Run("consume once", func(t *testing.T) {
		c := builder.NewCodeBuilder(mb).BuildDomain()
		require.NoError(t, c.Consume(mb.BuyerID, now))
		assert.ErrorIs(t, c.Consume(mb.BuyerID, now), verification.ErrAlreadyConsumed)
		assert.False(t, c.IsOpen())
	})

	t.Run("supersede expires immediately", func(t *testing.T) {
		c := builder.NewCodeBuilder(mb).BuildDomain()
		c.Supersede(now)
		assert.True(t, c.IsSuperseded())
		assert.Equal(t, now, c.ExpiresAt())
		assert.False(t, c.IsActive(now))
		assert.ErrorIs(t, c.Consume(mb.BuyerID, now), verification.ErrCodeExpired)
	})

	t.Run("supersede leaves consumed codes alone", func(t *testing.T) {
		c := builder.NewCodeBuilder(mb).Consumed(mb.BuyerID, now).BuildDomain()
		c.Supersede(now)
		assert.False(t, c.IsSuperseded())
	})
}

func TestRandomGenerator(t *testing.T) {
	t.Run("pin is four digits", func(t *testing.T) {
		g := verification.NewRandomGenerator()
		pin := regexp.MustCompile(`^[0-9]{4}$`)
		for i := 0; i < 200; i++ {
			v, err := g.Generate(verification.CodeTypePin)
			require.NoError(t, err)
			assert.Regexp(t, pin, v)
		}
	})

	t.Run("small draws are zero padded", func(t *testing.T) {
		g := verification.NewRandomGeneratorFrom(bytes.NewReader(make([]byte, 64)))
		v, err := g.Generate(verification.CodeTypePin)
		require.NoError(t, err)
		assert.Equal(t, "0000", v)
	})

	t.Run("qr token is unpadded base32", func(t *testing.T) {
		g := verification.NewRandomGenerator()
		a, err := g.Generate(verification.CodeTypeQR)
		require.NoError(t, err)
		b, err := g.Generate(verification.CodeTypeQR)
		require.NoError(t, err)
		assert.Regexp(t, `^[A-Z2-7]{32}$`, a)
		assert.NotEqual(t, a, b)
	})

	t.Run("short entropy source fails", func(t *testing.T) {
		g := verification.NewRandomGeneratorFrom(bytes.NewReader([]byte{1, 2}))
		_, err := g.Generate(verification.CodeTypeQR)
		assert.Error(t, err)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := verification.NewRandomGenerator().Generate("nfc")
		assert.ErrorIs(t, err, verification.ErrInvalidCodeType)
	})
}

func TestNormalizeValue(t *testing.T) {
	v, err := verification.NormalizeValue("  0427\n")
	require.NoError(t, err)
	assert.Equal(t, "0427", v)

	_, err = verification.NormalizeValue("   ")
	assert.ErrorIs(t, err, verification.ErrInvalidCodeFormat)
}
