// Package codehash derives keyed digests of verification code values so that
// plaintext PINs and QR tokens never reach the database.
package codehash

import (
	"crypto/subtle"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/blake2b"
)

var ErrKeyTooShort = errors.New("digest key must be at least 16 bytes")

type Hasher struct {
	key []byte
}

func New(key string) (*Hasher, error) {
	if len(key) < 16 {
		return nil, ErrKeyTooShort
	}
	// blake2b accepts keys up to 64 bytes
	k := []byte(key)
	if len(k) > blake2b.Size {
		sum := blake2b.Sum512(k)
		k = sum[:]
	}
	return &Hasher{key: k}, nil
}

// Digest binds the value to its meetup so a digest cannot be replayed across meetups.
func (h *Hasher) Digest(meetupID, value string) string {
	mac, err := blake2b.New256(h.key)
	if err != nil {
		// only returned for keys longer than 64 bytes, which New rules out
		panic(err)
	}
	mac.Write([]byte(meetupID))
	mac.Write([]byte{0})
	mac.Write([]byte(value))
	return hex.EncodeToString(mac.Sum(nil))
}

func (h *Hasher) Matches(meetupID, value, digest string) bool {
	want := h.Digest(meetupID, value)
	return subtle.ConstantTimeCompare([]byte(want), []byte(digest)) == 1
}
