package verification

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"io"
	"math/big"
	"strings"
)

const (
	PinLength    = 4
	qrTokenBytes = 20
	maxQRLength  = 64
)

var (
	pinSpace = big.NewInt(10000)
	qrCodec  = base32.StdEncoding.WithPadding(base32.NoPadding)
)

type Generator interface {
	Generate(codeType CodeType) (string, error)
}

// RandomGenerator draws code values from a cryptographic source.
type RandomGenerator struct {
	src io.Reader
}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{src: rand.Reader}
}

// NewRandomGeneratorFrom is used by tests that need deterministic output.
func NewRandomGeneratorFrom(src io.Reader) *RandomGenerator {
	return &RandomGenerator{src: src}
}

func (g *RandomGenerator) Generate(codeType CodeType) (string, error) {
	switch codeType {
	case CodeTypePin:
		n, err := rand.Int(g.src, pinSpace)
		if err != nil {
			return "", fmt.Errorf("draw pin: %w", err)
		}
		return fmt.Sprintf("%0*d", PinLength, n.Int64()), nil
	case CodeTypeQR:
		buf := make([]byte, qrTokenBytes)
		if _, err := io.ReadFull(g.src, buf); err != nil {
			return "", fmt.Errorf("draw qr token: %w", err)
		}
		return qrCodec.EncodeToString(buf), nil
	default:
		return "", ErrInvalidCodeType
	}
}

// NormalizeValue trims what keypads and scanners commonly add and rejects values
// that no generator could have produced.
func NormalizeValue(value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" || len(v) > maxQRLength {
		return "", ErrInvalidCodeFormat
	}
	return v, nil
}
