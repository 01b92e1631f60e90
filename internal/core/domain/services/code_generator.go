package services

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"lockers/internal/core/domain/model/locker"
)

// CodeGenerator mints access codes for new bookings.
type CodeGenerator interface {
	Generate() (locker.AccessCode, error)
}

// RandomCodeGenerator draws each digit uniformly from 0-9.
type RandomCodeGenerator struct {
	source io.Reader
}

// NewRandomCodeGenerator reads from crypto/rand.
func NewRandomCodeGenerator() RandomCodeGenerator {
	return RandomCodeGenerator{source: rand.Reader}
}

// NewCodeGeneratorFromReader reads randomness from source instead.
func NewCodeGeneratorFromReader(source io.Reader) RandomCodeGenerator {
	return RandomCodeGenerator{source: source}
}

// Generate returns a 6-digit numeric code; leading zeros are kept.
func (g RandomCodeGenerator) Generate() (locker.AccessCode, error) {
	source := g.source
	if source == nil {
		source = rand.Reader
	}

	digits := make([]byte, locker.CodeLength)
	ten := big.NewInt(10)
	for i := range digits {
		n, err := rand.Int(source, ten)
		if err != nil {
			return locker.AccessCode{}, fmt.Errorf("generate access code: %w", err)
		}
		digits[i] = byte('0' + n.Int64())
	}

	return locker.NewAccessCode(string(digits))
}
