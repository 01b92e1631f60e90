package services_test

import (
	"bytes"
	"errors"
	"testing"

	"lockers/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomCodeGenerator_Generate(t *testing.T) {
	t.Run("should produce six digits", func(t *testing.T) {
		gen := services.NewRandomCodeGenerator()

		for range 200 {
			code, err := gen.Generate()
			require.NoError(t, err)
			require.NoError(t, code.Validate())
			assert.Regexp(t, `^[0-9]{6}$`, code.String())
		}
	})

	t.Run("should keep leading zeros", func(t *testing.T) {
		gen := services.NewCodeGeneratorFromReader(bytes.NewReader(make([]byte, 64)))

		code, err := gen.Generate()

		require.NoError(t, err)
		assert.Equal(t, "000000", code.String())
	})

	t.Run("should cover every digit", func(t *testing.T) {
		gen := services.NewRandomCodeGenerator()
		seen := map[rune]bool{}

		for range 500 {
			code, err := gen.Generate()
			require.NoError(t, err)
			for _, r := range code.String() {
				seen[r] = true
			}
		}

		assert.Len(t, seen, 10)
	})

	t.Run("should surface entropy failure", func(t *testing.T) {
		gen := services.NewCodeGeneratorFromReader(failingReader{})

		_, err := gen.Generate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "generate access code")
	})
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}
