package password_test

import (
	"testing"

	"lockers/internal/pkg/errs"
	"lockers/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndCompare(t *testing.T) {
	h := password.NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	assert.NoError(t, h.Compare(hash, "correct horse"))

	err = h.Compare(hash, "Correct horse")
	require.Error(t, err)
	assert.Equal(t, errs.KindInvalidCredential, errs.KindOf(err))
}

func TestHasher_Hash_RejectsWeakPasswords(t *testing.T) {
	h := password.NewHasher(bcrypt.MinCost)

	_, err := h.Hash("")
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = h.Hash("short")
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestHasher_Compare_MalformedHash(t *testing.T) {
	h := password.NewHasher(0)

	err := h.Compare("not-a-bcrypt-hash", "whatever1")

	assert.Equal(t, errs.KindInvalidCredential, errs.KindOf(err))
}
