package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWinnerStore_VerifyCertificate(t *testing.T) {
	store := NewWinnerStore(filepath.Join(t.TempDir(), "winners.json"))
	added, err := store.Add(validInput())
	require.NoError(t, err)
	code := added.CertificateCode

	t.Run("matches case-insensitively on reg no with trimming", func(t *testing.T) {
		file, err := store.VerifyCertificate("  2023cs045  ", code)
		require.NoError(t, err)
		assert.Equal(t, "alice.pdf", file)
	})

	t.Run("code comparison is trimmed but case-sensitive", func(t *testing.T) {
		file, err := store.VerifyCertificate("2023CS045", "  "+code+"  ")
		require.NoError(t, err)
		assert.Equal(t, "alice.pdf", file)

		_, err = store.VerifyCertificate("2023CS045", code+"x")
		assert.ErrorIs(t, err, ErrNoMatch)
	})

	t.Run("unknown reg no is not found", func(t *testing.T) {
		_, err := store.VerifyCertificate("9999XX999", code)
		assert.ErrorIs(t, err, ErrNoMatch)
	})

	t.Run("missing input is a validation error, not a miss", func(t *testing.T) {
		var verr *ValidationError

		_, err := store.VerifyCertificate("", code)
		assert.ErrorAs(t, err, &verr)

		_, err = store.VerifyCertificate("2023CS045", "   ")
		assert.ErrorAs(t, err, &verr)
	})
}
