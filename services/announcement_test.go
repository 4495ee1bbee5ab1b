package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnouncementStore(t *testing.T) {
	t.Run("starts with the default text and creates the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "announcement.json")
		store := NewAnnouncementStore(path)

		assert.Equal(t, "No announcements yet.", store.Get().Text)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.JSONEq(t, `{"text": "No announcements yet."}`, string(data))
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		store := NewAnnouncementStore(filepath.Join(t.TempDir(), "announcement.json"))

		ann, err := store.Set("Hello")
		require.NoError(t, err)
		assert.Equal(t, "Hello", ann.Text)
		assert.Equal(t, "Hello", store.Get().Text)
	})

	t.Run("rejects whitespace-only text and keeps the prior value", func(t *testing.T) {
		store := NewAnnouncementStore(filepath.Join(t.TempDir(), "announcement.json"))
		_, err := store.Set("Workshop on Saturday")
		require.NoError(t, err)

		_, err = store.Set("   ")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Workshop on Saturday", store.Get().Text)
	})

	t.Run("persists across restarts", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "announcement.json")
		store := NewAnnouncementStore(path)
		_, err := store.Set("Results are out")
		require.NoError(t, err)

		reloaded := NewAnnouncementStore(path)
		assert.Equal(t, "Results are out", reloaded.Get().Text)
	})

	t.Run("falls back to the default when the stored text is empty", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "announcement.json")
		require.NoError(t, os.WriteFile(path, []byte(`{}`), 0644))

		store := NewAnnouncementStore(path)
		assert.Equal(t, "No announcements yet.", store.Get().Text)
	})
}
