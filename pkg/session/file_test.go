package session_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/runway/pkg/session"
)

type account struct {
	UserID int      `json:"user_id" yaml:"user_id"`
	Errors []string `json:"errors,omitempty" yaml:"errors,omitempty"`
}

func TestFileStoreRoundTrip(t *testing.T) {
	t.Parallel()

	t.Run("save and load preserve the payload", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := session.NewFileStore[account](dir)

		sess, err := session.New[account]()
		require.NoError(t, err)
		sess.Data().UserID = 9876
		sess.Data().Errors = []string{"bad password", "expired card"}
		sess.MarkModified()

		require.NoError(t, store.Save(context.Background(), sess))
		require.False(t, sess.IsNew(), "save must clear the new flag")
		require.False(t, sess.IsModified(), "save must clear the modified flag")

		loaded, err := store.Load(context.Background(), sess.ID())
		require.NoError(t, err)
		require.NotNil(t, loaded)
		require.Equal(t, sess.ID(), loaded.ID())
		require.Equal(t, 9876, loaded.Data().UserID)
		require.Equal(t, []string{"bad password", "expired card"}, loaded.Data().Errors)
		require.False(t, loaded.IsNew())
		require.False(t, loaded.IsModified())
	})

	t.Run("file is named id dot ext and is human readable", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := session.NewFileStore[account](dir)

		sess, err := session.New[account]()
		require.NoError(t, err)
		sess.Data().UserID = 1
		require.NoError(t, store.Save(context.Background(), sess))

		raw, err := os.ReadFile(filepath.Join(dir, sess.ID()+".json"))
		require.NoError(t, err)
		require.Contains(t, string(raw), "\"user_id\": 1", "payload should be indented JSON")
	})

	t.Run("unmaterialized payload saves as the zero value", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := session.NewFileStore[account](dir)

		sess, err := session.New[account]()
		require.NoError(t, err)
		// Untouched new session: still persisted, as the zero payload.
		require.NoError(t, store.Save(context.Background(), sess))

		loaded, err := store.Load(context.Background(), sess.ID())
		require.NoError(t, err)
		require.NotNil(t, loaded)
		require.Zero(t, loaded.Data().UserID)
	})

	t.Run("creates nested directories on save", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "a", "b", "sessions")
		store := session.NewFileStore[account](dir)

		sess, err := session.New[account]()
		require.NoError(t, err)
		require.NoError(t, store.Save(context.Background(), sess))

		_, err = os.Stat(filepath.Join(dir, sess.ID()+".json"))
		require.NoError(t, err)
	})

	t.Run("yaml codec round trip", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := session.NewFileStore[account](dir, session.WithCodec(session.YAMLCodec{}))

		sess, err := session.New[account]()
		require.NoError(t, err)
		sess.Data().UserID = 55
		require.NoError(t, store.Save(context.Background(), sess))

		raw, err := os.ReadFile(filepath.Join(dir, sess.ID()+".yaml"))
		require.NoError(t, err)
		require.Contains(t, string(raw), "user_id: 55")

		loaded, err := store.Load(context.Background(), sess.ID())
		require.NoError(t, err)
		require.Equal(t, 55, loaded.Data().UserID)
	})
}

func TestFileStoreLoad(t *testing.T) {
	t.Parallel()

	t.Run("absent session is nil not an error", func(t *testing.T) {
		t.Parallel()

		store := session.NewFileStore[account](t.TempDir())
		id := strings.Repeat("ab", 32)

		loaded, err := store.Load(context.Background(), id)
		require.NoError(t, err)
		require.Nil(t, loaded)
	})

	t.Run("invalid id loads as absent", func(t *testing.T) {
		t.Parallel()

		store := session.NewFileStore[account](t.TempDir())

		for _, id := range []string{"", "short", "../../../etc/passwd", strings.Repeat("Z", 64)} {
			loaded, err := store.Load(context.Background(), id)
			require.NoError(t, err, "id %q", id)
			require.Nil(t, loaded, "id %q", id)
		}
	})

	t.Run("corrupt file is a hard error", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := session.NewFileStore[account](dir)
		id := strings.Repeat("cd", 32)
		require.NoError(t, os.WriteFile(filepath.Join(dir, id+".json"), []byte("{not json"), 0o600))

		loaded, err := store.Load(context.Background(), id)
		require.ErrorIs(t, err, session.ErrCorrupted)
		require.Nil(t, loaded)
	})
}

func TestFileStoreSave(t *testing.T) {
	t.Parallel()

	t.Run("clean session is a no-op", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := session.NewFileStore[account](dir)

		sess, err := session.New[account]()
		require.NoError(t, err)
		require.NoError(t, store.Save(context.Background(), sess))

		// Loaded sessions are clean; saving one must not rewrite the file.
		loaded, err := store.Load(context.Background(), sess.ID())
		require.NoError(t, err)

		path := filepath.Join(dir, sess.ID()+".json")
		tampered := []byte(`{"user_id": 111}`)
		require.NoError(t, os.WriteFile(path, tampered, 0o600))

		loaded.Data().UserID = 999 // changed but never marked modified
		require.NoError(t, store.Save(context.Background(), loaded))

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, tampered, raw, "clean save must not touch the file")
	})

	t.Run("modified session overwrites in full", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := session.NewFileStore[account](dir)

		sess, err := session.New[account]()
		require.NoError(t, err)
		sess.Data().Errors = []string{"a", "b", "c"}
		require.NoError(t, store.Save(context.Background(), sess))

		loaded, err := store.Load(context.Background(), sess.ID())
		require.NoError(t, err)
		loaded.Data().Errors = nil
		loaded.Data().UserID = 3
		loaded.MarkModified()
		require.NoError(t, store.Save(context.Background(), loaded))

		again, err := store.Load(context.Background(), sess.ID())
		require.NoError(t, err)
		require.Equal(t, 3, again.Data().UserID)
		require.Empty(t, again.Data().Errors, "stale payload must not survive an overwrite")
	})

	t.Run("deleted session removes the file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := session.NewFileStore[account](dir)

		sess, err := session.New[account]()
		require.NoError(t, err)
		require.NoError(t, store.Save(context.Background(), sess))

		sess.MarkDeleted()
		require.NoError(t, store.Save(context.Background(), sess))

		_, err = os.Stat(filepath.Join(dir, sess.ID()+".json"))
		require.ErrorIs(t, err, os.ErrNotExist)

		loaded, err := store.Load(context.Background(), sess.ID())
		require.NoError(t, err)
		require.Nil(t, loaded)
	})

	t.Run("deleting a never saved session is fine", func(t *testing.T) {
		t.Parallel()

		store := session.NewFileStore[account](t.TempDir())

		sess, err := session.New[account]()
		require.NoError(t, err)
		sess.MarkDeleted()
		require.NoError(t, store.Save(context.Background(), sess))
	})
}

func TestFileStorePrune(t *testing.T) {
	t.Parallel()

	newSaved := func(t *testing.T, store *session.FileStore[account]) *session.Session[account] {
		t.Helper()
		sess, err := session.New[account]()
		require.NoError(t, err)
		require.NoError(t, store.Save(context.Background(), sess))
		return sess
	}

	t.Run("removes only stale session files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := session.NewFileStore[account](dir)

		stale := newSaved(t, store)
		fresh := newSaved(t, store)

		old := time.Now().Add(-48 * time.Hour)
		require.NoError(t, os.Chtimes(filepath.Join(dir, stale.ID()+".json"), old, old))

		// A foreign file in the directory must survive.
		other := filepath.Join(dir, "README")
		require.NoError(t, os.WriteFile(other, []byte("keep"), 0o600))
		require.NoError(t, os.Chtimes(other, old, old))

		n, err := store.Prune(context.Background(), 24*time.Hour)
		require.NoError(t, err)
		require.Equal(t, 1, n)

		_, err = os.Stat(filepath.Join(dir, stale.ID()+".json"))
		require.ErrorIs(t, err, os.ErrNotExist)
		_, err = os.Stat(filepath.Join(dir, fresh.ID()+".json"))
		require.NoError(t, err)
		_, err = os.Stat(other)
		require.NoError(t, err)
	})

	t.Run("missing directory prunes zero", func(t *testing.T) {
		t.Parallel()

		store := session.NewFileStore[account](filepath.Join(t.TempDir(), "never-created"))
		n, err := store.Prune(context.Background(), time.Hour)
		require.NoError(t, err)
		require.Zero(t, n)
	})
}
