package session

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileStore persists each session as one file under a directory:
// <dir>/<id>.<ext>, where the extension comes from the codec. Files are
// overwritten in full on save; there is no atomic rename, which is fine while
// a single process handles one request at a time.
type FileStore[T any] struct {
	dir      string
	codec    Codec
	dirMode  os.FileMode
	fileMode os.FileMode
}

// FileOption configures a FileStore.
type FileOption func(*fileOptions)

type fileOptions struct {
	codec    Codec
	dirMode  os.FileMode
	fileMode os.FileMode
}

// WithCodec sets the payload codec. Defaults to JSONCodec.
func WithCodec(c Codec) FileOption {
	return func(o *fileOptions) {
		if c != nil {
			o.codec = c
		}
	}
}

// WithDirMode sets the mode for created session directories. Defaults to
// 0o700.
func WithDirMode(mode os.FileMode) FileOption {
	return func(o *fileOptions) {
		o.dirMode = mode
	}
}

// WithFileMode sets the mode for written session files. Defaults to 0o600:
// session payloads are user data and stay out of group and world reach.
func WithFileMode(mode os.FileMode) FileOption {
	return func(o *fileOptions) {
		o.fileMode = mode
	}
}

// NewFileStore creates a file-backed store rooted at dir. The directory is
// created on first save, not here.
func NewFileStore[T any](dir string, opts ...FileOption) *FileStore[T] {
	o := fileOptions{
		codec:    JSONCodec{},
		dirMode:  0o700,
		fileMode: 0o600,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &FileStore[T]{
		dir:      dir,
		codec:    o.codec,
		dirMode:  o.dirMode,
		fileMode: o.fileMode,
	}
}

// Load reads the session file for id. A missing file, like an id that could
// never name a session, yields (nil, nil).
func (s *FileStore[T]) Load(ctx context.Context, id string) (*Session[T], error) {
	if !ValidID(id) {
		return nil, nil
	}

	data, err := os.ReadFile(s.path(id))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}

	payload := new(T)
	if err := s.codec.Unmarshal(data, payload); err != nil {
		return nil, errors.Join(ErrCorrupted, err)
	}
	return Restore(id, payload), nil
}

// Save writes, or for deleted sessions removes, the session file. Clean
// sessions are left alone. The session directory is created on demand,
// parents included.
func (s *FileStore[T]) Save(ctx context.Context, sess *Session[T]) error {
	if sess == nil || (!sess.IsModified() && !sess.IsNew()) {
		return nil
	}
	if !ValidID(sess.ID()) {
		return errors.Join(ErrInvalidID, fmt.Errorf("id %q", sess.ID()))
	}

	if sess.IsDeleted() {
		if err := os.Remove(s.path(sess.ID())); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("remove session file: %w", err)
		}
		sess.ClearModified()
		sess.ClearNew()
		return nil
	}

	data, err := s.codec.Marshal(sess.Data())
	if err != nil {
		return fmt.Errorf("encode session payload: %w", err)
	}
	if err := os.MkdirAll(s.dir, s.dirMode); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}
	if err := os.WriteFile(s.path(sess.ID()), data, s.fileMode); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}

	sess.ClearModified()
	sess.ClearNew()
	return nil
}

// Prune removes session files whose modification time is older than maxAge
// and reports how many went. Files that are not session records are left
// alone.
func (s *FileStore[T]) Prune(ctx context.Context, maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read session directory: %w", err)
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, entry := range entries {
		select {
		case <-ctx.Done():
			return removed, ctx.Err()
		default:
		}

		if entry.IsDir() {
			continue
		}
		id, ok := strings.CutSuffix(entry.Name(), "."+s.codec.Ext())
		if !ok || !ValidID(id) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue // vanished between listing and stat
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return removed, fmt.Errorf("remove expired session: %w", err)
		}
		removed++
	}
	return removed, nil
}

func (s *FileStore[T]) path(id string) string {
	return filepath.Join(s.dir, id+"."+s.codec.Ext())
}

var _ Store[any] = (*FileStore[any])(nil)
var _ Prunable = (*FileStore[any])(nil)
