package internal

import (
	"context"
	"testing"

	"github.com/dmitrymomot/runway/pkg/session"
	"github.com/dmitrymomot/runway/pkg/web"
)

// visitor is the session payload used across dispatch tests.
type visitor struct {
	Name string `json:"name"`
	Seen int    `json:"seen"`
}

// memStore implements session.Store over a map. It mirrors the persistence
// contract of the real stores: clean sessions are not written, deleted
// sessions are removed, flags are cleared after a successful save.
type memStore struct {
	data    map[string]visitor
	saves   int
	loadErr error
	saveErr error
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string]visitor)}
}

func (s *memStore) Load(ctx context.Context, id string) (*session.Session[visitor], error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	v, ok := s.data[id]
	if !ok {
		return nil, nil
	}
	return session.Restore(id, &v), nil
}

func (s *memStore) Save(ctx context.Context, sess *session.Session[visitor]) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	if sess == nil || (!sess.IsModified() && !sess.IsNew()) {
		return nil
	}
	s.saves++
	if sess.IsDeleted() {
		delete(s.data, sess.ID())
	} else {
		s.data[sess.ID()] = *sess.Data()
	}
	sess.ClearModified()
	sess.ClearNew()
	return nil
}

var _ session.Store[visitor] = (*memStore)(nil)

func newTestRequest(t *testing.T, method, target string, opts ...web.RequestOption) *web.Request {
	t.Helper()
	req, err := web.NewRequest(method, target, opts...)
	if err != nil {
		t.Fatalf("NewRequest(%q, %q): %v", method, target, err)
	}
	return req
}
