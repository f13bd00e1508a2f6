//go:build unit || integration || e2e

package fakes

import (
	"context"
	"errors"
	"sort"
	"sync"

	"pass-config-engine/internal/domain/artifact"
	"pass-config-engine/internal/domain/draft"
)

var ErrUnavailable = errors.New("store unavailable")

func copyDraft(d *draft.Draft) *draft.Draft {
	return draft.Reconstruct(d.SessionID(), d.Dimensions(), d.Artifacts(), d.UpdatedAt())
}

// LocalCache is an in-memory shared.DraftLocalCache.
type LocalCache struct {
	mu      sync.Mutex
	drafts  map[string]*draft.Draft
	pending map[string]struct{}
	Fail    bool
	// FailDelete fails Delete alone, with reads and markers still answering.
	FailDelete bool
}

func NewLocalCache() *LocalCache {
	return &LocalCache{drafts: map[string]*draft.Draft{}, pending: map[string]struct{}{}}
}

func (c *LocalCache) Get(_ context.Context, sessionID string) (*draft.Draft, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Fail {
		return nil, false, ErrUnavailable
	}
	d, ok := c.drafts[sessionID]
	if !ok {
		return nil, false, nil
	}
	return copyDraft(d), true, nil
}

func (c *LocalCache) Put(_ context.Context, d *draft.Draft) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Fail {
		return ErrUnavailable
	}
	c.drafts[d.SessionID()] = copyDraft(d)
	return nil
}

func (c *LocalCache) Delete(_ context.Context, sessionID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Fail || c.FailDelete {
		return ErrUnavailable
	}
	delete(c.drafts, sessionID)
	return nil
}

func (c *LocalCache) MarkPending(_ context.Context, sessionID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending[sessionID] = struct{}{}
	return nil
}

func (c *LocalCache) ClearPending(_ context.Context, sessionID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pending, sessionID)
	return nil
}

func (c *LocalCache) IsPending(_ context.Context, sessionID string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.pending[sessionID]
	return ok, nil
}

func (c *LocalCache) ListPending(_ context.Context, limit int64) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.pending))
	for id := range c.pending {
		out = append(out, id)
	}
	sort.Strings(out)
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (c *LocalCache) Has(sessionID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.drafts[sessionID]
	return ok
}

// RemoteStore is an in-memory shared.DraftRemoteStore that records every
// successful write.
type RemoteStore struct {
	mu        sync.Mutex
	drafts    map[string]*draft.Draft
	Writes    []*draft.Draft
	FailFetch bool
	FailStore bool
	// Gate, when set, blocks every Store until it is closed.
	Gate chan struct{}
}

func NewRemoteStore() *RemoteStore {
	return &RemoteStore{drafts: map[string]*draft.Draft{}}
}

func (s *RemoteStore) Fetch(_ context.Context, sessionID string) (*draft.Draft, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailFetch {
		return nil, false, ErrUnavailable
	}
	d, ok := s.drafts[sessionID]
	if !ok {
		return nil, false, nil
	}
	return copyDraft(d), true, nil
}

func (s *RemoteStore) Store(ctx context.Context, d *draft.Draft) error {
	s.mu.Lock()
	gate := s.Gate
	s.mu.Unlock()
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailStore {
		return ErrUnavailable
	}
	s.drafts[d.SessionID()] = copyDraft(d)
	s.Writes = append(s.Writes, copyDraft(d))
	return nil
}

func (s *RemoteStore) Seed(d *draft.Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[d.SessionID()] = copyDraft(d)
}

func (s *RemoteStore) Stored(sessionID string) (*draft.Draft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[sessionID]
	return d, ok
}

func (s *RemoteStore) SetFailStore(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.FailStore = v
}

func (s *RemoteStore) SetGate(gate chan struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Gate = gate
}

func (s *RemoteStore) WritesFor(sessionID string) []*draft.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*draft.Draft
	for _, w := range s.Writes {
		if w.SessionID() == sessionID {
			out = append(out, w)
		}
	}
	return out
}

func (s *RemoteStore) Remove(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, sessionID)
}

// ArtifactLookup serves refs registered per session.
type ArtifactLookup struct {
	mu   sync.Mutex
	refs map[string][]artifact.Ref
}

func NewArtifactLookup() *ArtifactLookup {
	return &ArtifactLookup{refs: map[string][]artifact.Ref{}}
}

func (l *ArtifactLookup) Register(sessionID string, refs ...artifact.Ref) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.refs[sessionID] = append(l.refs[sessionID], refs...)
}

func (l *ArtifactLookup) RefsBySession(_ context.Context, sessionID string) ([]artifact.Ref, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]artifact.Ref, len(l.refs[sessionID]))
	copy(out, l.refs[sessionID])
	return out, nil
}
