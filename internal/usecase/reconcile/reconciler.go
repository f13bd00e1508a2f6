package reconcile

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pass-config-engine/internal/domain/artifact"
	"pass-config-engine/internal/domain/draft"
	"pass-config-engine/internal/pkg/clock"
	"pass-config-engine/internal/pkg/errs"
	"pass-config-engine/internal/pkg/metrics"
	"pass-config-engine/internal/usecase/shared"
)

const (
	defaultWriteTimeout = 5 * time.Second
	defaultIdleTTL      = 24 * time.Hour
)

// Reconciler keeps the local draft cache and the remote draft store in step.
//
// Writes land in the local cache synchronously and reach the remote store on a
// background goroutine. A session stays pending until the write carrying its
// latest version succeeds, and reads prefer a pending local copy over the
// remote one. Read-modify-write cycles go through Edit so that two writers of
// one session never work from the same stale copy.
type Reconciler struct {
	local        shared.DraftLocalCache
	remote       shared.DraftRemoteStore
	lookup       shared.ArtifactLookup
	clock        clock.Clock
	logger       *slog.Logger
	writeTimeout time.Duration
	idleTTL      time.Duration

	mu       sync.Mutex
	sessions map[string]*session
	inflight sync.WaitGroup
}

type session struct {
	// edit serializes pull, change and push cycles on the session's draft.
	edit sync.Mutex

	// write serializes remote stores and promotion for the session.
	write  sync.Mutex
	frozen bool

	// version guards latest and the pending marker.
	version sync.Mutex
	latest  uint64

	// lastUsed is guarded by Reconciler.mu.
	lastUsed time.Time
}

type Option func(*Reconciler)

// WithIdleTTL sets how long an untouched session is remembered by Evict.
func WithIdleTTL(d time.Duration) Option {
	return func(r *Reconciler) {
		if d > 0 {
			r.idleTTL = d
		}
	}
}

func WithWriteTimeout(d time.Duration) Option {
	return func(r *Reconciler) {
		if d > 0 {
			r.writeTimeout = d
		}
	}
}

func NewReconciler(
	local shared.DraftLocalCache,
	remote shared.DraftRemoteStore,
	lookup shared.ArtifactLookup,
	clk clock.Clock,
	logger *slog.Logger,
	opts ...Option,
) *Reconciler {
	r := &Reconciler{
		local:        local,
		remote:       remote,
		lookup:       lookup,
		clock:        clk,
		logger:       logger,
		writeTimeout: defaultWriteTimeout,
		idleTTL:      defaultIdleTTL,
		sessions:     make(map[string]*session),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Pull returns the best available copy of the session's draft: a pending local
// copy, else the remote copy, else any local copy, else a fresh default draft.
func (r *Reconciler) Pull(ctx context.Context, sessionID string) (*draft.Draft, error) {
	pending, err := r.local.IsPending(ctx, sessionID)
	if err != nil {
		r.logger.Warn("local pending check failed", "session_id", sessionID, "error", err)
	}
	if pending {
		if d, ok := r.localCopy(ctx, sessionID); ok {
			metrics.DraftPulls.WithLabelValues(metrics.SourceLocalPending).Inc()
			return d, nil
		}
	}

	d, found, err := r.remote.Fetch(ctx, sessionID)
	switch {
	case err != nil:
		r.logger.Warn("remote draft read failed, using local copy", "session_id", sessionID, "error", err)
	case found:
		if perr := r.local.Put(ctx, d); perr != nil {
			r.logger.Warn("failed to refresh local draft copy", "session_id", sessionID, "error", perr)
		}
		metrics.DraftPulls.WithLabelValues(metrics.SourceRemote).Inc()
		return d, nil
	}

	if d, ok := r.localCopy(ctx, sessionID); ok {
		metrics.DraftPulls.WithLabelValues(metrics.SourceLocal).Inc()
		return d, nil
	}

	metrics.DraftPulls.WithLabelValues(metrics.SourceDefault).Inc()
	fresh, err := draft.New(sessionID, r.clock.Now())
	if err != nil {
		return nil, errs.Validation(err)
	}
	return fresh, nil
}

// Push saves d locally and schedules the remote write. When the local cache is
// unavailable the remote write happens inline instead.
func (r *Reconciler) Push(ctx context.Context, d *draft.Draft) error {
	if err := r.local.Put(ctx, d); err != nil {
		r.logger.Warn("local draft write failed, writing remote inline", "session_id", d.SessionID(), "error", err)
		return r.writeInline(ctx, d)
	}
	r.schedule(ctx, d)
	return nil
}

// Edit pulls the session's draft, applies fn and pushes the result when fn
// reports a change. Edits of one session run one at a time.
func (r *Reconciler) Edit(ctx context.Context, sessionID string, fn func(d *draft.Draft) (bool, error)) (*draft.Draft, error) {
	return r.edit(ctx, r.session(sessionID, true), sessionID, fn)
}

func (r *Reconciler) edit(ctx context.Context, s *session, sessionID string, fn func(d *draft.Draft) (bool, error)) (*draft.Draft, error) {
	s.edit.Lock()
	defer s.edit.Unlock()

	d, err := r.Pull(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	changed, err := fn(d)
	if err != nil {
		return nil, err
	}
	if changed {
		if err := r.Push(ctx, d); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Merge unions refs into the latest copy of the session's artifact cache and
// pushes when anything new arrived.
func (r *Reconciler) Merge(ctx context.Context, sessionID string, refs []artifact.Ref) (*draft.Draft, int, error) {
	return r.merge(ctx, r.session(sessionID, true), sessionID, refs)
}

func (r *Reconciler) merge(ctx context.Context, s *session, sessionID string, refs []artifact.Ref) (*draft.Draft, int, error) {
	added := 0
	d, err := r.edit(ctx, s, sessionID, func(d *draft.Draft) (bool, error) {
		added = d.MergeArtifacts(refs, r.clock.Now())
		return added > 0, nil
	})
	if err != nil {
		return nil, 0, err
	}
	if added > 0 {
		metrics.ArtifactsMerged.Add(float64(added))
	}
	return d, added, nil
}

// Recheck merges any artifacts registered since the last look and retries a
// pending remote write.
func (r *Reconciler) Recheck(ctx context.Context, sessionID string) (*draft.Draft, error) {
	var refs []artifact.Ref
	if r.lookup != nil {
		var lerr error
		if refs, lerr = r.lookup.RefsBySession(ctx, sessionID); lerr != nil {
			r.logger.Warn("artifact lookup failed", "session_id", sessionID, "error", lerr)
			refs = nil
		}
	}
	d, _, err := r.Merge(ctx, sessionID, refs)
	if err != nil {
		return nil, err
	}
	if _, err := r.Retry(ctx, sessionID); err != nil {
		r.logger.Warn("retry of pending draft failed", "session_id", sessionID, "error", err)
	}
	return d, nil
}

// Retry reschedules the remote write of a pending session from its local copy.
func (r *Reconciler) Retry(ctx context.Context, sessionID string) (bool, error) {
	pending, err := r.local.IsPending(ctx, sessionID)
	if err != nil {
		return false, errs.Persistence(err)
	}
	if !pending {
		return false, nil
	}
	d, ok := r.localCopy(ctx, sessionID)
	if !ok {
		// Nothing left to write; the marker is stale.
		return false, r.local.ClearPending(ctx, sessionID)
	}
	metrics.PendingRetries.Inc()
	r.schedule(ctx, d)
	return true, nil
}

// RetryPending retries up to limit pending sessions and returns how many were scheduled.
func (r *Reconciler) RetryPending(ctx context.Context, limit int64) (int, error) {
	ids, err := r.local.ListPending(ctx, limit)
	if err != nil {
		return 0, errs.Persistence(err)
	}
	n := 0
	for _, id := range ids {
		ok, rerr := r.Retry(ctx, id)
		if rerr != nil {
			r.logger.Warn("pending retry failed", "session_id", id, "error", rerr)
			continue
		}
		if ok {
			n++
		}
	}
	return n, nil
}

// Freeze blocks edits and remote writes for the session until release is
// called. release(true) discards every write still queued for the session;
// release(false) lets them continue.
func (r *Reconciler) Freeze(sessionID string) (release func(committed bool)) {
	s := r.session(sessionID, true)
	s.edit.Lock()
	s.write.Lock()
	return func(committed bool) {
		if committed {
			s.frozen = true
		}
		s.write.Unlock()
		s.edit.Unlock()
	}
}

// Discard drops the local copy and pending marker and forgets the session.
// A copy left behind would be served again by Pull, so failures are returned.
func (r *Reconciler) Discard(ctx context.Context, sessionID string) error {
	defer r.Forget(sessionID)

	derr := r.local.Delete(ctx, sessionID)
	perr := r.local.ClearPending(ctx, sessionID)
	if derr != nil {
		return errs.Persistence(errs.Wrap(derr, "local draft copy could not be removed"))
	}
	if perr != nil {
		return errs.Persistence(errs.Wrap(perr, "pending marker could not be cleared"))
	}
	return nil
}

func (r *Reconciler) Forget(sessionID string) {
	r.mu.Lock()
	delete(r.sessions, sessionID)
	r.mu.Unlock()
}

// Sessions lists the sessions this process has touched since they were last forgotten.
func (r *Reconciler) Sessions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.sessions))
	for id := range r.sessions {
		out = append(out, id)
	}
	return out
}

// Evict forgets sessions untouched for longer than the idle TTL that have no
// pending remote write. It returns how many were dropped.
func (r *Reconciler) Evict(ctx context.Context) int {
	cutoff := r.clock.Now().Add(-r.idleTTL)

	r.mu.Lock()
	var idle []string
	for id, s := range r.sessions {
		if s.lastUsed.Before(cutoff) {
			idle = append(idle, id)
		}
	}
	r.mu.Unlock()

	n := 0
	for _, id := range idle {
		pending, err := r.local.IsPending(ctx, id)
		if err != nil || pending {
			continue
		}
		if r.evict(id, cutoff) {
			n++
		}
	}
	return n
}

func (r *Reconciler) evict(sessionID string, cutoff time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok || !s.lastUsed.Before(cutoff) {
		return false
	}
	// a held lock means the session is in use right now
	if !s.edit.TryLock() {
		return false
	}
	defer s.edit.Unlock()
	if !s.write.TryLock() {
		return false
	}
	defer s.write.Unlock()

	delete(r.sessions, sessionID)
	return true
}

// Drain waits for every scheduled remote write to finish.
func (r *Reconciler) Drain() {
	r.inflight.Wait()
}

func (r *Reconciler) localCopy(ctx context.Context, sessionID string) (*draft.Draft, bool) {
	d, ok, err := r.local.Get(ctx, sessionID)
	if err != nil {
		r.logger.Warn("local draft read failed", "session_id", sessionID, "error", err)
		return nil, false
	}
	return d, ok
}

// session returns the state for sessionID, creating it on first use. touch
// records operator or editor activity for Evict.
func (r *Reconciler) session(sessionID string, touch bool) *session {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[sessionID]
	if !ok {
		s = &session{lastUsed: r.clock.Now()}
		r.sessions[sessionID] = s
	}
	if touch {
		s.lastUsed = r.clock.Now()
	}
	return s
}

func (r *Reconciler) schedule(ctx context.Context, d *draft.Draft) {
	sessionID := d.SessionID()
	s := r.session(sessionID, true)

	s.version.Lock()
	s.latest++
	version := s.latest
	if err := r.local.MarkPending(ctx, sessionID); err != nil {
		r.logger.Warn("failed to mark draft pending", "session_id", sessionID, "error", err)
	}
	s.version.Unlock()

	snapshot := draft.Reconstruct(sessionID, d.Dimensions(), d.Artifacts(), d.UpdatedAt())
	detached := context.WithoutCancel(ctx)
	r.inflight.Add(1)
	go func() {
		defer r.inflight.Done()
		r.write(detached, s, snapshot, version)
	}()
}

func (r *Reconciler) write(ctx context.Context, s *session, d *draft.Draft, version uint64) {
	s.write.Lock()
	defer s.write.Unlock()

	if s.frozen || version < r.latest(s) {
		metrics.RemotePushes.WithLabelValues(metrics.OutcomeSuperseded).Inc()
		return
	}

	wctx, cancel := context.WithTimeout(ctx, r.writeTimeout)
	defer cancel()
	if err := r.remote.Store(wctx, d); err != nil {
		metrics.RemotePushes.WithLabelValues(metrics.OutcomeFailure).Inc()
		r.logger.Warn("remote draft write failed, session stays pending",
			"session_id", d.SessionID(), "version", version, "error", err)
		return
	}
	metrics.RemotePushes.WithLabelValues(metrics.OutcomeSuccess).Inc()
	r.settle(ctx, s, d.SessionID(), version)
}

// writeInline stores d remotely on the caller's goroutine. It takes a version
// like a scheduled write, so older writes still queued are dropped as
// superseded instead of landing after it.
func (r *Reconciler) writeInline(ctx context.Context, d *draft.Draft) error {
	s := r.session(d.SessionID(), true)
	s.version.Lock()
	s.latest++
	version := s.latest
	s.version.Unlock()

	s.write.Lock()
	defer s.write.Unlock()
	if s.frozen {
		metrics.RemotePushes.WithLabelValues(metrics.OutcomeSuperseded).Inc()
		return nil
	}

	wctx, cancel := context.WithTimeout(ctx, r.writeTimeout)
	defer cancel()
	if err := r.remote.Store(wctx, d); err != nil {
		metrics.RemotePushes.WithLabelValues(metrics.OutcomeFailure).Inc()
		return errs.Persistence(errs.Wrap(err, "draft could not be saved"))
	}
	metrics.RemotePushes.WithLabelValues(metrics.OutcomeSuccess).Inc()
	r.settle(ctx, s, d.SessionID(), version)
	return nil
}

// settle clears the pending marker once the latest version is stored.
func (r *Reconciler) settle(ctx context.Context, s *session, sessionID string, version uint64) {
	s.version.Lock()
	defer s.version.Unlock()
	if version != s.latest {
		return
	}
	if err := r.local.ClearPending(ctx, sessionID); err != nil {
		r.logger.Warn("failed to clear pending marker", "session_id", sessionID, "error", err)
	}
}

func (r *Reconciler) latest(s *session) uint64 {
	s.version.Lock()
	defer s.version.Unlock()
	return s.latest
}
