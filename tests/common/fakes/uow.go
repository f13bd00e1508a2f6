//go:build unit || integration || e2e

package fakes

import (
	"context"
	"sort"
	"sync"

	"pass-config-engine/internal/domain/artifact"
	"pass-config-engine/internal/domain/savedconfig"
	"pass-config-engine/internal/domain/tempurl"
	"pass-config-engine/internal/infra/db"
	"pass-config-engine/internal/pkg/errs"
	"pass-config-engine/internal/pkg/ptr"
	"pass-config-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type storedArtifact struct {
	a     *artifact.Artifact
	owner string // empty once detached from its session
}

type state struct {
	artifacts map[uuid.UUID]storedArtifact
	urls      map[uuid.UUID]*tempurl.URL
	configs   map[uuid.UUID]*savedconfig.SavedConfiguration
	sellers   map[uuid.UUID]bool
	// deleted drafts are applied to the remote store on commit
	deletedDrafts []string
	mutations     int
}

func (s *state) clone() *state {
	c := &state{
		artifacts: make(map[uuid.UUID]storedArtifact, len(s.artifacts)),
		urls:      make(map[uuid.UUID]*tempurl.URL, len(s.urls)),
		configs:   make(map[uuid.UUID]*savedconfig.SavedConfiguration, len(s.configs)),
		sellers:   make(map[uuid.UUID]bool, len(s.sellers)),
		mutations: s.mutations,
	}
	for k, v := range s.artifacts {
		c.artifacts[k] = v
	}
	for k, v := range s.urls {
		c.urls[k] = copyURL(v)
	}
	for k, v := range s.configs {
		c.configs[k] = copyConfig(v)
	}
	for k, v := range s.sellers {
		c.sellers[k] = v
	}
	return c
}

func copyURL(u *tempurl.URL) *tempurl.URL {
	return tempurl.ReconstructURL(u.ID(), u.SessionID(), u.Name(), ptr.Clone(u.Address()), ptr.Clone(u.Description()), u.CreatedAt(), u.UpdatedAt())
}

func copyConfig(c *savedconfig.SavedConfiguration) *savedconfig.SavedConfiguration {
	return savedconfig.Reconstruct(
		c.ID(), c.Name(), c.Description(), c.Dimensions(), c.URLs(), c.Templates(),
		c.Artifacts(), c.Price(), ptr.Clone(c.AssignedSellerID()), c.CreatedAt(), c.UpdatedAt(),
	)
}

// UnitOfWork is an in-memory shared.UnitOfWork. Within runs on a copy of the
// state and keeps it only when fn succeeds.
type UnitOfWork struct {
	mu     sync.Mutex
	state  *state
	remote *RemoteStore
	failOn map[string]error
}

func NewUnitOfWork(remote *RemoteStore) *UnitOfWork {
	return &UnitOfWork{
		state: &state{
			artifacts: map[uuid.UUID]storedArtifact{},
			urls:      map[uuid.UUID]*tempurl.URL{},
			configs:   map[uuid.UUID]*savedconfig.SavedConfiguration{},
			sellers:   map[uuid.UUID]bool{},
		},
		remote: remote,
		failOn: map[string]error{},
	}
}

// FailOn makes the named repository operation (for example
// "urls.DeleteBySession") return err.
func (u *UnitOfWork) FailOn(op string, err error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.failOn[op] = err
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.run(ctx, fn)
}

func (u *UnitOfWork) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.run(ctx, fn)
}

func (u *UnitOfWork) WithDB(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.run(ctx, fn)
}

func (u *UnitOfWork) run(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	work := u.state.clone()
	if err := fn(ctx, &tx{s: work, failOn: u.failOn}); err != nil {
		return err
	}
	for _, id := range work.deletedDrafts {
		if u.remote != nil {
			u.remote.Remove(id)
		}
	}
	work.deletedDrafts = nil
	u.state = work
	return nil
}

// Seeding and inspection helpers.

func (u *UnitOfWork) AddSeller(id uuid.UUID) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.sellers[id] = true
}

func (u *UnitOfWork) AddConfiguration(cfg *savedconfig.SavedConfiguration) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.configs[cfg.ID()] = copyConfig(cfg)
}

// AddArtifact stores a; an empty owner stores it detached.
func (u *UnitOfWork) AddArtifact(a *artifact.Artifact, owner string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.artifacts[a.ID()] = storedArtifact{a: a, owner: owner}
}

func (u *UnitOfWork) AddURL(url *tempurl.URL) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.urls[url.ID()] = copyURL(url)
}

func (u *UnitOfWork) Mutations() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state.mutations
}

func (u *UnitOfWork) Configuration(id uuid.UUID) (*savedconfig.SavedConfiguration, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	c, ok := u.state.configs[id]
	if !ok {
		return nil, false
	}
	return copyConfig(c), true
}

func (u *UnitOfWork) Configurations() []*savedconfig.SavedConfiguration {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]*savedconfig.SavedConfiguration, 0, len(u.state.configs))
	for _, c := range u.state.configs {
		out = append(out, copyConfig(c))
	}
	return out
}

func (u *UnitOfWork) HasArtifact(id uuid.UUID) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	_, ok := u.state.artifacts[id]
	return ok
}

// ArtifactOwner reports the owning session, empty when detached.
func (u *UnitOfWork) ArtifactOwner(id uuid.UUID) (string, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	sa, ok := u.state.artifacts[id]
	return sa.owner, ok
}

func (u *UnitOfWork) ArtifactsOf(sessionID string) []*artifact.Artifact {
	u.mu.Lock()
	defer u.mu.Unlock()
	var out []*artifact.Artifact
	for _, sa := range u.state.artifacts {
		if sa.owner == sessionID {
			out = append(out, sa.a)
		}
	}
	return out
}

func (u *UnitOfWork) URLsOf(sessionID string) []*tempurl.URL {
	u.mu.Lock()
	defer u.mu.Unlock()
	return urlsOf(u.state, sessionID)
}

func urlsOf(s *state, sessionID string) []*tempurl.URL {
	var out []*tempurl.URL
	for _, url := range s.urls {
		if url.SessionID() == sessionID {
			out = append(out, copyURL(url))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt().Before(out[j].CreatedAt()) })
	return out
}

var errNotFound = errs.NotFound(errs.New("record not found"))

type tx struct {
	s      *state
	failOn map[string]error
}

func (t *tx) fail(op string) error { return t.failOn[op] }

func (t *tx) Drafts() shared.DraftRepository               { return draftRepo{t} }
func (t *tx) Artifacts() shared.ArtifactRepository         { return artifactRepo{t} }
func (t *tx) URLs() shared.TempURLRepository               { return urlRepo{t} }
func (t *tx) Configurations() shared.SavedConfigRepository { return configRepo{t} }
func (t *tx) Sellers() shared.SellerRepository             { return sellerRepo{t} }
func (t *tx) DB() db.DBTX                                  { return nil }

type draftRepo struct{ t *tx }

func (r draftRepo) Delete(_ context.Context, _ db.DBTX, sessionID string) error {
	if err := r.t.fail("drafts.Delete"); err != nil {
		return err
	}
	r.t.s.deletedDrafts = append(r.t.s.deletedDrafts, sessionID)
	r.t.s.mutations++
	return nil
}

type artifactRepo struct{ t *tx }

func (r artifactRepo) Create(_ context.Context, _ db.DBTX, a *artifact.Artifact) error {
	if err := r.t.fail("artifacts.Create"); err != nil {
		return err
	}
	r.t.s.artifacts[a.ID()] = storedArtifact{a: a, owner: a.SessionID()}
	r.t.s.mutations++
	return nil
}

func (r artifactRepo) ListBySession(_ context.Context, _ db.DBTX, sessionID string) ([]*artifact.Artifact, error) {
	var out []*artifact.Artifact
	for _, sa := range r.t.s.artifacts {
		if sa.owner == sessionID {
			out = append(out, sa.a)
		}
	}
	return out, nil
}

func (r artifactRepo) FindByIDs(_ context.Context, _ db.DBTX, ids []uuid.UUID) ([]*artifact.Artifact, error) {
	var out []*artifact.Artifact
	for _, id := range ids {
		if sa, ok := r.t.s.artifacts[id]; ok {
			out = append(out, sa.a)
		}
	}
	return out, nil
}

func (r artifactRepo) DetachFromSession(_ context.Context, _ db.DBTX, sessionID string, ids []uuid.UUID) error {
	if err := r.t.fail("artifacts.DetachFromSession"); err != nil {
		return err
	}
	for _, id := range ids {
		if sa, ok := r.t.s.artifacts[id]; ok && sa.owner == sessionID {
			sa.owner = ""
			r.t.s.artifacts[id] = sa
			r.t.s.mutations++
		}
	}
	return nil
}

func (r artifactRepo) DeleteBySession(_ context.Context, _ db.DBTX, sessionID string) (int64, error) {
	if err := r.t.fail("artifacts.DeleteBySession"); err != nil {
		return 0, err
	}
	var n int64
	for id, sa := range r.t.s.artifacts {
		if sa.owner == sessionID {
			delete(r.t.s.artifacts, id)
			n++
		}
	}
	r.t.s.mutations++
	return n, nil
}

func (r artifactRepo) DeleteOrphans(_ context.Context, _ db.DBTX, candidates []uuid.UUID) (int64, error) {
	if err := r.t.fail("artifacts.DeleteOrphans"); err != nil {
		return 0, err
	}
	linked := map[uuid.UUID]bool{}
	for _, c := range r.t.s.configs {
		for _, ref := range c.Artifacts() {
			linked[ref.ID] = true
		}
	}
	var n int64
	for _, id := range candidates {
		sa, ok := r.t.s.artifacts[id]
		if !ok || sa.owner != "" || linked[id] {
			continue
		}
		delete(r.t.s.artifacts, id)
		n++
	}
	r.t.s.mutations++
	return n, nil
}

type urlRepo struct{ t *tx }

func (r urlRepo) Create(_ context.Context, _ db.DBTX, u *tempurl.URL) error {
	if err := r.t.fail("urls.Create"); err != nil {
		return err
	}
	r.t.s.urls[u.ID()] = copyURL(u)
	r.t.s.mutations++
	return nil
}

func (r urlRepo) Update(_ context.Context, _ db.DBTX, u *tempurl.URL) error {
	if err := r.t.fail("urls.Update"); err != nil {
		return err
	}
	if _, ok := r.t.s.urls[u.ID()]; !ok {
		return errNotFound
	}
	r.t.s.urls[u.ID()] = copyURL(u)
	r.t.s.mutations++
	return nil
}

func (r urlRepo) FindByID(_ context.Context, _ db.DBTX, sessionID string, id uuid.UUID) (*tempurl.URL, error) {
	u, ok := r.t.s.urls[id]
	if !ok || u.SessionID() != sessionID {
		return nil, errNotFound
	}
	return copyURL(u), nil
}

func (r urlRepo) ListBySession(_ context.Context, _ db.DBTX, sessionID string) ([]*tempurl.URL, error) {
	return urlsOf(r.t.s, sessionID), nil
}

func (r urlRepo) Delete(_ context.Context, _ db.DBTX, sessionID string, id uuid.UUID) error {
	u, ok := r.t.s.urls[id]
	if !ok || u.SessionID() != sessionID {
		return errNotFound
	}
	delete(r.t.s.urls, id)
	r.t.s.mutations++
	return nil
}

func (r urlRepo) DeleteBySession(_ context.Context, _ db.DBTX, sessionID string) (int64, error) {
	if err := r.t.fail("urls.DeleteBySession"); err != nil {
		return 0, err
	}
	var n int64
	for id, u := range r.t.s.urls {
		if u.SessionID() == sessionID {
			delete(r.t.s.urls, id)
			n++
		}
	}
	r.t.s.mutations++
	return n, nil
}

type configRepo struct{ t *tx }

func (r configRepo) Create(_ context.Context, _ db.DBTX, cfg *savedconfig.SavedConfiguration) error {
	if err := r.t.fail("configurations.Create"); err != nil {
		return err
	}
	r.t.s.configs[cfg.ID()] = copyConfig(cfg)
	r.t.s.mutations++
	return nil
}

func (r configRepo) FindForUpdate(_ context.Context, _ db.DBTX, id uuid.UUID) (*savedconfig.SavedConfiguration, error) {
	c, ok := r.t.s.configs[id]
	if !ok {
		return nil, errNotFound
	}
	return copyConfig(c), nil
}

func (r configRepo) FindBySeller(_ context.Context, _ db.DBTX, sellerID uuid.UUID) (*uuid.UUID, error) {
	for id, c := range r.t.s.configs {
		if s := c.AssignedSellerID(); s != nil && *s == sellerID {
			found := id
			return &found, nil
		}
	}
	return nil, nil
}

func (r configRepo) UpdateMetadata(_ context.Context, _ db.DBTX, cfg *savedconfig.SavedConfiguration) error {
	if _, ok := r.t.s.configs[cfg.ID()]; !ok {
		return errNotFound
	}
	r.t.s.configs[cfg.ID()] = copyConfig(cfg)
	r.t.s.mutations++
	return nil
}

func (r configRepo) Assign(_ context.Context, _ db.DBTX, id, sellerID uuid.UUID) error {
	if err := r.t.fail("configurations.Assign"); err != nil {
		return err
	}
	c, ok := r.t.s.configs[id]
	if !ok {
		return errNotFound
	}
	for otherID, other := range r.t.s.configs {
		if s := other.AssignedSellerID(); otherID != id && s != nil && *s == sellerID {
			return errs.Conflict(errs.New("seller already assigned"))
		}
	}
	sid := sellerID
	r.t.s.configs[id] = savedconfig.Reconstruct(
		c.ID(), c.Name(), c.Description(), c.Dimensions(), c.URLs(), c.Templates(),
		c.Artifacts(), c.Price(), &sid, c.CreatedAt(), c.UpdatedAt(),
	)
	r.t.s.mutations++
	return nil
}

func (r configRepo) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	if err := r.t.fail("configurations.Delete"); err != nil {
		return err
	}
	if _, ok := r.t.s.configs[id]; !ok {
		return errNotFound
	}
	delete(r.t.s.configs, id)
	r.t.s.mutations++
	return nil
}

type sellerRepo struct{ t *tx }

func (r sellerRepo) Exists(_ context.Context, _ db.DBTX, id uuid.UUID) (bool, error) {
	return r.t.s.sellers[id], nil
}
