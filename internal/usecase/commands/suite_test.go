//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"pass-config-engine/internal/domain/artifact"
	"pass-config-engine/internal/domain/draft"
	"pass-config-engine/internal/domain/pricing"
	"pass-config-engine/internal/domain/savedconfig"
	"pass-config-engine/internal/domain/tempurl"
	"pass-config-engine/internal/pkg/clock"
	"pass-config-engine/internal/usecase/commands"
	"pass-config-engine/internal/usecase/reconcile"
	"pass-config-engine/tests/common/builder"
	"pass-config-engine/tests/common/fakes"

	"github.com/stretchr/testify/suite"
)

// commandSuite wires every command usecase against in-memory stores.
type commandSuite struct {
	suite.Suite
	ctx       context.Context
	clock     *clock.MockClock
	local     *fakes.LocalCache
	remote    *fakes.RemoteStore
	lookup    *fakes.ArtifactLookup
	uow       *fakes.UnitOfWork
	templates *fakes.DefaultTemplates
	publisher *fakes.Publisher
	rec       *reconcile.Reconciler

	drafts    commands.DraftCommands
	urls      commands.TempURLCommands
	promotion commands.PromotionCommands
	library   commands.LibraryCommands
}

func (s *commandSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewMockClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	s.local = fakes.NewLocalCache()
	s.remote = fakes.NewRemoteStore()
	s.lookup = fakes.NewArtifactLookup()
	s.uow = fakes.NewUnitOfWork(s.remote)
	s.templates = fakes.NewDefaultTemplates()
	s.publisher = &fakes.Publisher{}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.rec = reconcile.NewReconciler(s.local, s.remote, s.lookup, s.clock, logger,
		reconcile.WithWriteTimeout(time.Second))

	calc := pricing.NewDefaultCalculator()
	s.drafts = commands.NewDraftUseCase(s.uow, s.rec, s.templates, s.clock)
	s.urls = commands.NewTempURLUseCase(s.uow, s.rec, s.clock)
	s.promotion = commands.NewPromotionUseCase(s.uow, s.rec, calc, s.publisher, s.clock, logger)
	s.library = commands.NewLibraryUseCase(s.uow, s.rec, s.clock, logger)
}

func (s *commandSuite) TearDownTest() {
	s.rec.Drain()
}

// seedDraft stores d as the session's draft and registers its artifacts as
// owned by the session.
func (s *commandSuite) seedDraft(d *draft.Draft) *draft.Draft {
	for _, ref := range d.Artifacts() {
		a := artifact.ReconstructArtifact(ref.ID, d.SessionID(), ref.Kind, ref.Origin, "<p>"+string(ref.Kind)+"</p>", s.clock.Now())
		s.uow.AddArtifact(a, d.SessionID())
	}
	s.Require().NoError(s.rec.Push(s.ctx, d))
	s.rec.Drain()
	return d
}

func (s *commandSuite) seedURL(sessionID, name string, address *string) *tempurl.URL {
	u, err := tempurl.NewURL(sessionID, name, address, nil, s.clock.Now())
	s.Require().NoError(err)
	s.uow.AddURL(u)
	return u
}

// seedConfiguration stores a promoted Gold Plan configuration with its
// artifacts detached from any session.
func (s *commandSuite) seedConfiguration(name string, urls ...*tempurl.URL) *savedconfig.SavedConfiguration {
	d := builder.NewDraftBuilder().Complete().MustBuild()
	cfg, err := savedconfig.FromDraft(d, name, "", urls, pricing.NewDefaultCalculator(), s.clock.Now())
	s.Require().NoError(err)
	for _, ref := range cfg.Artifacts() {
		a := artifact.ReconstructArtifact(ref.ID, d.SessionID(), ref.Kind, ref.Origin, "<p>"+string(ref.Kind)+"</p>", s.clock.Now())
		s.uow.AddArtifact(a, "")
	}
	s.uow.AddConfiguration(cfg)
	return cfg
}

func strPtr(v string) *string { return &v }
