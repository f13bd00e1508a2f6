//go:build unit

package commands_test

import (
	"errors"
	"testing"

	"pass-config-engine/internal/domain/artifact"
	"pass-config-engine/internal/domain/draft"
	"pass-config-engine/internal/pkg/errs"
	"pass-config-engine/internal/usecase/commands"
	"pass-config-engine/tests/common/builder"

	"github.com/stretchr/testify/suite"
)

type PromotionTestSuite struct {
	commandSuite
}

func TestPromotionSuite(t *testing.T) {
	suite.Run(t, new(PromotionTestSuite))
}

func (s *PromotionTestSuite) TestRejectsIncompleteDraft() {
	d := s.seedDraft(builder.NewDraftBuilder().Complete().WithoutFutureQR().MustBuild())
	writesBefore := len(s.remote.WritesFor(d.SessionID()))

	res, err := s.promotion.Promote(s.ctx, d.SessionID(), commands.PromoteRequest{Name: "Gold Plan"})

	s.Require().Error(err)
	s.Nil(res)
	s.True(errs.Is(err, errs.ErrValidation))
	var incomplete *commands.IncompleteError
	s.Require().True(errors.As(err, &incomplete))
	s.Equal([]draft.Dimension{draft.DimFutureQR}, incomplete.Missing)

	s.Zero(s.uow.Mutations())
	s.Empty(s.uow.Configurations())
	s.rec.Drain()
	s.Len(s.remote.WritesFor(d.SessionID()), writesBefore)
	s.Empty(s.publisher.Published())
}

func (s *PromotionTestSuite) TestRejectsBlankName() {
	d := s.seedDraft(builder.NewDraftBuilder().Complete().MustBuild())

	_, err := s.promotion.Promote(s.ctx, d.SessionID(), commands.PromoteRequest{Name: "   "})

	s.True(errs.Is(err, errs.ErrValidation))
	s.Zero(s.uow.Mutations())
	_, stored := s.remote.Stored(d.SessionID())
	s.True(stored)
}

func (s *PromotionTestSuite) TestPromotesGoldPlan() {
	d := s.seedDraft(builder.NewDraftBuilder().Complete().MustBuild())
	session := d.SessionID()
	welcome, _, landing := d.TemplateIDs()

	stale, err := artifact.NewArtifact(session, artifact.KindWelcome, artifact.OriginCustom, "<p>draft 1</p>", s.clock.Now())
	s.Require().NoError(err)
	s.uow.AddArtifact(stale, session)
	s.seedURL(session, "Front desk", strPtr("https://example.com/front"))
	s.seedURL(session, "Lobby", nil)

	res, err := s.promotion.Promote(s.ctx, session, commands.PromoteRequest{Name: "Gold Plan", Description: "weekend"})
	s.Require().NoError(err)

	cfg := res.Configuration
	s.Equal("Gold Plan", cfg.Name())
	s.Equal("21.60", cfg.Price().Final().StringFixed(2))
	s.Equal(map[string]string{"Front desk": "https://example.com/front"}, cfg.URLMap())
	s.Len(cfg.URLs(), 2)

	stored, ok := s.uow.Configuration(cfg.ID())
	s.Require().True(ok)
	s.Equal(cfg.Templates(), stored.Templates())

	s.Run("referenced artifacts are detached, the rest removed", func() {
		for _, ref := range []*artifact.Ref{welcome, landing} {
			owner, exists := s.uow.ArtifactOwner(ref.ID)
			s.True(exists)
			s.Empty(owner)
		}
		s.False(s.uow.HasArtifact(stale.ID()))
		s.EqualValues(1, res.ArtifactsFreed)
	})

	s.Run("session state is gone", func() {
		s.Empty(s.uow.URLsOf(session))
		s.EqualValues(2, res.URLsReleased)
		_, remote := s.remote.Stored(session)
		s.False(remote)
		s.False(s.local.Has(session))
		s.NotContains(s.rec.Sessions(), session)
	})

	s.Run("a fresh session begins", func() {
		s.NotEmpty(res.NewSessionID)
		s.NotEqual(session, res.NewSessionID)
		next, err := s.drafts.Load(s.ctx, res.NewSessionID)
		s.Require().NoError(err)
		s.Zero(next.Completed().Len())
	})

	s.Run("promotion event is published", func() {
		events := s.publisher.Published()
		s.Require().Len(events, 1)
		s.Equal(cfg.ID(), events[0].ConfigurationID)
		s.Equal("21.60", events[0].FinalPrice)
		s.Equal(session, events[0].SessionID)
		s.Equal("URLS", events[0].DeliveryMethod)
	})
}

func (s *PromotionTestSuite) TestRollbackKeepsDraft() {
	d := s.seedDraft(builder.NewDraftBuilder().Complete().MustBuild())
	session := d.SessionID()
	welcome, _, _ := d.TemplateIDs()
	s.seedURL(session, "Front desk", strPtr("https://example.com/front"))
	s.uow.FailOn("urls.DeleteBySession", errs.Persistence(errs.New("connection reset")))

	_, err := s.promotion.Promote(s.ctx, session, commands.PromoteRequest{Name: "Gold Plan"})

	s.Require().Error(err)
	s.True(errs.Is(err, errs.ErrPersistence))
	s.Empty(s.uow.Configurations())
	owner, _ := s.uow.ArtifactOwner(welcome.ID)
	s.Equal(session, owner)
	s.Len(s.uow.URLsOf(session), 1)
	_, remote := s.remote.Stored(session)
	s.True(remote)

	reloaded, err := s.drafts.Load(s.ctx, session)
	s.Require().NoError(err)
	s.True(reloaded.AllComplete())

	s.Run("session accepts edits again", func() {
		_, err := s.drafts.SetFutureQR(s.ctx, session, false)
		s.Require().NoError(err)
		s.rec.Drain()
		stored, ok := s.remote.Stored(session)
		s.Require().True(ok)
		s.False(*stored.Dimensions().FutureQR.Allowed)
	})
}

func (s *PromotionTestSuite) TestPublishFailureDoesNotFailPromotion() {
	d := s.seedDraft(builder.NewDraftBuilder().Complete().MustBuild())
	s.publisher.Err = errors.New("broker down")

	res, err := s.promotion.Promote(s.ctx, d.SessionID(), commands.PromoteRequest{Name: "Gold Plan"})

	s.Require().NoError(err)
	s.Len(s.uow.Configurations(), 1)
	s.NotEmpty(res.NewSessionID)
}
