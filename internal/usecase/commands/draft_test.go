//go:build unit

package commands_test

import (
	"errors"
	"testing"

	"pass-config-engine/internal/domain/artifact"
	"pass-config-engine/internal/domain/draft"
	"pass-config-engine/internal/pkg/errs"
	"pass-config-engine/internal/pkg/patch"
	"pass-config-engine/internal/usecase/commands"
	"pass-config-engine/tests/common/builder"

	"github.com/stretchr/testify/suite"
)

type DraftCommandsTestSuite struct {
	commandSuite
}

func TestDraftCommandsSuite(t *testing.T) {
	suite.Run(t, new(DraftCommandsTestSuite))
}

func (s *DraftCommandsTestSuite) TestBeginAndLoad() {
	d, err := s.drafts.Begin(s.ctx)
	s.Require().NoError(err)
	s.NotEmpty(d.SessionID())
	s.True(s.local.Has(d.SessionID()))

	loaded, err := s.drafts.Load(s.ctx, d.SessionID())
	s.Require().NoError(err)
	s.Equal(d.SessionID(), loaded.SessionID())
}

func (s *DraftCommandsTestSuite) TestInvalidInputIsValidationError() {
	d := s.seedDraft(builder.NewDraftBuilder().MustBuild())

	_, err := s.drafts.ConfigureLimits(s.ctx, d.SessionID(), draft.Limits{
		Guests: draft.LimitSetting{DefaultValue: 12, RangeMax: 10},
		Days:   draft.LimitSetting{DefaultValue: 1, RangeMax: 7},
	})
	s.True(errs.Is(err, errs.ErrValidation))

	_, err = s.drafts.SetDeliveryMethod(s.ctx, d.SessionID(), draft.DeliveryMethod("FAX"))
	s.True(errs.Is(err, errs.ErrValidation))
}

func (s *DraftCommandsTestSuite) TestDefaultTemplateSnapshot() {
	d := s.seedDraft(builder.NewDraftBuilder().MustBuild())
	session := d.SessionID()

	first, err := s.drafts.ChooseWelcomeTemplate(s.ctx, session, false)
	s.Require().NoError(err)
	s.True(first.Completed().Has(draft.DimWelcomeEmail))
	ref := first.Dimensions().Welcome.Template
	s.Require().NotNil(ref)
	s.Equal(artifact.OriginDefault, ref.Origin)

	owned := s.uow.ArtifactsOf(session)
	s.Require().Len(owned, 1)
	s.Equal(ref.ID, owned[0].ID())

	s.Run("choosing default again reuses the snapshot", func() {
		again, err := s.drafts.ChooseWelcomeTemplate(s.ctx, session, false)
		s.Require().NoError(err)
		s.Equal(ref.ID, again.Dimensions().Welcome.Template.ID)
		s.Equal(1, s.templates.CallsFor(artifact.KindWelcome))
		s.Len(s.uow.ArtifactsOf(session), 1)
	})
}

func (s *DraftCommandsTestSuite) TestCustomTemplateCompletesOnArrival() {
	d := s.seedDraft(builder.NewDraftBuilder().MustBuild())
	session := d.SessionID()

	pending, err := s.drafts.ChooseWelcomeTemplate(s.ctx, session, true)
	s.Require().NoError(err)
	s.False(pending.Completed().Has(draft.DimWelcomeEmail))

	res, err := s.drafts.RegisterArtifact(s.ctx, session, commands.RegisterArtifactRequest{
		Kind:    artifact.KindWelcome,
		Content: "<p>Welcome aboard</p>",
	})
	s.Require().NoError(err)
	s.True(res.Draft.Completed().Has(draft.DimWelcomeEmail))
	s.Equal(artifact.OriginCustom, res.Artifact.Origin)
	s.True(s.uow.HasArtifact(res.Artifact.ID))

	s.Run("merge never replaces existing artifacts", func() {
		other := builder.CustomRef(artifact.KindRebuy)
		merged, err := s.drafts.MergeArtifacts(s.ctx, session, []artifact.Ref{other})
		s.Require().NoError(err)
		s.Contains(merged.Artifacts(), res.Artifact)
		s.Contains(merged.Artifacts(), other)
	})
}

func (s *DraftCommandsTestSuite) TestDeliverySwitchAndRegistry() {
	d := s.seedDraft(builder.NewDraftBuilder().MustBuild())
	session := d.SessionID()

	s.Run("registry needs a URL delivery mode", func() {
		_, err := s.drafts.SetDeliveryMethod(s.ctx, session, draft.DeliveryDirect)
		s.Require().NoError(err)
		_, err = s.urls.Create(s.ctx, session, commands.CreateURLRequest{Name: "Front desk"})
		s.True(errs.Is(err, commands.ErrRegistryNotApplicable))
		s.True(errs.Is(err, errs.ErrValidation))
	})

	s.Run("creating a record marks registry content without completing delivery", func() {
		_, err := s.drafts.SetDeliveryMethod(s.ctx, session, draft.DeliveryURLs)
		s.Require().NoError(err)
		_, err = s.urls.Create(s.ctx, session, commands.CreateURLRequest{Name: "Front desk"})
		s.Require().NoError(err)

		loaded, err := s.drafts.Load(s.ctx, session)
		s.Require().NoError(err)
		s.True(loaded.Dimensions().Delivery.HasRegistryContent)
		s.False(loaded.Completed().Has(draft.DimDelivery))
	})

	s.Run("external editor fills the address", func() {
		urls := s.uow.URLsOf(session)
		s.Require().Len(urls, 1)
		addr := "https://example.com/front"
		updated, err := s.urls.Update(s.ctx, session, urls[0].ID(), commands.UpdateURLRequest{
			Address: patch.Nullable[string]{Set: true, Value: &addr},
		})
		s.Require().NoError(err)
		s.Equal("Front desk", updated.Name())
		s.Equal(addr, *updated.Address())
	})

	s.Run("URLS to BOTH keeps the registry", func() {
		res, err := s.drafts.SetDeliveryMethod(s.ctx, session, draft.DeliveryBoth)
		s.Require().NoError(err)
		s.False(res.RegistryCleared)
		s.Len(s.uow.URLsOf(session), 1)
		s.True(res.Draft.Dimensions().Delivery.HasRegistryContent)
	})

	s.Run("switching to DIRECT clears the registry", func() {
		res, err := s.drafts.SetDeliveryMethod(s.ctx, session, draft.DeliveryDirect)
		s.Require().NoError(err)
		s.True(res.RegistryCleared)
		s.EqualValues(1, res.URLsRemoved)
		s.Empty(s.uow.URLsOf(session))
		s.False(res.Draft.Dimensions().Delivery.HasRegistryContent)
		s.True(res.Draft.Completed().Has(draft.DimDelivery))
	})
}

func (s *DraftCommandsTestSuite) TestDirectSwitchKeepsDraftWhenRegistryDeleteFails() {
	d := s.seedDraft(builder.NewDraftBuilder().WithDelivery(draft.DeliveryURLs, draft.LandingPageUnset).MustBuild())
	session := d.SessionID()
	s.seedURL(session, "Front desk", nil)
	s.uow.FailOn("urls.DeleteBySession", errs.Persistence(errors.New("db down")))

	_, err := s.drafts.SetDeliveryMethod(s.ctx, session, draft.DeliveryDirect)
	s.Require().Error(err)
	s.True(errs.Is(err, errs.ErrPersistence))

	loaded, err := s.drafts.Load(s.ctx, session)
	s.Require().NoError(err)
	s.Equal(draft.DeliveryURLs, loaded.DeliveryMethod())
	s.False(loaded.Completed().Has(draft.DimDelivery))
	s.Len(s.uow.URLsOf(session), 1)

	stored, ok := s.remote.Stored(session)
	s.Require().True(ok)
	s.Equal(draft.DeliveryURLs, stored.DeliveryMethod())
}

func (s *DraftCommandsTestSuite) TestOperatorEditSurvivesArtifactMerge() {
	d := s.seedDraft(builder.NewDraftBuilder().MustBuild())
	session := d.SessionID()
	ref := builder.CustomRef(artifact.KindWelcome)

	// the consumer read the draft before the operator answered
	stale, err := s.drafts.Load(s.ctx, session)
	s.Require().NoError(err)
	s.Nil(stale.Dimensions().FutureQR.Allowed)

	_, err = s.drafts.SetFutureQR(s.ctx, session, false)
	s.Require().NoError(err)
	_, err = s.drafts.MergeArtifacts(s.ctx, session, []artifact.Ref{ref})
	s.Require().NoError(err)

	loaded, err := s.drafts.Load(s.ctx, session)
	s.Require().NoError(err)
	s.Require().NotNil(loaded.Dimensions().FutureQR.Allowed)
	s.False(*loaded.Dimensions().FutureQR.Allowed)
	s.Contains(loaded.Artifacts(), ref)
}

func (s *DraftCommandsTestSuite) TestDefaultLandingPage() {
	d := s.seedDraft(builder.NewDraftBuilder().MustBuild())
	session := d.SessionID()

	_, err := s.drafts.SetDeliveryMethod(s.ctx, session, draft.DeliveryURLs)
	s.Require().NoError(err)
	updated, err := s.drafts.ChooseLandingPage(s.ctx, session, draft.LandingPageDefault)
	s.Require().NoError(err)

	s.True(updated.Completed().Has(draft.DimDelivery))
	s.Require().NotNil(updated.Dimensions().Delivery.LandingTemplate)
	s.Equal(1, s.templates.CallsFor(artifact.KindLanding))
}

func (s *DraftCommandsTestSuite) TestRebuyDefaultTemplate() {
	d := s.seedDraft(builder.NewDraftBuilder().MustBuild())
	useCustom := false

	updated, err := s.drafts.ConfigureRebuy(s.ctx, d.SessionID(), commands.RebuyRequest{Enabled: true, UseCustomTemplate: &useCustom})
	s.Require().NoError(err)
	s.True(updated.Completed().Has(draft.DimRebuyEmail))
	s.Equal(1, s.templates.CallsFor(artifact.KindRebuy))

	_, err = s.drafts.ConfigureRebuy(s.ctx, d.SessionID(), commands.RebuyRequest{Enabled: true})
	s.True(errs.Is(err, errs.ErrValidation))
}

func (s *DraftCommandsTestSuite) TestClear() {
	d := s.seedDraft(builder.NewDraftBuilder().Complete().MustBuild())
	session := d.SessionID()
	s.seedURL(session, "Front desk", nil)

	fresh, err := s.drafts.Clear(s.ctx, session)
	s.Require().NoError(err)

	s.Equal(session, fresh.SessionID())
	s.Zero(fresh.Completed().Len())
	s.Empty(s.uow.URLsOf(session))
	s.Empty(s.uow.ArtifactsOf(session))
	_, remote := s.remote.Stored(session)
	s.False(remote)

	loaded, err := s.drafts.Load(s.ctx, session)
	s.Require().NoError(err)
	s.Zero(loaded.Completed().Len())

	s.Run("a local copy that cannot be dropped fails the clear", func() {
		d := s.seedDraft(builder.NewDraftBuilder().Complete().MustBuild())
		s.local.FailDelete = true
		defer func() { s.local.FailDelete = false }()

		_, err := s.drafts.Clear(s.ctx, d.SessionID())
		s.Require().Error(err)
		s.True(errs.Is(err, errs.ErrPersistence))
	})
}
