//go:build unit

package savedconfig_test

import (
	"testing"
	"time"

	"pass-config-engine/internal/domain/artifact"
	"pass-config-engine/internal/domain/draft"
	"pass-config-engine/internal/domain/pricing"
	"pass-config-engine/internal/domain/savedconfig"
	"pass-config-engine/internal/domain/tempurl"
	"pass-config-engine/internal/pkg/ptr"
	"pass-config-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func mustURL(t *testing.T, sessionID, name string, address *string) *tempurl.URL {
	t.Helper()
	u, err := tempurl.NewURL(sessionID, name, address, nil, now)
	require.NoError(t, err)
	return u
}

func TestFromDraft(t *testing.T) {
	calc := pricing.NewDefaultCalculator()

	t.Run("incomplete draft is rejected", func(t *testing.T) {
		d := builder.NewDraftBuilder().Complete().WithoutFutureQR().MustBuild()
		_, err := savedconfig.FromDraft(d, "Gold", "", nil, calc, now)
		require.ErrorIs(t, err, savedconfig.ErrDraftIncomplete)
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		d := builder.NewDraftBuilder().Complete().MustBuild()
		_, err := savedconfig.FromDraft(d, "   ", "", nil, calc, now)
		require.ErrorIs(t, err, savedconfig.ErrNameRequired)
	})

	t.Run("snapshot carries price, urls and templates", func(t *testing.T) {
		d := builder.NewDraftBuilder().Complete().MustBuild()
		urls := []*tempurl.URL{
			mustURL(t, d.SessionID(), "Lobby", ptr.Of("https://example.com/lobby")),
			mustURL(t, d.SessionID(), "Pool", nil),
		}

		cfg, err := savedconfig.FromDraft(d, " Gold Plan ", "weekday offer", urls, calc, now)
		require.NoError(t, err)

		assert.Equal(t, "Gold Plan", cfg.Name())
		assert.Equal(t, "21.60", cfg.Price().Final().StringFixed(2))
		assert.Equal(t, 4, cfg.Price().Guests)
		assert.Equal(t, 1, cfg.Price().Days)
		assert.Equal(t, map[string]string{"Lobby": "https://example.com/lobby"}, cfg.URLMap())
		assert.Len(t, cfg.URLs(), 2)

		tpl := cfg.Templates()
		require.NotNil(t, tpl.Welcome)
		require.NotNil(t, tpl.Landing)
		assert.Nil(t, tpl.Rebuy)
		assert.Len(t, cfg.Artifacts(), 2)
		assert.ElementsMatch(t, tpl.All(), []uuid.UUID{cfg.Artifacts()[0].ID, cfg.Artifacts()[1].ID})
		assert.Nil(t, cfg.AssignedSellerID())
	})

	t.Run("direct delivery drops registry urls", func(t *testing.T) {
		d := builder.NewDraftBuilder().Complete().WithDelivery(draft.DeliveryDirect, draft.LandingPageUnset).MustBuild()
		urls := []*tempurl.URL{mustURL(t, d.SessionID(), "Lobby", nil)}

		cfg, err := savedconfig.FromDraft(d, "Direct", "", urls, calc, now)
		require.NoError(t, err)
		assert.Empty(t, cfg.URLs())
		assert.Nil(t, cfg.Templates().Landing)
	})

	t.Run("snapshot is independent of the draft", func(t *testing.T) {
		p := pricing.Params{
			Mode:              pricing.ModeVariable,
			BasePrice:         decimal.NewFromInt(10),
			PerGuestIncrement: decimal.NewFromInt(5),
			PerDayIncrement:   decimal.NewFromInt(3),
			CommissionPercent: decimal.NewFromInt(10),
			TaxEnabled:        true,
			TaxPercent:        decimal.NewFromInt(16),
		}
		d := builder.NewDraftBuilder().Complete().WithPricing(p).MustBuild()

		cfg, err := savedconfig.FromDraft(d, "Variable", "", nil, calc, now)
		require.NoError(t, err)
		assert.True(t, cfg.Dimensions().Pricing.Equal(p))

		d.SetFutureQR(false, now.Add(time.Minute))
		assert.True(t, *cfg.Dimensions().FutureQR.Allowed)
	})
}

func TestSavedConfiguration_UpdateMetadata(t *testing.T) {
	d := builder.NewDraftBuilder().Complete().MustBuild()
	cfg, err := savedconfig.FromDraft(d, "Gold", "", nil, pricing.NewDefaultCalculator(), now)
	require.NoError(t, err)

	later := now.Add(time.Hour)
	require.NoError(t, cfg.UpdateMetadata("Platinum", "renamed", later))
	assert.Equal(t, "Platinum", cfg.Name())
	assert.Equal(t, "renamed", cfg.Description())
	assert.Equal(t, later, cfg.UpdatedAt())

	require.ErrorIs(t, cfg.UpdateMetadata("", "x", later), savedconfig.ErrNameRequired)
	assert.Equal(t, "Platinum", cfg.Name())
}

func TestSavedConfiguration_AssignTo(t *testing.T) {
	d := builder.NewDraftBuilder().Complete().MustBuild()
	cfg, err := savedconfig.FromDraft(d, "Gold", "", nil, pricing.NewDefaultCalculator(), now)
	require.NoError(t, err)

	seller := uuid.New()
	require.NoError(t, cfg.AssignTo(seller, now))
	require.NoError(t, cfg.AssignTo(seller, now))
	assert.Equal(t, seller, *cfg.AssignedSellerID())

	require.ErrorIs(t, cfg.AssignTo(uuid.New(), now), savedconfig.ErrAssignedElsewhere)
}

func TestSavedConfiguration_ToDraft(t *testing.T) {
	src := builder.NewDraftBuilder().Complete().WithCustomWelcome(true).MustBuild()
	cfg, err := savedconfig.FromDraft(src, "Gold", "", nil, pricing.NewDefaultCalculator(), now)
	require.NoError(t, err)

	remap := make(map[uuid.UUID]artifact.Ref)
	for _, a := range cfg.Artifacts() {
		remap[a.ID] = artifact.Ref{ID: uuid.New(), Kind: a.Kind, Origin: a.Origin}
	}

	clone, err := cfg.ToDraft("new-session", remap, now)
	require.NoError(t, err)
	assert.Equal(t, "new-session", clone.SessionID())
	assert.True(t, clone.AllComplete())

	welcome, _, landing := clone.TemplateIDs()
	require.NotNil(t, welcome)
	require.NotNil(t, landing)
	assert.Equal(t, remap[*cfg.Templates().Welcome].ID, welcome.ID)
	assert.Equal(t, remap[*cfg.Templates().Landing].ID, landing.ID)

	t.Run("missing remap entry", func(t *testing.T) {
		_, err := cfg.ToDraft("other", map[uuid.UUID]artifact.Ref{}, now)
		require.ErrorIs(t, err, savedconfig.ErrArtifactNotRemapped)
	})
}
