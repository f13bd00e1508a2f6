//go:build unit

package converter

import (
	"encoding/json"
	"testing"

	"pass-config-engine/internal/domain/artifact"
	"pass-config-engine/internal/domain/draft"
	"pass-config-engine/internal/domain/pricing"
	"pass-config-engine/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var decimalEqual = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func TestDraftJSON(t *testing.T) {
	t.Run("complete draft survives storage", func(t *testing.T) {
		d := builder.NewDraftBuilder().Complete().WithCustomWelcome(true).MustBuild()

		data, err := DraftToJSON(d)
		require.NoError(t, err)
		got, err := DraftFromJSON(data)
		require.NoError(t, err)

		assert.Equal(t, d.SessionID(), got.SessionID())
		assert.True(t, d.UpdatedAt().Equal(got.UpdatedAt()))
		assert.Equal(t, d.Completed(), got.Completed())
		if diff := cmp.Diff(d.Dimensions(), got.Dimensions(), decimalEqual); diff != "" {
			t.Errorf("dimensions mismatch (-want +got):\n%s", diff)
		}
		assert.ElementsMatch(t, d.Artifacts(), got.Artifacts())
	})

	t.Run("amounts are stored as strings", func(t *testing.T) {
		d := builder.NewDraftBuilder().Complete().MustBuild()
		data, err := DraftToJSON(d)
		require.NoError(t, err)

		var raw map[string]any
		require.NoError(t, json.Unmarshal(data, &raw))
		p := raw["dimensions"].(map[string]any)["pricing"].(map[string]any)
		assert.Equal(t, "20", p["price"])
		assert.Equal(t, "FIXED", p["mode"])
	})

	t.Run("stored completion is recomputed", func(t *testing.T) {
		d := builder.NewDraftBuilder().MustBuild()
		rec := DraftToRecord(d)
		rec.Completed = []int{1, 2, 3, 4, 5, 6}

		got, err := DraftFromRecord(rec)
		require.NoError(t, err)
		assert.False(t, got.AllComplete())
	})

	t.Run("fresh draft keeps unset choices unset", func(t *testing.T) {
		d := builder.NewDraftBuilder().MustBuild()
		data, err := DraftToJSON(d)
		require.NoError(t, err)
		got, err := DraftFromJSON(data)
		require.NoError(t, err)

		dims := got.Dimensions()
		assert.Equal(t, pricing.Mode(""), dims.Pricing.Mode)
		assert.Equal(t, draft.DeliveryMethod(""), dims.Delivery.Method)
		assert.Nil(t, dims.FutureQR.Allowed)
		assert.Empty(t, got.Artifacts())
	})
}

func TestDraftFromRecordRejectsBadData(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DraftRecord)
	}{
		{name: "newer layout", mutate: func(r *DraftRecord) { r.Version = draftRecordVersion + 1 }},
		{name: "unknown pricing mode", mutate: func(r *DraftRecord) { r.Dimensions.Pricing.Mode = "BARTER" }},
		{name: "unknown delivery method", mutate: func(r *DraftRecord) { r.Dimensions.Delivery.Method = "FAX" }},
		{name: "unknown artifact kind", mutate: func(r *DraftRecord) {
			r.Artifacts = append(r.Artifacts, RefRecord{Kind: "invoice", Origin: string(artifact.OriginCustom)})
		}},
		{name: "unknown artifact origin", mutate: func(r *DraftRecord) {
			r.Artifacts = append(r.Artifacts, RefRecord{Kind: string(artifact.KindWelcome), Origin: "borrowed"})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := DraftToRecord(builder.NewDraftBuilder().Complete().MustBuild())
			tt.mutate(&rec)
			_, err := DraftFromRecord(rec)
			assert.Error(t, err)
		})
	}

	_, err := DraftFromJSON([]byte("{not json"))
	assert.Error(t, err)
}
