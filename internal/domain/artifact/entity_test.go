//go:build unit

package artifact_test

import (
	"testing"
	"time"

	"pass-config-engine/internal/domain/artifact"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArtifact(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	type tc struct {
		name      string
		sessionID string
		kind      artifact.Kind
		origin    artifact.Origin
		content   string
		want      error
	}
	cases := []tc{
		{name: "missing session", kind: artifact.KindWelcome, origin: artifact.OriginCustom, content: "<p/>", want: artifact.ErrSessionMissing},
		{name: "unknown kind", sessionID: "s", kind: "sms", origin: artifact.OriginCustom, content: "<p/>", want: artifact.ErrUnknownKind},
		{name: "unknown origin", sessionID: "s", kind: artifact.KindRebuy, origin: "imported", content: "<p/>", want: artifact.ErrUnknownOrigin},
		{name: "blank content", sessionID: "s", kind: artifact.KindLanding, origin: artifact.OriginDefault, content: "  ", want: artifact.ErrEmptyContent},
		{name: "valid custom welcome", sessionID: "s", kind: artifact.KindWelcome, origin: artifact.OriginCustom, content: "<p>hi</p>"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := artifact.NewArtifact(c.sessionID, c.kind, c.origin, c.content, now)
			if c.want != nil {
				require.ErrorIs(t, err, c.want)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, artifact.Ref{ID: a.ID(), Kind: c.kind, Origin: c.origin}, a.Ref())
			assert.Equal(t, now, a.CreatedAt())
		})
	}
}

func TestArtifact_CopyFor(t *testing.T) {
	now := time.Now()
	src, err := artifact.NewArtifact("a", artifact.KindRebuy, artifact.OriginCustom, "body", now)
	require.NoError(t, err)

	cp := src.CopyFor("b", now.Add(time.Hour))
	assert.NotEqual(t, src.ID(), cp.ID())
	assert.Equal(t, "b", cp.SessionID())
	assert.Equal(t, src.Kind(), cp.Kind())
	assert.Equal(t, src.Origin(), cp.Origin())
	assert.Equal(t, src.Content(), cp.Content())
}

func TestParseKind(t *testing.T) {
	k, err := artifact.ParseKind("LANDING")
	require.NoError(t, err)
	assert.Equal(t, artifact.KindLanding, k)

	_, err = artifact.ParseKind("")
	require.ErrorIs(t, err, artifact.ErrUnknownKind)
}
