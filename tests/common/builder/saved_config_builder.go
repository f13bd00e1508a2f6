//go:build unit || integration || e2e

package builder

import (
	"pass-config-engine/internal/domain/pricing"
	"pass-config-engine/internal/domain/savedconfig"
	"pass-config-engine/internal/domain/tempurl"
)

// SavedConfigBuilder promotes a builder draft into a saved configuration.
type SavedConfigBuilder struct {
	Draft       *DraftBuilder
	Name        string
	Description string
	URLs        []*tempurl.URL
}

func NewSavedConfigBuilder() *SavedConfigBuilder {
	return &SavedConfigBuilder{Draft: NewDraftBuilder().Complete(), Name: "Gold Plan"}
}

func (b *SavedConfigBuilder) WithName(name string) *SavedConfigBuilder {
	b.Name = name
	return b
}

func (b *SavedConfigBuilder) WithURL(name, address string) *SavedConfigBuilder {
	u, err := tempurl.NewURL(b.Draft.SessionID, name, &address, nil, b.Draft.Now)
	if err != nil {
		panic(err)
	}
	b.URLs = append(b.URLs, u)
	return b
}

func (b *SavedConfigBuilder) MustBuild() *savedconfig.SavedConfiguration {
	d := b.Draft.MustBuild()
	cfg, err := savedconfig.FromDraft(d, b.Name, b.Description, b.URLs, pricing.NewDefaultCalculator(), d.UpdatedAt())
	if err != nil {
		panic(err)
	}
	return cfg
}
