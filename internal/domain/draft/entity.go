package draft

import (
	"strings"
	"time"

	"pass-config-engine/internal/domain/artifact"
	"pass-config-engine/internal/domain/pricing"

	"github.com/google/uuid"
)

// Draft is one editing session's in-progress configuration.
// The completed set is never stored as truth: every mutation and every
// reconstruction recomputes it from the dimension values and artifact cache.
type Draft struct {
	sessionID  string
	dimensions Dimensions
	artifacts  []artifact.Ref
	completed  DimensionSet
	updatedAt  time.Time
}

func New(sessionID string, now time.Time) (*Draft, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrSessionMissing
	}
	d := &Draft{
		sessionID:  sessionID,
		dimensions: DefaultDimensions(),
		updatedAt:  now,
	}
	d.recompute()
	return d, nil
}

// Reconstruct rebuilds a draft loaded from storage or a saved snapshot.
func Reconstruct(sessionID string, dims Dimensions, artifacts []artifact.Ref, updatedAt time.Time) *Draft {
	d := &Draft{
		sessionID:  sessionID,
		dimensions: dims.Clone(),
		updatedAt:  updatedAt,
	}
	d.artifacts = mergeRefs(nil, artifacts)
	d.recompute()
	return d
}

func (d *Draft) SessionID() string              { return d.sessionID }
func (d *Draft) Dimensions() Dimensions         { return d.dimensions.Clone() }
func (d *Draft) Completed() DimensionSet        { return d.completed }
func (d *Draft) AllComplete() bool              { return d.completed.IsFull() }
func (d *Draft) UpdatedAt() time.Time           { return d.updatedAt }
func (d *Draft) Limits() Limits                 { return d.dimensions.Limits }
func (d *Draft) Pricing() pricing.Params        { return d.dimensions.Pricing }
func (d *Draft) DeliveryMethod() DeliveryMethod { return d.dimensions.Delivery.Method }

func (d *Draft) Artifacts() []artifact.Ref {
	out := make([]artifact.Ref, len(d.artifacts))
	copy(out, d.artifacts)
	return out
}

// ConfigureLimits stores dimension 1 and records the explicit save.
func (d *Draft) ConfigureLimits(l Limits, now time.Time) error {
	if err := l.Validate(); err != nil {
		return err
	}
	l.Confirmed = true
	d.dimensions.Limits = l
	d.touch(now)
	return nil
}

func (d *Draft) SetPricing(p pricing.Params, now time.Time) error {
	if err := p.Validate(); err != nil {
		return err
	}
	d.dimensions.Pricing = p
	d.touch(now)
	return nil
}

// SetDeliveryMethod reports whether the session's URL registry must be cleared.
// Moving to DIRECT drops registry content and the landing page choice; moving
// between URLS and BOTH keeps both.
func (d *Draft) SetDeliveryMethod(m DeliveryMethod, now time.Time) (clearRegistry bool, err error) {
	if _, err := ParseDeliveryMethod(string(m)); err != nil {
		return false, err
	}
	del := &d.dimensions.Delivery
	if !m.UsesURLs() {
		clearRegistry = true
		del.LandingPage = LandingPageUnset
		del.LandingTemplate = nil
		del.HasRegistryContent = false
	}
	del.Method = m
	d.touch(now)
	return clearRegistry, nil
}

// ChooseLandingPage requires defaultTemplate for LandingPageDefault.
func (d *Draft) ChooseLandingPage(choice LandingPageChoice, defaultTemplate *artifact.Ref, now time.Time) error {
	if _, err := ParseLandingPageChoice(string(choice)); err != nil {
		return err
	}
	del := &d.dimensions.Delivery
	if !del.Method.UsesURLs() {
		return ErrLandingPageNotApplicable
	}
	switch choice {
	case LandingPageDefault:
		if err := checkDefaultRef(defaultTemplate, artifact.KindLanding); err != nil {
			return err
		}
		d.addArtifacts(*defaultTemplate)
		ref := *defaultTemplate
		del.LandingTemplate = &ref
	case LandingPageCustom:
		del.LandingTemplate = nil
	}
	del.LandingPage = choice
	d.touch(now)
	return nil
}

// ChooseWelcomeTemplate requires defaultTemplate when custom is false.
func (d *Draft) ChooseWelcomeTemplate(custom bool, defaultTemplate *artifact.Ref, now time.Time) error {
	w := &d.dimensions.Welcome
	if custom {
		w.Template = nil
	} else {
		if err := checkDefaultRef(defaultTemplate, artifact.KindWelcome); err != nil {
			return err
		}
		d.addArtifacts(*defaultTemplate)
		ref := *defaultTemplate
		w.Template = &ref
	}
	w.UseCustomTemplate = &custom
	d.touch(now)
	return nil
}

// ConfigureRebuy sets dimension 5. Disabling clears any template choice.
func (d *Draft) ConfigureRebuy(enabled bool, custom *bool, defaultTemplate *artifact.Ref, now time.Time) error {
	r := &d.dimensions.Rebuy
	if !enabled {
		r.Enabled = &enabled
		r.UseCustomTemplate = nil
		r.Template = nil
		d.touch(now)
		return nil
	}
	if custom == nil {
		return ErrRebuyTemplateChoiceNeeded
	}
	c := *custom
	if c {
		r.Template = nil
	} else {
		if err := checkDefaultRef(defaultTemplate, artifact.KindRebuy); err != nil {
			return err
		}
		d.addArtifacts(*defaultTemplate)
		ref := *defaultTemplate
		r.Template = &ref
	}
	r.Enabled = &enabled
	r.UseCustomTemplate = &c
	d.touch(now)
	return nil
}

func (d *Draft) SetFutureQR(allowed bool, now time.Time) {
	d.dimensions.FutureQR.Allowed = &allowed
	d.touch(now)
}

// MarkRegistryContent records that the URL registry holds records. It never
// completes dimension 3 on its own.
func (d *Draft) MarkRegistryContent(now time.Time) {
	if d.dimensions.Delivery.HasRegistryContent {
		return
	}
	d.dimensions.Delivery.HasRegistryContent = true
	d.touch(now)
}

// MergeArtifacts unions refs into the artifact cache and returns how many were new.
func (d *Draft) MergeArtifacts(refs []artifact.Ref, now time.Time) int {
	added := d.addArtifacts(refs...)
	if added > 0 {
		d.touch(now)
	}
	return added
}

// TemplateIDs resolves the artifact each template-bearing dimension points to.
func (d *Draft) TemplateIDs() (welcome, rebuy, landing *artifact.Ref) {
	dims := d.dimensions
	welcome = resolveTemplate(dims.Welcome.UseCustomTemplate, dims.Welcome.Template, artifact.KindWelcome, d.artifacts)
	if dims.Rebuy.Enabled != nil && *dims.Rebuy.Enabled {
		rebuy = resolveTemplate(dims.Rebuy.UseCustomTemplate, dims.Rebuy.Template, artifact.KindRebuy, d.artifacts)
	}
	if dims.Delivery.Method.UsesURLs() {
		custom := dims.Delivery.LandingPage == LandingPageCustom
		landing = resolveTemplate(&custom, dims.Delivery.LandingTemplate, artifact.KindLanding, d.artifacts)
	}
	return welcome, rebuy, landing
}

func resolveTemplate(custom *bool, defaultRef *artifact.Ref, kind artifact.Kind, artifacts []artifact.Ref) *artifact.Ref {
	if custom == nil {
		return nil
	}
	if !*custom {
		if defaultRef == nil {
			return nil
		}
		ref := *defaultRef
		return &ref
	}
	if ref, ok := LatestCustomArtifact(artifacts, kind); ok {
		return &ref
	}
	return nil
}

func (d *Draft) addArtifacts(refs ...artifact.Ref) int {
	before := len(d.artifacts)
	d.artifacts = mergeRefs(d.artifacts, refs)
	return len(d.artifacts) - before
}

func (d *Draft) touch(now time.Time) {
	d.updatedAt = now
	d.recompute()
}

func (d *Draft) recompute() {
	d.completed = DetectCompletion(d.dimensions, d.artifacts)
}

// mergeRefs appends refs whose id is not yet present, keeping first-seen order.
func mergeRefs(existing, incoming []artifact.Ref) []artifact.Ref {
	seen := make(map[uuid.UUID]struct{}, len(existing)+len(incoming))
	out := make([]artifact.Ref, 0, len(existing)+len(incoming))
	for _, r := range existing {
		seen[r.ID] = struct{}{}
		out = append(out, r)
	}
	for _, r := range incoming {
		if _, ok := seen[r.ID]; ok {
			continue
		}
		seen[r.ID] = struct{}{}
		out = append(out, r)
	}
	return out
}

func checkDefaultRef(ref *artifact.Ref, kind artifact.Kind) error {
	if ref == nil {
		return ErrDefaultTemplateMissing
	}
	if ref.Kind != kind {
		return ErrTemplateKindMismatch
	}
	return nil
}
