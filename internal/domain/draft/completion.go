package draft

import (
	"pass-config-engine/internal/domain/artifact"
)

// DetectCompletion derives the completed dimensions from current values and the
// artifact cache. It is pure: the same inputs always give the same set.
func DetectCompletion(d Dimensions, artifacts []artifact.Ref) DimensionSet {
	var s DimensionSet

	if d.Limits.Confirmed && d.Limits.Validate() == nil {
		s = s.With(DimLimits)
	}

	if d.Pricing.Mode != "" && d.Pricing.Validate() == nil {
		s = s.With(DimPricing)
	}

	if deliveryComplete(d.Delivery) {
		s = s.With(DimDelivery)
	}

	if w := d.Welcome; w.UseCustomTemplate != nil {
		if templateSatisfied(*w.UseCustomTemplate, w.Template, artifact.KindWelcome, artifacts) {
			s = s.With(DimWelcomeEmail)
		}
	}

	if r := d.Rebuy; r.Enabled != nil {
		switch {
		case !*r.Enabled:
			s = s.With(DimRebuyEmail)
		case r.UseCustomTemplate != nil &&
			templateSatisfied(*r.UseCustomTemplate, r.Template, artifact.KindRebuy, artifacts):
			s = s.With(DimRebuyEmail)
		}
	}

	if d.FutureQR.Allowed != nil {
		s = s.With(DimFutureQR)
	}

	return s
}

func deliveryComplete(d Delivery) bool {
	switch {
	case d.Method == "":
		return false
	case !d.Method.UsesURLs():
		return true
	case d.LandingPage == LandingPageDefault:
		return d.LandingTemplate != nil
	default:
		return d.LandingPage == LandingPageCustom
	}
}

func templateSatisfied(custom bool, defaultRef *artifact.Ref, kind artifact.Kind, artifacts []artifact.Ref) bool {
	if custom {
		return HasCustomArtifact(artifacts, kind)
	}
	return defaultRef != nil
}

// HasCustomArtifact reports whether an externally edited template of kind is cached.
func HasCustomArtifact(artifacts []artifact.Ref, kind artifact.Kind) bool {
	_, ok := LatestCustomArtifact(artifacts, kind)
	return ok
}

// LatestCustomArtifact returns the most recently merged custom artifact of kind.
func LatestCustomArtifact(artifacts []artifact.Ref, kind artifact.Kind) (artifact.Ref, bool) {
	for i := len(artifacts) - 1; i >= 0; i-- {
		a := artifacts[i]
		if a.Kind == kind && a.Origin == artifact.OriginCustom {
			return a, true
		}
	}
	return artifact.Ref{}, false
}
