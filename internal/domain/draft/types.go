package draft

import (
	"errors"
	"strings"
)

type Dimension int

const (
	DimLimits Dimension = iota + 1
	DimPricing
	DimDelivery
	DimWelcomeEmail
	DimRebuyEmail
	DimFutureQR
)

// AllDimensions lists the six configuration steps in wizard order.
var AllDimensions = []Dimension{DimLimits, DimPricing, DimDelivery, DimWelcomeEmail, DimRebuyEmail, DimFutureQR}

func (d Dimension) String() string {
	switch d {
	case DimLimits:
		return "limits"
	case DimPricing:
		return "pricing"
	case DimDelivery:
		return "delivery"
	case DimWelcomeEmail:
		return "welcome_email"
	case DimRebuyEmail:
		return "rebuy_email"
	case DimFutureQR:
		return "future_qr"
	default:
		return "unknown"
	}
}

// DimensionSet is a bitset over the six dimensions.
type DimensionSet uint8

const fullSet DimensionSet = 1<<DimLimits | 1<<DimPricing | 1<<DimDelivery | 1<<DimWelcomeEmail | 1<<DimRebuyEmail | 1<<DimFutureQR

func NewDimensionSet(dims ...Dimension) DimensionSet {
	var s DimensionSet
	for _, d := range dims {
		s = s.With(d)
	}
	return s
}

func (s DimensionSet) With(d Dimension) DimensionSet {
	if d < DimLimits || d > DimFutureQR {
		return s
	}
	return s | 1<<d
}

func (s DimensionSet) Has(d Dimension) bool { return s&(1<<d) != 0 }
func (s DimensionSet) IsFull() bool         { return s&fullSet == fullSet }

func (s DimensionSet) Len() int {
	n := 0
	for _, d := range AllDimensions {
		if s.Has(d) {
			n++
		}
	}
	return n
}

// Slice returns the members in ascending order.
func (s DimensionSet) Slice() []int {
	out := make([]int, 0, len(AllDimensions))
	for _, d := range AllDimensions {
		if s.Has(d) {
			out = append(out, int(d))
		}
	}
	return out
}

type DeliveryMethod string

const (
	DeliveryDirect DeliveryMethod = "DIRECT"
	DeliveryURLs   DeliveryMethod = "URLS"
	DeliveryBoth   DeliveryMethod = "BOTH"
)

func ParseDeliveryMethod(s string) (DeliveryMethod, error) {
	switch m := DeliveryMethod(strings.ToUpper(s)); m {
	case DeliveryDirect, DeliveryURLs, DeliveryBoth:
		return m, nil
	default:
		return "", ErrUnknownDeliveryMethod
	}
}

// UsesURLs reports whether the method distributes passes through registry links.
func (m DeliveryMethod) UsesURLs() bool {
	return m == DeliveryURLs || m == DeliveryBoth
}

type LandingPageChoice string

const (
	LandingPageUnset   LandingPageChoice = ""
	LandingPageDefault LandingPageChoice = "DEFAULT"
	LandingPageCustom  LandingPageChoice = "CUSTOM"
)

func ParseLandingPageChoice(s string) (LandingPageChoice, error) {
	switch c := LandingPageChoice(strings.ToUpper(s)); c {
	case LandingPageDefault, LandingPageCustom:
		return c, nil
	default:
		return "", ErrUnknownLandingPageChoice
	}
}

const (
	MaxGuestsRange = 10
	MaxDaysRange   = 365
)

var (
	ErrSessionMissing            = errors.New("session id is required")
	ErrUnknownDeliveryMethod     = errors.New("unknown delivery method")
	ErrUnknownLandingPageChoice  = errors.New("unknown landing page choice")
	ErrLimitDefaultOutOfRange    = errors.New("default value must be between 1 and the range maximum")
	ErrGuestsRangeTooLarge       = errors.New("guest range maximum cannot exceed 10")
	ErrDaysRangeTooLarge         = errors.New("day range maximum cannot exceed 365")
	ErrLandingPageNotApplicable  = errors.New("landing page applies only to url delivery methods")
	ErrDefaultTemplateMissing    = errors.New("default template artifact is required")
	ErrTemplateKindMismatch      = errors.New("template artifact kind does not match the dimension")
	ErrRebuyDisabled             = errors.New("rebuy email is disabled")
	ErrRebuyTemplateChoiceNeeded = errors.New("rebuy template choice is required when enabled")
)
