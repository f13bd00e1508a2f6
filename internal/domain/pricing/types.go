package pricing

import "errors"

type Mode string

const (
	ModeFixed    Mode = "FIXED"
	ModeVariable Mode = "VARIABLE"
	ModeFree     Mode = "FREE"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeFixed, ModeVariable, ModeFree:
		return m, nil
	default:
		return "", ErrUnknownMode
	}
}

func (m Mode) String() string { return string(m) }

const (
	// Preview matrix bounds.
	MaxPreviewGuests = 10
	MaxPreviewDays   = 7

	// Display precision for quoted prices.
	DisplayPlaces = 2
)

var (
	ErrUnknownMode        = errors.New("unknown pricing mode")
	ErrModeNotSet         = errors.New("pricing mode not set")
	ErrInvalidQuantity    = errors.New("guests and days must be at least 1")
	ErrNegativeAmount     = errors.New("price amounts cannot be negative")
	ErrFixedPriceRequired = errors.New("fixed price must be greater than zero")
	ErrVariableAllZero    = errors.New("variable pricing needs a base price or an increment")
	ErrCommissionRange    = errors.New("commission percent must be between 0 and 100")
	ErrTaxRange           = errors.New("tax percent must be greater than 0 and at most 100")
)
