package pricing

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Params is the pricing dimension of a configuration.
// Fields not used by the selected Mode are ignored by the calculator.
type Params struct {
	Mode Mode

	// FIXED
	Price decimal.Decimal

	// VARIABLE
	BasePrice         decimal.Decimal
	PerGuestIncrement decimal.Decimal
	PerDayIncrement   decimal.Decimal
	CommissionPercent decimal.Decimal

	TaxEnabled bool
	TaxPercent decimal.Decimal
}

func (p Params) Validate() error {
	if p.Mode == "" {
		return ErrModeNotSet
	}
	if _, err := ParseMode(string(p.Mode)); err != nil {
		return err
	}

	switch p.Mode {
	case ModeFixed:
		if p.Price.IsNegative() {
			return ErrNegativeAmount
		}
		if !p.Price.IsPositive() {
			return ErrFixedPriceRequired
		}
	case ModeVariable:
		for _, v := range []decimal.Decimal{p.BasePrice, p.PerGuestIncrement, p.PerDayIncrement} {
			if v.IsNegative() {
				return ErrNegativeAmount
			}
		}
		if p.BasePrice.IsZero() && p.PerGuestIncrement.IsZero() && p.PerDayIncrement.IsZero() {
			return ErrVariableAllZero
		}
		if p.CommissionPercent.IsNegative() || p.CommissionPercent.GreaterThan(hundred) {
			return ErrCommissionRange
		}
	case ModeFree:
		return nil
	}

	if p.TaxEnabled && (!p.TaxPercent.IsPositive() || p.TaxPercent.GreaterThan(hundred)) {
		return ErrTaxRange
	}
	return nil
}

// Equal compares numerically, so 10 and 10.00 are the same price.
func (p Params) Equal(o Params) bool {
	return p.Mode == o.Mode &&
		p.Price.Equal(o.Price) &&
		p.BasePrice.Equal(o.BasePrice) &&
		p.PerGuestIncrement.Equal(o.PerGuestIncrement) &&
		p.PerDayIncrement.Equal(o.PerDayIncrement) &&
		p.CommissionPercent.Equal(o.CommissionPercent) &&
		p.TaxEnabled == o.TaxEnabled &&
		p.TaxPercent.Equal(o.TaxPercent)
}

// Breakdown keeps every intermediate amount at full precision.
type Breakdown struct {
	Base           decimal.Decimal
	WithCommission decimal.Decimal
	Tax            decimal.Decimal
	Final          decimal.Decimal
}

// Display rounds half away from zero to cents.
func (b Breakdown) Display() decimal.Decimal {
	return b.Final.Round(DisplayPlaces)
}

func (b Breakdown) DisplayString() string {
	return b.Final.StringFixed(DisplayPlaces)
}

type Cell struct {
	Guests int
	Days   int
	Price  Breakdown
}

// Matrix is indexed [guests-1][days-1].
type Matrix struct {
	Guests int
	Days   int
	Cells  [][]Cell
}

func (m Matrix) At(guests, days int) (Cell, bool) {
	if guests < 1 || days < 1 || guests > m.Guests || days > m.Days {
		return Cell{}, false
	}
	return m.Cells[guests-1][days-1], true
}
