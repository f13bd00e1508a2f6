package pricing

import (
	"github.com/shopspring/decimal"
)

// Calculator is shared by the preview matrix and issuance-time quoting.
type Calculator interface {
	Calculate(params Params, guests, days int) (Breakdown, error)
}

type DefaultCalculator struct{}

func NewDefaultCalculator() *DefaultCalculator {
	return &DefaultCalculator{}
}

func (DefaultCalculator) Calculate(params Params, guests, days int) (Breakdown, error) {
	if guests < 1 || days < 1 {
		return Breakdown{}, ErrInvalidQuantity
	}
	if err := params.Validate(); err != nil {
		return Breakdown{}, err
	}

	var base, withCommission decimal.Decimal
	switch params.Mode {
	case ModeFree:
		return Breakdown{Base: decimal.Zero, WithCommission: decimal.Zero, Tax: decimal.Zero, Final: decimal.Zero}, nil
	case ModeFixed:
		base = params.Price
		withCommission = base
	case ModeVariable:
		base = params.BasePrice.
			Add(params.PerGuestIncrement.Mul(decimal.NewFromInt(int64(guests)))).
			Add(params.PerDayIncrement.Mul(decimal.NewFromInt(int64(days))))
		withCommission = base.Mul(percentFactor(params.CommissionPercent))
	}

	final := withCommission
	if params.TaxEnabled {
		final = withCommission.Mul(percentFactor(params.TaxPercent))
	}

	return Breakdown{
		Base:           base,
		WithCommission: withCommission,
		Tax:            final.Sub(withCommission),
		Final:          final,
	}, nil
}

// PreviewMatrix quotes every guest/day combination, capped at 10 guests by 7 days.
func PreviewMatrix(calc Calculator, params Params, maxGuests, maxDays int) (Matrix, error) {
	guests := clamp(maxGuests, MaxPreviewGuests)
	days := clamp(maxDays, MaxPreviewDays)

	cells := make([][]Cell, guests)
	for g := 1; g <= guests; g++ {
		row := make([]Cell, days)
		for d := 1; d <= days; d++ {
			b, err := calc.Calculate(params, g, d)
			if err != nil {
				return Matrix{}, err
			}
			row[d-1] = Cell{Guests: g, Days: d, Price: b}
		}
		cells[g-1] = row
	}
	return Matrix{Guests: guests, Days: days, Cells: cells}, nil
}

func percentFactor(p decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(1).Add(p.Div(hundred))
}

func clamp(v, upper int) int {
	if v < 1 || v > upper {
		return upper
	}
	return v
}
