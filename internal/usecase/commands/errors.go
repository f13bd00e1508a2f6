package commands

import (
	"strings"

	"pass-config-engine/internal/domain/draft"
	"pass-config-engine/internal/pkg/errs"
)

var (
	ErrSellerNotFound          = errs.New("seller not found")
	ErrSellerAlreadyAssigned   = errs.New("seller already has a configuration")
	ErrConfigurationIDRequired = errs.New("at least one configuration id is required")
	ErrRegistryNotApplicable   = errs.New("url registry is only available for URL delivery modes")
)

// IncompleteError lists the dimensions still missing when promotion is refused.
type IncompleteError struct {
	Missing []draft.Dimension
}

func (e *IncompleteError) Error() string {
	names := make([]string, len(e.Missing))
	for i, d := range e.Missing {
		names[i] = d.String()
	}
	return "configuration is incomplete: " + strings.Join(names, ", ")
}

func missingDimensions(d *draft.Draft) []draft.Dimension {
	var out []draft.Dimension
	done := d.Completed()
	for _, dim := range draft.AllDimensions {
		if !done.Has(dim) {
			out = append(out, dim)
		}
	}
	return out
}

// invalid marks domain rule violations for the handler layer.
func invalid(err error) error {
	if err == nil {
		return nil
	}
	if errs.Category(err) != nil {
		return err
	}
	return errs.Validation(err)
}
