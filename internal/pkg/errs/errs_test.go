//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"pass-config-engine/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory(t *testing.T) {
	base := errs.New("name is required")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "validation", err: errs.Validation(base), want: errs.ErrValidation},
		{name: "not found", err: errs.NotFound(base), want: errs.ErrNotFound},
		{name: "conflict", err: errs.Conflict(base), want: errs.ErrConflict},
		{name: "persistence", err: errs.Persistence(base), want: errs.ErrPersistence},
		{name: "wrapped marker survives", err: errs.Wrap(errs.Conflict(base), "assign"), want: errs.ErrConflict},
		{name: "unclassified", err: errors.New("boom"), want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errs.Category(tt.err))
		})
	}
}

func TestMark(t *testing.T) {
	t.Run("nil error returns marker", func(t *testing.T) {
		assert.Equal(t, errs.ErrNotFound, errs.Mark(nil, errs.ErrNotFound))
	})

	t.Run("original error is preserved", func(t *testing.T) {
		sentinel := errs.New("seller has configuration")
		err := errs.Conflict(sentinel)
		require.ErrorIs(t, err, sentinel)
		assert.True(t, errs.Is(err, errs.ErrConflict))
	})
}
