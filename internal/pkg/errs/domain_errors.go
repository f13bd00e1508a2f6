package errs

import "errors"

// Error taxonomy shared by the usecase and handler layers.
// Concrete errors are attached to one of these with Mark.
var (
	ErrValidation  = errors.New("validation error")
	ErrPersistence = errors.New("persistence error")
	ErrConflict    = errors.New("conflict")
	ErrNotFound    = errors.New("not found")
)

// Validation marks err as a ValidationError.
func Validation(err error) error {
	return Mark(err, ErrValidation)
}

// Persistence marks err as a PersistenceError.
func Persistence(err error) error {
	return Mark(err, ErrPersistence)
}

func Conflict(err error) error {
	return Mark(err, ErrConflict)
}

func NotFound(err error) error {
	return Mark(err, ErrNotFound)
}
