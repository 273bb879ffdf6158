package domain

import "errors"

var (
	// ErrUnauthenticated indicates that no valid session accompanies the call.
	ErrUnauthenticated = errors.New("not signed in")
	// ErrDuplicateDate indicates that an entry already exists for the
	// requested (owner, day) pair; the caller should edit or delete it instead.
	ErrDuplicateDate = errors.New("an entry for this date already exists; edit or delete it instead")
)

// ValidationError reports input rejected before any store call is made.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// StoreError wraps a failure reported by the backing store (lost
// connectivity, query failure). Its message is surfaced to the user verbatim.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string { return e.Err.Error() }

func (e *StoreError) Unwrap() error { return e.Err }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsStoreError reports whether err wraps a store failure.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
