package registry

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports an id that does not resolve to a live record.
	ErrNotFound = errors.New("registry: item not found")

	// ErrInvalidPairing reports a match precondition violation: pairing a
	// record with itself or with a record of the same status.
	ErrInvalidPairing = errors.New("registry: invalid pairing")

	// ErrAlreadyMatched reports a match attempt on a record that already
	// has a counterpart.
	ErrAlreadyMatched = errors.New("registry: item is already matched")

	// ErrNotMatched reports a claim on a record that has no counterpart.
	ErrNotMatched = errors.New("registry: item is not matched")

	// ErrAlreadyClaimed reports a claim on a record already claimed.
	ErrAlreadyClaimed = errors.New("registry: item is already claimed")

	// ErrNoChanges reports an update with an empty change set.
	ErrNoChanges = errors.New("registry: no fields to update")
)

// PersistError wraps a failure to write the collection to the store.
// By the time it is returned the in-memory mutation has already been
// applied and is not rolled back, so memory and disk diverge until the
// next successful save. Callers should surface it rather than retry
// blindly.
type PersistError struct {
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("registry: persisting collection: %v", e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}
