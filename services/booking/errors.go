package booking

import (
	"errors"
	"fmt"
)

// Validation failure kinds, in the order they are checked.
const (
	KindMissingField         = "MissingField"
	KindMalformedField       = "MalformedField"
	KindInvalidInterval      = "InvalidInterval"
	KindOutsideAllowedWindow = "OutsideAllowedWindow"
	KindWeekendNotAllowed    = "WeekendNotAllowed"
	KindOverlapDetected      = "OverlapDetected"
)

// Store failure kinds.
const (
	KindStoreReadFailure  = "StoreReadFailure"
	KindStoreWriteFailure = "StoreWriteFailure"
)

var ErrPendingNotFound = errors.New("pending booking not found or expired")

// ValidationError rejects a submission before anything reaches the store.
type ValidationError struct {
	Kind    string
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newValidationError(kind, field, msg string) error {
	return &ValidationError{
		Kind:    kind,
		Field:   field,
		Message: msg,
	}
}

// StoreError reports a failed list or insert call. Only the message of the
// underlying error is meaningful to callers.
type StoreError struct {
	Kind string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func readFailure(err error) error {
	return &StoreError{Kind: KindStoreReadFailure, Err: err}
}

func writeFailure(err error) error {
	return &StoreError{Kind: KindStoreWriteFailure, Err: err}
}
