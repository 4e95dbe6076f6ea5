package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrSpreadsheetIDRequired indicates no spreadsheet ID could be resolved.
	// An operation must either receive one explicitly or rely on the
	// configured default.
	ErrSpreadsheetIDRequired = errors.New(
		"spreadsheet_id is required: provide it as a parameter or set default_spreadsheet_id")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)

// AuthenticationError indicates every credential strategy was exhausted.
// It is fatal to the invoking call; the next call re-attempts the full
// chain from scratch.
type AuthenticationError struct {
	// Attempted lists the credential kinds that were tried, in order.
	Attempted []string
	// Cause is the failure from the last strategy in the chain.
	Cause error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed (tried %s): %v",
		strings.Join(e.Attempted, ", "), e.Cause)
}

func (e *AuthenticationError) Unwrap() error {
	return e.Cause
}

// NotFoundError indicates a named sheet does not exist in a spreadsheet.
// It is a soft failure: lookup-by-name operations report it as an error
// payload on an otherwise successful call rather than failing the call.
type NotFoundError struct {
	// Sheet is the human-readable sheet title that was looked up.
	Sheet string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Sheet '%s' not found", e.Sheet)
}

// IsNotFound reports whether err is a soft sheet-not-found failure.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
