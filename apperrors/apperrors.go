package apperrors

import (
	"errors"
	"fmt"
)

// Sentinels for the outcomes callers need to tell apart. Wrap with
// fmt.Errorf("%w: ...") and test with errors.Is.
var (
	// ErrValidation covers bad caller input: a missing source feed, a blank
	// inventory id. Raised before any transaction opens.
	ErrValidation = errors.New("validation error")

	// ErrCodec means the source bytes could not be decoded.
	ErrCodec = errors.New("codec error")

	// ErrNotFound is the distinguishable "nothing matched" outcome for
	// lookups and exports.
	ErrNotFound = errors.New("not found")

	// ErrTransaction marks a database failure inside a write transaction.
	ErrTransaction = errors.New("transaction error")
)

// LineError is a recovered single-line failure during import. It never aborts
// the batch; it is only reported through the log event channel.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }
