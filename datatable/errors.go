package datatable

import "errors"

// Common errors returned by the datatable package.
//
// Structural requests that cannot be honored are ignored rather than
// returned; these errors are the reasons recorded in the debug log.
var (
	// ErrInvalidColumn is returned when a column index is out of range.
	ErrInvalidColumn = errors.New("invalid column index")

	// ErrInvalidRow is returned when a row index is out of range.
	ErrInvalidRow = errors.New("invalid row index")

	// ErrColumnNotFound is returned when a column key is not found.
	ErrColumnNotFound = errors.New("column not found")

	// ErrRowNotFound is returned when a row id is not found.
	ErrRowNotFound = errors.New("row not found")

	// ErrMissingRowID is returned when a row has no value under the row id key.
	ErrMissingRowID = errors.New("row has no id")

	// ErrConflictingPlacement is returned when both a before and an after neighbor are given.
	ErrConflictingPlacement = errors.New("both before and after given")

	// ErrSelfReference is returned when an item is positioned relative to itself.
	ErrSelfReference = errors.New("positioned relative to itself")

	// ErrNoPlacement is returned when a move names no neighbor.
	ErrNoPlacement = errors.New("no neighbor given")

	// ErrNoDataSource is returned when a required data source is nil.
	ErrNoDataSource = errors.New("data source is nil")
)

// rejection marks a request that was ignored. It never leaves the package.
type rejection struct {
	op     string
	key    string
	reason error
}

func (r *rejection) Error() string {
	return r.op + " " + r.key + ": " + r.reason.Error()
}

func (r *rejection) Unwrap() error {
	return r.reason
}

func reject(op, key string, reason error) error {
	return &rejection{op: op, key: key, reason: reason}
}
