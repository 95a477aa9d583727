package sequence

import "github.com/pkg/errors"

var (
	// ErrNotFound is returned when no element exists at the requested
	// position, or when a key is unknown to a Store.
	ErrNotFound = errors.New("not found")

	// ErrUnsupported is returned for operations a Store does not know how
	// to apply.
	ErrUnsupported = errors.New("unsupported operation")
)
