package catgets

import "errors"

// Error kinds reported by Open, Get and Close.  All are recoverable
// by the caller; check for them with errors.Is.
var (
	// ErrEmptyName is reported by Open when the catalog name is empty.
	ErrEmptyName = errors.New("empty catalog name")

	// ErrNotFound is reported by Open when no candidate path holds a
	// readable catalog.
	ErrNotFound = errors.New("no message catalog found")

	// ErrBadDescriptor is reported for a descriptor that is out of
	// range or already closed.  It corresponds to EBADF.
	ErrBadDescriptor = errors.New("catalog descriptor is not open")

	// ErrNoMessage is reported by Get when the catalog holds no
	// message under the requested set and message numbers.  It
	// corresponds to ENOMSG.
	ErrNoMessage = errors.New("message not found in catalog")
)
