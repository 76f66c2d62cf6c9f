package alloc

import "errors"

var (
	// ErrTooLarge indicates a request beyond the maximum representable
	// allocation size. No class can be assigned to it.
	ErrTooLarge = errors.New("alloc: size exceeds maximum representable allocation")

	// ErrNoBlock indicates the block store could not supply a fresh block
	// (memory exhausted). Terminal for the requesting call; never retried
	// internally.
	ErrNoBlock = errors.New("alloc: no block available")
)
