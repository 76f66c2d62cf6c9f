package store

import "errors"

var (
	// ErrMapFailed indicates the platform could not supply a region
	// reservation (memory exhaustion).
	ErrMapFailed = errors.New("store: region mapping failed")

	// ErrBadLayout indicates a region was requested with a size or alignment
	// the block geometry cannot honor.
	ErrBadLayout = errors.New("store: bad region layout")

	// ErrOutstanding indicates the store was closed while blocks were still
	// checked out.
	ErrOutstanding = errors.New("store: blocks still checked out")

	// ErrBadBlock indicates a recycled block that did not come from this
	// store.
	ErrBadBlock = errors.New("store: block not owned by store")
)
