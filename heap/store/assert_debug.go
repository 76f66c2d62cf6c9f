//go:build heapdebug

package store

import "fmt"

// assertOffset panics when an address computation escapes its reservation.
// A violation is an internal bug, never a recoverable condition, so it is a
// panic rather than an error and is compiled out of production builds.
func assertOffset(offset, size int) {
	if offset < 0 || offset >= size {
		panic(fmt.Sprintf("store: offset %d outside reservation of %d bytes", offset, size))
	}
}
