//go:build heapdebug

package alloc

import "fmt"

// assertAligned panics when a computed address misses its alignment. A
// violation is an internal bug, not a recoverable condition, so it is a
// panic and is compiled out of production builds.
func assertAligned(addr uintptr, align int) {
	if addr&uintptr(align-1) != 0 {
		panic(fmt.Sprintf("alloc: address %#x not aligned to %d", addr, align))
	}
}
