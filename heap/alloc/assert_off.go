//go:build !heapdebug

package alloc

// assertAligned is a no-op outside heapdebug builds.
func assertAligned(addr uintptr, align int) {}
