//go:build !heapdebug

package store

// assertOffset is a no-op outside heapdebug builds.
func assertOffset(offset, size int) {}
