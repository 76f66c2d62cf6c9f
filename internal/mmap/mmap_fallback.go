//go:build !unix

package mmap

import (
	"fmt"
	"unsafe"
)

// Alloc reserves size bytes of zeroed memory aligned to align on platforms
// without an anonymous-mmap path. The backing slice is pinned by the release
// closure so the aligned window stays valid until released.
func Alloc(size, align int) ([]byte, func() error, error) {
	if size <= 0 || align <= 0 || size%align != 0 {
		return nil, nil, fmt.Errorf("mmap: bad reservation size=%d align=%d", size, align)
	}

	raw := make([]byte, size+align)
	base := uintptr(unsafe.Pointer(&raw[0]))
	aligned := (base + uintptr(align-1)) & ^uintptr(align-1)
	head := int(aligned - base)
	data := raw[head : head+size : head+size]

	release := func() error {
		// Drop the pin; the runtime reclaims the backing array.
		raw = nil
		return nil
	}
	return data, release, nil
}
