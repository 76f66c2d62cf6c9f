//go:build unix

// Package mmap reserves anonymous memory for heap regions. Mappings are
// returned at a caller-chosen alignment, which the kernel does not guarantee
// directly: the implementation over-maps by one alignment unit and hands back
// the aligned window, releasing the whole reservation when done.
package mmap

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Alloc maps size bytes of zeroed anonymous memory aligned to align and
// returns the aligned window together with a release function. size must be
// a multiple of align and align a power of two. The reservation is one
// alignment unit larger than size so an aligned base always exists inside it.
func Alloc(size, align int) ([]byte, func() error, error) {
	if size <= 0 || align <= 0 || size%align != 0 {
		return nil, nil, fmt.Errorf("mmap: bad reservation size=%d align=%d", size, align)
	}

	raw, err := unix.Mmap(-1, 0, size+align,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, nil, fmt.Errorf("mmap: anonymous mapping of %d bytes: %w", size+align, err)
	}

	base := uintptr(unsafe.Pointer(&raw[0]))
	aligned := (base + uintptr(align-1)) & ^uintptr(align-1)
	head := int(aligned - base)
	data := raw[head : head+size : head+size]

	released := false
	release := func() error {
		if released {
			return nil
		}
		released = true
		// Munmap must see the mapping exactly as Mmap returned it.
		return unix.Munmap(raw)
	}
	return data, release, nil
}
