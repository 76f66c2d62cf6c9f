// Package alloc is the allocation core of a block-structured, garbage-
// collected heap. It hands out object memory, prefixes every object with a
// compact metadata header, classifies requests by size into placement
// strategies, and exposes the shared epoch-mark primitive a collector uses
// to tell already-visited objects apart within a pass.
//
// # Shape
//
//   - Arena: owns the block supply and the shared current-mark cell for one
//     logical heap. Shared by any number of fronts.
//   - Allocator: one allocation front. Computes cell layout, drives a bump
//     cursor, writes headers.
//   - Header: 4-byte prefix (size class, encoded size, mark) recovered from
//     an object address by pure arithmetic.
//   - SizeClass: small cells share lines, medium cells share blocks, large
//     cells own dedicated spans of whole blocks.
//
// # Usage
//
//	arena := alloc.NewArena()
//	defer arena.Close()
//	a := alloc.New(arena)
//
//	p, err := a.Alloc(layout.For[uint64]())
//	if err != nil {
//	    return err
//	}
//	v := (*uint64)(p)
//	*v = 42
//
//	alloc.SetMark(v, arena.MarkRef().Load())
//	if alloc.IsOld(a, v) { ... }
//
// Allocation is synchronous call-and-return: it either completes or fails
// immediately with an error, never blocks, and never retries internally.
// This package contains no tracer, no sweeper, and no write barrier; those
// belong to the collector built on top of it.
package alloc
