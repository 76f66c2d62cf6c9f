// Package store manages the supply of heap blocks. It pools regions (raw
// block-aligned memory reservations), slices each region into fixed-size
// blocks, and hands blocks to allocation fronts one at a time.
//
// # Ownership
//
// Acquiring a block is a move of exclusive access: exactly one caller may
// write into a block between Acquire and Recycle. Recycling moves ownership
// back to the store, which may hand the block to any later caller. Regions
// are never released while a block carved from them is outstanding; the store
// itself releases them on Close.
//
// # Oversized blocks
//
// Objects larger than a block's capacity get a span: a dedicated region of
// whole blocks sized to contain exactly one object. Spans are never reused
// for smaller requests; recycling a span releases its backing region, since
// ownership transfers fully on recycle and nothing else can reference it.
//
// # Concurrency
//
// All store operations serialize on an internal mutex, so any number of
// allocation fronts may share one store. Two concurrent callers never
// receive the same block.
package store
