// Package bstore implements store.IBlockStore as a fixed slice of slots.
//
// The number of slots (N) and the per-slot byte cap (B) are set once by
// NewBlockStore and never change. A write is checked for bounds first and
// for size second; either failure leaves the slot untouched, so an oversized
// payload is never truncated.
//
// Read does not distinguish an empty slot from an index out of range, both
// are reported as store.RetCNotFound. Delete of an empty slot succeeds.
//
// Thread Safety:
//
//	All methods take an internal sync.RWMutex, so a store may be shared
//	between goroutines even though the console itself is single-threaded.
package bstore
