// Package store defines the three in-memory storage paradigms of tristore:
// files, objects and blocks. Each paradigm has its own interface because their
// write contracts differ and they are deliberately not unified.
//
// Key Components:
//
//   - IFileStore: path -> payload. Create is an upsert, Write only updates an
//     existing path and never creates one.
//
//   - IObjectStore: id -> Object{Data, Metadata}. Create replaces the whole
//     record, Write replaces the payload and leaves the attributes untouched.
//
//   - IBlockStore: a fixed number N of slots, each empty or holding at most B
//     bytes. The size check is on the encoded byte length, not on runes.
//
//   - Error System: every user-visible failure is returned as an *Error with a
//     RetCode (RetCNotFound, RetCInvalidIndex, RetCTooLarge). A failed call
//     never changes the store.
//
// Implementations:
//
//	- File Store (fstore): "github.com/ValentinKolb/tristore/lib/store/fstore"
//	- Object Store (ostore): "github.com/ValentinKolb/tristore/lib/store/ostore"
//	- Block Store (bstore): "github.com/ValentinKolb/tristore/lib/store/bstore"
//
// The conformance suites in "github.com/ValentinKolb/tristore/lib/store/testing"
// can be run against any implementation of the interfaces.
package store
