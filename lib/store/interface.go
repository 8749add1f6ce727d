package store

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// --------------------------------------------------------------------------
// Interface Definitions
// --------------------------------------------------------------------------

// IFileStore maps opaque paths to a single payload string.
// Paths are compared byte-wise; there is no hierarchy and no normalisation.
type IFileStore interface {
	// Create inserts or replaces the payload for path. It never fails.
	Create(path, data string)
	// Read returns the payload stored for path or a RetCNotFound error.
	Read(path string) (data string, err error)
	// Write replaces the payload of an existing path.
	// A missing path yields RetCNotFound and is NOT created.
	Write(path, data string) (err error)
	// Delete removes path. A missing path yields RetCNotFound.
	Delete(path string) (err error)
	// List returns all stored paths in unspecified order.
	List() (paths []string)
	// Len returns the number of stored paths.
	Len() int
}

// IObjectStore maps identifiers to an Object record (payload plus attributes).
type IObjectStore interface {
	// Create inserts or replaces the whole record for id, attributes included.
	// A nil metadata map is stored as an empty map.
	Create(id, data string, metadata map[string]string)
	// Read returns a copy of the record stored for id or a RetCNotFound error.
	Read(id string) (obj Object, err error)
	// Write replaces the payload of an existing record and keeps its attributes.
	// A missing id yields RetCNotFound.
	Write(id, data string) (err error)
	// Delete removes the record for id. A missing id yields RetCNotFound.
	Delete(id string) (err error)
	// List returns all stored ids in unspecified order.
	List() (ids []string)
	// Len returns the number of stored records.
	Len() int
}

// IBlockStore is a fixed-length sequence of block slots. Every slot is either
// empty or holds a payload of at most BlockSize() bytes.
type IBlockStore interface {
	// Write stores data in slot index.
	// index >= Cap() yields RetCInvalidIndex, len(data) > BlockSize() yields RetCTooLarge.
	// On error the store is left unchanged.
	Write(index uint64, data string) (err error)
	// Read returns the payload of slot index. An empty slot and an index out of
	// range both yield RetCNotFound.
	Read(index uint64) (data string, err error)
	// Delete clears slot index. Clearing an empty slot is not an error.
	// index >= Cap() yields RetCInvalidIndex.
	Delete(index uint64) (err error)
	// List returns every slot in index order, empty ones included.
	List() (slots []Slot)
	// Cap returns the number of slots (N). It never changes.
	Cap() int
	// BlockSize returns the per-slot byte cap (B).
	BlockSize() int
}

// --------------------------------------------------------------------------
// Value Types
// --------------------------------------------------------------------------

// Object is the record held by an IObjectStore.
type Object struct {
	ID       string
	Data     string
	Metadata map[string]string
}

// String renders the record in a debug form with attribute keys sorted, e.g.
//
//	Object { data: "payload", metadata: {"color": "red", "size": "big"} }
func (o Object) String() string {
	var sb strings.Builder
	sb.WriteString("Object { data: ")
	sb.WriteString(strconv.Quote(o.Data))
	sb.WriteString(", metadata: {")
	for i, k := range slices.Sorted(maps.Keys(o.Metadata)) {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Quote(k))
		sb.WriteString(": ")
		sb.WriteString(strconv.Quote(o.Metadata[k]))
	}
	sb.WriteString("} }")
	return sb.String()
}

// Slot is a snapshot of one block slot as returned by IBlockStore.List.
type Slot struct {
	Index    uint64
	Data     string
	Occupied bool
}

// --------------------------------------------------------------------------
// Custom Error Type
// --------------------------------------------------------------------------

// Error is a custom error type that wraps a return code (of type RetCode)
// and an error message.
type Error struct {
	Code RetCode // The return code
	Msg  string  // The error message.
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("StoreError (code %s): %s", e.Code, e.Msg)
}

// NewError creates a new Error with the given code and message.
func NewError(code RetCode, msg string) *Error {
	return &Error{
		Code: code,
		Msg:  msg,
	}
}

// CodeOf returns the RetCode carried by err.
// nil maps to RetCSuccess and any foreign error to RetCInternalError.
func CodeOf(err error) RetCode {
	if err == nil {
		return RetCSuccess
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return RetCInternalError
}

// IsCode reports whether err is a store error with the given code.
func IsCode(err error, code RetCode) bool {
	return err != nil && CodeOf(err) == code
}

// --------------------------------------------------------------------------
// Return Codes
// --------------------------------------------------------------------------

type RetCode uint64

const (
	RetCSuccess       RetCode = iota // 0: Command executed successfully.
	RetCInternalError                // 1: Command failed due to an internal error.
	RetCNotFound                     // 2: No value stored under the key or slot.
	RetCInvalidIndex                 // 3: Block index outside [0, N).
	RetCTooLarge                     // 4: Block payload exceeds the block size.
)

func (c RetCode) String() string {
	switch c {
	case RetCSuccess:
		return "ok"
	case RetCInternalError:
		return "internal_error"
	case RetCNotFound:
		return "not_found"
	case RetCInvalidIndex:
		return "invalid_index"
	case RetCTooLarge:
		return "too_large"
	default:
		return "unknown"
	}
}
