package bstore

import (
	"fmt"
	"sync"

	"github.com/ValentinKolb/tristore/lib/store"
)

// --------------------------------------------------------------------------
// Constants
// --------------------------------------------------------------------------

const (
	DefaultNumBlocks = 5  // Default number of slots (N)
	DefaultBlockSize = 16 // Default byte cap per slot (B)
)

// --------------------------------------------------------------------------
// Core block store structure
// --------------------------------------------------------------------------

type slot struct {
	data     string
	occupied bool
}

type storeImpl struct {
	mu        sync.RWMutex
	blocks    []slot // len(blocks) == N for the whole lifetime of the store
	blockSize int
}

// NewBlockStore creates a block store with numBlocks empty slots that each
// hold at most blockSize bytes. Both values must be positive.
func NewBlockStore(numBlocks, blockSize int) (store.IBlockStore, error) {
	if numBlocks <= 0 {
		return nil, fmt.Errorf("number of blocks must be positive, got %d", numBlocks)
	}
	if blockSize <= 0 {
		return nil, fmt.Errorf("block size must be positive, got %d", blockSize)
	}
	return &storeImpl{
		blocks:    make([]slot, numBlocks),
		blockSize: blockSize,
	}, nil
}

// NewDefaultBlockStore creates a block store with DefaultNumBlocks slots of
// DefaultBlockSize bytes.
func NewDefaultBlockStore() store.IBlockStore {
	s, _ := NewBlockStore(DefaultNumBlocks, DefaultBlockSize)
	return s
}

// inRange reports whether index addresses an existing slot.
// The caller must hold s.mu.
func (s *storeImpl) inRange(index uint64) bool {
	return index < uint64(len(s.blocks))
}

func invalidIndex(index uint64) error {
	return store.NewError(store.RetCInvalidIndex, fmt.Sprintf("invalid block index: %d", index))
}

// --------------------------------------------------------------------------
// Interface Methods (docu see store/interface.go)
// --------------------------------------------------------------------------

func (s *storeImpl) Write(index uint64, data string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.inRange(index) {
		return invalidIndex(index)
	}
	// len() counts encoded bytes, not runes
	if len(data) > s.blockSize {
		return store.NewError(store.RetCTooLarge, fmt.Sprintf("data too large for block (%d > %d bytes)", len(data), s.blockSize))
	}
	s.blocks[index] = slot{data: data, occupied: true}
	return nil
}

func (s *storeImpl) Read(index uint64) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.inRange(index) || !s.blocks[index].occupied {
		return "", store.NewError(store.RetCNotFound, fmt.Sprintf("block %d is empty or invalid", index))
	}
	return s.blocks[index].data, nil
}

func (s *storeImpl) Delete(index uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.inRange(index) {
		return invalidIndex(index)
	}
	s.blocks[index] = slot{}
	return nil
}

func (s *storeImpl) List() []store.Slot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slots := make([]store.Slot, len(s.blocks))
	for i, b := range s.blocks {
		slots[i] = store.Slot{
			Index:    uint64(i),
			Data:     b.data,
			Occupied: b.occupied,
		}
	}
	return slots
}

func (s *storeImpl) Cap() int {
	return len(s.blocks)
}

func (s *storeImpl) BlockSize() int {
	return s.blockSize
}
