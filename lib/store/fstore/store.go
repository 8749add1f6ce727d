package fstore

import (
	"fmt"

	"github.com/ValentinKolb/tristore/lib/store"
	"github.com/puzpuzpuz/xsync/v3"
)

type storeImpl struct {
	files *xsync.MapOf[string, string]
}

// NewFileStore creates a new, empty file store.
// All data lives in memory and is lost when the process exits.
func NewFileStore() store.IFileStore {
	return &storeImpl{
		files: xsync.NewMapOf[string, string](),
	}
}

// notFound builds the error returned for a missing path.
func notFound(path string) error {
	return store.NewError(store.RetCNotFound, fmt.Sprintf("file not found: %s", path))
}

// --------------------------------------------------------------------------
// Interface Methods (docu see store/interface.go)
// --------------------------------------------------------------------------

func (s *storeImpl) Create(path, data string) {
	s.files.Store(path, data)
}

func (s *storeImpl) Read(path string) (string, error) {
	data, ok := s.files.Load(path)
	if !ok {
		return "", notFound(path)
	}
	return data, nil
}

func (s *storeImpl) Write(path, data string) error {
	// delete=true on a missing key is a no-op, so a miss never inserts
	_, ok := s.files.Compute(path, func(old string, loaded bool) (string, bool) {
		if !loaded {
			return old, true
		}
		return data, false
	})
	if !ok {
		return notFound(path)
	}
	return nil
}

func (s *storeImpl) Delete(path string) error {
	if _, loaded := s.files.LoadAndDelete(path); !loaded {
		return notFound(path)
	}
	return nil
}

func (s *storeImpl) List() []string {
	paths := make([]string, 0, s.files.Size())
	s.files.Range(func(path string, _ string) bool {
		paths = append(paths, path)
		return true
	})
	return paths
}

func (s *storeImpl) Len() int {
	return s.files.Size()
}
