package ostore

import (
	"fmt"
	"maps"

	"github.com/ValentinKolb/tristore/lib/store"
	"github.com/puzpuzpuz/xsync/v3"
)

type storeImpl struct {
	objects *xsync.MapOf[string, store.Object]
}

// NewObjectStore creates a new, empty object store.
func NewObjectStore() store.IObjectStore {
	return &storeImpl{
		objects: xsync.NewMapOf[string, store.Object](),
	}
}

// cloneMetadata copies m so the store never shares a map with its callers.
// The result is never nil.
func cloneMetadata(m map[string]string) map[string]string {
	if m == nil {
		return make(map[string]string)
	}
	return maps.Clone(m)
}

func notFound(id string) error {
	return store.NewError(store.RetCNotFound, fmt.Sprintf("object not found: %s", id))
}

// --------------------------------------------------------------------------
// Interface Methods (docu see store/interface.go)
// --------------------------------------------------------------------------

func (s *storeImpl) Create(id, data string, metadata map[string]string) {
	s.objects.Store(id, store.Object{
		ID:       id,
		Data:     data,
		Metadata: cloneMetadata(metadata),
	})
}

func (s *storeImpl) Read(id string) (store.Object, error) {
	obj, ok := s.objects.Load(id)
	if !ok {
		return store.Object{}, notFound(id)
	}
	obj.Metadata = cloneMetadata(obj.Metadata)
	return obj, nil
}

func (s *storeImpl) Write(id, data string) error {
	_, ok := s.objects.Compute(id, func(old store.Object, loaded bool) (store.Object, bool) {
		if !loaded {
			return old, true
		}
		// payload only, the attribute map is carried over as is
		old.Data = data
		return old, false
	})
	if !ok {
		return notFound(id)
	}
	return nil
}

func (s *storeImpl) Delete(id string) error {
	if _, loaded := s.objects.LoadAndDelete(id); !loaded {
		return notFound(id)
	}
	return nil
}

func (s *storeImpl) List() []string {
	ids := make([]string, 0, s.objects.Size())
	s.objects.Range(func(id string, _ store.Object) bool {
		ids = append(ids, id)
		return true
	})
	return ids
}

func (s *storeImpl) Len() int {
	return s.objects.Size()
}
