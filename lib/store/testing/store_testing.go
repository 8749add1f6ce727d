package testing

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ValentinKolb/tristore/lib/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// FileStoreFactory creates a new, empty IFileStore.
type FileStoreFactory func() store.IFileStore

// ObjectStoreFactory creates a new, empty IObjectStore.
type ObjectStoreFactory func() store.IObjectStore

// BlockStoreFactory creates a new, empty IBlockStore with the given geometry.
type BlockStoreFactory func(numBlocks, blockSize int) store.IBlockStore

// --------------------------------------------------------------------------
// Suites
// --------------------------------------------------------------------------

// RunFileStoreTests runs the conformance suite for an IFileStore implementation.
func RunFileStoreTests(t *testing.T, name string, factory FileStoreFactory) {
	t.Run(name, func(t *testing.T) {
		t.Run("Create&Read", func(t *testing.T) {
			testFileCreateRead(t, factory())
		})
		t.Run("CreateIsUpsert", func(t *testing.T) {
			testFileUpsert(t, factory())
		})
		t.Run("WriteIsUpdateOnly", func(t *testing.T) {
			testFileWriteUpdateOnly(t, factory())
		})
		t.Run("Delete", func(t *testing.T) {
			testFileDelete(t, factory())
		})
		t.Run("List", func(t *testing.T) {
			testFileList(t, factory())
		})
		t.Run("OpaquePaths", func(t *testing.T) {
			testFileOpaquePaths(t, factory())
		})
		t.Run("SizeInvariant", func(t *testing.T) {
			testFileSizeInvariant(t, factory())
		})
	})
}

// RunObjectStoreTests runs the conformance suite for an IObjectStore implementation.
func RunObjectStoreTests(t *testing.T, name string, factory ObjectStoreFactory) {
	t.Run(name, func(t *testing.T) {
		t.Run("Create&Read", func(t *testing.T) {
			testObjectCreateRead(t, factory())
		})
		t.Run("CreateReplacesRecord", func(t *testing.T) {
			testObjectCreateReplaces(t, factory())
		})
		t.Run("WriteKeepsMetadata", func(t *testing.T) {
			testObjectWriteKeepsMetadata(t, factory())
		})
		t.Run("WriteMissing", func(t *testing.T) {
			testObjectWriteMissing(t, factory())
		})
		t.Run("Delete", func(t *testing.T) {
			testObjectDelete(t, factory())
		})
		t.Run("List", func(t *testing.T) {
			testObjectList(t, factory())
		})
		t.Run("NilMetadata", func(t *testing.T) {
			testObjectNilMetadata(t, factory())
		})
	})
}

// RunBlockStoreTests runs the conformance suite for an IBlockStore implementation.
func RunBlockStoreTests(t *testing.T, name string, factory BlockStoreFactory) {
	t.Run(name, func(t *testing.T) {
		t.Run("Write&Read", func(t *testing.T) {
			testBlockWriteRead(t, factory(5, 16))
		})
		t.Run("Bounds", func(t *testing.T) {
			testBlockBounds(t, factory(5, 16))
		})
		t.Run("SizeCap", func(t *testing.T) {
			testBlockSizeCap(t, factory(5, 16))
		})
		t.Run("ByteLengthNotRunes", func(t *testing.T) {
			testBlockByteLength(t, factory(3, 4))
		})
		t.Run("DeleteIsIdempotent", func(t *testing.T) {
			testBlockDelete(t, factory(5, 16))
		})
		t.Run("ListInOrder", func(t *testing.T) {
			testBlockList(t, factory(5, 16))
		})
		t.Run("Geometry", func(t *testing.T) {
			testBlockGeometry(t, factory(7, 32))
		})
	})
}

// --------------------------------------------------------------------------
// Helper functions
// --------------------------------------------------------------------------

// requireCode fails the test unless err is a store error with the given code.
func requireCode(t testing.TB, err error, code store.RetCode) {
	t.Helper()
	require.Error(t, err)
	require.Truef(t, store.IsCode(err, code), "expected code %s, got %v", code, err)
}

// --------------------------------------------------------------------------
// File store tests
// --------------------------------------------------------------------------

func testFileCreateRead(t *testing.T, files store.IFileStore) {
	files.Create("/a", "hello")

	data, err := files.Read("/a")
	require.NoError(t, err)
	require.Equal(t, "hello", data)

	_, err = files.Read("/missing")
	requireCode(t, err, store.RetCNotFound)
}

func testFileUpsert(t *testing.T, files store.IFileStore) {
	files.Create("p", "d1")
	files.Create("p", "d2")

	data, err := files.Read("p")
	require.NoError(t, err)
	require.Equal(t, "d2", data)
	require.Equal(t, 1, files.Len(), "repeated create on one path counts once")
}

func testFileWriteUpdateOnly(t *testing.T, files store.IFileStore) {
	err := files.Write("nonexistent", "d")
	requireCode(t, err, store.RetCNotFound)

	_, err = files.Read("nonexistent")
	requireCode(t, err, store.RetCNotFound)
	require.Equal(t, 0, files.Len(), "write must not create a file")

	files.Create("p", "old")
	require.NoError(t, files.Write("p", "new"))

	data, err := files.Read("p")
	require.NoError(t, err)
	require.Equal(t, "new", data)
}

func testFileDelete(t *testing.T, files store.IFileStore) {
	files.Create("p", "d")
	files.Create("q", "e")

	require.NoError(t, files.Delete("p"))
	requireCode(t, files.Delete("p"), store.RetCNotFound)

	_, err := files.Read("p")
	requireCode(t, err, store.RetCNotFound)

	data, err := files.Read("q")
	require.NoError(t, err, "unrelated path must survive")
	require.Equal(t, "e", data)
}

func testFileList(t *testing.T, files store.IFileStore) {
	assert.Empty(t, files.List())

	files.Create("/a", "1")
	files.Create("/b", "2")
	files.Create("/c", "3")
	require.NoError(t, files.Delete("/b"))

	assert.ElementsMatch(t, []string{"/a", "/c"}, files.List())
}

func testFileOpaquePaths(t *testing.T, files store.IFileStore) {
	// no normalisation: these are three different files
	files.Create("/a", "1")
	files.Create("/a/", "2")
	files.Create("//a", "3")

	require.Equal(t, 3, files.Len())
	data, err := files.Read("/a/")
	require.NoError(t, err)
	require.Equal(t, "2", data)
}

func testFileSizeInvariant(t *testing.T, files store.IFileStore) {
	for i := 0; i < 100; i++ {
		files.Create(fmt.Sprintf("f%d", i%10), fmt.Sprintf("v%d", i))
	}
	require.Equal(t, 10, files.Len())

	for i := 0; i < 10; i += 2 {
		require.NoError(t, files.Delete(fmt.Sprintf("f%d", i)))
	}
	require.Equal(t, 5, files.Len())
	require.Len(t, files.List(), files.Len())
}

// --------------------------------------------------------------------------
// Object store tests
// --------------------------------------------------------------------------

func testObjectCreateRead(t *testing.T, objects store.IObjectStore) {
	objects.Create("o1", "payload", map[string]string{"color": "red", "size": "big"})

	obj, err := objects.Read("o1")
	require.NoError(t, err)
	require.Equal(t, "o1", obj.ID)
	require.Equal(t, "payload", obj.Data)
	require.Equal(t, map[string]string{"color": "red", "size": "big"}, obj.Metadata)

	_, err = objects.Read("o2")
	requireCode(t, err, store.RetCNotFound)
}

func testObjectCreateReplaces(t *testing.T, objects store.IObjectStore) {
	objects.Create("o1", "d1", map[string]string{"a": "1", "b": "2"})
	objects.Create("o1", "d2", map[string]string{"c": "3"})

	obj, err := objects.Read("o1")
	require.NoError(t, err)
	require.Equal(t, "d2", obj.Data)
	require.Equal(t, map[string]string{"c": "3"}, obj.Metadata, "create replaces attributes, no merge")
	require.Equal(t, 1, objects.Len())
}

func testObjectWriteKeepsMetadata(t *testing.T, objects store.IObjectStore) {
	objects.Create("i", "d", map[string]string{"k": "v"})
	require.NoError(t, objects.Write("i", "d2"))
	require.NoError(t, objects.Write("i", "d3"))

	obj, err := objects.Read("i")
	require.NoError(t, err)
	require.Equal(t, "d3", obj.Data)
	require.Equal(t, map[string]string{"k": "v"}, obj.Metadata)
}

func testObjectWriteMissing(t *testing.T, objects store.IObjectStore) {
	requireCode(t, objects.Write("ghost", "d"), store.RetCNotFound)
	require.Equal(t, 0, objects.Len(), "write must not create an object")
}

func testObjectDelete(t *testing.T, objects store.IObjectStore) {
	objects.Create("o1", "d", nil)
	require.NoError(t, objects.Delete("o1"))
	requireCode(t, objects.Delete("o1"), store.RetCNotFound)

	_, err := objects.Read("o1")
	requireCode(t, err, store.RetCNotFound)

	// a re-created object does not inherit old attributes
	objects.Create("o1", "d", map[string]string{"x": "y"})
	require.NoError(t, objects.Delete("o1"))
	objects.Create("o1", "d", nil)
	obj, err := objects.Read("o1")
	require.NoError(t, err)
	require.Empty(t, obj.Metadata)
}

func testObjectList(t *testing.T, objects store.IObjectStore) {
	assert.Empty(t, objects.List())

	objects.Create("a", "1", nil)
	objects.Create("b", "2", nil)
	objects.Create("a", "3", nil)

	assert.ElementsMatch(t, []string{"a", "b"}, objects.List())
	assert.Equal(t, 2, objects.Len())
}

func testObjectNilMetadata(t *testing.T, objects store.IObjectStore) {
	objects.Create("o", "d", nil)

	obj, err := objects.Read("o")
	require.NoError(t, err)
	require.NotNil(t, obj.Metadata, "every stored object has an attribute map")
	require.Empty(t, obj.Metadata)
}

// --------------------------------------------------------------------------
// Block store tests
// --------------------------------------------------------------------------

func testBlockWriteRead(t *testing.T, blocks store.IBlockStore) {
	require.NoError(t, blocks.Write(0, "short"))

	data, err := blocks.Read(0)
	require.NoError(t, err)
	require.Equal(t, "short", data)

	require.NoError(t, blocks.Write(0, "other"))
	data, err = blocks.Read(0)
	require.NoError(t, err)
	require.Equal(t, "other", data)

	_, err = blocks.Read(1)
	requireCode(t, err, store.RetCNotFound)
}

func testBlockBounds(t *testing.T, blocks store.IBlockStore) {
	n := uint64(blocks.Cap())

	requireCode(t, blocks.Write(n, "x"), store.RetCInvalidIndex)
	requireCode(t, blocks.Delete(n), store.RetCInvalidIndex)
	requireCode(t, blocks.Write(^uint64(0), "x"), store.RetCInvalidIndex)

	// out of range read is reported like an empty slot
	_, err := blocks.Read(n)
	requireCode(t, err, store.RetCNotFound)

	require.NoError(t, blocks.Write(n-1, "last"))
	require.Len(t, blocks.List(), blocks.Cap())
}

func testBlockSizeCap(t *testing.T, blocks store.IBlockStore) {
	exact := strings.Repeat("x", blocks.BlockSize())
	require.NoError(t, blocks.Write(1, exact))

	requireCode(t, blocks.Write(0, "0123456789ABCDEFX"), store.RetCTooLarge)
	_, err := blocks.Read(0)
	requireCode(t, err, store.RetCNotFound)

	// an oversized write leaves an occupied slot untouched
	requireCode(t, blocks.Write(1, exact+"y"), store.RetCTooLarge)
	data, err := blocks.Read(1)
	require.NoError(t, err)
	require.Equal(t, exact, data)
}

func testBlockByteLength(t *testing.T, blocks store.IBlockStore) {
	// "é" is one rune but two bytes: two of them fill a 4-byte block
	require.NoError(t, blocks.Write(0, "éé"))
	requireCode(t, blocks.Write(1, "ééé"), store.RetCTooLarge)
	// "€" is three bytes
	require.NoError(t, blocks.Write(2, "€a"))
	requireCode(t, blocks.Write(2, "€€"), store.RetCTooLarge)

	data, err := blocks.Read(2)
	require.NoError(t, err)
	require.Equal(t, "€a", data)
}

func testBlockDelete(t *testing.T, blocks store.IBlockStore) {
	require.NoError(t, blocks.Write(0, "short"))
	require.NoError(t, blocks.Delete(0))

	_, err := blocks.Read(0)
	requireCode(t, err, store.RetCNotFound)

	require.NoError(t, blocks.Delete(0), "clearing an empty slot is not an error")
	require.NoError(t, blocks.Delete(3))
}

func testBlockList(t *testing.T, blocks store.IBlockStore) {
	require.NoError(t, blocks.Write(2, "hello"))
	require.NoError(t, blocks.Write(4, "world"))

	slots := blocks.List()
	require.Len(t, slots, 5)
	for i, s := range slots {
		require.Equal(t, uint64(i), s.Index, "slots must be listed in index order")
		switch i {
		case 2:
			require.True(t, s.Occupied)
			require.Equal(t, "hello", s.Data)
		case 4:
			require.True(t, s.Occupied)
			require.Equal(t, "world", s.Data)
		default:
			require.False(t, s.Occupied)
			require.Empty(t, s.Data)
		}
	}
}

func testBlockGeometry(t *testing.T, blocks store.IBlockStore) {
	require.Equal(t, 7, blocks.Cap())
	require.Equal(t, 32, blocks.BlockSize())

	for i := 0; i < 50; i++ {
		idx := uint64(i)
		_ = blocks.Write(idx, strings.Repeat("z", i))
		_ = blocks.Delete(idx / 2)
	}

	require.Equal(t, 7, blocks.Cap(), "slot count never changes")
	for _, s := range blocks.List() {
		if s.Occupied {
			require.LessOrEqual(t, len(s.Data), blocks.BlockSize())
		}
	}
}
