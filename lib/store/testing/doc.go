// Package testing provides reusable conformance suites for the store
// interfaces. An implementation package runs them from its own test file:
//
//	func Test(t *testing.T) {
//		storetesting.RunFileStoreTests(t, "FileStore", func() store.IFileStore {
//			return fstore.NewFileStore()
//		})
//	}
//
// Every sub-test gets a fresh store from the factory.
package testing
