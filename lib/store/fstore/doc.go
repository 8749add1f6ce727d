// Package fstore implements store.IFileStore on top of an xsync.MapOf.
//
// Paths are opaque strings. Create is an upsert; Write is update-only and
// reports store.RetCNotFound instead of creating a missing path.
//
// Usage Example:
//
//	files := fstore.NewFileStore()
//	files.Create("/a", "hello")
//	data, err := files.Read("/a") // "hello", nil
//	err = files.Write("/b", "x")  // RetCNotFound, "/b" still absent
package fstore
