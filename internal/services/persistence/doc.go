// Package persistence is the asynchronous gateway between the session logic
// and device storage.
//
// Each operation runs on its own goroutine and reports a single
// domain.Result over a channel, so callers on an event loop never block.
// Store failures come back as *domain.StorageError; nothing here panics.
package persistence
