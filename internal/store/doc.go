// Package store provides the device key-value storage behind the login form.
//
// FileStore keeps every item in a single JSON document under the app's home
// directory and replaces it atomically on each write, so a crash never leaves
// a half-written value behind. MemoryStore keeps items in process memory and
// is used by tests and by --ephemeral runs. All methods are concurrency-safe
// via internal locking.
//
// The package also records the installation identifier (installation.json)
// that scopes logs to one local install.
package store
