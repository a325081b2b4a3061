// Package store provides file-based persistence for the client's session
// record.
//
// It contains the concrete implementation of the domain.SessionStore
// interface, keeping two entries under the configured home directory: the
// raw bearer token and the serialized user record. Writes go through a temp
// file and rename so a crash never leaves a torn entry. All methods are
// concurrency-safe via internal locking.
package store
