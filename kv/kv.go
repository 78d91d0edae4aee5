// Copyright (c) 2026 The Orbis developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package kv defines the key-value store abstraction used for persisted
// protocol state, and a goleveldb-backed implementation.
package kv

// Getter wraps methods for getting kvs.
type Getter interface {
	// Get returns the value for the given key.
	// An error is returned if the key is not found; check it via IsNotFound.
	Get(key []byte) (value []byte, err error)
	Has(key []byte) (bool, error)
	IsNotFound(error) bool
}

// Putter wraps methods for putting kvs.
type Putter interface {
	Put(key, value []byte) error
	Delete(key []byte) error
}

// Batch collects puts that are written atomically by Write.
type Batch interface {
	Putter

	Len() int
	Write() error
}

// GetPutter wraps methods for getting/putting kvs.
type GetPutter interface {
	Getter
	Putter

	NewBatch() Batch
}

// GetPutCloser is a GetPutter with a close method.
type GetPutCloser interface {
	GetPutter
	Close() error
}
