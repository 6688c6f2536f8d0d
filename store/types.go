/*
Package store provides the key-value stores the ledger runs on: a btree
based cache wrap that isolates the writes of one invocation, an in-memory
store for tests and the iterators that merge cached and persisted data.
*/
package store

import "github.com/iov-one/settle"

// Move references for all storage types into this package
// for shorter names everywhere.
type (
	ReadOnlyKVStore  = settle.ReadOnlyKVStore
	SetDeleter       = settle.SetDeleter
	KVStore          = settle.KVStore
	Batch            = settle.Batch
	Iterator         = settle.Iterator
	CacheableKVStore = settle.CacheableKVStore
	KVCacheWrap      = settle.KVCacheWrap
	CommitKVStore    = settle.CommitKVStore
	CommitID         = settle.CommitID
	Model            = settle.Model
)
