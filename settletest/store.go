package settletest

import (
	"testing"

	"github.com/iov-one/settle"
	"github.com/iov-one/settle/store/iavl"
)

// CommitKVStore returns a store instance that is using a filesystem backend
// engine to store the data.
// This implementation should be used instead of MemStore when you want the
// exact same storage implementation as the production instance is using.
func CommitKVStore(t testing.TB) settle.CommitKVStore {
	t.Helper()
	db, err := iavl.NewCommitStore(t.TempDir(), "db")
	if err != nil {
		t.Fatalf("cannot create a store: %s", err)
	}
	return db
}
