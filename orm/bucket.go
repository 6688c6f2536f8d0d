package orm

import (
	"regexp"

	"github.com/iov-one/settle"
	"github.com/iov-one/settle/errors"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,20}$`).MatchString

// Bucket is a generic holder that stores raw values under a common
// prefix. Prefix is "<name>:".
type Bucket struct {
	name   string
	prefix []byte
}

// NewBucket creates a bucket to store data. Panics on an invalid name.
func NewBucket(name string) Bucket {
	if !isBucketName(name) {
		panic("Illegal bucket: " + name)
	}
	return Bucket{
		name:   name,
		prefix: []byte(name + ":"),
	}
}

// Name returns the bucket name.
func (b Bucket) Name() string {
	return b.name
}

// DBKey is the full key we store in the db, including prefix.
func (b Bucket) DBKey(key []byte) []byte {
	out := make([]byte, 0, len(b.prefix)+len(key))
	out = append(out, b.prefix...)
	return append(out, key...)
}

// Get returns the raw value stored under key, nil if not present.
func (b Bucket) Get(db settle.ReadOnlyKVStore, key []byte) ([]byte, error) {
	raw, err := db.Get(b.DBKey(key))
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return raw, nil
}

// Has returns true if anything is stored under key.
func (b Bucket) Has(db settle.ReadOnlyKVStore, key []byte) (bool, error) {
	ok, err := db.Has(b.DBKey(key))
	if err != nil {
		return false, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return ok, nil
}

// Set writes a raw value under key.
func (b Bucket) Set(db settle.KVStore, key, value []byte) error {
	return db.Set(b.DBKey(key), value)
}

// Delete removes the value under key.
func (b Bucket) Delete(db settle.KVStore, key []byte) error {
	return db.Delete(b.DBKey(key))
}

// Iterator returns an ascending iterator over all keys in this bucket that
// start with given prefix. Returned keys do not contain the bucket prefix.
func (b Bucket) Iterator(db settle.ReadOnlyKVStore, prefix []byte) (settle.Iterator, error) {
	start := b.DBKey(prefix)
	it, err := db.Iterator(start, prefixEnd(start))
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return &bucketIterator{it: it, strip: len(b.prefix)}, nil
}

type bucketIterator struct {
	it    settle.Iterator
	strip int
}

func (i *bucketIterator) Next() ([]byte, []byte, error) {
	key, value, err := i.it.Next()
	if err != nil {
		return nil, nil, err
	}
	return key[i.strip:], value, nil
}

func (i *bucketIterator) Release() {
	i.it.Release()
}

// prefixEnd returns the first key that does not start with prefix, or nil
// when no such key exists.
func prefixEnd(prefix []byte) []byte {
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}
