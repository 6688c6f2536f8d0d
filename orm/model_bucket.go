package orm

import (
	"encoding/binary"
	"reflect"

	"github.com/iov-one/settle"
	"github.com/iov-one/settle/errors"
)

// Model is implemented by any entity that can be stored using ModelBucket.
type Model interface {
	Validate() error
}

// ModelBucket stores Models of a single type under a common prefix.
type ModelBucket struct {
	b Bucket
}

// NewModelBucket returns a ModelBucket instance.
func NewModelBucket(name string) ModelBucket {
	return ModelBucket{b: NewBucket(name)}
}

// Bucket returns the raw bucket this model bucket writes to.
func (mb ModelBucket) Bucket() Bucket {
	return mb.b
}

// One query the database for a single model instance. Lookup is done
// by the primary key. Result is loaded into given destination model.
// This method returns ErrNotFound if the entity does not exist in the
// database.
func (mb ModelBucket) One(db settle.ReadOnlyKVStore, key []byte, dest Model) error {
	raw, err := mb.b.Get(db, key)
	if err != nil {
		return err
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}
	if err := Unmarshal(raw, dest); err != nil {
		return errors.Wrapf(err, "%s key %q", mb.b.Name(), key)
	}
	return nil
}

// Has returns true if an entity with given key exists.
func (mb ModelBucket) Has(db settle.ReadOnlyKVStore, key []byte) (bool, error) {
	return mb.b.Has(db, key)
}

// Put saves given model in the database. The model is validated first.
func (mb ModelBucket) Put(db settle.KVStore, key []byte, m Model) error {
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	raw, err := Marshal(m)
	if err != nil {
		return err
	}
	if err := mb.b.Set(db, key, raw); err != nil {
		return errors.Wrap(err, "cannot store in the database")
	}
	return nil
}

// Delete removes an entity with given primary key from the database.
// It returns ErrNotFound if an entity with given key does not exist.
func (mb ModelBucket) Delete(db settle.KVStore, key []byte) error {
	ok, err := mb.b.Has(db, key)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(errors.ErrNotFound, "%s key %q", mb.b.Name(), key)
	}
	return mb.b.Delete(db, key)
}

// ByPrefix loads all models whose key starts with given prefix into
// destination, which must be a pointer to a slice of models. Models are
// returned in ascending key order.
func (mb ModelBucket) ByPrefix(db settle.ReadOnlyKVStore, prefix []byte, destination interface{}) error {
	dest := reflect.ValueOf(destination)
	if dest.Kind() != reflect.Ptr || dest.Elem().Kind() != reflect.Slice {
		return errors.Wrapf(errors.ErrType, "destination must be a pointer to a slice, got %T", destination)
	}
	slice := dest.Elem()
	elemType := slice.Type().Elem()

	it, err := mb.b.Iterator(db, prefix)
	if err != nil {
		return err
	}
	defer it.Release()

	for {
		_, raw, err := it.Next()
		if errors.ErrIteratorDone.Is(err) {
			break
		}
		if err != nil {
			return err
		}
		elem := reflect.New(elemType)
		if err := Unmarshal(raw, elem.Interface()); err != nil {
			return err
		}
		slice = reflect.Append(slice, elem.Elem())
	}
	dest.Elem().Set(slice)
	return nil
}

// CompositeKey joins parts into a single key. Every part is length
// prefixed so that keys built from different parts never collide, and a
// key built from the first n parts is a prefix of the full key.
func CompositeKey(parts ...string) []byte {
	var out []byte
	for _, p := range parts {
		var l [2]byte
		binary.BigEndian.PutUint16(l[:], uint16(len(p)))
		out = append(out, l[:]...)
		out = append(out, p...)
	}
	return out
}
