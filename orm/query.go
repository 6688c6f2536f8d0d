package orm

import (
	"github.com/iov-one/settle"
	"github.com/iov-one/settle/errors"
)

// Register registers this Bucket under given query path. You can define a
// name here for queries, which is different than the bucket name used to
// prefix the data.
func (b Bucket) Register(name string, r settle.QueryRouter) {
	if name == "" {
		name = b.name
	}
	r.Register("/"+name, b)
}

// Query handles queries from the QueryRouter. Returned keys are full
// database keys, including the bucket prefix.
func (b Bucket) Query(db settle.ReadOnlyKVStore, mod string, data []byte) ([]settle.Model, error) {
	switch mod {
	case settle.KeyQueryMod:
		key := b.DBKey(data)
		value, err := db.Get(key)
		if err != nil {
			return nil, errors.Wrap(errors.ErrDatabase, err.Error())
		}
		// return nothing on miss
		if value == nil {
			return nil, nil
		}
		return []settle.Model{{Key: key, Value: value}}, nil
	case settle.PrefixQueryMod:
		prefix := b.DBKey(data)
		it, err := db.Iterator(prefix, prefixEnd(prefix))
		if err != nil {
			return nil, errors.Wrap(errors.ErrDatabase, err.Error())
		}
		return ConsumeIterator(it)
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown query mod %q", mod)
	}
}

// ConsumeIterator will read all remaining data into an array and release
// the iterator.
func ConsumeIterator(it settle.Iterator) ([]settle.Model, error) {
	defer it.Release()

	var res []settle.Model
	for {
		key, value, err := it.Next()
		if errors.ErrIteratorDone.Is(err) {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		res = append(res, settle.Model{Key: key, Value: value})
	}
}
