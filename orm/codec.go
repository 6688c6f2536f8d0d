/*
Package orm provides an easy to use db wrapper: buckets that namespace keys,
model buckets that store validated entities and sequences that generate
ordered keys.

Models are serialized with go-amino so that plain Go structs can be stored
without generated code.
*/
package orm

import (
	"encoding/binary"
	"reflect"

	"github.com/iov-one/settle/errors"
	amino "github.com/tendermint/go-amino"
)

// cdc is the codec used by all models. Register interface implementations
// with RegisterConcrete before storing models that contain interfaces.
var cdc = amino.NewCodec()

// Codec returns the codec used for models, so that applications can share
// type registrations.
func Codec() *amino.Codec {
	return cdc
}

// Marshal serializes a model. The encoding is length prefixed, so that a
// zero value model is never stored as an empty value.
func Marshal(m interface{}) ([]byte, error) {
	raw, err := cdc.MarshalBinaryLengthPrefixed(m)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrModel, "marshal %T: %s", m, err)
	}
	return raw, nil
}

// Unmarshal deserializes raw into the model that dest points to.
func Unmarshal(raw []byte, dest interface{}) error {
	size, n := binary.Uvarint(raw)
	if n <= 0 || uint64(len(raw)-n) != size {
		return errors.Wrapf(errors.ErrModel, "unmarshal %T: invalid length prefix", dest)
	}
	// amino refuses empty input, which is how a zero value is encoded.
	if size == 0 {
		v := reflect.ValueOf(dest)
		if v.Kind() != reflect.Ptr || v.IsNil() {
			return errors.Wrapf(errors.ErrType, "unmarshal into %T", dest)
		}
		v.Elem().Set(reflect.Zero(v.Elem().Type()))
		return nil
	}
	if err := cdc.UnmarshalBinaryBare(raw[n:], dest); err != nil {
		return errors.Wrapf(errors.ErrModel, "unmarshal %T: %s", dest, err)
	}
	return nil
}
