package orm

import (
	"encoding/binary"

	"github.com/iov-one/settle"
)

// Sequence maintains a counter, and generates a
// series of keys. Each key is greater than the last,
// both NextInt() as well as bytes.Compare() on NextVal().
type Sequence struct {
	id []byte
}

// NewSequence returns a sequence counter. Sequence is using following pattern
// to construct a key:
//    _s.<bucket>:<name>
func NewSequence(bucket, name string) Sequence {
	id := "_s." + bucket + ":" + name
	return Sequence{
		id: []byte(id),
	}
}

// NextVal increments the sequence and returns its state before the
// increment as 8 bytes. The first returned value is 0.
func (s *Sequence) NextVal(db settle.KVStore) ([]byte, error) {
	val, err := s.NextInt(db)
	if err != nil {
		return nil, err
	}
	return EncodeSequence(val), nil
}

// NextInt increments the sequence and returns its state before the
// increment. The first returned value is 0.
func (s *Sequence) NextInt(db settle.KVStore) (int64, error) {
	val, err := s.Current(db)
	if err != nil {
		return 0, err
	}
	if err := db.Set(s.id, EncodeSequence(val+1)); err != nil {
		return 0, err
	}
	return val, nil
}

// Current returns the value that the next call to NextInt returns. This
// method does not modify the sequence state.
func (s *Sequence) Current(db settle.ReadOnlyKVStore) (int64, error) {
	raw, err := db.Get(s.id)
	if err != nil {
		return 0, err
	}
	return DecodeSequence(raw), nil
}

// Init writes the initial state of the sequence.
func (s *Sequence) Init(db settle.KVStore, val int64) error {
	return db.Set(s.id, EncodeSequence(val))
}

// DecodeSequence converts the stored form into a number. Missing value
// is zero.
func DecodeSequence(bz []byte) int64 {
	if bz == nil {
		return 0
	}
	val := binary.BigEndian.Uint64(bz)
	return int64(val)
}

// EncodeSequence converts a number into its stored, sortable form.
func EncodeSequence(val int64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, uint64(val))
	return bz
}
