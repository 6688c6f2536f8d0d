/*
Package payers maps the opaque payer identifiers used by the settlement
operator to account addresses.
*/
package payers

import (
	"github.com/iov-one/settle"
	"github.com/iov-one/settle/errors"
	"github.com/iov-one/settle/orm"
	"github.com/iov-one/settle/x"
)

// ValidateID returns an error if id cannot identify a payer.
func ValidateID(id string) error {
	return errors.Wrap(x.ValidateReference(id), "payer id")
}

// Directory resolves payer identifiers.
type Directory interface {
	// Payer returns the account of given payer or ErrNotFound.
	Payer(db settle.ReadOnlyKVStore, id string) (settle.Address, error)
}

// Entry is a single directory record.
type Entry struct {
	Address settle.Address
}

var _ orm.Model = (*Entry)(nil)

// Validate ensures the entry holds a valid address.
func (e *Entry) Validate() error {
	return errors.AppendField(nil, "Address", e.Address.Validate())
}

// Store is the Directory kept in the ledger state.
type Store struct {
	bucket orm.ModelBucket
}

var _ Directory = Store{}

// NewStore returns a directory using the "payer" bucket.
func NewStore() Store {
	return Store{bucket: orm.NewModelBucket("payer")}
}

func (s Store) Payer(db settle.ReadOnlyKVStore, id string) (settle.Address, error) {
	var e Entry
	if err := s.bucket.One(db, []byte(id), &e); err != nil {
		return "", errors.Wrapf(err, "payer %q", id)
	}
	return e.Address, nil
}

// Add maps id to addr, replacing any previous mapping.
func (s Store) Add(db settle.KVStore, id string, addr settle.Address) error {
	if err := ValidateID(id); err != nil {
		return err
	}
	return s.bucket.Put(db, []byte(id), &Entry{Address: addr})
}

// Remove deletes the mapping of id. Removing an unknown id is not an error.
func (s Store) Remove(db settle.KVStore, id string) error {
	err := s.bucket.Delete(db, []byte(id))
	if errors.ErrNotFound.Is(err) {
		return nil
	}
	return err
}

// Register will register the payer bucket as "/payers".
func (s Store) Register(qr settle.QueryRouter) {
	s.bucket.Bucket().Register("payers", qr)
}
