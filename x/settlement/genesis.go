package settlement

import (
	"context"

	"github.com/iov-one/settle"
	"github.com/iov-one/settle/errors"
	"github.com/iov-one/settle/x/commission"
	"github.com/iov-one/settle/x/payers"
)

// Genesis is the "settlement" section of the genesis file.
type Genesis struct {
	Admin             settle.Address            `json:"admin"`
	PayAsset          string                    `json:"pay_asset"`
	CommissionAccount settle.Address            `json:"commission_account"`
	Payers            map[string]settle.Address `json:"payers"`
}

// Initializer constructs the ledger from the genesis file.
type Initializer struct {
	c      Constructor
	payers payers.Store
}

var _ settle.Initializer = Initializer{}

// NewInitializer returns an initializer using given constructor.
func NewInitializer(c Constructor, dir payers.Store) Initializer {
	return Initializer{c: c, payers: dir}
}

// FromGenesis constructs the ledger if the genesis file has a
// "settlement" section. The commission account and the payer directory
// are optional.
func (i Initializer) FromGenesis(opts settle.Options, db settle.KVStore) error {
	var g Genesis
	if err := opts.ReadOptions("settlement", &g); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if g.Admin == "" && g.PayAsset == "" {
		return nil
	}
	if err := i.c.Construct(context.Background(), db, g.Admin, g.PayAsset); err != nil {
		return errors.Wrap(err, "construct")
	}
	if g.CommissionAccount != "" {
		if err := commission.SetAccount(db, g.CommissionAccount); err != nil {
			return errors.Wrap(err, "commission account")
		}
	}
	for id, addr := range g.Payers {
		if err := i.payers.Add(db, id, addr); err != nil {
			return errors.Wrapf(err, "payer %q", id)
		}
	}
	return nil
}
