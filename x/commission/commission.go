/*
Package commission routes fees to the commission account.

Fees are paid in the payout asset. Paying a fee is best effort: while no
commission account is configured fees are not collected at all.
*/
package commission

import (
	"github.com/iov-one/settle"
	"github.com/iov-one/settle/errors"
	"github.com/iov-one/settle/gconf"
	"github.com/iov-one/settle/x/asset"
	"github.com/iov-one/settle/x/orders"
)

const pkg = "commission"

// Config is the commission account singleton.
type Config struct {
	Account settle.Address `json:"account"`
}

var _ gconf.Configuration = (*Config)(nil)

// Validate ensures the account is a valid address.
func (c *Config) Validate() error {
	return errors.AppendField(nil, "Account", c.Account.Validate())
}

// Account returns the commission account. It fails with ErrNotInitialized
// if none was set.
func Account(db gconf.ReadStore) (settle.Address, error) {
	var c Config
	switch err := gconf.Load(db, pkg, &c); {
	case err == nil:
		return c.Account, nil
	case errors.ErrNotFound.Is(err):
		return "", errors.Wrap(errors.ErrNotInitialized, "commission account")
	default:
		return "", err
	}
}

// SetAccount stores the commission account.
func SetAccount(db gconf.Store, addr settle.Address) error {
	return gconf.Save(db, pkg, &Config{Account: addr})
}

// Collector pays fees to the commission account.
type Collector struct {
	ctrl asset.Controller
}

// NewCollector returns a collector minting fees with given controller.
func NewCollector(ctrl asset.Controller) Collector {
	return Collector{ctrl: ctrl}
}

// Pay mints fee of the payout asset to the commission account. It does
// nothing if the fee is zero or no commission account is configured. Any
// other failure, including a failed mint, is returned.
func (c Collector) Pay(ctx settle.Context, db settle.KVStore, fee int64) error {
	if fee == 0 {
		return nil
	}
	if fee < 0 {
		return errors.Wrapf(errors.ErrAmount, "negative fee %d", fee)
	}
	account, err := Account(db)
	if errors.ErrNotInitialized.Is(err) {
		settle.GetLogger(ctx).Debug("no commission account, fee not collected", "fee", fee)
		return nil
	}
	if err != nil {
		return err
	}
	payout, err := orders.PayoutAsset(db)
	if err != nil {
		return err
	}
	if err := c.ctrl.Mint(db, payout.Asset, account, fee); err != nil {
		return errors.Wrap(err, "mint commission")
	}
	return nil
}

// RegisterQuery will register the commission account as "/commission".
func RegisterQuery(qr settle.QueryRouter) {
	gconf.NewQueryHandler(pkg).Register(qr)
}
