/*
Package admin keeps the single account that operates the settlement ledger.

The admin authorizes every administrative message. Handlers call
RequireAdmin, which succeeds only if the stored admin signed the current
invocation.
*/
package admin

import (
	"github.com/iov-one/settle"
	"github.com/iov-one/settle/errors"
	"github.com/iov-one/settle/gconf"
	"github.com/iov-one/settle/x"
)

const pkg = "admin"

// Config is the admin singleton.
type Config struct {
	Admin settle.Address `json:"admin"`
}

var _ gconf.Configuration = (*Config)(nil)

// Validate ensures the admin is a valid address.
func (c *Config) Validate() error {
	return errors.AppendField(nil, "Admin", c.Admin.Validate())
}

// Admin returns the stored admin. It fails with ErrNotInitialized if the
// admin was never set.
func Admin(db gconf.ReadStore) (settle.Address, error) {
	var c Config
	switch err := gconf.Load(db, pkg, &c); {
	case err == nil:
		return c.Admin, nil
	case errors.ErrNotFound.Is(err):
		return "", errors.Wrap(errors.ErrNotInitialized, "admin")
	default:
		return "", err
	}
}

// Exists returns true if an admin was set.
func Exists(db gconf.ReadStore) (bool, error) {
	return gconf.Exists(db, pkg)
}

// Set stores a new admin without any authorization check.
func Set(db gconf.Store, addr settle.Address) error {
	return gconf.Save(db, pkg, &Config{Admin: addr})
}

// RequireAdmin returns an error unless the stored admin authorized the
// current invocation.
func RequireAdmin(ctx settle.Context, db gconf.ReadStore, auth x.Authenticator) error {
	addr, err := Admin(db)
	if err != nil {
		return err
	}
	if !auth.HasAddress(ctx, addr) {
		return errors.Wrap(errors.ErrUnauthorized, "admin signature missing")
	}
	return nil
}

// RegisterQuery will register the admin singleton as "/admin".
func RegisterQuery(qr settle.QueryRouter) {
	gconf.NewQueryHandler(pkg).Register(qr)
}
