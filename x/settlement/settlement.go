/*
Package settlement constructs the settlement ledger: it sets the admin,
deploys the payout asset and resets the burn log.
*/
package settlement

import (
	"github.com/iov-one/settle"
	"github.com/iov-one/settle/errors"
	"github.com/iov-one/settle/x/admin"
	"github.com/iov-one/settle/x/asset"
	"github.com/iov-one/settle/x/ledger"
	"github.com/iov-one/settle/x/orders"
)

const (
	// Version is the ledger protocol version.
	Version = 3
	// VersionBuild is the release of this implementation.
	VersionBuild = "0.0.1"

	// MaxPayAssetLength is the longest payout asset code accepted by the
	// constructor.
	MaxPayAssetLength = 5
)

// Constructor initializes the ledger state once.
type Constructor struct {
	deployer asset.Deployer
	ledger   *ledger.Ledger
}

// NewConstructor returns a constructor deploying the payout asset with
// deployer.
func NewConstructor(deployer asset.Deployer, l *ledger.Ledger) Constructor {
	return Constructor{deployer: deployer, ledger: l}
}

// Construct sets the admin and deploys the payout asset issued by the
// admin. It fails with ErrAlreadyInitialized if an admin is already set.
func (c Constructor) Construct(ctx settle.Context, db settle.KVStore, adminAddr settle.Address, payAsset string) error {
	if err := validatePayAsset(payAsset); err != nil {
		return err
	}
	switch ok, err := admin.Exists(db); {
	case err != nil:
		return err
	case ok:
		return errors.Wrap(errors.ErrAlreadyInitialized, "admin")
	}
	if err := admin.Set(db, adminAddr); err != nil {
		return errors.Wrap(err, "save admin")
	}

	descriptor, err := asset.Descriptor(payAsset, adminAddr)
	if err != nil {
		return errors.Wrap(err, "payout descriptor")
	}
	addr, err := c.deployer.Deploy(db, descriptor)
	if err != nil {
		return errors.Wrap(err, "deploy payout asset")
	}
	payout := orders.Payout{Asset: addr, Code: payAsset, Issuer: adminAddr}
	if err := orders.SetPayoutAsset(db, payout); err != nil {
		return errors.Wrap(err, "save payout asset")
	}
	if err := c.ledger.InitBurnLog(db); err != nil {
		return errors.Wrap(err, "init burn log")
	}
	settle.GetLogger(ctx).Info("ledger constructed",
		"admin", adminAddr.String(), "payout", addr.String())
	return nil
}

func validatePayAsset(code string) error {
	if len(code) < 1 || len(code) > MaxPayAssetLength {
		return errors.Wrapf(errors.ErrBadArgs, "payout asset code must have 1 to %d symbols", MaxPayAssetLength)
	}
	if err := asset.ValidateCode(code); err != nil {
		return errors.Wrap(errors.ErrBadArgs, err.Error())
	}
	return nil
}
