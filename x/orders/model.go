package orders

import (
	"github.com/iov-one/settle"
	"github.com/iov-one/settle/errors"
	"github.com/iov-one/settle/gconf"
	"github.com/iov-one/settle/orm"
	"github.com/iov-one/settle/x"
	"github.com/iov-one/settle/x/asset"
)

// Order is the asset issued for an order. It never changes once created.
type Order struct {
	OrderID      string
	AssetAddress settle.Address
	AssetCode    string
	Issuer       settle.Address
}

var _ orm.Model = (*Order)(nil)

// Validate ensures the order is well formed.
func (o *Order) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "OrderID", x.ValidateReference(o.OrderID))
	errs = errors.AppendField(errs, "AssetAddress", o.AssetAddress.Validate())
	errs = errors.AppendField(errs, "AssetCode", asset.ValidateCode(o.AssetCode))
	errs = errors.AppendField(errs, "Issuer", o.Issuer.Validate())
	return errs
}

// AssetKey returns the key of everything recorded for the asset of this
// order.
func (o *Order) AssetKey() []byte {
	return orm.CompositeKey(o.AssetCode, string(o.Issuer))
}

// AssetInfo is the accounting record of an issued asset.
type AssetInfo struct {
	OrderID string
	// Payer is the identifier of the first payer of the order. It is
	// set once and never overwritten.
	Payer string
}

var _ orm.Model = (*AssetInfo)(nil)

// Validate ensures the record is well formed.
func (a *AssetInfo) Validate() error {
	return errors.AppendField(nil, "OrderID", x.ValidateReference(a.OrderID))
}

// NewOrderBucket returns a bucket of orders keyed by order id.
func NewOrderBucket() orm.ModelBucket {
	return orm.NewModelBucket("order")
}

// NewAssetBucket returns a bucket of asset records keyed by asset code and
// issuer.
func NewAssetBucket() orm.ModelBucket {
	return orm.NewModelBucket("asset")
}

const payoutPkg = "payout"

// Payout is the singleton describing the payout asset.
type Payout struct {
	Asset  settle.Address `json:"asset"`
	Code   string         `json:"code"`
	Issuer settle.Address `json:"issuer"`
}

var _ gconf.Configuration = (*Payout)(nil)

// Validate ensures the payout asset is well formed.
func (p *Payout) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Asset", p.Asset.Validate())
	errs = errors.AppendField(errs, "Code", asset.ValidateCode(p.Code))
	errs = errors.AppendField(errs, "Issuer", p.Issuer.Validate())
	return errs
}

// PayoutAsset returns the payout asset. It fails with ErrNotInitialized if
// the ledger was never constructed.
func PayoutAsset(db gconf.ReadStore) (*Payout, error) {
	var p Payout
	switch err := gconf.Load(db, payoutPkg, &p); {
	case err == nil:
		return &p, nil
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrap(errors.ErrNotInitialized, "payout asset")
	default:
		return nil, err
	}
}

// SetPayoutAsset stores the payout asset.
func SetPayoutAsset(db gconf.Store, p Payout) error {
	return gconf.Save(db, payoutPkg, &p)
}
