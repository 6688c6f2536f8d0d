package orders

import (
	"github.com/iov-one/settle"
	"github.com/iov-one/settle/errors"
	"github.com/iov-one/settle/gconf"
	"github.com/iov-one/settle/orm"
	"github.com/iov-one/settle/x"
	"github.com/iov-one/settle/x/asset"
	"github.com/iov-one/settle/x/codes"
)

// Registry deploys and looks up order assets.
type Registry struct {
	deployer asset.Deployer
	orders   orm.ModelBucket
	assets   orm.ModelBucket
}

// NewRegistry returns a registry deploying assets with given deployer.
func NewRegistry(deployer asset.Deployer) *Registry {
	return &Registry{
		deployer: deployer,
		orders:   NewOrderBucket(),
		assets:   NewAssetBucket(),
	}
}

// Deploy returns the asset of the order, deploying it first if the order
// is new. Only a new order allocates a code.
func (r *Registry) Deploy(ctx settle.Context, db settle.KVStore, orderID string, issuer settle.Address, prefix string) (*Order, error) {
	if err := x.ValidateReference(orderID); err != nil {
		return nil, errors.Wrap(err, "order id")
	}
	switch o, err := r.Order(db, orderID); {
	case err == nil:
		return o, nil
	case !errors.ErrNotFound.Is(err):
		return nil, err
	}

	code, err := codes.Next(db, prefix)
	if err != nil {
		return nil, errors.Wrap(err, "allocate code")
	}
	descriptor, err := asset.Descriptor(code, issuer)
	if err != nil {
		return nil, errors.Wrap(err, "descriptor")
	}
	addr, err := r.deployer.Deploy(db, descriptor)
	if err != nil {
		return nil, errors.Wrap(err, "deploy asset")
	}

	o := Order{
		OrderID:      orderID,
		AssetAddress: addr,
		AssetCode:    code,
		Issuer:       issuer,
	}
	if err := r.orders.Put(db, []byte(orderID), &o); err != nil {
		return nil, errors.Wrap(err, "save order")
	}
	if err := r.assets.Put(db, o.AssetKey(), &AssetInfo{OrderID: orderID}); err != nil {
		return nil, errors.Wrap(err, "save asset")
	}
	settle.GetLogger(ctx).Info("order asset deployed",
		"order", orderID, "code", code, "asset", addr.String())
	return &o, nil
}

// Order returns the asset of an order or ErrNotFound.
func (r *Registry) Order(db settle.ReadOnlyKVStore, orderID string) (*Order, error) {
	var o Order
	if err := r.orders.One(db, []byte(orderID), &o); err != nil {
		return nil, errors.Wrapf(err, "order %q", orderID)
	}
	return &o, nil
}

// AssetInfo returns the accounting record of the asset of given order.
func (r *Registry) AssetInfo(db settle.ReadOnlyKVStore, o *Order) (*AssetInfo, error) {
	var info AssetInfo
	if err := r.assets.One(db, o.AssetKey(), &info); err != nil {
		return nil, errors.Wrapf(err, "asset %s", o.AssetCode)
	}
	return &info, nil
}

// SetPayer records the payer of the asset unless one is already recorded.
func (r *Registry) SetPayer(db settle.KVStore, o *Order, payerID string) error {
	info, err := r.AssetInfo(db, o)
	if err != nil {
		return err
	}
	if info.Payer != "" {
		return nil
	}
	info.Payer = payerID
	return r.assets.Put(db, o.AssetKey(), info)
}

// RegisterQuery will register the order bucket as "/orders", asset records
// as "/assetinfo" and the payout asset as "/payout".
func RegisterQuery(qr settle.QueryRouter) {
	NewOrderBucket().Bucket().Register("orders", qr)
	NewAssetBucket().Bucket().Register("assetinfo", qr)
	gconf.NewQueryHandler(payoutPkg).Register(qr)
}
