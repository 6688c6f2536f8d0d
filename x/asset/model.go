package asset

import (
	"github.com/iov-one/settle"
	"github.com/iov-one/settle/errors"
	"github.com/iov-one/settle/orm"
)

// Token describes a deployed asset.
type Token struct {
	Address settle.Address
	Code    string
	Issuer  settle.Address
	// Admin is allowed to mint, claw back, freeze holders and to hand
	// the asset over. It is the issuer until changed.
	Admin settle.Address
	// Descriptor is the serialized form the asset was deployed from.
	Descriptor []byte
}

var _ orm.Model = (*Token)(nil)

// Validate ensures the token is well formed.
func (t *Token) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Address", t.Address.Validate())
	errs = errors.AppendField(errs, "Code", ValidateCode(t.Code))
	errs = errors.AppendField(errs, "Issuer", t.Issuer.Validate())
	errs = errors.AppendField(errs, "Admin", t.Admin.Validate())
	if len(t.Descriptor) == 0 {
		errs = errors.AppendField(errs, "Descriptor", errors.ErrEmpty)
	}
	return errs
}

// Holding is the balance of a single holder of a single asset.
type Holding struct {
	Amount int64
	// Frozen holders cannot receive or send the asset. Clawback still
	// works.
	Frozen bool
}

var _ orm.Model = (*Holding)(nil)

// Validate ensures the holding is well formed.
func (h *Holding) Validate() error {
	if h.Amount < 0 {
		return errors.Field("Amount", errors.ErrAmount, "negative balance %d", h.Amount)
	}
	return nil
}

// NewTokenBucket returns a bucket of tokens keyed by their contract
// address.
func NewTokenBucket() orm.ModelBucket {
	return orm.NewModelBucket("token")
}

// NewHoldingBucket returns a bucket of holdings keyed by asset and
// holder.
func NewHoldingBucket() orm.ModelBucket {
	return orm.NewModelBucket("holding")
}

func holdingKey(asset, holder settle.Address) []byte {
	return orm.CompositeKey(string(asset), string(holder))
}
