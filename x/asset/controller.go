package asset

import (
	"math"

	"github.com/iov-one/settle"
	"github.com/iov-one/settle/errors"
	"github.com/iov-one/settle/orm"
)

// Controller is the subset of asset functions the settlement ledger
// calls. Every function fails if the asset was never deployed.
type Controller interface {
	// Mint issues amount of asset to the holder.
	Mint(db settle.KVStore, asset, to settle.Address, amount int64) error
	// Clawback takes amount of asset back from the holder.
	Clawback(db settle.KVStore, asset, from settle.Address, amount int64) error
	// SetAuthorized freezes or unfreezes a holder.
	SetAuthorized(db settle.KVStore, asset, holder settle.Address, authorized bool) error
	// SetAdmin hands the asset over to a new admin.
	SetAdmin(db settle.KVStore, asset, newAdmin settle.Address) error
}

// Deployer creates assets out of their descriptors.
type Deployer interface {
	// Deploy returns the contract address of the asset. Deploying the
	// same descriptor twice returns the same address.
	Deploy(db settle.KVStore, descriptor []byte) (settle.Address, error)
}

// Service is the in-process asset service.
//
// It does not authenticate its callers: the ledger that holds the Service
// is trusted and message handlers do their own checks.
type Service struct {
	tokens   orm.ModelBucket
	holdings orm.ModelBucket
}

var (
	_ Controller = (*Service)(nil)
	_ Deployer   = (*Service)(nil)
)

// NewService returns a Service storing its data in the given store on
// every call.
func NewService() *Service {
	return &Service{
		tokens:   NewTokenBucket(),
		holdings: NewHoldingBucket(),
	}
}

// Deploy creates the asset described by descriptor with its issuer as the
// admin.
func (s *Service) Deploy(db settle.KVStore, descriptor []byte) (settle.Address, error) {
	code, issuer, err := ParseDescriptor(descriptor)
	if err != nil {
		return "", errors.Wrap(err, "descriptor")
	}
	addr := settle.ContractAddress(descriptor)
	switch ok, err := s.tokens.Has(db, []byte(addr)); {
	case err != nil:
		return "", err
	case ok:
		return addr, nil
	}
	t := Token{
		Address:    addr,
		Code:       code,
		Issuer:     issuer,
		Admin:      issuer,
		Descriptor: descriptor,
	}
	if err := s.tokens.Put(db, []byte(addr), &t); err != nil {
		return "", errors.Wrap(err, "save token")
	}
	return addr, nil
}

// Token returns the asset deployed under given address.
func (s *Service) Token(db settle.ReadOnlyKVStore, asset settle.Address) (*Token, error) {
	var t Token
	if err := s.tokens.One(db, []byte(asset), &t); err != nil {
		return nil, errors.Wrapf(err, "asset %s", asset)
	}
	return &t, nil
}

// Balance returns the amount of asset the holder owns.
func (s *Service) Balance(db settle.ReadOnlyKVStore, asset, holder settle.Address) (int64, error) {
	if _, err := s.Token(db, asset); err != nil {
		return 0, err
	}
	h, err := s.holding(db, asset, holder)
	if err != nil {
		return 0, err
	}
	return h.Amount, nil
}

// Authorized returns false if the holder is frozen.
func (s *Service) Authorized(db settle.ReadOnlyKVStore, asset, holder settle.Address) (bool, error) {
	if _, err := s.Token(db, asset); err != nil {
		return false, err
	}
	h, err := s.holding(db, asset, holder)
	if err != nil {
		return false, err
	}
	return !h.Frozen, nil
}

func (s *Service) Mint(db settle.KVStore, asset, to settle.Address, amount int64) error {
	if err := s.prepare(db, asset, to, amount); err != nil {
		return err
	}
	h, err := s.holding(db, asset, to)
	if err != nil {
		return err
	}
	if h.Frozen {
		return errors.Wrapf(errors.ErrUnauthorized, "holder %s is frozen", to)
	}
	if h.Amount > math.MaxInt64-amount {
		return errors.Wrapf(errors.ErrOverflow, "balance of %s", to)
	}
	h.Amount += amount
	return s.saveHolding(db, asset, to, h)
}

func (s *Service) Clawback(db settle.KVStore, asset, from settle.Address, amount int64) error {
	if err := s.prepare(db, asset, from, amount); err != nil {
		return err
	}
	h, err := s.holding(db, asset, from)
	if err != nil {
		return err
	}
	if h.Amount < amount {
		return errors.Wrapf(errors.ErrInsufficientAmount, "balance of %s is %d, want %d", from, h.Amount, amount)
	}
	h.Amount -= amount
	return s.saveHolding(db, asset, from, h)
}

// Transfer moves amount of asset between two holders. Neither of them can
// be frozen.
func (s *Service) Transfer(db settle.KVStore, asset, from, to settle.Address, amount int64) error {
	if err := s.prepare(db, asset, from, amount); err != nil {
		return err
	}
	if err := to.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	src, err := s.holding(db, asset, from)
	if err != nil {
		return err
	}
	if src.Frozen {
		return errors.Wrapf(errors.ErrUnauthorized, "holder %s is frozen", from)
	}
	if src.Amount < amount {
		return errors.Wrapf(errors.ErrInsufficientAmount, "balance of %s is %d, want %d", from, src.Amount, amount)
	}
	src.Amount -= amount
	if err := s.saveHolding(db, asset, from, src); err != nil {
		return err
	}

	dst, err := s.holding(db, asset, to)
	if err != nil {
		return err
	}
	if dst.Frozen {
		return errors.Wrapf(errors.ErrUnauthorized, "holder %s is frozen", to)
	}
	if dst.Amount > math.MaxInt64-amount {
		return errors.Wrapf(errors.ErrOverflow, "balance of %s", to)
	}
	dst.Amount += amount
	return s.saveHolding(db, asset, to, dst)
}

func (s *Service) SetAuthorized(db settle.KVStore, asset, holder settle.Address, authorized bool) error {
	if _, err := s.Token(db, asset); err != nil {
		return err
	}
	if err := holder.Validate(); err != nil {
		return errors.Wrap(err, "holder")
	}
	h, err := s.holding(db, asset, holder)
	if err != nil {
		return err
	}
	h.Frozen = !authorized
	return s.saveHolding(db, asset, holder, h)
}

func (s *Service) SetAdmin(db settle.KVStore, asset, newAdmin settle.Address) error {
	t, err := s.Token(db, asset)
	if err != nil {
		return err
	}
	if err := newAdmin.Validate(); err != nil {
		return errors.Wrap(err, "admin")
	}
	t.Admin = newAdmin
	return s.tokens.Put(db, []byte(asset), t)
}

// prepare checks the arguments shared by all value moving functions.
func (s *Service) prepare(db settle.ReadOnlyKVStore, asset, holder settle.Address, amount int64) error {
	if amount <= 0 {
		return errors.Wrapf(errors.ErrAmount, "non-positive amount %d", amount)
	}
	if err := holder.Validate(); err != nil {
		return errors.Wrap(err, "holder")
	}
	_, err := s.Token(db, asset)
	return err
}

// saveHolding writes the holding, or removes it when it carries neither a
// balance nor a frozen flag.
func (s *Service) saveHolding(db settle.KVStore, asset, holder settle.Address, h *Holding) error {
	key := holdingKey(asset, holder)
	if h.Amount != 0 || h.Frozen {
		return s.holdings.Put(db, key, h)
	}
	switch ok, err := s.holdings.Has(db, key); {
	case err != nil:
		return err
	case !ok:
		return nil
	}
	return s.holdings.Delete(db, key)
}

// holding returns the holding of given holder, or an empty one.
func (s *Service) holding(db settle.ReadOnlyKVStore, asset, holder settle.Address) (*Holding, error) {
	var h Holding
	err := s.holdings.One(db, holdingKey(asset, holder), &h)
	switch {
	case err == nil:
		return &h, nil
	case errors.ErrNotFound.Is(err):
		return &Holding{}, nil
	default:
		return nil, err
	}
}
