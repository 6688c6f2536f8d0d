package app

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/iov-one/settle"
	"github.com/iov-one/settle/errors"
	"github.com/iov-one/settle/x/sigs"
	"github.com/tendermint/tendermint/libs/log"
)

// Host runs invocations of the settlement contract against a commit
// store. Invocations are serialized. Each one runs on a cache wrap that
// is written only when the invocation succeeds.
type Host struct {
	mu sync.Mutex

	logger  log.Logger
	store   *CommitStore
	handler settle.Handler
	queries settle.QueryRouter
	init    settle.Initializer
	decoder settle.TxDecoder

	// chainID and contract are loaded from the store, or set by
	// InitChain.
	chainID  string
	contract settle.Address
}

// NewHost loads the latest committed state of db. A store that was
// initialized before restores its chain id.
func NewHost(db settle.CommitKVStore, stack Stack, logger log.Logger) (*Host, error) {
	cs, err := NewCommitStore(db)
	if err != nil {
		return nil, err
	}
	h := &Host{
		logger:  logger,
		store:   cs,
		handler: stack.Handler,
		queries: stack.Queries,
		init:    stack.Initializer,
		decoder: DecodeTx,
	}
	chainID, err := loadChainID(cs.DeliverStore())
	if err != nil {
		return nil, err
	}
	if chainID != "" {
		h.setChainID(chainID)
	}
	return h, nil
}

// ContractFor returns the address of the settlement contract on given
// chain.
func ContractFor(chainID string) settle.Address {
	return settle.ContractAddress([]byte("settlement:" + chainID))
}

func (h *Host) setChainID(chainID string) {
	h.chainID = chainID
	h.contract = ContractFor(chainID)
}

// ChainID returns the chain id or an empty string before InitChain.
func (h *Host) ChainID() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.chainID
}

// Contract returns the address of the hosted settlement contract.
func (h *Host) Contract() settle.Address {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.contract
}

// InitChain stores the chain id, runs the genesis initializers and
// commits the result.
func (h *Host) InitChain(gen Genesis) (settle.CommitID, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.chainID != "" {
		return settle.CommitID{}, errors.Wrapf(errors.ErrAlreadyInitialized, "chain %q", h.chainID)
	}
	err := inCache(h.store.DeliverStore(), func(db settle.KVStore) error {
		if err := saveChainID(db, gen.ChainID); err != nil {
			return err
		}
		return h.init.FromGenesis(gen.AppState, db)
	})
	if err != nil {
		return settle.CommitID{}, errors.Wrap(err, "genesis")
	}
	h.setChainID(gen.ChainID)
	h.logger.Info("chain initialized", "chain_id", gen.ChainID, "contract", h.contract)
	return h.store.Commit()
}

// Check runs the invocation against the check state. Successful checks
// are visible to further checks until the next commit.
func (h *Host) Check(txBytes []byte, now time.Time) (*settle.CheckResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ctx, tx, err := h.prepare(txBytes, now, "check")
	if err != nil {
		return nil, err
	}
	var res *settle.CheckResult
	err = inCache(h.store.CheckStore(), func(db settle.KVStore) (err error) {
		res, err = h.handler.Check(ctx, db, tx)
		return err
	})
	return res, err
}

// Deliver executes the invocation. The result is durable after Commit.
func (h *Host) Deliver(txBytes []byte, now time.Time) (*settle.DeliverResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.deliver(txBytes, now)
}

// Execute delivers the invocation and commits it when it succeeded.
func (h *Host) Execute(txBytes []byte, now time.Time) (*settle.DeliverResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	res, err := h.deliver(txBytes, now)
	if err != nil {
		return nil, err
	}
	if _, err := h.commit(); err != nil {
		return nil, err
	}
	return res, nil
}

func (h *Host) deliver(txBytes []byte, now time.Time) (*settle.DeliverResult, error) {
	ctx, tx, err := h.prepare(txBytes, now, "deliver")
	if err != nil {
		return nil, err
	}
	var res *settle.DeliverResult
	err = inCache(h.store.DeliverStore(), func(db settle.KVStore) (err error) {
		res, err = h.handler.Deliver(ctx, db, tx)
		return err
	})
	return res, err
}

// Commit makes all delivered invocations durable.
func (h *Host) Commit() (settle.CommitID, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.commit()
}

func (h *Host) commit() (settle.CommitID, error) {
	id, err := h.store.Commit()
	if err != nil {
		return id, err
	}
	h.logger.Debug("commit synced", "version", id.Version, "hash", id.Hash)
	return id, nil
}

// CommitInfo returns the latest committed version.
func (h *Host) CommitInfo() (settle.CommitID, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.store.CommitInfo()
}

// Nonce returns the next authorization nonce of addr in the committed
// state.
func (h *Host) Nonce(addr settle.Address) (int64, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	db := h.store.committed.CacheWrap()
	defer db.Discard()
	return sigs.NextNonce(db, addr)
}

// Query dispatches a query to the handler registered for the path. The
// path can carry a modifier after "?", for example "/payers?prefix".
// Queries read the committed state.
func (h *Host) Query(path string, data []byte) ([]settle.Model, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	path, mod := splitPath(path)
	qh := h.queries.Handler(path)
	if qh == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "query path: %s", path)
	}
	db := h.store.committed.CacheWrap()
	defer db.Discard()
	return qh.Query(db, mod, data)
}

// prepare decodes the invocation and builds its context.
func (h *Host) prepare(txBytes []byte, now time.Time, call string) (settle.Context, settle.Tx, error) {
	if h.chainID == "" {
		return nil, nil, errors.Wrap(errors.ErrNotInitialized, "chain")
	}
	tx, err := h.loadTx(txBytes)
	if err != nil {
		return nil, nil, err
	}
	ctx := settle.WithLogger(context.Background(), h.logger)
	ctx = settle.WithChainID(ctx, h.chainID)
	ctx = settle.WithBlockTime(ctx, now)
	ctx = settle.WithContract(ctx, h.contract)
	ctx = settle.WithLogInfo(ctx, "call", call)
	return ctx, tx, nil
}

// loadTx calls the decoder, and capture any panics
func (h *Host) loadTx(txBytes []byte) (tx settle.Tx, err error) {
	defer errors.Recover(&err)
	tx, err = h.decoder(txBytes)
	return
}

// splitPath splits out the real path along with the query
// modifier (everything after the ?)
func splitPath(path string) (string, string) {
	var mod string
	chunks := strings.SplitN(path, "?", 2)
	if len(chunks) == 2 {
		path = chunks[0]
		mod = chunks[1]
	}
	return path, mod
}

// inCache calls fn with a cache wrap of store and writes it back if fn
// succeeds.
func inCache(store settle.CacheableKVStore, fn func(settle.KVStore) error) error {
	cache := store.CacheWrap()
	if err := fn(cache); err != nil {
		cache.Discard()
		return err
	}
	return cache.Write()
}
