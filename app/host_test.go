package app

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/iov-one/settle"
	"github.com/iov-one/settle/crypto"
	"github.com/iov-one/settle/errors"
	"github.com/iov-one/settle/settletest"
	"github.com/iov-one/settle/x/ledger"
	"github.com/iov-one/settle/x/settlement"
	"github.com/iov-one/settle/x/sigs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
)

var now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type hostFixture struct {
	db    settle.CommitKVStore
	host  *Host
	admin *crypto.PrivateKey
	alice settle.Address
}

func newHostFixture(t *testing.T) hostFixture {
	t.Helper()

	db := settletest.CommitKVStore(t)
	stack, err := NewStack(StackOptions{Metrics: prometheus.NewRegistry()})
	require.NoError(t, err)
	host, err := NewHost(db, stack, log.NewNopLogger())
	require.NoError(t, err)

	admin := settletest.SeedKey("admin")
	_, alice := settletest.NewAccount(t)
	state, err := json.Marshal(settlement.Genesis{
		Admin:             settle.AccountAddress(admin.PublicKey()),
		PayAsset:          "USD",
		CommissionAccount: settletest.NewContract("commission"),
		Payers:            map[string]settle.Address{"alice": alice},
	})
	require.NoError(t, err)

	_, err = host.InitChain(Genesis{
		ChainID:  settletest.ChainID,
		AppState: settle.Options{"settlement": state},
	})
	require.NoError(t, err)
	return hostFixture{db: db, host: host, admin: admin, alice: alice}
}

// signed returns the encoded invocation of msg signed with the next nonce
// of key.
func (f hostFixture) signed(t *testing.T, key *crypto.PrivateKey, msg settle.Msg) []byte {
	t.Helper()
	nonce, err := f.host.Nonce(settle.AccountAddress(key.PublicKey()))
	require.NoError(t, err)
	tx := NewTx(msg)
	require.NoError(t, tx.Sign(key, f.host.ChainID(), f.host.Contract(), nonce))
	raw, err := tx.Marshal()
	require.NoError(t, err)
	return raw
}

func (f hostFixture) count(t *testing.T, path string) int {
	t.Helper()
	models, err := f.host.Query(path, nil)
	require.NoError(t, err)
	return len(models)
}

func TestHostInitChain(t *testing.T) {
	f := newHostFixture(t)
	assert.Equal(t, settletest.ChainID, f.host.ChainID())
	assert.Equal(t, ContractFor(settletest.ChainID), f.host.Contract())

	_, err := f.host.InitChain(Genesis{ChainID: "other-chain"})
	assert.True(t, errors.ErrAlreadyInitialized.Is(err))

	models, err := f.host.Query("/version", nil)
	require.NoError(t, err)
	require.Len(t, models, 1)
	var v settlement.VersionInfo
	require.NoError(t, json.Unmarshal(models[0].Value, &v))
	assert.Equal(t, settlement.Version, v.Version)

	// A host restarted on the same store restores the chain.
	stack, err := NewStack(StackOptions{})
	require.NoError(t, err)
	restarted, err := NewHost(f.db, stack, log.NewNopLogger())
	require.NoError(t, err)
	assert.Equal(t, settletest.ChainID, restarted.ChainID())
	assert.Equal(t, f.host.Contract(), restarted.Contract())
}

func TestHostInvocationBeforeGenesis(t *testing.T) {
	stack, err := NewStack(StackOptions{})
	require.NoError(t, err)
	host, err := NewHost(settletest.CommitKVStore(t), stack, log.NewNopLogger())
	require.NoError(t, err)

	raw, err := NewTx(&ledger.RejectBurnMsg{TransferRef: "w1"}).Marshal()
	require.NoError(t, err)
	_, err = host.Execute(raw, now)
	assert.True(t, errors.ErrNotInitialized.Is(err))
}

func TestHostExecute(t *testing.T) {
	f := newHostFixture(t)

	mint := &ledger.MintMsg{
		OrderID:    "ORD1",
		PaymentRef: "pay-1",
		PayerID:    "alice",
		Amount:     100,
		Fee:        10,
	}
	raw := f.signed(t, f.admin, mint)

	// Checks never change the committed state.
	_, err := f.host.Check(raw, now)
	require.NoError(t, err)
	assert.Equal(t, 0, f.count(t, "/payments?prefix"))

	_, err = f.host.Execute(raw, now)
	require.NoError(t, err)
	assert.Equal(t, 1, f.count(t, "/payments?prefix"))
	assert.Equal(t, 1, f.count(t, "/orders?prefix"))

	orders, err := f.host.Query("/orders", []byte("ORD1"))
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	// The same authorization cannot be used twice.
	_, err = f.host.Execute(raw, now)
	assert.True(t, sigs.ErrInvalidSequence.Is(err))

	// Nobody but the admin can mint.
	stranger, _ := settletest.NewAccount(t)
	second := *mint
	second.PaymentRef = "pay-2"
	_, err = f.host.Execute(f.signed(t, stranger, &second), now)
	assert.True(t, errors.ErrUnauthorized.Is(err))

	unsigned, err := NewTx(&second).Marshal()
	require.NoError(t, err)
	_, err = f.host.Execute(unsigned, now)
	assert.True(t, errors.ErrUnauthorized.Is(err))

	// A failed invocation leaves no trace, not even a nonce increment.
	nonce, err := f.host.Nonce(settle.AccountAddress(stranger.PublicKey()))
	require.NoError(t, err)
	assert.Equal(t, int64(0), nonce)
	assert.Equal(t, 1, f.count(t, "/payments?prefix"))

	_, err = f.host.Execute(f.signed(t, f.admin, &second), now)
	require.NoError(t, err)
	assert.Equal(t, 2, f.count(t, "/payments?prefix"))
}

func TestHostDeliverNeedsCommit(t *testing.T) {
	f := newHostFixture(t)

	raw := f.signed(t, f.admin, &ledger.MintMsg{
		OrderID:    "ORD1",
		PaymentRef: "pay-1",
		PayerID:    "alice",
		Amount:     100,
	})
	before, err := f.host.CommitInfo()
	require.NoError(t, err)

	_, err = f.host.Deliver(raw, now)
	require.NoError(t, err)
	assert.Equal(t, 0, f.count(t, "/payments?prefix"))

	after, err := f.host.Commit()
	require.NoError(t, err)
	assert.Equal(t, before.Version+1, after.Version)
	assert.NotEqual(t, before.Hash, after.Hash)
	assert.Equal(t, 1, f.count(t, "/payments?prefix"))
}

func TestHostRejectsGarbage(t *testing.T) {
	f := newHostFixture(t)

	_, err := f.host.Execute([]byte{0xde, 0xad, 0xbe, 0xef}, now)
	assert.Error(t, err)

	_, err = f.host.Query("/unknown", nil)
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestHostCommitsEmptiedBalance(t *testing.T) {
	f := newHostFixture(t)

	_, err := f.host.Execute(f.signed(t, f.admin, &ledger.MintMsg{
		OrderID:    "ORD1",
		PaymentRef: "pay-1",
		PayerID:    "alice",
		Amount:     100,
	}), now)
	require.NoError(t, err)
	assert.Equal(t, 1, f.count(t, "/balances?prefix"))

	// The whole balance is taken, which leaves alice with nothing to
	// store.
	transfer := &ledger.TransferMsg{
		OrderID:       "ORD1",
		TransferRef:   "T1",
		PayerID:       "alice",
		BeneficiaryID: "alice",
		Amount:        100,
	}
	_, err = f.host.Execute(f.signed(t, f.admin, transfer), now)
	require.NoError(t, err)
	assert.Equal(t, 0, f.count(t, "/balances?prefix"))

	_, err = f.host.Execute(f.signed(t, f.admin, &ledger.RejectTransferMsg{OrderID: "ORD1", TransferRef: "T1"}), now)
	require.NoError(t, err)
	assert.Equal(t, 1, f.count(t, "/balances?prefix"))
}
