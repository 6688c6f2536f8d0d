package settlement

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/settle"
	"github.com/iov-one/settle/errors"
	"github.com/iov-one/settle/settletest"
	"github.com/iov-one/settle/store"
	"github.com/iov-one/settle/x/admin"
	"github.com/iov-one/settle/x/asset"
	"github.com/iov-one/settle/x/commission"
	"github.com/iov-one/settle/x/ledger"
	"github.com/iov-one/settle/x/orders"
	"github.com/iov-one/settle/x/payers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConstructor() (Constructor, *asset.Service) {
	svc := asset.NewService()
	l := ledger.NewLedger(orders.NewRegistry(svc), svc, payers.NewStore())
	return NewConstructor(svc, l), svc
}

func TestConstruct(t *testing.T) {
	_, adm := settletest.NewAccount(t)
	_, other := settletest.NewAccount(t)

	cases := map[string]struct {
		before   func(t *testing.T, db settle.KVStore)
		payAsset string
		wantErr  *errors.Error
	}{
		"fresh ledger": {
			payAsset: "USD",
		},
		"five symbols": {
			payAsset: "EURCX",
		},
		"empty code": {
			payAsset: "",
			wantErr:  errors.ErrBadArgs,
		},
		"code too long": {
			payAsset: "EURCXX",
			wantErr:  errors.ErrBadArgs,
		},
		"code symbols": {
			payAsset: "US$",
			wantErr:  errors.ErrBadArgs,
		},
		"admin already set": {
			before: func(t *testing.T, db settle.KVStore) {
				require.NoError(t, admin.Set(db, other))
			},
			payAsset: "USD",
			wantErr:  errors.ErrAlreadyInitialized,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			if tc.before != nil {
				tc.before(t, db)
			}
			c, svc := newConstructor()
			ctx := settletest.Context(settletest.NewContract("settlement"))

			err := c.Construct(ctx, db, adm, tc.payAsset)
			require.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
			if tc.wantErr != nil {
				return
			}

			got, err := admin.Admin(db)
			require.NoError(t, err)
			assert.Equal(t, adm, got)

			payout, err := orders.PayoutAsset(db)
			require.NoError(t, err)
			assert.Equal(t, tc.payAsset, payout.Code)
			assert.Equal(t, adm, payout.Issuer)
			token, err := svc.Token(db, payout.Asset)
			require.NoError(t, err)
			assert.Equal(t, tc.payAsset, token.Code)
			assert.Equal(t, adm, token.Admin)

			seq := ledger.NewBurnSequence()
			n, err := seq.Current(db)
			require.NoError(t, err)
			assert.Equal(t, int64(0), n)

			err = c.Construct(ctx, db, other, tc.payAsset)
			require.True(t, errors.ErrAlreadyInitialized.Is(err), "unexpected error: %+v", err)
		})
	}
}

type registry map[string]settle.Handler

func (r registry) Handle(path string, h settle.Handler) {
	r[path] = h
}

func TestInitHandler(t *testing.T) {
	_, adm := settletest.NewAccount(t)
	db := store.MemStore()
	c, _ := newConstructor()
	r := make(registry)
	RegisterRoutes(r, c)
	h := r["settlement/init"]
	require.NotNil(t, h)

	ctx := settletest.Context(settletest.NewContract("settlement"))
	tx := &settletest.Tx{Msg: &InitMsg{Admin: adm, PayAsset: "USD"}}
	_, err := h.Check(ctx, db, tx)
	require.NoError(t, err)
	_, err = h.Deliver(ctx, db, tx)
	require.NoError(t, err)

	_, err = h.Check(ctx, db, tx)
	require.True(t, errors.ErrAlreadyInitialized.Is(err), "unexpected error: %+v", err)
	_, err = h.Deliver(ctx, db, tx)
	require.True(t, errors.ErrAlreadyInitialized.Is(err), "unexpected error: %+v", err)

	bad := &settletest.Tx{Msg: &InitMsg{Admin: adm, PayAsset: "TOOLONG"}}
	_, err = h.Check(ctx, store.MemStore(), bad)
	require.True(t, errors.ErrBadArgs.Is(err), "unexpected error: %+v", err)
}

func TestGenesis(t *testing.T) {
	_, adm := settletest.NewAccount(t)
	_, acc := settletest.NewAccount(t)
	_, alice := settletest.NewAccount(t)

	genesis := map[string]interface{}{
		"settlement": map[string]interface{}{
			"admin":              adm,
			"pay_asset":          "USD",
			"commission_account": acc,
			"payers": map[string]settle.Address{
				"alice": alice,
			},
		},
	}
	raw, err := json.Marshal(genesis)
	require.NoError(t, err)
	var opts settle.Options
	require.NoError(t, json.Unmarshal(raw, &opts))

	db := store.MemStore()
	c, _ := newConstructor()
	dir := payers.NewStore()
	require.NoError(t, NewInitializer(c, dir).FromGenesis(opts, db))

	got, err := admin.Admin(db)
	require.NoError(t, err)
	assert.Equal(t, adm, got)
	account, err := commission.Account(db)
	require.NoError(t, err)
	assert.Equal(t, acc, account)
	payer, err := dir.Payer(db, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice, payer)

	// A genesis file without the section leaves the state untouched.
	empty := store.MemStore()
	require.NoError(t, NewInitializer(c, dir).FromGenesis(settle.Options{}, empty))
	ok, err := admin.Exists(empty)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVersionQuery(t *testing.T) {
	qr := settle.NewQueryRouter()
	RegisterQuery(qr)
	h := qr.Handler("/version")
	require.NotNil(t, h)

	models, err := h.Query(store.MemStore(), "", nil)
	require.NoError(t, err)
	require.Len(t, models, 1)
	var info VersionInfo
	require.NoError(t, json.Unmarshal(models[0].Value, &info))
	assert.Equal(t, VersionInfo{Version: 3, VersionBuild: "0.0.1"}, info)
}

