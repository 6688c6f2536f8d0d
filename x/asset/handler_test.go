package asset

import (
	"context"
	"testing"

	"github.com/iov-one/settle"
	"github.com/iov-one/settle/errors"
	"github.com/iov-one/settle/settletest"
	"github.com/iov-one/settle/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registry map[string]settle.Handler

func (r registry) Handle(path string, h settle.Handler) {
	r[path] = h
}

func TestHandlers(t *testing.T) {
	_, issuer := settletest.NewAccount(t)
	_, alice := settletest.NewAccount(t)
	_, bob := settletest.NewAccount(t)

	cases := map[string]struct {
		signers []settle.Address
		msg     settle.Msg
		wantErr *errors.Error
		check   func(t *testing.T, db settle.ReadOnlyKVStore, svc *Service, asset settle.Address)
	}{
		"holder transfers": {
			signers: []settle.Address{alice},
			msg:     &TransferMsg{From: alice, To: bob, Amount: 7},
			check: func(t *testing.T, db settle.ReadOnlyKVStore, svc *Service, asset settle.Address) {
				assertBalance(t, db, svc, asset, alice, 3)
				assertBalance(t, db, svc, asset, bob, 7)
			},
		},
		"transfer needs the holder": {
			signers: []settle.Address{bob},
			msg:     &TransferMsg{From: alice, To: bob, Amount: 7},
			wantErr: errors.ErrUnauthorized,
		},
		"transfer of zero is invalid": {
			signers: []settle.Address{alice},
			msg:     &TransferMsg{From: alice, To: bob, Amount: 0},
			wantErr: errors.ErrAmount,
		},
		"admin freezes a holder": {
			signers: []settle.Address{issuer},
			msg:     &SetAuthorizedMsg{Holder: alice, Authorized: false},
			check: func(t *testing.T, db settle.ReadOnlyKVStore, svc *Service, asset settle.Address) {
				ok, err := svc.Authorized(db, asset, alice)
				require.NoError(t, err)
				assert.False(t, ok)
			},
		},
		"freeze needs the admin": {
			signers: []settle.Address{alice},
			msg:     &SetAuthorizedMsg{Holder: alice, Authorized: false},
			wantErr: errors.ErrUnauthorized,
		},
		"admin hands over": {
			signers: []settle.Address{issuer},
			msg:     &SetAssetAdminMsg{NewAdmin: bob},
			check: func(t *testing.T, db settle.ReadOnlyKVStore, svc *Service, asset settle.Address) {
				token, err := svc.Token(db, asset)
				require.NoError(t, err)
				assert.Equal(t, bob, token.Admin)
			},
		},
		"hand over needs the admin": {
			signers: []settle.Address{bob},
			msg:     &SetAssetAdminMsg{NewAdmin: bob},
			wantErr: errors.ErrUnauthorized,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			svc := NewService()
			asset := deployAsset(t, db, svc, "ZB", issuer)
			require.NoError(t, svc.Mint(db, asset, alice, 10))

			switch m := tc.msg.(type) {
			case *TransferMsg:
				m.Asset = asset
			case *SetAuthorizedMsg:
				m.Asset = asset
			case *SetAssetAdminMsg:
				m.Asset = asset
			}

			r := make(registry)
			RegisterRoutes(r, &settletest.Auth{Signers: tc.signers}, svc)
			h, ok := r[tc.msg.Path()]
			require.True(t, ok, "no handler for %s", tc.msg.Path())

			ctx := context.Background()
			tx := &settletest.Tx{Msg: tc.msg}
			cache := db.CacheWrap()
			_, err := h.Check(ctx, cache, tx)
			cache.Discard()
			if tc.wantErr != nil {
				require.True(t, tc.wantErr.Is(err), "unexpected check error: %+v", err)
			} else {
				require.NoError(t, err)
			}

			_, err = h.Deliver(ctx, db, tx)
			if tc.wantErr != nil {
				require.True(t, tc.wantErr.Is(err), "unexpected deliver error: %+v", err)
				return
			}
			require.NoError(t, err)
			if tc.check != nil {
				tc.check(t, db, svc, asset)
			}
		})
	}
}
