package account

import (
	"crypto/sha256"
	"sort"
	"testing"

	"github.com/iov-one/settle"
	"github.com/iov-one/settle/crypto"
	"github.com/iov-one/settle/errors"
	"github.com/iov-one/settle/settletest"
	"github.com/iov-one/settle/store"
	"github.com/iov-one/settle/x/admin"
	"github.com/stretchr/testify/require"
)

// signAll returns signatures of payload by all keys, ordered by public key.
func signAll(payload [PayloadSize]byte, keys ...*crypto.PrivateKey) []crypto.Signature {
	sigs := make([]crypto.Signature, 0, len(keys))
	for _, k := range keys {
		sigs = append(sigs, k.Sign(payload[:]))
	}
	sort.Slice(sigs, func(i, j int) bool {
		return sigs[i].PublicKey.Less(sigs[j].PublicKey)
	})
	return sigs
}

func TestCheckAuth(t *testing.T) {
	adminKey := settletest.SeedKey("admin")
	otherKey := settletest.SeedKey("other")
	adm := settle.AccountAddress(adminKey.PublicKey())
	contract := settletest.NewContract("settlement")

	payload := sha256.Sum256([]byte("authorize set_admin"))
	setAdmin := settle.AuthContext{
		Kind:     settle.ContractCall,
		Contract: contract,
		FnName:   admin.FnSetAdmin,
		ArgsHash: []byte("args"),
	}

	cases := map[string]struct {
		noAdmin  bool
		sigs     func() []crypto.Signature
		contexts []settle.AuthContext
		wantErr  *errors.Error
	}{
		"admin authorizes set_admin": {
			sigs:     func() []crypto.Signature { return signAll(payload, adminKey) },
			contexts: []settle.AuthContext{setAdmin},
		},
		"every context is checked": {
			sigs:     func() []crypto.Signature { return signAll(payload, adminKey) },
			contexts: []settle.AuthContext{setAdmin, setAdmin},
		},
		"signatures out of order": {
			sigs: func() []crypto.Signature {
				sigs := signAll(payload, adminKey, otherKey)
				sigs[0], sigs[1] = sigs[1], sigs[0]
				return sigs
			},
			contexts: []settle.AuthContext{setAdmin},
			wantErr:  errors.ErrBadSignatureOrder,
		},
		"duplicated signature": {
			sigs: func() []crypto.Signature {
				sig := adminKey.Sign(payload[:])
				return []crypto.Signature{sig, sig}
			},
			contexts: []settle.AuthContext{setAdmin},
			wantErr:  errors.ErrBadSignatureOrder,
		},
		"flipped signature bit": {
			sigs: func() []crypto.Signature {
				sigs := signAll(payload, adminKey)
				sigs[0].Signature[7] ^= 0x01
				return sigs
			},
			contexts: []settle.AuthContext{setAdmin},
			wantErr:  errors.ErrUnauthorized,
		},
		"signature of another payload": {
			sigs: func() []crypto.Signature {
				return signAll(sha256.Sum256([]byte("something else")), adminKey)
			},
			contexts: []settle.AuthContext{setAdmin},
			wantErr:  errors.ErrUnauthorized,
		},
		"contract creation cannot be authorized": {
			sigs: func() []crypto.Signature { return signAll(payload, adminKey) },
			contexts: []settle.AuthContext{
				setAdmin,
				{Kind: settle.CreateContract},
			},
			wantErr: errors.ErrInvalidContext,
		},
		"function outside of the allow-list": {
			sigs: func() []crypto.Signature { return signAll(payload, adminKey) },
			contexts: []settle.AuthContext{
				{Kind: settle.ContractCall, Contract: contract, FnName: "mint"},
			},
			wantErr: errors.ErrBadArgs,
		},
		"two signers": {
			sigs:     func() []crypto.Signature { return signAll(payload, adminKey, otherKey) },
			contexts: []settle.AuthContext{setAdmin},
			wantErr:  errors.ErrNotEnoughSigners,
		},
		"no signers": {
			sigs:     func() []crypto.Signature { return nil },
			contexts: []settle.AuthContext{setAdmin},
			wantErr:  errors.ErrNotEnoughSigners,
		},
		"admin was never set": {
			noAdmin:  true,
			sigs:     func() []crypto.Signature { return signAll(payload, adminKey) },
			contexts: []settle.AuthContext{setAdmin},
			wantErr:  errors.ErrNotInitialized,
		},
		"signer is not the admin": {
			sigs:     func() []crypto.Signature { return signAll(payload, otherKey) },
			contexts: []settle.AuthContext{setAdmin},
			wantErr:  errors.ErrUnknownSigner,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			if !tc.noAdmin {
				require.NoError(t, admin.Set(db, adm))
			}
			ctx := settletest.Context(contract)
			err := Account{}.CheckAuth(ctx, db, payload, tc.sigs(), tc.contexts)
			require.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
		})
	}
}
