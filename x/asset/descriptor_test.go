package asset

import (
	"encoding/binary"
	"testing"

	"github.com/iov-one/settle"
	"github.com/iov-one/settle/errors"
	"github.com/iov-one/settle/settletest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptorLayout(t *testing.T) {
	key := settletest.SeedKey("issuer")
	pub := key.PublicKey()
	account := settle.AccountAddress(pub)
	contract := settletest.NewContract("settlement")
	contractRaw, err := contract.Raw()
	require.NoError(t, err)

	cases := map[string]struct {
		code    string
		issuer  settle.Address
		tag     uint32
		padded  int
		keyPart []byte
	}{
		"short code, account issuer": {
			code:    "ZB",
			issuer:  account,
			tag:     1,
			padded:  4,
			keyPart: append([]byte{0, 0, 0, 0}, pub[:]...),
		},
		"four letter code uses the short form": {
			code:    "ABCD",
			issuer:  account,
			tag:     1,
			padded:  4,
			keyPart: append([]byte{0, 0, 0, 0}, pub[:]...),
		},
		"long code, account issuer": {
			code:    "PAYOUT",
			issuer:  account,
			tag:     2,
			padded:  12,
			keyPart: append([]byte{0, 0, 0, 0}, pub[:]...),
		},
		"contract issuer is length prefixed": {
			code:    "ZB",
			issuer:  contract,
			tag:     1,
			padded:  4,
			keyPart: append([]byte{0, 0, 0, 20}, contractRaw...),
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			raw, err := Descriptor(tc.code, tc.issuer)
			require.NoError(t, err)
			require.Len(t, raw, 4+tc.padded+len(tc.keyPart))

			assert.Equal(t, tc.tag, binary.BigEndian.Uint32(raw))
			code := make([]byte, tc.padded)
			copy(code, tc.code)
			assert.Equal(t, code, raw[4:4+tc.padded])
			assert.Equal(t, tc.keyPart, raw[4+tc.padded:])

			gotCode, gotIssuer, err := ParseDescriptor(raw)
			require.NoError(t, err)
			assert.Equal(t, tc.code, gotCode)
			assert.Equal(t, tc.issuer, gotIssuer)
		})
	}
}

func TestDescriptorErrors(t *testing.T) {
	issuer := settle.AccountAddress(settletest.SeedKey("issuer").PublicKey())

	cases := map[string]struct {
		code    string
		issuer  settle.Address
		wantErr *errors.Error
	}{
		"empty code": {
			code:    "",
			issuer:  issuer,
			wantErr: errors.ErrEmpty,
		},
		"code too long": {
			code:    "ABCDEFGHIJKLM",
			issuer:  issuer,
			wantErr: errors.ErrInput,
		},
		"code outside of the alphabet": {
			code:    "AB-C",
			issuer:  issuer,
			wantErr: errors.ErrInput,
		},
		"missing issuer": {
			code:    "ABC",
			issuer:  "",
			wantErr: errors.ErrEmpty,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			_, err := Descriptor(tc.code, tc.issuer)
			require.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
		})
	}
}

func TestParseDescriptorRejectsGarbage(t *testing.T) {
	cases := map[string][]byte{
		"empty":             nil,
		"unknown type":      {0, 0, 0, 9, 'A', 0, 0, 0, 0, 0, 0, 0},
		"truncated code":    {0, 0, 0, 1, 'A'},
		"length mismatch":   {0, 0, 0, 1, 'A', 0, 0, 0, 0, 0, 0, 30, 1, 2, 3},
		"not a contract id": {0, 0, 0, 1, 'A', 0, 0, 0, 0, 0, 0, 3, 1, 2, 3},
	}
	for testName, raw := range cases {
		t.Run(testName, func(t *testing.T) {
			_, _, err := ParseDescriptor(raw)
			require.True(t, errors.ErrInput.Is(err), "unexpected error: %+v", err)
		})
	}
}
