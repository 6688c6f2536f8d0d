package asset

import (
	"bytes"
	"encoding/binary"
	"regexp"
	"strings"

	"github.com/iov-one/settle"
	"github.com/iov-one/settle/errors"
	"github.com/stellar/go/xdr"
)

const (
	// MaxCodeLength is the longest asset code a descriptor can carry.
	MaxCodeLength = 12

	shortCodeLength = 4
	keyTypeEd25519  = 0
	ed25519KeyLen   = 32
)

var isCode = regexp.MustCompile(`^[a-zA-Z0-9]{1,12}$`).MatchString

// ValidateCode returns an error if code cannot name an asset.
func ValidateCode(code string) error {
	if code == "" {
		return errors.Wrap(errors.ErrEmpty, "asset code")
	}
	if !isCode(code) {
		return errors.Wrapf(errors.ErrInput, "invalid asset code %q", code)
	}
	return nil
}

// Descriptor returns the serialized asset descriptor of the asset with
// given code, issued by given address.
//
// Account issuers produce a regular XDR Asset. Contract issuers do not have
// an ed25519 key, so the key type is replaced by the length of the raw
// contract address followed by its bytes.
func Descriptor(code string, issuer settle.Address) ([]byte, error) {
	if err := ValidateCode(code); err != nil {
		return nil, err
	}
	if err := issuer.Validate(); err != nil {
		return nil, errors.Wrap(err, "issuer")
	}

	var buf bytes.Buffer
	if issuer.IsAccount() {
		var id xdr.AccountId
		if err := id.SetAddress(string(issuer)); err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "issuer %q: %s", issuer, err)
		}
		var a xdr.Asset
		if err := a.SetCredit(code, id); err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "asset %q: %s", code, err)
		}
		if _, err := xdr.Marshal(&buf, a); err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "marshal asset: %s", err)
		}
		return buf.Bytes(), nil
	}

	raw, err := issuer.Raw()
	if err != nil {
		return nil, err
	}
	if err := marshalCode(&buf, code); err != nil {
		return nil, err
	}
	var size [4]byte
	binary.BigEndian.PutUint32(size[:], uint32(len(raw)))
	buf.Write(size[:])
	buf.Write(raw)
	return buf.Bytes(), nil
}

// marshalCode writes the asset type tag followed by the zero padded code.
func marshalCode(buf *bytes.Buffer, code string) error {
	var err error
	if len(code) <= shortCodeLength {
		var c [4]byte
		copy(c[:], code)
		if _, err = xdr.Marshal(buf, xdr.AssetTypeAssetTypeCreditAlphanum4); err == nil {
			_, err = xdr.Marshal(buf, c)
		}
	} else {
		var c [12]byte
		copy(c[:], code)
		if _, err = xdr.Marshal(buf, xdr.AssetTypeAssetTypeCreditAlphanum12); err == nil {
			_, err = xdr.Marshal(buf, c)
		}
	}
	if err != nil {
		return errors.Wrapf(errors.ErrInput, "marshal code %q: %s", code, err)
	}
	return nil
}

// ParseDescriptor returns the code and the issuer encoded in a descriptor
// created by Descriptor.
func ParseDescriptor(raw []byte) (string, settle.Address, error) {
	if len(raw) < 4 {
		return "", "", errors.Wrap(errors.ErrInput, "descriptor too short")
	}
	var codeLen int
	switch xdr.AssetType(binary.BigEndian.Uint32(raw)) {
	case xdr.AssetTypeAssetTypeCreditAlphanum4:
		codeLen = shortCodeLength
	case xdr.AssetTypeAssetTypeCreditAlphanum12:
		codeLen = MaxCodeLength
	default:
		return "", "", errors.Wrapf(errors.ErrInput, "unsupported asset type %d", binary.BigEndian.Uint32(raw))
	}
	if len(raw) < 4+codeLen+4 {
		return "", "", errors.Wrap(errors.ErrInput, "descriptor too short")
	}
	code := strings.TrimRight(string(raw[4:4+codeLen]), "\x00")
	rest := raw[4+codeLen:]

	if len(rest) == 4+ed25519KeyLen && binary.BigEndian.Uint32(rest) == keyTypeEd25519 {
		var a xdr.Asset
		if err := xdr.SafeUnmarshal(raw, &a); err != nil {
			return "", "", errors.Wrapf(errors.ErrInput, "unmarshal asset: %s", err)
		}
		var issuer xdr.AccountId
		switch a.Type {
		case xdr.AssetTypeAssetTypeCreditAlphanum4:
			issuer = a.AlphaNum4.Issuer
		case xdr.AssetTypeAssetTypeCreditAlphanum12:
			issuer = a.AlphaNum12.Issuer
		}
		return code, settle.Address(issuer.Address()), nil
	}

	size := binary.BigEndian.Uint32(rest)
	if int(size) != len(rest)-4 {
		return "", "", errors.Wrapf(errors.ErrInput, "issuer length %d does not match %d bytes", size, len(rest)-4)
	}
	addr, err := settle.ContractAddressFromRaw(rest[4:])
	if err != nil {
		return "", "", err
	}
	return code, addr, nil
}
