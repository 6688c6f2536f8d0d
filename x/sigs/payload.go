package sigs

import (
	"crypto/sha256"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/settle"
	"github.com/iov-one/settle/errors"
)

//go:generate protoc --gogo_out=paths=source_relative:../.. -I ../.. x/sigs/codec.proto

// NewSignaturePayload returns the payload an address signs to authorize
// given contexts.
func NewSignaturePayload(chainID string, addr settle.Address, nonce int64, contexts []settle.AuthContext) *SignaturePayload {
	p := &SignaturePayload{
		ChainId:  chainID,
		Address:  string(addr),
		Nonce:    nonce,
		Contexts: make([]*PayloadContext, 0, len(contexts)),
	}
	for _, c := range contexts {
		p.Contexts = append(p.Contexts, &PayloadContext{
			Kind:     int32(c.Kind),
			Contract: string(c.Contract),
			FnName:   c.FnName,
			ArgsHash: c.ArgsHash,
		})
	}
	return p
}

// BuildPayload returns the hash that the signatures of an authorization
// must sign.
//
// The chain id and the nonce are part of the payload, so that an
// authorization cannot be replayed on another chain or twice on the same
// one.
func BuildPayload(chainID string, addr settle.Address, nonce int64, contexts []settle.AuthContext) ([32]byte, error) {
	if !settle.IsValidChainID(chainID) {
		return [32]byte{}, errors.Wrapf(errors.ErrInput, "chain id: %v", chainID)
	}
	if nonce < 0 {
		return [32]byte{}, errors.Wrap(ErrInvalidSequence, "negative")
	}
	raw, err := proto.Marshal(NewSignaturePayload(chainID, addr, nonce, contexts))
	if err != nil {
		return [32]byte{}, errors.Wrap(errors.ErrHuman, err.Error())
	}
	return sha256.Sum256(raw), nil
}
