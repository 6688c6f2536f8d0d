package settle

import (
	"github.com/iov-one/settle/errors"
)

// ContextKind tells which kind of host action an authorization context
// covers.
type ContextKind int32

const (
	// ContractCall is a direct call of a contract function.
	ContractCall ContextKind = 0
	// CreateContract is a host function deploying a new contract.
	CreateContract ContextKind = 1
)

// AuthContext describes a single invocation that a signer authorizes.
// A signer approves the exact arguments of a call by signing their hash.
type AuthContext struct {
	Kind     ContextKind `json:"kind"`
	Contract Address     `json:"contract"`
	FnName   string      `json:"fn_name"`
	ArgsHash []byte      `json:"args_hash"`
}

// Validate returns an error if the context cannot describe any invocation.
func (c AuthContext) Validate() error {
	var errs error
	switch c.Kind {
	case ContractCall, CreateContract:
	default:
		errs = errors.AppendField(errs, "Kind", errors.ErrInput.Newf("unknown kind %d", c.Kind))
	}
	if c.Kind == ContractCall {
		errs = errors.AppendField(errs, "Contract", c.Contract.Validate())
		if c.FnName == "" {
			errs = errors.AppendField(errs, "FnName", errors.ErrEmpty)
		}
	}
	return errs
}

// Covers returns true if this context authorizes the given invocation.
func (c AuthContext) Covers(inv AuthContext) bool {
	return c.Kind == inv.Kind &&
		c.Contract == inv.Contract &&
		c.FnName == inv.FnName &&
		string(c.ArgsHash) == string(inv.ArgsHash)
}
