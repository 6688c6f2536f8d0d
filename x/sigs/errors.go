package sigs

import "github.com/iov-one/settle/errors"

// ErrInvalidSequence is returned when an authorization nonce does not
// match the nonce stored for its address.
var ErrInvalidSequence = errors.Register(120, "invalid sequence number")
