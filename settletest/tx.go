package settletest

import "github.com/iov-one/settle"

// Tx represents a single invocation carrying one message.
type Tx struct {
	// Msg is the message that is to be processed by this invocation.
	Msg settle.Msg
	// Err if set is returned by any method call.
	Err error
}

var _ settle.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (settle.Msg, error) {
	return tx.Msg, tx.Err
}

// Msg represents a message with a configurable route.
type Msg struct {
	// RoutePath returned by the path method, consumed by the router.
	RoutePath string
	// Err if set is returned by Validate.
	Err error
}

var _ settle.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}
