package settletest

import (
	"context"
	"time"

	"github.com/iov-one/settle"
)

// ChainID is the chain identifier used by Context.
const ChainID = "settle-test"

// Context returns a context prepared the way the host prepares it for an
// invocation of given contract: chain id, block time and contract address
// are set.
func Context(contract settle.Address) settle.Context {
	ctx := settle.WithChainID(context.Background(), ChainID)
	ctx = settle.WithBlockTime(ctx, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	return settle.WithContract(ctx, contract)
}
