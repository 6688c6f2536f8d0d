package app

import (
	"github.com/iov-one/settle"
	"github.com/iov-one/settle/x/account"
	"github.com/iov-one/settle/x/admin"
	"github.com/iov-one/settle/x/asset"
	"github.com/iov-one/settle/x/commission"
	"github.com/iov-one/settle/x/ledger"
	"github.com/iov-one/settle/x/orders"
	"github.com/iov-one/settle/x/payers"
	"github.com/iov-one/settle/x/settlement"
	"github.com/iov-one/settle/x/sigs"
	"github.com/iov-one/settle/x/utils"
	"github.com/prometheus/client_golang/prometheus"
)

// Stack is everything the host needs to run the settlement contract.
type Stack struct {
	Handler     settle.Handler
	Queries     settle.QueryRouter
	Initializer settle.Initializer
}

// StackOptions configures the decorators of the stack.
type StackOptions struct {
	// Debug exposes unregistered error messages in logs.
	Debug bool
	// Metrics if set receives the invocation collectors.
	Metrics prometheus.Registerer
}

// NewStack wires the settlement contract with the in process asset
// service.
func NewStack(opts StackOptions) (Stack, error) {
	svc := asset.NewService()
	registry := orders.NewRegistry(svc)
	directory := payers.NewStore()
	l := ledger.NewLedger(registry, svc, directory)
	constructor := settlement.NewConstructor(svc, l)
	auth := sigs.Authenticate{}

	router := NewRouter()
	settlement.RegisterRoutes(router, constructor)
	admin.RegisterRoutes(router, auth)
	payers.RegisterRoutes(router, auth, directory)
	commission.RegisterRoutes(router, auth)
	orders.RegisterRoutes(router, auth, registry)
	ledger.RegisterRoutes(router, auth, l)
	asset.RegisterRoutes(router, auth, svc)

	queries := settle.NewQueryRouter()
	settlement.RegisterQuery(queries)
	admin.RegisterQuery(queries)
	directory.Register(queries)
	commission.RegisterQuery(queries)
	orders.RegisterQuery(queries)
	ledger.RegisterQuery(queries)
	asset.RegisterQuery(queries)

	decorators := ChainDecorators(
		utils.NewLogging(opts.Debug),
		utils.NewRecovery(),
	)
	if opts.Metrics != nil {
		m, err := utils.NewMetrics(opts.Metrics)
		if err != nil {
			return Stack{}, err
		}
		decorators = decorators.Chain(m)
	}
	decorators = decorators.Chain(
		// The constructor is not signed, every other handler checks the
		// authenticated addresses itself.
		sigs.NewDecorator(account.Account{}).AllowMissingSigs(),
		utils.NewSavepoint().OnCheck().OnDeliver(),
	)

	return Stack{
		Handler:     decorators.WithHandler(router),
		Queries:     queries,
		Initializer: settlement.NewInitializer(constructor, directory),
	}, nil
}
