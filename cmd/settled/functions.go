package main

import (
	"sort"

	"github.com/google/uuid"
	"github.com/iov-one/settle"
	"github.com/iov-one/settle/x/admin"
	"github.com/iov-one/settle/x/commission"
	"github.com/iov-one/settle/x/ledger"
	"github.com/iov-one/settle/x/orders"
	"github.com/iov-one/settle/x/payers"
	"github.com/iov-one/settle/x/settlement"
	"github.com/urfave/cli/v2"
)

// function describes a contract function that can be invoked from the
// command line.
type function struct {
	usage string
	flags []cli.Flag
	// new returns an empty message, filled by serve from json.
	new func() settle.Msg
	// build returns the message described by the command line flags.
	build func(c *cli.Context) (settle.Msg, error)
}

var (
	orderFlag       = &cli.StringFlag{Name: "order", Usage: "Order `ID`", Required: true}
	payerFlag       = &cli.StringFlag{Name: "payer", Usage: "Payer `ID`", Required: true}
	beneficiaryFlag = &cli.StringFlag{Name: "beneficiary", Usage: "Beneficiary payer `ID`", Required: true}
	amountFlag      = &cli.StringFlag{Name: "amount", Usage: "Decimal `AMOUNT` with up to 7 places", Required: true}
	feeFlag         = &cli.StringFlag{Name: "fee", Usage: "Decimal `FEE` with up to 7 places", Value: "0"}
	addressFlag     = &cli.StringFlag{Name: "address", Usage: "Account or contract `ADDRESS`", Required: true}
	idFlag          = &cli.StringFlag{Name: "id", Usage: "Payer `ID`", Required: true}
	prefixFlag      = &cli.StringFlag{Name: "prefix", Usage: "Asset code `PREFIX`"}
	payAssetFlag    = &cli.StringFlag{Name: "pay-asset", Usage: "Payout asset `CODE`", Required: true}

	// newRefFlag generates a reference when none is given.
	newRefFlag = &cli.StringFlag{Name: "ref", Usage: "Unique `REF` of the new record, generated if empty"}
	refFlag    = &cli.StringFlag{Name: "ref", Usage: "`REF` of the pending record", Required: true}
)

// newRef returns the --ref flag or a random reference.
func newRef(c *cli.Context) string {
	if ref := c.String("ref"); ref != "" {
		return ref
	}
	return uuid.NewString()
}

func amounts(c *cli.Context) (int64, int64, error) {
	amount, err := parseAmount(c.String("amount"))
	if err != nil {
		return 0, 0, err
	}
	fee, err := parseAmount(c.String("fee"))
	if err != nil {
		return 0, 0, err
	}
	return amount, fee, nil
}

var functions = map[string]function{
	"init": {
		usage: "Construct the ledger with an admin and a payout asset.",
		flags: []cli.Flag{addressFlag, payAssetFlag},
		new:   func() settle.Msg { return &settlement.InitMsg{} },
		build: func(c *cli.Context) (settle.Msg, error) {
			return &settlement.InitMsg{
				Admin:    settle.Address(c.String("address")),
				PayAsset: c.String("pay-asset"),
			}, nil
		},
	},
	"set-admin": {
		usage: "Replace the admin.",
		flags: []cli.Flag{addressFlag},
		new:   func() settle.Msg { return &admin.SetAdminMsg{} },
		build: func(c *cli.Context) (settle.Msg, error) {
			return &admin.SetAdminMsg{NewAdmin: settle.Address(c.String("address"))}, nil
		},
	},
	"set-commission": {
		usage: "Set the account receiving the fees.",
		flags: []cli.Flag{addressFlag},
		new:   func() settle.Msg { return &commission.SetCommissionAccountMsg{} },
		build: func(c *cli.Context) (settle.Msg, error) {
			return &commission.SetCommissionAccountMsg{Account: settle.Address(c.String("address"))}, nil
		},
	},
	"add-payer": {
		usage: "Register the account of a payer.",
		flags: []cli.Flag{idFlag, addressFlag},
		new:   func() settle.Msg { return &payers.AddPayerMsg{} },
		build: func(c *cli.Context) (settle.Msg, error) {
			return &payers.AddPayerMsg{
				ID:      c.String("id"),
				Address: settle.Address(c.String("address")),
			}, nil
		},
	},
	"remove-payer": {
		usage: "Remove a payer.",
		flags: []cli.Flag{idFlag},
		new:   func() settle.Msg { return &payers.RemovePayerMsg{} },
		build: func(c *cli.Context) (settle.Msg, error) {
			return &payers.RemovePayerMsg{ID: c.String("id")}, nil
		},
	},
	"deploy": {
		usage: "Deploy the asset of an order.",
		flags: []cli.Flag{orderFlag, addressFlag, prefixFlag},
		new:   func() settle.Msg { return &orders.DeployMsg{} },
		build: func(c *cli.Context) (settle.Msg, error) {
			return &orders.DeployMsg{
				OrderID: c.String("order"),
				Issuer:  settle.Address(c.String("address")),
				Prefix:  c.String("prefix"),
			}, nil
		},
	},
	"mint": {
		usage: "Record a payment and issue order assets to the payer.",
		flags: []cli.Flag{orderFlag, newRefFlag, payerFlag, amountFlag, feeFlag},
		new:   func() settle.Msg { return &ledger.MintMsg{} },
		build: func(c *cli.Context) (settle.Msg, error) {
			amount, fee, err := amounts(c)
			if err != nil {
				return nil, err
			}
			return &ledger.MintMsg{
				OrderID:    c.String("order"),
				PaymentRef: newRef(c),
				PayerID:    c.String("payer"),
				Amount:     amount,
				Fee:        fee,
			}, nil
		},
	},
	"transfer": {
		usage: "Request a payout of order assets to a beneficiary.",
		flags: []cli.Flag{orderFlag, newRefFlag, payerFlag, beneficiaryFlag, amountFlag, feeFlag},
		new:   func() settle.Msg { return &ledger.TransferMsg{} },
		build: func(c *cli.Context) (settle.Msg, error) {
			amount, fee, err := amounts(c)
			if err != nil {
				return nil, err
			}
			return &ledger.TransferMsg{
				OrderID:       c.String("order"),
				TransferRef:   newRef(c),
				PayerID:       c.String("payer"),
				BeneficiaryID: c.String("beneficiary"),
				Amount:        amount,
				Fee:           fee,
			}, nil
		},
	},
	"approve-transfer": {
		usage: "Pay out a pending transfer.",
		flags: []cli.Flag{orderFlag, refFlag},
		new:   func() settle.Msg { return &ledger.ApproveTransferMsg{} },
		build: func(c *cli.Context) (settle.Msg, error) {
			return &ledger.ApproveTransferMsg{OrderID: c.String("order"), TransferRef: c.String("ref")}, nil
		},
	},
	"reject-transfer": {
		usage: "Reimburse a pending transfer.",
		flags: []cli.Flag{orderFlag, refFlag},
		new:   func() settle.Msg { return &ledger.RejectTransferMsg{} },
		build: func(c *cli.Context) (settle.Msg, error) {
			return &ledger.RejectTransferMsg{OrderID: c.String("order"), TransferRef: c.String("ref")}, nil
		},
	},
	"burn": {
		usage: "Request a withdrawal of payout assets.",
		flags: []cli.Flag{payerFlag, newRefFlag, amountFlag, feeFlag},
		new:   func() settle.Msg { return &ledger.BurnMsg{} },
		build: func(c *cli.Context) (settle.Msg, error) {
			amount, fee, err := amounts(c)
			if err != nil {
				return nil, err
			}
			return &ledger.BurnMsg{
				PayerID:     c.String("payer"),
				TransferRef: newRef(c),
				Amount:      amount,
				Fee:         fee,
			}, nil
		},
	},
	"approve-burn": {
		usage: "Burn a pending withdrawal.",
		flags: []cli.Flag{refFlag},
		new:   func() settle.Msg { return &ledger.ApproveBurnMsg{} },
		build: func(c *cli.Context) (settle.Msg, error) {
			return &ledger.ApproveBurnMsg{TransferRef: c.String("ref")}, nil
		},
	},
	"reject-burn": {
		usage: "Reimburse a pending withdrawal.",
		flags: []cli.Flag{refFlag},
		new:   func() settle.Msg { return &ledger.RejectBurnMsg{} },
		build: func(c *cli.Context) (settle.Msg, error) {
			return &ledger.RejectBurnMsg{TransferRef: c.String("ref")}, nil
		},
	},
}

func functionNames() []string {
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// reference returns the reference of the record created by msg, if any.
func reference(msg settle.Msg) string {
	switch m := msg.(type) {
	case *ledger.MintMsg:
		return m.PaymentRef
	case *ledger.TransferMsg:
		return m.TransferRef
	case *ledger.BurnMsg:
		return m.TransferRef
	}
	return ""
}
