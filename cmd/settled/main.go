/*
Command settled runs the settlement ledger against a local state
database.

	settled init --genesis genesis.json
	settled keys new --name admin
	settled exec --key admin mint --order ORD1 --payer alice --amount 10.5 --fee 0.5
	settled query --prefix /payments
	settled serve --metrics :2112 < invocations.jsonl

Configuration is read from the yaml file given with --config and from
SETTLE_* environment variables, which can be put in a .env file.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/iov-one/settle/app"
	"github.com/iov-one/settle/x/settlement"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

// gitHash is set during the compilation time.
var gitHash = "dev"

func main() {
	// A missing .env file is fine, the environment can be set by other
	// means.
	_ = godotenv.Load()

	if err := newApp(os.Stdin, os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(in io.Reader, out, errOut io.Writer) *cli.App {
	cfg := DefaultConfig()
	var configPath, home string

	return &cli.App{
		Name:      "settled",
		Usage:     "Settlement ledger of order payments, payouts and withdrawals.",
		Reader:    in,
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Load configuration from `FILE`",
				Destination: &configPath,
			},
			&cli.StringFlag{
				Name:        "home",
				Usage:       "Keep keys and data in `DIR`",
				Destination: &home,
			},
		},
		Before: func(c *cli.Context) error {
			loaded, err := ReadConfig(configPath)
			if err != nil {
				return err
			}
			if home != "" {
				loaded.Home = home
			}
			cfg = loaded
			return nil
		},
		Commands: []*cli.Command{
			initCommand(&cfg),
			keysCommand(&cfg),
			execCommand(&cfg),
			queryCommand(&cfg),
			serveCommand(&cfg),
			{
				Name:  "version",
				Usage: "Print the ledger version.",
				Action: func(c *cli.Context) error {
					_, err := fmt.Fprintf(c.App.Writer, "%d %s %s\n", settlement.Version, settlement.VersionBuild, gitHash)
					return err
				},
			},
		},
	}
}

func initCommand(cfg *Config) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Initialize the state database from a genesis file.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "genesis",
				Aliases:  []string{"g"},
				Usage:    "Read the genesis from `FILE`",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			gen, err := app.LoadGenesis(c.String("genesis"))
			if err != nil {
				return err
			}
			n, err := openNode(*cfg, nil)
			if err != nil {
				return err
			}
			defer n.Close()

			id, err := n.host.InitChain(gen)
			if err != nil {
				return describe(err, cfg.Debug)
			}
			_, err = fmt.Fprintf(c.App.Writer, "chain %s initialized, contract %s, version %d\n",
				gen.ChainID, n.host.Contract(), id.Version)
			return err
		},
	}
}
