package main

import (
	"fmt"
	"io"
	"time"

	"github.com/iov-one/settle"
	"github.com/iov-one/settle/app"
	"github.com/iov-one/settle/crypto"
	"github.com/iov-one/settle/errors"
	"github.com/urfave/cli/v2"
)

func execCommand(cfg *Config) *cli.Command {
	cmd := &cli.Command{
		Name:      "exec",
		Usage:     "Sign, execute and commit a single contract invocation.",
		ArgsUsage: "<function>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "key",
				Aliases: []string{"k"},
				Usage:   "Sign with the key `NAME`. The invocation is not signed if empty.",
			},
		},
	}
	for _, name := range functionNames() {
		fn := functions[name]
		cmd.Subcommands = append(cmd.Subcommands, &cli.Command{
			Name:  name,
			Usage: fn.usage,
			Flags: fn.flags,
			Action: func(c *cli.Context) error {
				msg, err := fn.build(c)
				if err != nil {
					return err
				}
				var key *crypto.PrivateKey
				if name := c.String("key"); name != "" {
					if key, err = loadKey(*cfg, name); err != nil {
						return err
					}
				}
				n, err := openNode(*cfg, nil)
				if err != nil {
					return err
				}
				defer n.Close()
				res, err := invoke(n.host, key, msg, time.Now().UTC())
				if err != nil {
					return describe(err, cfg.Debug)
				}
				return printResult(c.App.Writer, msg, res)
			},
		})
	}
	return cmd
}

// invoke signs msg with key, when given, executes it and commits.
func invoke(host *app.Host, key *crypto.PrivateKey, msg settle.Msg, now time.Time) (*settle.DeliverResult, error) {
	tx := app.NewTx(msg)
	if key != nil {
		nonce, err := host.Nonce(settle.AccountAddress(key.PublicKey()))
		if err != nil {
			return nil, err
		}
		if err := tx.Sign(key, host.ChainID(), host.Contract(), nonce); err != nil {
			return nil, err
		}
	}
	raw, err := tx.Marshal()
	if err != nil {
		return nil, err
	}
	return host.Execute(raw, now)
}

// describe returns an error carrying the code of err, redacted unless
// debug is set.
func describe(err error, debug bool) error {
	code, log := errors.Info(err, debug)
	return fmt.Errorf("failed with code %d: %s", code, log)
}

func printResult(w io.Writer, msg settle.Msg, res *settle.DeliverResult) error {
	if _, err := fmt.Fprintf(w, "%s: ok\n", msg.Path()); err != nil {
		return err
	}
	if ref := reference(msg); ref != "" {
		if _, err := fmt.Fprintf(w, "ref: %s\n", ref); err != nil {
			return err
		}
	}
	if res != nil && res.Log != "" {
		if _, err := fmt.Fprintln(w, res.Log); err != nil {
			return err
		}
	}
	return nil
}
