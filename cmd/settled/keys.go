package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/iov-one/settle"
	"github.com/iov-one/settle/crypto"
	"github.com/iov-one/settle/errors"
	"github.com/urfave/cli/v2"
)

func keyPath(cfg Config, name string) string {
	return filepath.Join(cfg.KeysDir(), name+".key")
}

// saveKey writes the hex encoded seed of key. An existing key file is
// never overwritten.
func saveKey(cfg Config, name string, key *crypto.PrivateKey) error {
	if err := os.MkdirAll(cfg.KeysDir(), 0700); err != nil {
		return errors.Wrapf(errors.ErrInput, "keys dir: %s", err)
	}
	path := keyPath(cfg, name)
	fd, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		if os.IsExist(err) {
			return errors.Wrapf(errors.ErrDuplicate, "private key file %q already exists, delete this file and try again", path)
		}
		return errors.Wrapf(errors.ErrInput, "cannot create private key file: %s", err)
	}
	defer fd.Close()

	if _, err := fmt.Fprintln(fd, hex.EncodeToString(key.Seed())); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot write private key: %s", err)
	}
	return fd.Close()
}

func loadKey(cfg Config, name string) (*crypto.PrivateKey, error) {
	raw, err := os.ReadFile(keyPath(cfg, name))
	if err != nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "cannot read private key file: %s", err)
	}
	seed, err := hex.DecodeString(strings.TrimSpace(string(raw)))
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "private key %q is not hex encoded", name)
	}
	return crypto.PrivateKeyFromSeed(seed)
}

func keysCommand(cfg *Config) *cli.Command {
	nameFlag := &cli.StringFlag{
		Name:     "name",
		Aliases:  []string{"n"},
		Usage:    "Name of the key `NAME`",
		Required: true,
	}
	return &cli.Command{
		Name:  "keys",
		Usage: "Manage the ed25519 keys that sign invocations.",
		Subcommands: []*cli.Command{
			{
				Name:  "new",
				Usage: "Generate a new private key and print its account address.",
				Flags: []cli.Flag{nameFlag},
				Action: func(c *cli.Context) error {
					key, err := crypto.GenPrivateKey()
					if err != nil {
						return err
					}
					if err := saveKey(*cfg, c.String("name"), key); err != nil {
						return err
					}
					_, err = fmt.Fprintln(c.App.Writer, settle.AccountAddress(key.PublicKey()))
					return err
				},
			},
			{
				Name:  "show",
				Usage: "Print the account address of a private key.",
				Flags: []cli.Flag{nameFlag},
				Action: func(c *cli.Context) error {
					key, err := loadKey(*cfg, c.String("name"))
					if err != nil {
						return err
					}
					_, err = fmt.Fprintln(c.App.Writer, settle.AccountAddress(key.PublicKey()))
					return err
				},
			},
		},
	}
}
