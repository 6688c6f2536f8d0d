package main

import (
	"encoding/hex"
	"encoding/json"

	"github.com/iov-one/settle/errors"
	"github.com/urfave/cli/v2"
)

// queryResult is a single model printed by settled query. Values are
// printed as hex, except for paths that answer with json.
type queryResult struct {
	Key   string          `json:"key"`
	Value string          `json:"value,omitempty"`
	JSON  json.RawMessage `json:"json,omitempty"`
}

func queryCommand(cfg *Config) *cli.Command {
	return &cli.Command{
		Name:      "query",
		Usage:     "Query the committed state.",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "prefix",
				Usage: "Return all records with the key prefix instead of an exact match",
			},
			&cli.StringFlag{
				Name:  "key",
				Usage: "The `KEY` within the queried collection",
			},
		},
		Action: func(c *cli.Context) error {
			path := c.Args().First()
			if path == "" {
				return errors.Wrap(errors.ErrInput, "query path is required")
			}
			if c.Bool("prefix") {
				path += "?prefix"
			}
			n, err := openNode(*cfg, nil)
			if err != nil {
				return err
			}
			defer n.Close()

			models, err := n.host.Query(path, []byte(c.String("key")))
			if err != nil {
				return describe(err, cfg.Debug)
			}
			enc := json.NewEncoder(c.App.Writer)
			for _, m := range models {
				res := queryResult{Key: string(m.Key)}
				if json.Valid(m.Value) {
					res.JSON = m.Value
				} else {
					res.Value = hex.EncodeToString(m.Value)
				}
				if err := enc.Encode(res); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
