package main

import (
	"io"
	"os"

	"github.com/iov-one/settle/app"
	"github.com/iov-one/settle/errors"
	"github.com/iov-one/settle/store/iavl"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tendermint/tendermint/libs/log"
)

// newLogger returns a logger writing to w at the configured level.
func newLogger(w io.Writer, level string) (log.Logger, error) {
	logger := log.NewTMLogger(log.NewSyncWriter(w))
	if level == "none" {
		return log.NewNopLogger(), nil
	}
	opt, err := log.AllowLevel(level)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "log level: %s", err)
	}
	return log.NewFilter(logger, opt).With("module", "settled"), nil
}

// node is an opened state database with the settlement host on top.
type node struct {
	host  *app.Host
	store iavl.CommitStore
}

// openNode opens the state database. Metrics are registered with reg if
// it is not nil.
func openNode(cfg Config, reg prometheus.Registerer) (*node, error) {
	logger, err := newLogger(os.Stderr, cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	dir := cfg.StoreDir()
	if dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, errors.Wrapf(errors.ErrDatabase, "store dir: %s", err)
		}
	}
	db, err := iavl.NewCommitStore(dir, cfg.Store.Name)
	if err != nil {
		return nil, err
	}
	stack, err := app.NewStack(app.StackOptions{Debug: cfg.Debug, Metrics: reg})
	if err != nil {
		db.Close()
		return nil, err
	}
	host, err := app.NewHost(db, stack, logger)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &node{host: host, store: db}, nil
}

func (n *node) Close() {
	n.store.Close()
}
