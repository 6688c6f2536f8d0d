package main

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/iov-one/settle/crypto"
	"github.com/iov-one/settle/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tendermint/tendermint/libs/log"
	"github.com/urfave/cli/v2"
)

// request is a single invocation read by settled serve. Msg holds the
// message fields, amounts are in the smallest unit.
type request struct {
	Function string          `json:"function"`
	Key      string          `json:"key"`
	Msg      json.RawMessage `json:"msg"`
}

// response is written for every request.
type response struct {
	Function string   `json:"function"`
	Code     uint32   `json:"code"`
	Log      string   `json:"log,omitempty"`
	Fields   []string `json:"fields,omitempty"`
}

func serveCommand(cfg *Config) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Execute invocations read as json lines from stdin, one response line per request.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "metrics",
				Usage: "Serve prometheus metrics at `ADDRESS`",
			},
		},
		Action: func(c *cli.Context) error {
			addr := c.String("metrics")
			if addr == "" {
				addr = cfg.Metrics.Address
			}
			reg := prometheus.NewRegistry()
			n, err := openNode(*cfg, reg)
			if err != nil {
				return err
			}
			defer n.Close()

			logger, err := newLogger(c.App.ErrWriter, cfg.Log.Level)
			if err != nil {
				return err
			}
			if addr != "" {
				stop := serveMetrics(addr, reg, logger)
				defer stop()
			}
			s := server{node: n, keys: make(map[string]*crypto.PrivateKey), cfg: *cfg}
			return s.run(c.App.Reader, c.App.Writer)
		},
	}
}

// serveMetrics starts the metrics endpoint and returns a function that
// shuts it down.
func serveMetrics(addr string, reg *prometheus.Registry, logger log.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics server", "err", err)
		}
	}()
	logger.Info("serving metrics", "address", addr)
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

type server struct {
	node *node
	cfg  Config
	keys map[string]*crypto.PrivateKey
}

// run processes requests until in is exhausted. Invalid requests are
// answered with an error response and do not stop the server.
func (s server) run(in io.Reader, out io.Writer) error {
	enc := json.NewEncoder(out)
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var req request
		err := json.Unmarshal(scanner.Bytes(), &req)
		if err != nil {
			err = errors.Wrapf(errors.ErrInput, "request: %s", err)
		} else {
			err = s.handle(req)
		}
		code, desc := errors.Info(err, s.cfg.Debug)
		res := response{Function: req.Function, Code: code, Log: desc, Fields: errors.Fields(err)}
		if err := enc.Encode(res); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (s server) handle(req request) error {
	fn, ok := functions[req.Function]
	if !ok {
		return errors.Wrapf(errors.ErrNotFound, "function %q", req.Function)
	}
	msg := fn.new()
	if len(req.Msg) > 0 {
		if err := json.Unmarshal(req.Msg, msg); err != nil {
			return errors.Wrapf(errors.ErrMsg, "%s: %s", req.Function, err)
		}
	}
	var key *crypto.PrivateKey
	if req.Key != "" {
		key = s.keys[req.Key]
		if key == nil {
			k, err := loadKey(s.cfg, req.Key)
			if err != nil {
				return err
			}
			s.keys[req.Key] = k
			key = k
		}
	}
	_, err := invoke(s.node.host, key, msg, time.Now().UTC())
	return err
}
