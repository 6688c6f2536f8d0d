package utils

import (
	"strconv"
	"time"

	"github.com/iov-one/settle"
	"github.com/iov-one/settle/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is a decorator counting invocations and measuring their
// duration per message path and result code.
type Metrics struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

var _ settle.Decorator = Metrics{}

// NewMetrics creates a Metrics decorator and registers its collectors
// with reg.
func NewMetrics(reg prometheus.Registerer) (Metrics, error) {
	m := Metrics{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "settle",
			Name:      "invocations_total",
			Help:      "The total number of processed invocations.",
		}, []string{"mode", "path", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "settle",
			Name:      "invocation_duration_seconds",
			Help:      "Time spent processing an invocation.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"mode", "path"}),
	}
	for _, c := range []prometheus.Collector{m.calls, m.duration} {
		if err := reg.Register(c); err != nil {
			return m, errors.Wrap(errors.ErrHuman, err.Error())
		}
	}
	return m, nil
}

// Check records the outcome of a check.
func (m Metrics) Check(ctx settle.Context, store settle.KVStore, tx settle.Tx, next settle.Checker) (*settle.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, store, tx)
	m.observe("check", settle.GetPath(tx), start, err)
	return res, err
}

// Deliver records the outcome of a delivery.
func (m Metrics) Deliver(ctx settle.Context, store settle.KVStore, tx settle.Tx, next settle.Deliverer) (*settle.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	m.observe("deliver", settle.GetPath(tx), start, err)
	return res, err
}

func (m Metrics) observe(mode, path string, start time.Time, err error) {
	code := strconv.FormatUint(uint64(errors.Code(err)), 10)
	m.calls.WithLabelValues(mode, path, code).Inc()
	m.duration.WithLabelValues(mode, path).Observe(time.Since(start).Seconds())
}
