// Package metrics counts identity operations by outcome.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Result labels besides the error kinds.
const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
)

// Collector records signus operation outcomes. A nil *Collector is valid and
// records nothing.
type Collector struct {
	ops *prometheus.CounterVec
}

// NewCollector registers the signus counters on reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	ops := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signus",
		Name:      "operations_total",
		Help:      "Identity operations by operation, crypto type and result.",
	}, []string{"op", "crypto_type", "result"})
	if err := reg.Register(ops); err != nil {
		return nil, err
	}
	return &Collector{ops: ops}, nil
}

// Observe increments the counter for one operation outcome.
func (c *Collector) Observe(op, cryptoType, result string) {
	if c == nil {
		return
	}
	c.ops.WithLabelValues(op, cryptoType, result).Inc()
}

// Counter returns the counter behind one label set.
func (c *Collector) Counter(op, cryptoType, result string) prometheus.Counter {
	return c.ops.WithLabelValues(op, cryptoType, result)
}
