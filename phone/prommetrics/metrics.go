package prommetrics

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// PromMetrics implements phone.Metrics using Prometheus counters.
type PromMetrics struct {
	edits   *prometheus.CounterVec
	history *prometheus.CounterVec
}

func registerCollector(reg prometheus.Registerer, c prometheus.Collector) error {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return nil
		}
		return fmt.Errorf("register collector: %w", err)
	}
	return nil
}

// New creates a PromMetrics instance and registers its collectors.
//
// Metrics registered:
//   - {namespace}_{subsystem}_edits_total{result} - edits by result (accepted/rejected/unchanged)
//   - {namespace}_{subsystem}_history_ops_total{op, moved} - undo/redo requests and whether the cursor moved
//
// Returns error if reg is nil or if registration fails (except AlreadyRegisteredError).
func New(reg prometheus.Registerer, namespace, subsystem string) (*PromMetrics, error) {
	if reg == nil {
		return nil, errors.New("prometheus registerer is nil")
	}

	pm := &PromMetrics{
		edits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "edits_total", Help: "Phone field edits by result",
		}, []string{"result"}),

		history: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "history_ops_total", Help: "Undo/redo requests by operation and cursor movement",
		}, []string{"op", "moved"}),
	}

	for _, c := range []prometheus.Collector{pm.edits, pm.history} {
		if err := registerCollector(reg, c); err != nil {
			return nil, err
		}
	}

	return pm, nil
}

func (p *PromMetrics) IncEdit(result string) {
	p.edits.WithLabelValues(result).Inc()
}

func (p *PromMetrics) IncHistory(op string, moved bool) {
	p.history.WithLabelValues(op, strconv.FormatBool(moved)).Inc()
}
