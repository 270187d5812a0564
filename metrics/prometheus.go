package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// ErrNilRegisterer is returned by NewRecorder when reg is nil.
var ErrNilRegisterer = errors.New("metrics: registerer is nil")

// Recorder publishes finished searches as Prometheus series:
//
//	<ns>_searches_total{strategy,outcome}   counter
//	<ns>_nodes_expanded_total{strategy}     counter
//	<ns>_path_cost{strategy}                histogram, solved searches only
//	<ns>_max_depth{strategy}                gauge, set when the search reports maxDepth
type Recorder struct {
	searches  *prometheus.CounterVec
	expanded  *prometheus.CounterVec
	pathCost  *prometheus.HistogramVec
	depthSeen *prometheus.GaugeVec
}

// NewRecorder creates the collectors under namespace and registers them
// with reg.
func NewRecorder(reg prometheus.Registerer, namespace string) (*Recorder, error) {
	if reg == nil {
		return nil, ErrNilRegisterer
	}
	r := &Recorder{
		searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "searches_total",
				Help:      "Total number of finished searches by outcome.",
			},
			[]string{"strategy", "outcome"},
		),
		expanded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "nodes_expanded_total",
				Help:      "Total number of node expansions.",
			},
			[]string{"strategy"},
		),
		pathCost: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "path_cost",
				Help:      "Cost of solutions found.",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"strategy"},
		),
		depthSeen: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "max_depth",
				Help:      "Last depth limit attempted by iterative deepening.",
			},
			[]string{"strategy"},
		),
	}
	for _, c := range []prometheus.Collector{r.searches, r.expanded, r.pathCost, r.depthSeen} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Record publishes m for one finished search.
func (r *Recorder) Record(strategy, outcome string, m *Metrics) {
	r.searches.WithLabelValues(strategy, outcome).Inc()
	r.expanded.WithLabelValues(strategy).Add(m.Get(NodesExpanded))
	if outcome == "solved" {
		r.pathCost.WithLabelValues(strategy).Observe(m.Get(PathCost))
	}
	if m.Has(MaxDepth) {
		r.depthSeen.WithLabelValues(strategy).Set(m.Get(MaxDepth))
	}
}
