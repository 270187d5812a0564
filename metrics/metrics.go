// Package metrics provides the named-counter accumulator returned by every
// search, and a Prometheus Recorder that publishes finished searches.
//
// Counters
//
//	nodesExpanded – Expand calls performed (summed across iterative-deepening rounds)
//	pathCost      – cost of the returned solution, 0 on failure
//	maxDepth      – last depth limit attempted by iterative deepening
//	queueSize     – frontier size when the queue search stopped
//	maxQueueSize  – largest frontier size observed
//
// A Metrics value is not safe for concurrent use; the searches that fill
// it are strictly sequential.
package metrics

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Well-known counter names.
const (
	NodesExpanded = "nodesExpanded"
	PathCost      = "pathCost"
	MaxDepth      = "maxDepth"
	QueueSize     = "queueSize"
	MaxQueueSize  = "maxQueueSize"
)

// Metrics maps counter names to values.
type Metrics struct {
	values map[string]float64
}

// New returns an empty Metrics.
func New() *Metrics {
	return &Metrics{values: make(map[string]float64, 4)}
}

// Set overwrites the counter name with v.
func (m *Metrics) Set(name string, v float64) {
	m.values[name] = v
}

// Add increments the counter name by delta, creating it at 0 if absent.
func (m *Metrics) Add(name string, delta float64) {
	m.values[name] += delta
}

// Max stores v under name if it exceeds the current value.
func (m *Metrics) Max(name string, v float64) {
	if cur, ok := m.values[name]; !ok || v > cur {
		m.values[name] = v
	}
}

// Get returns the counter name, or 0 if it was never set.
func (m *Metrics) Get(name string) float64 {
	if m == nil {
		return 0
	}

	return m.values[name]
}

// Int returns the counter name rounded to the nearest int.
func (m *Metrics) Int(name string) int {
	return int(math.Round(m.Get(name)))
}

// Has reports whether name was ever set.
func (m *Metrics) Has(name string) bool {
	if m == nil {
		return false
	}
	_, ok := m.values[name]

	return ok
}

// Merge adds every counter of other into m. Counters absent in m start at 0.
// A nil other is a no-op.
func (m *Metrics) Merge(other *Metrics) {
	if other == nil {
		return
	}
	for k, v := range other.values {
		m.values[k] += v
	}
}

// Names returns the counter names in sorted order.
func (m *Metrics) Names() []string {
	names := make([]string, 0, len(m.values))
	for k := range m.values {
		names = append(names, k)
	}
	sort.Strings(names)

	return names
}

// Snapshot returns a copy of all counters.
func (m *Metrics) Snapshot() map[string]float64 {
	out := make(map[string]float64, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}

	return out
}

// String renders the counters as "name=value" pairs in name order.
func (m *Metrics) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range m.Names() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%g", k, m.values[k])
	}
	b.WriteByte('}')

	return b.String()
}
