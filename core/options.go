package core

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvsearch/internal/logging"
	"github.com/katalvlaran/lvsearch/metrics"
)

// Recorder receives the Metrics of every finished top-level search.
// metrics.Recorder implements it on top of Prometheus.
type Recorder interface {
	Record(strategy, outcome string, m *metrics.Metrics)
}

// Option configures a search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// search is invoked.
type Option func(*Options)

// Options holds the settings common to every strategy.
type Options struct {
	// Ctx is checked once per expansion; cancelling it aborts the search.
	Ctx context.Context

	// Logger receives Debug records at search start and finish.
	Logger *slog.Logger

	// Recorder, if non-nil, is handed the final Metrics.
	Recorder Recorder

	// Name overrides the strategy label used in logs and recorded metrics.
	Name string

	err error
}

// DefaultOptions returns Options with a background context, a no-op logger,
// no recorder and no name override.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: logging.NewNop(),
	}
}

// Apply builds Options from opts and returns the first violation, if any.
func Apply(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// WithContext sets a custom context for cancellation.
// A nil ctx keeps the background context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the structured logger. A nil logger keeps the no-op one.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRecorder registers r to receive the Metrics of the finished search.
func WithRecorder(r Recorder) Option {
	return func(o *Options) {
		o.Recorder = r
	}
}

// WithName labels the search in logs and recorded metrics.
// An empty name is an ErrOptionViolation.
func WithName(name string) Option {
	return func(o *Options) {
		if name == "" {
			o.err = fmt.Errorf("%w: name cannot be empty", ErrOptionViolation)
			return
		}
		o.Name = name
	}
}

// Label returns Name when set, else strategy.
func (o Options) Label(strategy string) string {
	if o.Name != "" {
		return o.Name
	}

	return strategy
}

// Report logs the end of a search and forwards m to the Recorder.
func (o Options) Report(strategy string, outcome Outcome, m *metrics.Metrics, err error) {
	label := o.Label(strategy)
	if err != nil {
		o.Logger.Debug("search aborted",
			"strategy", label,
			"nodes_expanded", m.Int(metrics.NodesExpanded),
			"error", err,
		)
		return
	}
	o.Logger.Debug("search finished",
		"strategy", label,
		"outcome", outcome.String(),
		"nodes_expanded", m.Int(metrics.NodesExpanded),
		"path_cost", m.Get(metrics.PathCost),
	)
	if o.Recorder != nil {
		o.Recorder.Record(label, outcome.String(), m)
	}
}
