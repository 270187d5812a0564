package ids

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/dls"
)

// Strategy is the label used in logs and recorded metrics.
const Strategy = "ids"

// ErrBadMaxDepth is returned when MaxDepth is not positive.
var ErrBadMaxDepth = errors.New("ids: MaxDepth must be positive")

// Option configures iterative deepening.
type Option func(*Options)

// Options holds the settings of one iterative deepening run.
type Options struct {
	// MaxDepth is the exclusive upper bound on depth limits tried.
	// Default dls.InfiniteLimit.
	MaxDepth int

	// Common carries the options shared with every strategy.
	Common []core.Option

	err error
}

// DefaultOptions returns Options with no depth bound.
func DefaultOptions() Options {
	return Options{MaxDepth: dls.InfiniteLimit}
}

// WithMaxDepth tries limits 0 … d-1 only. d must be > 0.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadMaxDepth, d)
			return
		}
		o.MaxDepth = d
	}
}

// With passes strategy-independent options such as core.WithContext.
func With(opts ...core.Option) Option {
	return func(o *Options) {
		o.Common = append(o.Common, opts...)
	}
}
