package dls

import (
	"errors"
	"math"
)

// InfiniteLimit disables the depth bound.
const InfiniteLimit = math.MaxInt

// Strategy is the label used in logs and recorded metrics.
const Strategy = "dls"

// ErrNegativeLimit is returned when the depth limit is negative.
var ErrNegativeLimit = errors.New("dls: limit must be non-negative")
