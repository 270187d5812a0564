package qsearch

import (
	"errors"
)

// ErrNilFrontier is returned when Search is given a nil frontier.
var ErrNilFrontier = errors.New("qsearch: frontier is nil")
