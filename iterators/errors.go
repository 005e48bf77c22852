package iterators

import "github.com/pkg/errors"

// ErrInvalidInterval is returned by Interpose when the interval is not positive.
var ErrInvalidInterval = errors.New("invalid interval")
