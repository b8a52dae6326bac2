package types

import (
	"errors"
)

// ErrAllocation is wrapped by every error caused by a failed allocation
// of a frame buffer or of a conversion context.
var ErrAllocation = errors.New("allocation failed")
