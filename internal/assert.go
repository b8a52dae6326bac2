// Package internal contains helpers shared by the avadapt packages that
// are not a part of the public API.
package internal

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/avadapt/logger"
)

// Assert panics (through the logger, so the message is also logged) if
// mustBeTrue is false. It is used for caller contract violations only,
// never for runtime conditions.
func Assert(
	ctx context.Context,
	mustBeTrue bool,
	extraArgs ...any,
) {
	if mustBeTrue {
		return
	}

	args := append([]any{"assertion failed"}, extraArgs...)
	logger.Panic(ctx, args...)
	// a no-op logger does not panic by itself
	panic(fmt.Sprint(args...))
}
