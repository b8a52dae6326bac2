package internal

import (
	"context"
	"runtime"

	"github.com/xaionaro-go/avadapt/logger"
)

func SetFinalizerFree[T interface{ Free() }](
	ctx context.Context,
	freer T,
) {
	runtime.SetFinalizer(freer, func(freer T) {
		logger.Debugf(ctx, "freeing %T", freer)
		freer.Free()
	})
}

// ClearFinalizer is to be used before freeing an object explicitly,
// otherwise the finalizer would free it a second time.
func ClearFinalizer(obj any) {
	runtime.SetFinalizer(obj, nil)
}
