// Package conversion decides when a conversion subsystem (a scaler or a
// resampler) must exist and owns it while it does.
package conversion

import (
	"context"

	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/avadapt/format"
	"github.com/xaionaro-go/avadapt/types"
)

var ErrAllocation = types.ErrAllocation

// Converter transforms frames from Params().Input to Params().Output.
type Converter[P format.Params[P]] interface {
	Close(ctx context.Context) error

	// Setup allocates whatever the conversion needs. It is called exactly
	// once, before the first Convert.
	Setup(ctx context.Context) error

	// Convert returns the converted frame. The returned frame is owned
	// by the Converter and stays valid until the next call of Convert
	// or Close.
	Convert(ctx context.Context, in *astiav.Frame) (*astiav.Frame, error)

	// Params returns the tuple the Converter was built for.
	Params() format.Pair[P]
}

// Factory constructs a Converter without allocating anything.
type Factory[P format.Params[P]] func(ctx context.Context, params format.Pair[P]) Converter[P]
