package avcontext

import (
	"context"
	"errors"
	"fmt"

	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/avadapt/format"
	"github.com/xaionaro-go/avadapt/frame"
	"github.com/xaionaro-go/avadapt/internal"
	"github.com/xaionaro-go/avadapt/logger"
	"github.com/xaionaro-go/avadapt/types"
)

// Video adapts pictures between the application and a video codec.
type Video struct {
	Context[format.Video]
}

// NewVideo returns a video context that scales with the configured factory.
func NewVideo(
	ctx context.Context,
	opts ...Option,
) *Video {
	logger.Tracef(ctx, "NewVideo")
	cfg := Options(opts).config()
	return &Video{
		Context: newContext(types.MediaTypeVideo, cfg.ScalerFactory, cfg.CodecOptions),
	}
}

// Convert returns the frame in OutputParams layout: either the frame
// itself (if no conversion is needed) or a frame owned by the scaler,
// valid until the next call.
//
// A nil frame (flushing) is returned as is. The frame resolution must be
// equal to InputParams, anything else is a bug in the caller.
func (v *Video) Convert(
	ctx context.Context,
	in *astiav.Frame,
) (_ret *astiav.Frame, _err error) {
	logger.Tracef(ctx, "Convert")
	defer func() { logger.Tracef(ctx, "/Convert: %v", _err) }()

	if in == nil {
		return nil, nil
	}

	internal.Assert(ctx,
		uint32(in.Width()) == v.InputParams.Width && uint32(in.Height()) == v.InputParams.Height,
		"frame resolution", in.Width(), in.Height(), "differs from the input parameters", v.InputParams,
	)

	return v.convert(ctx, in)
}

// AllocateFrame replaces Frame with a newly allocated frame in
// OutputParams layout.
func (v *Video) AllocateFrame(ctx context.Context) (*astiav.Frame, error) {
	f, err := frame.NewVideo(ctx, v.OutputParams)
	if err != nil {
		err = fmt.Errorf("unable to allocate a video frame: %w", err)
		v.setError(err)
		return nil, err
	}
	v.setFrame(f)
	return f, nil
}

// Close releases the frame buffer, the codec handle and the scaler.
// It may be called any number of times, including before Open.
func (v *Video) Close(ctx context.Context) (_err error) {
	logger.Debugf(ctx, "Close[video]")
	defer func() { logger.Debugf(ctx, "/Close[video]: %v", _err) }()

	v.freeFrame()
	v.freeCodec()
	var errs []error
	if err := v.freeConverter(ctx); err != nil {
		errs = append(errs, err)
	}
	v.reset()
	return errors.Join(errs...)
}
