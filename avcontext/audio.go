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

// Audio adapts samples between the application and an audio codec.
type Audio struct {
	Context[format.Audio]
}

// NewAudio returns an audio context that resamples with the configured factory.
func NewAudio(
	ctx context.Context,
	opts ...Option,
) *Audio {
	logger.Tracef(ctx, "NewAudio")
	cfg := Options(opts).config()
	return &Audio{
		Context: newContext(types.MediaTypeAudio, cfg.ResamplerFactory, cfg.CodecOptions),
	}
}

// Convert returns the frame in OutputParams layout: either the frame
// itself (if no conversion is needed) or a frame owned by the resampler,
// valid until the next call. A resampler may buffer samples, so a
// non-nil frame may result in (nil, nil).
//
// A nil frame (flushing) is returned as is. The frame channel count and
// sample rate must be equal to InputParams, anything else is a bug in
// the caller.
func (a *Audio) Convert(
	ctx context.Context,
	in *astiav.Frame,
) (_ret *astiav.Frame, _err error) {
	logger.Tracef(ctx, "Convert")
	defer func() { logger.Tracef(ctx, "/Convert: %v", _err) }()

	if in == nil {
		return nil, nil
	}

	channels := uint32(in.ChannelLayout().Channels())
	sampleRate := uint32(in.SampleRate())
	internal.Assert(ctx,
		channels == a.InputParams.Channels && sampleRate == a.InputParams.SampleRate,
		"frame layout", channels, sampleRate, "differs from the input parameters", a.InputParams,
	)

	return a.convert(ctx, in)
}

// AllocateFrame replaces Frame with a newly allocated frame for nbSamples
// samples in OutputParams layout.
func (a *Audio) AllocateFrame(
	ctx context.Context,
	nbSamples int,
) (*astiav.Frame, error) {
	f, err := frame.NewAudio(ctx, a.OutputParams, nbSamples)
	if err != nil {
		err = fmt.Errorf("unable to allocate an audio frame: %w", err)
		a.setError(err)
		return nil, err
	}
	a.setFrame(f)
	return f, nil
}

// Close releases the frame buffer, the codec handle and the resampler,
// and forgets (without freeing) the stream. It may be called any number
// of times, including before Open.
func (a *Audio) Close(ctx context.Context) (_err error) {
	logger.Debugf(ctx, "Close[audio]")
	defer func() { logger.Debugf(ctx, "/Close[audio]: %v", _err) }()

	a.freeFrame()
	a.freeCodec()
	a.Stream = nil
	var errs []error
	if err := a.freeConverter(ctx); err != nil {
		errs = append(errs, err)
	}
	a.reset()
	return errors.Join(errs...)
}
