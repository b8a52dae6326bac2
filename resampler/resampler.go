// Package resampler implements the audio conversion subsystem: sample
// rate, sample format and channel layout conversion.
package resampler

import (
	"context"
	"fmt"

	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/avadapt/conversion"
	"github.com/xaionaro-go/avadapt/format"
	"github.com/xaionaro-go/avadapt/frame"
	"github.com/xaionaro-go/avadapt/internal"
	"github.com/xaionaro-go/avadapt/logger"
	"github.com/xaionaro-go/avadapt/types"
)

// Resampler is a libswresample based audio converter.
type Resampler struct {
	SoftwareResampleContext *astiav.SoftwareResampleContext
	ResampledFrame          *astiav.Frame

	params        format.Pair[format.Audio]
	channelLayout astiav.ChannelLayout
	isClosed      bool
}

var _ conversion.Converter[format.Audio] = (*Resampler)(nil)

// New only records the parameters, everything is allocated by Setup.
func New(
	params format.Pair[format.Audio],
) *Resampler {
	return &Resampler{
		params: params,
	}
}

func Factory(
	ctx context.Context,
	params format.Pair[format.Audio],
) conversion.Converter[format.Audio] {
	return New(params)
}

var _ conversion.Factory[format.Audio] = Factory

func (r *Resampler) Setup(ctx context.Context) (_err error) {
	logger.Tracef(ctx, "Setup: %s", r.params)
	defer func() { logger.Tracef(ctx, "/Setup: %s: %v", r.params, _err) }()

	if r.isClosed {
		return fmt.Errorf("resampler is closed")
	}
	if r.SoftwareResampleContext != nil {
		return fmt.Errorf("resampler is already set up")
	}

	layout, err := r.params.Output.ChannelLayout()
	if err != nil {
		return fmt.Errorf("unable to get the output channel layout: %w", err)
	}
	r.channelLayout = layout

	swrCtx := astiav.AllocSoftwareResampleContext()
	if swrCtx == nil {
		return fmt.Errorf("cannot alloc SoftwareResampleContext: %w", types.ErrAllocation)
	}
	internal.SetFinalizerFree(ctx, swrCtx)
	r.SoftwareResampleContext = swrCtx

	resampledFrame := frame.Pool.Get()
	if resampledFrame == nil {
		return fmt.Errorf("cannot alloc the output frame: %w", types.ErrAllocation)
	}
	r.ResampledFrame = resampledFrame
	return nil
}

func (r *Resampler) Params() format.Pair[format.Audio] {
	return r.params
}

func (r *Resampler) String() string {
	return fmt.Sprintf("Resampler(%s)", r.params)
}

func (r *Resampler) Close(ctx context.Context) (_err error) {
	logger.Debugf(ctx, "Close")
	defer func() { logger.Debugf(ctx, "/Close: %v", _err) }()

	r.isClosed = true
	if r.ResampledFrame != nil {
		frame.Release(r.ResampledFrame)
		r.ResampledFrame = nil
	}
	if r.SoftwareResampleContext != nil {
		internal.ClearFinalizer(r.SoftwareResampleContext)
		r.SoftwareResampleContext.Free()
		r.SoftwareResampleContext = nil
	}
	return nil
}

func (r *Resampler) prepareOutputFrame() {
	r.ResampledFrame.Unref()
	r.ResampledFrame.SetChannelLayout(r.channelLayout)
	r.ResampledFrame.SetSampleFormat(r.params.Output.SampleFormat)
	r.ResampledFrame.SetSampleRate(int(r.params.Output.SampleRate))
}

// Convert resamples the frame. libswresample may keep samples buffered,
// so the result may contain fewer samples than the input (or none; in
// that case the returned frame is nil and the error is nil).
func (r *Resampler) Convert(
	ctx context.Context,
	in *astiav.Frame,
) (_ret *astiav.Frame, _err error) {
	logger.Tracef(ctx, "Convert")
	defer func() { logger.Tracef(ctx, "/Convert: %v", _err) }()

	if r.isClosed {
		return nil, fmt.Errorf("resampler is closed")
	}
	if r.SoftwareResampleContext == nil {
		return nil, fmt.Errorf("resampler is not set up")
	}

	r.prepareOutputFrame()
	if err := r.SoftwareResampleContext.ConvertFrame(in, r.ResampledFrame); err != nil {
		return nil, fmt.Errorf("cannot convert frame: %w", err)
	}
	if r.ResampledFrame.NbSamples() == 0 {
		return nil, nil
	}
	if in != nil {
		r.ResampledFrame.SetPts(in.Pts())
	}
	return r.ResampledFrame, nil
}

// Flush returns the samples buffered inside libswresample, if any.
func (r *Resampler) Flush(ctx context.Context) (*astiav.Frame, error) {
	return r.Convert(ctx, nil)
}
