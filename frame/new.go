package frame

import (
	"context"
	"fmt"

	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/avadapt/format"
	"github.com/xaionaro-go/avadapt/logger"
	"github.com/xaionaro-go/avadapt/types"
)

const videoBufferAlign = 16

// NewVideo allocates a frame with a buffer for a picture in the given layout.
//
// On failure the returned frame is nil and the error wraps types.ErrAllocation.
// The frame should be returned with Pool.Put.
func NewVideo(
	ctx context.Context,
	params format.Video,
) (_ret *astiav.Frame, _err error) {
	logger.Tracef(ctx, "NewVideo(ctx, %s)", params)
	defer func() { logger.Tracef(ctx, "/NewVideo(ctx, %s): %v", params, _err) }()

	if params.Width == 0 || params.Height == 0 {
		return nil, fmt.Errorf("invalid resolution %dx%d: %w", params.Width, params.Height, types.ErrAllocation)
	}

	f := Pool.Get()
	if f == nil {
		return nil, fmt.Errorf("unable to allocate a frame: %w", types.ErrAllocation)
	}
	f.SetWidth(int(params.Width))
	f.SetHeight(int(params.Height))
	f.SetPixelFormat(params.PixelFormat)
	if err := f.AllocBuffer(videoBufferAlign); err != nil {
		Pool.Put(f)
		return nil, fmt.Errorf("unable to allocate a %s frame buffer: %w: %w", params, types.ErrAllocation, err)
	}
	return f, nil
}

// NewAudio allocates a frame with a buffer for nbSamples samples per channel.
//
// On failure the returned frame is nil and the error wraps types.ErrAllocation.
// The frame should be returned with Pool.Put.
func NewAudio(
	ctx context.Context,
	params format.Audio,
	nbSamples int,
) (_ret *astiav.Frame, _err error) {
	logger.Tracef(ctx, "NewAudio(ctx, %s, %d)", params, nbSamples)
	defer func() { logger.Tracef(ctx, "/NewAudio(ctx, %s, %d): %v", params, nbSamples, _err) }()

	if nbSamples <= 0 {
		return nil, fmt.Errorf("invalid amount of samples %d: %w", nbSamples, types.ErrAllocation)
	}
	layout, err := params.ChannelLayout()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrAllocation, err)
	}

	f := Pool.Get()
	if f == nil {
		return nil, fmt.Errorf("unable to allocate a frame: %w", types.ErrAllocation)
	}
	f.SetNbSamples(nbSamples)
	f.SetChannelLayout(layout)
	f.SetSampleFormat(params.SampleFormat)
	f.SetSampleRate(int(params.SampleRate))
	if err := f.AllocBuffer(0); err != nil {
		Pool.Put(f)
		return nil, fmt.Errorf("unable to allocate a %s frame buffer: %w: %w", params, types.ErrAllocation, err)
	}
	return f, nil
}

// Release returns the frame to the pool; nil is ignored.
func Release(f *astiav.Frame) {
	if f == nil {
		return
	}
	Pool.Put(f)
}
