package scaler

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

// Software is a libswscale based Scaler.
type Software struct {
	*astiav.SoftwareScaleContext
	Flags astiav.SoftwareScaleContextFlags

	params      format.Pair[format.Video]
	ScaledFrame *astiav.Frame
	isClosed    bool
}

var _ Scaler = (*Software)(nil)

// NewSoftware only records the parameters, the scaling context and the
// output buffer are allocated by Setup.
func NewSoftware(
	params format.Pair[format.Video],
	opts ...astiav.SoftwareScaleContextFlag,
) *Software {
	if len(opts) == 0 {
		opts = []astiav.SoftwareScaleContextFlag{astiav.SoftwareScaleContextFlagBilinear}
	}
	return &Software{
		Flags:  astiav.NewSoftwareScaleContextFlags(opts...),
		params: params,
	}
}

// SoftwareFactory returns a conversion.Factory building Software scalers
// with the given flags.
func SoftwareFactory(
	opts ...astiav.SoftwareScaleContextFlag,
) conversion.Factory[format.Video] {
	return func(
		ctx context.Context,
		params format.Pair[format.Video],
	) conversion.Converter[format.Video] {
		return NewSoftware(params, opts...)
	}
}

func (s *Software) Setup(ctx context.Context) (_err error) {
	logger.Tracef(ctx, "Setup: %s", s.params)
	defer func() { logger.Tracef(ctx, "/Setup: %s: %v", s.params, _err) }()

	if s.isClosed {
		return fmt.Errorf("scaler is closed")
	}
	if s.SoftwareScaleContext != nil {
		return fmt.Errorf("scaler is already set up")
	}

	in, out := s.params.Input, s.params.Output
	swsCtx, err := astiav.CreateSoftwareScaleContext(
		int(in.Width),
		int(in.Height),
		in.PixelFormat,
		int(out.Width),
		int(out.Height),
		out.PixelFormat,
		s.Flags,
	)
	if err != nil {
		return fmt.Errorf("unable to create a software scale context for %s: %w: %w", s.params, types.ErrAllocation, err)
	}
	internal.SetFinalizerFree(ctx, swsCtx)
	s.SoftwareScaleContext = swsCtx

	scaledFrame, err := frame.NewVideo(ctx, out)
	if err != nil {
		return fmt.Errorf("unable to allocate the output frame: %w", err)
	}
	s.ScaledFrame = scaledFrame
	return nil
}

func (s *Software) Params() format.Pair[format.Video] {
	return s.params
}

func (s *Software) String() string {
	return fmt.Sprintf("SoftwareScaler(%s)", s.params)
}

func (s *Software) Close(ctx context.Context) error {
	logger.Tracef(ctx, "Close")
	defer logger.Tracef(ctx, "/Close")
	s.isClosed = true
	if s.ScaledFrame != nil {
		frame.Release(s.ScaledFrame)
		s.ScaledFrame = nil
	}
	if s.SoftwareScaleContext != nil {
		internal.ClearFinalizer(s.SoftwareScaleContext)
		s.SoftwareScaleContext.Free()
		s.SoftwareScaleContext = nil
	}
	return nil
}

func (s *Software) Convert(
	ctx context.Context,
	src *astiav.Frame,
) (_ret *astiav.Frame, _err error) {
	logger.Tracef(ctx, "Convert")
	defer func() { logger.Tracef(ctx, "/Convert: %v", _err) }()
	if s.isClosed {
		return nil, fmt.Errorf("scaler is closed")
	}
	if s.SoftwareScaleContext == nil {
		return nil, fmt.Errorf("scaler is not set up")
	}
	if err := s.SoftwareScaleContext.ScaleFrame(src, s.ScaledFrame); err != nil {
		return nil, fmt.Errorf("unable to scale a frame: %w", err)
	}
	s.ScaledFrame.SetPts(src.Pts())
	return s.ScaledFrame, nil
}

func (s *Software) SourceResolution() (uint32, uint32) {
	return s.params.Input.Width, s.params.Input.Height
}

func (s *Software) SourcePixelFormat() astiav.PixelFormat {
	return s.params.Input.PixelFormat
}

func (s *Software) DestinationResolution() (uint32, uint32) {
	return s.params.Output.Width, s.params.Output.Height
}

func (s *Software) DestinationPixelFormat() astiav.PixelFormat {
	return s.params.Output.PixelFormat
}
