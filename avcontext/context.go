// Package avcontext implements the adaptation contexts that sit between a
// codec and the application: they own the codec handle, the frame buffer
// and the conversion subsystem, and build the latter only when the
// application's and the codec's layouts differ.
//
// A context is not safe for concurrent use.
package avcontext

import (
	"context"
	"fmt"
	"time"

	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/avadapt/avconv"
	"github.com/xaionaro-go/avadapt/conversion"
	"github.com/xaionaro-go/avadapt/format"
	"github.com/xaionaro-go/avadapt/frame"
	"github.com/xaionaro-go/avadapt/internal"
	"github.com/xaionaro-go/avadapt/logger"
	"github.com/xaionaro-go/avadapt/types"
)

// Context is the part shared by Video and Audio.
type Context[P format.Params[P]] struct {
	// Stream is borrowed, it is never freed by the Context.
	Stream Stream

	// CodecContext is owned: it is freed by Close.
	CodecContext CodecHandle

	// Codec is the codec descriptor CodecContext is opened with.
	Codec *astiav.Codec

	// Frame is owned: it is released by Close.
	Frame *astiav.Frame

	// For encoders InputParams is the layout from the application and
	// OutputParams is the layout passed into the encoder. For decoders
	// InputParams is the layout from the decoder and OutputParams is the
	// layout passed into the application.
	InputParams  P
	OutputParams P

	PTS types.PTS

	// Error is the last error; it is cleared only by Close.
	Error string

	mediaType    types.MediaType
	codecOptions types.DictionaryItems
	converter    conversion.Slot[P]
}

func newContext[P format.Params[P]](
	mediaType types.MediaType,
	factory conversion.Factory[P],
	codecOptions types.DictionaryItems,
) Context[P] {
	return Context[P]{
		mediaType:    mediaType,
		codecOptions: codecOptions,
		converter:    conversion.Slot[P]{Factory: factory},
	}
}

func (c *Context[P]) MediaType() types.MediaType {
	return c.mediaType
}

// Params returns the current (input, output) tuple.
func (c *Context[P]) Params() format.Pair[P] {
	return format.Pair[P]{
		Input:  c.InputParams,
		Output: c.OutputParams,
	}
}

// Converter returns the current conversion subsystem, or nil if none is needed.
func (c *Context[P]) Converter() conversion.Converter[P] {
	return c.converter.Converter()
}

// ConverterBuilds returns how many conversion subsystems were constructed
// by this context so far.
func (c *Context[P]) ConverterBuilds() uint64 {
	return c.converter.Builds()
}

func (c *Context[P]) setError(err error) {
	if err == nil {
		return
	}
	c.Error = err.Error()
}

// Open activates CodecContext with Codec.
func (c *Context[P]) Open(ctx context.Context) (_err error) {
	logger.Debugf(ctx, "Open[%s]", c.mediaType)
	defer func() { logger.Debugf(ctx, "/Open[%s]: %v", c.mediaType, _err) }()
	defer func() {
		if _err != nil {
			_err = ErrCodecOpen{MediaType: c.mediaType, Err: _err}
			c.setError(_err)
		}
	}()

	if c.CodecContext == nil {
		return fmt.Errorf("codec context is not set")
	}
	if c.Codec == nil {
		return fmt.Errorf("codec is not set")
	}
	opts, err := avconv.DictionaryItemsToAstiav(ctx, c.codecOptions)
	if err != nil {
		return fmt.Errorf("unable to build the codec options: %w", err)
	}
	if opts != nil {
		defer func() {
			internal.ClearFinalizer(opts)
			opts.Free()
		}()
	}
	return c.CodecContext.Open(c.Codec, opts)
}

// RecreateConverter makes sure the conversion subsystem matches the
// current parameters: it is destroyed if no conversion is needed, kept if
// it was built for exactly these parameters, and rebuilt otherwise.
// It returns true if a new one was built.
func (c *Context[P]) RecreateConverter(ctx context.Context) (bool, error) {
	rebuilt, err := c.converter.Recreate(ctx, c.Params())
	if err != nil {
		c.setError(err)
		return false, err
	}
	return rebuilt, nil
}

func (c *Context[P]) convert(
	ctx context.Context,
	in *astiav.Frame,
) (_ret *astiav.Frame, _err error) {
	if _, err := c.RecreateConverter(ctx); err != nil {
		return nil, fmt.Errorf("unable to recreate the %s converter: %w", c.mediaType, err)
	}
	out, err := c.converter.Convert(ctx, in)
	if err != nil {
		err = fmt.Errorf("unable to convert the %s frame: %w", c.mediaType, err)
		c.setError(err)
		return nil, err
	}
	return out, nil
}

// SetPTS moves the timestamp counter to a libav timestamp; the counter
// never moves backwards, so a smaller (or negative) value is logged and
// ignored. astiav.NoPtsValue unsets the counter.
// It returns false if the value was ignored.
func (c *Context[P]) SetPTS(ctx context.Context, pts int64) bool {
	if pts == astiav.NoPtsValue {
		c.PTS.Reset()
		return true
	}
	if !c.PTS.Update(pts) {
		logger.Debugf(ctx, "ignoring %s timestamp %d: the counter is at %s", c.mediaType, pts, c.PTS)
		return false
	}
	return true
}

// PTSSeconds returns the timestamp counter in seconds, or 0 if there is
// no stream or the counter is unset or not positive.
func (c *Context[P]) PTSSeconds() float64 {
	if c.Stream == nil {
		return 0
	}
	return c.PTS.Seconds(avconv.RationalFromAstiav(c.Stream.TimeBase()))
}

// PTSDuration is PTSSeconds as a time.Duration; avconv.NoDuration means
// there is no stream or the counter is unset.
func (c *Context[P]) PTSDuration() time.Duration {
	pts, ok := c.PTS.Get()
	if c.Stream == nil || !ok {
		return avconv.NoDuration
	}
	return avconv.Duration(pts, c.Stream.TimeBase())
}

func (c *Context[P]) setFrame(f *astiav.Frame) {
	c.freeFrame()
	c.Frame = f
}

func (c *Context[P]) freeFrame() {
	if c.Frame == nil {
		return
	}
	frame.Release(c.Frame)
	c.Frame = nil
}

func (c *Context[P]) freeCodec() {
	if c.CodecContext == nil {
		return
	}
	c.CodecContext.Free()
	c.CodecContext = nil
}

func (c *Context[P]) freeConverter(ctx context.Context) error {
	return c.converter.Free(ctx)
}

func (c *Context[P]) reset() {
	c.PTS.Reset()
	c.Error = ""
}
