package avcontext

import (
	"context"

	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/avadapt/conversion"
	"github.com/xaionaro-go/avadapt/format"
	"github.com/xaionaro-go/avadapt/frame"
)

type fakeCodecHandle struct {
	openErr error
	opens   int
	frees   int
	options map[string]string
}

func (h *fakeCodecHandle) Open(_ *astiav.Codec, opts *astiav.Dictionary) error {
	h.opens++
	if opts != nil {
		h.options = map[string]string{}
		for _, key := range []string{"preset", "g"} {
			if entry := opts.Get(key, nil, 0); entry != nil {
				h.options[key] = entry.Value()
			}
		}
	}
	return h.openErr
}

func (h *fakeCodecHandle) Free() {
	h.frees++
}

type fakeStream struct {
	timeBase astiav.Rational
}

func (s fakeStream) TimeBase() astiav.Rational {
	return s.timeBase
}

// fakeConverter produces blank frames carrying the output layout.
type fakeConverter[P format.Params[P]] struct {
	params   format.Pair[P]
	setupErr error
	apply    func(*astiav.Frame, P)
	out      *astiav.Frame
	closes   int
	converts int
}

func (c *fakeConverter[P]) Setup(context.Context) error {
	if c.setupErr != nil {
		return c.setupErr
	}
	c.out = frame.Pool.Get()
	c.apply(c.out, c.params.Output)
	return nil
}

func (c *fakeConverter[P]) Convert(_ context.Context, in *astiav.Frame) (*astiav.Frame, error) {
	c.converts++
	c.out.SetPts(in.Pts())
	return c.out, nil
}

func (c *fakeConverter[P]) Params() format.Pair[P] {
	return c.params
}

func (c *fakeConverter[P]) Close(context.Context) error {
	c.closes++
	frame.Release(c.out)
	c.out = nil
	return nil
}

type fakeFactory[P format.Params[P]] struct {
	setupErr error
	apply    func(*astiav.Frame, P)
	built    []*fakeConverter[P]
}

func (f *fakeFactory[P]) New(_ context.Context, params format.Pair[P]) conversion.Converter[P] {
	c := &fakeConverter[P]{params: params, setupErr: f.setupErr, apply: f.apply}
	f.built = append(f.built, c)
	return c
}

func newFakeScalerFactory() *fakeFactory[format.Video] {
	return &fakeFactory[format.Video]{
		apply: func(f *astiav.Frame, p format.Video) {
			f.SetWidth(int(p.Width))
			f.SetHeight(int(p.Height))
			f.SetPixelFormat(p.PixelFormat)
		},
	}
}

func newFakeResamplerFactory() *fakeFactory[format.Audio] {
	return &fakeFactory[format.Audio]{
		apply: func(f *astiav.Frame, p format.Audio) {
			layout, err := p.ChannelLayout()
			if err != nil {
				panic(err)
			}
			f.SetChannelLayout(layout)
			f.SetSampleRate(int(p.SampleRate))
			f.SetSampleFormat(p.SampleFormat)
		},
	}
}

func videoFrame(p format.Video) *astiav.Frame {
	f := frame.Pool.Get()
	f.SetWidth(int(p.Width))
	f.SetHeight(int(p.Height))
	f.SetPixelFormat(p.PixelFormat)
	return f
}

func audioFrame(p format.Audio) *astiav.Frame {
	f := frame.Pool.Get()
	layout, err := p.ChannelLayout()
	if err != nil {
		panic(err)
	}
	f.SetChannelLayout(layout)
	f.SetSampleRate(int(p.SampleRate))
	f.SetSampleFormat(p.SampleFormat)
	f.SetNbSamples(1024)
	return f
}
