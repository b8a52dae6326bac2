package codec

import (
	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/avadapt/avconv"
)

// AudioCodecContext is the read-only subset of *astiav.CodecContext used
// to describe an opened audio codec.
type AudioCodecContext interface {
	CodecID() astiav.CodecID
	SampleFormat() astiav.SampleFormat
	ChannelLayout() astiav.ChannelLayout
	SampleRate() int
	BitRate() int64
}

// VideoCodecContext is the read-only subset of *astiav.CodecContext used
// to describe an opened video codec.
type VideoCodecContext interface {
	CodecID() astiav.CodecID
	PixelFormat() astiav.PixelFormat
	Width() int
	Height() int
	BitRate() int64
	TimeBase() astiav.Rational
}

type AudioParams struct {
	Enabled      bool   `yaml:"enabled"`
	Encoder      string `yaml:"encoder"`
	SampleFormat string `yaml:"sample_format"`
	Channels     int    `yaml:"channels"`
	SampleRate   int    `yaml:"sample_rate"`
	BitRate      int64  `yaml:"bit_rate"`
}

type VideoParams struct {
	Enabled     bool   `yaml:"enabled"`
	Encoder     string `yaml:"encoder"`
	PixelFormat string `yaml:"pixel_format"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	BitRate     int64  `yaml:"bit_rate"`
	FPS         int    `yaml:"fps"`
}

// AudioParamsFromContext describes what the codec context was opened with.
func AudioParamsFromContext(c AudioCodecContext) AudioParams {
	return AudioParams{
		Enabled:      true,
		Encoder:      c.CodecID().Name(),
		SampleFormat: c.SampleFormat().String(),
		Channels:     c.ChannelLayout().Channels(),
		SampleRate:   c.SampleRate(),
		BitRate:      c.BitRate(),
	}
}

// VideoParamsFromContext describes what the codec context was opened with.
// FPS is the integer ratio of the time base, so it is truncated for
// fractional rates (29 for 1001/30000).
func VideoParamsFromContext(c VideoCodecContext) VideoParams {
	return VideoParams{
		Enabled:     true,
		Encoder:     c.CodecID().Name(),
		PixelFormat: c.PixelFormat().String(),
		Width:       c.Width(),
		Height:      c.Height(),
		BitRate:     c.BitRate(),
		FPS:         avconv.RationalFromAstiav(c.TimeBase()).IntRatio(),
	}
}
