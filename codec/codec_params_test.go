package codec

import (
	"testing"

	"github.com/asticode/go-astiav"
	"github.com/stretchr/testify/require"
)

type fakeCodecContext struct {
	codecID       astiav.CodecID
	sampleFormat  astiav.SampleFormat
	channelLayout astiav.ChannelLayout
	sampleRate    int
	pixelFormat   astiav.PixelFormat
	width, height int
	bitRate       int64
	timeBase      astiav.Rational
}

func (c fakeCodecContext) CodecID() astiav.CodecID             { return c.codecID }
func (c fakeCodecContext) SampleFormat() astiav.SampleFormat   { return c.sampleFormat }
func (c fakeCodecContext) ChannelLayout() astiav.ChannelLayout { return c.channelLayout }
func (c fakeCodecContext) SampleRate() int                     { return c.sampleRate }
func (c fakeCodecContext) PixelFormat() astiav.PixelFormat     { return c.pixelFormat }
func (c fakeCodecContext) Width() int                          { return c.width }
func (c fakeCodecContext) Height() int                         { return c.height }
func (c fakeCodecContext) BitRate() int64                      { return c.bitRate }
func (c fakeCodecContext) TimeBase() astiav.Rational           { return c.timeBase }

func TestAudioParamsFromContext(t *testing.T) {
	t.Parallel()

	p := AudioParamsFromContext(fakeCodecContext{
		codecID:       astiav.CodecIDAac,
		sampleFormat:  astiav.SampleFormatFltp,
		channelLayout: astiav.ChannelLayoutStereo,
		sampleRate:    48000,
		bitRate:       128000,
	})
	require.Equal(t, AudioParams{
		Enabled:      true,
		Encoder:      "aac",
		SampleFormat: "fltp",
		Channels:     2,
		SampleRate:   48000,
		BitRate:      128000,
	}, p)
}

func TestVideoParamsFromContext(t *testing.T) {
	t.Parallel()

	c := fakeCodecContext{
		codecID:     astiav.CodecIDH264,
		pixelFormat: astiav.PixelFormatYuv420P,
		width:       1280,
		height:      720,
		bitRate:     2_000_000,
		timeBase:    astiav.NewRational(1, 30),
	}
	require.Equal(t, VideoParams{
		Enabled:     true,
		Encoder:     "h264",
		PixelFormat: "yuv420p",
		Width:       1280,
		Height:      720,
		BitRate:     2_000_000,
		FPS:         30,
	}, VideoParamsFromContext(c))

	c.timeBase = astiav.NewRational(1001, 30000)
	require.Equal(t, 29, VideoParamsFromContext(c).FPS)

	c.timeBase = astiav.NewRational(0, 1)
	require.Equal(t, 0, VideoParamsFromContext(c).FPS)
}
