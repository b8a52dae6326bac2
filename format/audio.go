package format

import (
	"fmt"

	"github.com/asticode/go-astiav"
)

// Audio is the layout of audio samples: what an audio frame must conform to.
type Audio struct {
	Channels     uint32              `yaml:"channels"`
	SampleRate   uint32              `yaml:"sample_rate"`
	SampleFormat astiav.SampleFormat `yaml:"-"`
}

var _ Params[Audio] = Audio{}

func AudioFromFrame(f *astiav.Frame) Audio {
	return Audio{
		Channels:     uint32(f.ChannelLayout().Channels()),
		SampleRate:   uint32(f.SampleRate()),
		SampleFormat: f.SampleFormat(),
	}
}

func (a Audio) Equal(other Audio) bool {
	return a.Channels == other.Channels &&
		a.SampleRate == other.SampleRate &&
		a.SampleFormat == other.SampleFormat
}

func (a Audio) String() string {
	return fmt.Sprintf("%dch:%dHz:%s", a.Channels, a.SampleRate, a.SampleFormat)
}

var defaultChannelLayouts = map[uint32]astiav.ChannelLayout{
	1:  astiav.ChannelLayoutMono,
	2:  astiav.ChannelLayoutStereo,
	3:  astiav.ChannelLayout2Point1,
	4:  astiav.ChannelLayoutQuad,
	5:  astiav.ChannelLayout5Point0,
	6:  astiav.ChannelLayout5Point1,
	7:  astiav.ChannelLayout6Point1,
	8:  astiav.ChannelLayout7Point1,
	16: astiav.ChannelLayoutHexadecagonal,
}

// ChannelLayout returns the default layout for the channel count.
func (a Audio) ChannelLayout() (astiav.ChannelLayout, error) {
	if l, ok := defaultChannelLayouts[a.Channels]; ok {
		return l, nil
	}
	return astiav.ChannelLayout{}, fmt.Errorf("no default channel layout for %d channels", a.Channels)
}
