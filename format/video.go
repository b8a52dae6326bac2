package format

import (
	"fmt"

	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/avadapt/types"
)

// Video is the layout of a picture: what a video frame must conform to.
type Video struct {
	Width       uint32             `yaml:"width"`
	Height      uint32             `yaml:"height"`
	PixelFormat astiav.PixelFormat `yaml:"-"`

	// FrameRate is informational: it does not affect the layout, so it
	// is ignored by Equal.
	FrameRate types.Rational `yaml:"frame_rate,omitempty"`
}

var _ Params[Video] = Video{}

func VideoFromFrame(f *astiav.Frame) Video {
	return Video{
		Width:       uint32(f.Width()),
		Height:      uint32(f.Height()),
		PixelFormat: f.PixelFormat(),
	}
}

func (v Video) Equal(other Video) bool {
	return v.Width == other.Width &&
		v.Height == other.Height &&
		v.PixelFormat == other.PixelFormat
}

func (v Video) SameResolution(other Video) bool {
	return v.Width == other.Width && v.Height == other.Height
}

func (v Video) String() string {
	return fmt.Sprintf("%dx%d:%s", v.Width, v.Height, v.PixelFormat)
}
