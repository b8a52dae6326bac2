package codec

import (
	"github.com/asticode/go-astiav"
)

// SampleFormatsLister is implemented by *astiav.Codec.
type SampleFormatsLister interface {
	SampleFormats() []astiav.SampleFormat
}

// PixelFormatsLister is implemented by *astiav.Codec.
type PixelFormatsLister interface {
	PixelFormats() []astiav.PixelFormat
}

func IsSampleFormatSupported(
	c SampleFormatsLister,
	sampleFormat astiav.SampleFormat,
) bool {
	for _, f := range c.SampleFormats() {
		if f == astiav.SampleFormatNone {
			break
		}
		if f == sampleFormat {
			return true
		}
	}
	return false
}

func IsPixelFormatSupported(
	c PixelFormatsLister,
	pixelFormat astiav.PixelFormat,
) bool {
	for _, f := range c.PixelFormats() {
		if f == astiav.PixelFormatNone {
			break
		}
		if f == pixelFormat {
			return true
		}
	}
	return false
}

// SelectSampleFormat returns the requested format if the codec supports
// it, otherwise the first supported format of the same planarity.
// astiav.SampleFormatNone means nothing is compatible, the caller is
// expected to check for it.
func SelectSampleFormat(
	c SampleFormatsLister,
	requested astiav.SampleFormat,
) astiav.SampleFormat {
	compatible := astiav.SampleFormatNone
	planar := requested.IsPlanar()
	for _, f := range c.SampleFormats() {
		if f == astiav.SampleFormatNone {
			break
		}
		if compatible == astiav.SampleFormatNone && f.IsPlanar() == planar {
			compatible = f
		}
		if f == requested {
			return requested
		}
	}
	return compatible
}

// SelectSampleFormatByName is SelectSampleFormat for a format given by
// its name. An unknown name selects by the planarity of
// astiav.SampleFormatNone, which is "interleaved".
func SelectSampleFormatByName(
	c SampleFormatsLister,
	requested string,
) astiav.SampleFormat {
	f, _ := SampleFormatFromString(requested)
	return SelectSampleFormat(c, f)
}

// SelectPixelFormat returns the requested format if the codec supports
// it, otherwise the first format the codec supports, or
// astiav.PixelFormatNone if the codec does not list any.
func SelectPixelFormat(
	c PixelFormatsLister,
	requested astiav.PixelFormat,
) astiav.PixelFormat {
	fallback := astiav.PixelFormatNone
	for _, f := range c.PixelFormats() {
		if f == astiav.PixelFormatNone {
			break
		}
		if fallback == astiav.PixelFormatNone {
			fallback = f
		}
		if f == requested {
			return requested
		}
	}
	return fallback
}
