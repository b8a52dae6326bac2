package codec

import (
	"fmt"

	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/avadapt/types"
)

// ErrUnsupportedFormat means that format negotiation found nothing
// compatible with the requested format.
type ErrUnsupportedFormat struct {
	MediaType types.MediaType
	Requested string
}

func (e ErrUnsupportedFormat) Error() string {
	return fmt.Sprintf("the codec supports no %s format compatible with '%s'", e.MediaType, e.Requested)
}

// RequireSampleFormat is SelectSampleFormat for callers that prefer an
// error over checking for astiav.SampleFormatNone.
func RequireSampleFormat(
	c SampleFormatsLister,
	requested astiav.SampleFormat,
) (astiav.SampleFormat, error) {
	f := SelectSampleFormat(c, requested)
	if f == astiav.SampleFormatNone {
		return f, ErrUnsupportedFormat{MediaType: types.MediaTypeAudio, Requested: requested.String()}
	}
	return f, nil
}

// RequirePixelFormat is SelectPixelFormat for callers that prefer an
// error over checking for astiav.PixelFormatNone.
func RequirePixelFormat(
	c PixelFormatsLister,
	requested astiav.PixelFormat,
) (astiav.PixelFormat, error) {
	f := SelectPixelFormat(c, requested)
	if f == astiav.PixelFormatNone {
		return f, ErrUnsupportedFormat{MediaType: types.MediaTypeVideo, Requested: requested.String()}
	}
	return f, nil
}
