// Package scaler implements the video conversion subsystem: rescaling and
// pixel format conversion of pictures.
package scaler

import (
	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/avadapt/conversion"
	"github.com/xaionaro-go/avadapt/format"
)

type Scaler interface {
	conversion.Converter[format.Video]
	SourceResolution() (width, height uint32)
	SourcePixelFormat() astiav.PixelFormat
	DestinationResolution() (width, height uint32)
	DestinationPixelFormat() astiav.PixelFormat
}
