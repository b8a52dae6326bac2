package codec

import (
	"fmt"
	"strings"

	"github.com/asticode/go-astiav"
)

// PixelFormatFromString parses a libav pixel format name
// (as printed by `ffmpeg -pix_fmts`). Only the formats an application
// typically hands to (or gets from) a codec are recognized.
func PixelFormatFromString(s string) (astiav.PixelFormat, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "yuv420p":
		return astiav.PixelFormatYuv420P, nil
	case "yuvj420p":
		return astiav.PixelFormatYuvj420P, nil
	case "yuv422p":
		return astiav.PixelFormatYuv422P, nil
	case "yuv444p":
		return astiav.PixelFormatYuv444P, nil
	case "nv12":
		return astiav.PixelFormatNv12, nil
	case "nv21":
		return astiav.PixelFormatNv21, nil
	case "yuyv422":
		return astiav.PixelFormatYuyv422, nil
	case "uyvy422":
		return astiav.PixelFormatUyvy422, nil
	case "rgb24":
		return astiav.PixelFormatRgb24, nil
	case "bgr24":
		return astiav.PixelFormatBgr24, nil
	case "rgba":
		return astiav.PixelFormatRgba, nil
	case "bgra":
		return astiav.PixelFormatBgra, nil
	case "gray", "gray8":
		return astiav.PixelFormatGray8, nil
	}

	return astiav.PixelFormatNone, fmt.Errorf("unsupported pixel format '%s'", s)
}
