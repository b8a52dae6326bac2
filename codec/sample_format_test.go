// sample_format_test.go provides tests for sample and pixel format names.

package codec

import (
	"testing"

	"github.com/asticode/go-astiav"
	"github.com/stretchr/testify/require"
)

func TestSampleFormatFromString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    astiav.SampleFormat
		wantErr bool
	}{
		{
			name:  "plain u8",
			input: "u8",
			want:  astiav.SampleFormatU8,
		},
		{
			name:  "trimmed float planar",
			input: " fltp ",
			want:  astiav.SampleFormatFltp,
		},
		{
			name:  "uppercase planar",
			input: "S16P",
			want:  astiav.SampleFormatS16P,
		},
		{
			name:    "unsupported",
			input:   "pcm_s24le",
			want:    astiav.SampleFormatNone,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := SampleFormatFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				require.Equal(t, tt.want, got)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestPixelFormatFromString(t *testing.T) {
	t.Parallel()

	for input, want := range map[string]astiav.PixelFormat{
		"yuv420p":  astiav.PixelFormatYuv420P,
		" NV12 ":   astiav.PixelFormatNv12,
		"gray":     astiav.PixelFormatGray8,
		"rgba":     astiav.PixelFormatRgba,
		"yuyv422":  astiav.PixelFormatYuyv422,
		"yuvj420p": astiav.PixelFormatYuvj420P,
	} {
		got, err := PixelFormatFromString(input)
		require.NoError(t, err, input)
		require.Equal(t, want, got, input)
	}

	got, err := PixelFormatFromString("h264")
	require.Error(t, err)
	require.Equal(t, astiav.PixelFormatNone, got)
}
