package codec

import (
	"testing"

	"github.com/asticode/go-astiav"
	"github.com/stretchr/testify/require"
)

type fakeCodec struct {
	sampleFormats []astiav.SampleFormat
	pixelFormats  []astiav.PixelFormat
}

func (c fakeCodec) SampleFormats() []astiav.SampleFormat { return c.sampleFormats }
func (c fakeCodec) PixelFormats() []astiav.PixelFormat   { return c.pixelFormats }

func TestSelectSampleFormat(t *testing.T) {
	t.Parallel()

	planarAndInterleaved := fakeCodec{sampleFormats: []astiav.SampleFormat{
		astiav.SampleFormatFltp,
		astiav.SampleFormatS16,
	}}
	planarOnly := fakeCodec{sampleFormats: []astiav.SampleFormat{
		astiav.SampleFormatFltp,
		astiav.SampleFormatS32P,
	}}

	tests := []struct {
		name      string
		codec     fakeCodec
		requested astiav.SampleFormat
		want      astiav.SampleFormat
	}{
		{
			name:      "exact planar",
			codec:     planarAndInterleaved,
			requested: astiav.SampleFormatFltp,
			want:      astiav.SampleFormatFltp,
		},
		{
			name:      "exact match wins over earlier compatible",
			codec:     planarOnly,
			requested: astiav.SampleFormatS32P,
			want:      astiav.SampleFormatS32P,
		},
		{
			name:      "first planar fallback",
			codec:     planarAndInterleaved,
			requested: astiav.SampleFormatS16P,
			want:      astiav.SampleFormatFltp,
		},
		{
			name:      "first interleaved fallback",
			codec:     planarAndInterleaved,
			requested: astiav.SampleFormatDbl,
			want:      astiav.SampleFormatS16,
		},
		{
			name:      "no interleaved formats",
			codec:     planarOnly,
			requested: astiav.SampleFormatS16,
			want:      astiav.SampleFormatNone,
		},
		{
			name:      "empty list",
			codec:     fakeCodec{},
			requested: astiav.SampleFormatS16,
			want:      astiav.SampleFormatNone,
		},
		{
			name: "stops at the terminator",
			codec: fakeCodec{sampleFormats: []astiav.SampleFormat{
				astiav.SampleFormatNone,
				astiav.SampleFormatS16,
			}},
			requested: astiav.SampleFormatS16,
			want:      astiav.SampleFormatNone,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, SelectSampleFormat(tt.codec, tt.requested))
		})
	}
}

func TestSelectSampleFormatByName(t *testing.T) {
	t.Parallel()

	c := fakeCodec{sampleFormats: []astiav.SampleFormat{
		astiav.SampleFormatFltp,
		astiav.SampleFormatS16,
	}}
	require.Equal(t, astiav.SampleFormatS16, SelectSampleFormatByName(c, "s16"))
	require.Equal(t, astiav.SampleFormatFltp, SelectSampleFormatByName(c, "dblp"))
	require.Equal(t, astiav.SampleFormatS16, SelectSampleFormatByName(c, "no-such-format"))
}

func TestIsFormatSupported(t *testing.T) {
	t.Parallel()

	c := fakeCodec{
		sampleFormats: []astiav.SampleFormat{astiav.SampleFormatFltp, astiav.SampleFormatS16},
		pixelFormats:  []astiav.PixelFormat{astiav.PixelFormatYuv420P, astiav.PixelFormatNv12},
	}

	require.True(t, IsSampleFormatSupported(c, astiav.SampleFormatS16))
	require.False(t, IsSampleFormatSupported(c, astiav.SampleFormatS16P))
	require.True(t, IsPixelFormatSupported(c, astiav.PixelFormatNv12))
	require.False(t, IsPixelFormatSupported(c, astiav.PixelFormatRgb24))
	require.False(t, IsPixelFormatSupported(fakeCodec{}, astiav.PixelFormatNv12))
}

func TestSelectPixelFormat(t *testing.T) {
	t.Parallel()

	c := fakeCodec{pixelFormats: []astiav.PixelFormat{astiav.PixelFormatYuv420P, astiav.PixelFormatNv12}}
	require.Equal(t, astiav.PixelFormatNv12, SelectPixelFormat(c, astiav.PixelFormatNv12))
	require.Equal(t, astiav.PixelFormatYuv420P, SelectPixelFormat(c, astiav.PixelFormatRgb24))
	require.Equal(t, astiav.PixelFormatNone, SelectPixelFormat(fakeCodec{}, astiav.PixelFormatRgb24))
}

func TestSelectSampleFormatRealEncoder(t *testing.T) {
	t.Parallel()

	aac := astiav.FindEncoder(astiav.CodecIDAac)
	if aac == nil {
		t.Skip("no AAC encoder in this libav build")
	}
	require.True(t, IsSampleFormatSupported(aac, astiav.SampleFormatFltp))
	require.Equal(t, astiav.SampleFormatFltp, SelectSampleFormat(aac, astiav.SampleFormatS16P))
}

func TestRequireFormat(t *testing.T) {
	t.Parallel()

	c := fakeCodec{
		sampleFormats: []astiav.SampleFormat{astiav.SampleFormatFltp},
	}

	f, err := RequireSampleFormat(c, astiav.SampleFormatS16P)
	require.NoError(t, err)
	require.Equal(t, astiav.SampleFormatFltp, f)

	f, err = RequireSampleFormat(c, astiav.SampleFormatS16)
	require.Equal(t, astiav.SampleFormatNone, f)
	var unsupported ErrUnsupportedFormat
	require.ErrorAs(t, err, &unsupported)
	require.Equal(t, "s16", unsupported.Requested)

	_, err = RequirePixelFormat(c, astiav.PixelFormatYuv420P)
	require.ErrorAs(t, err, &unsupported)
}
