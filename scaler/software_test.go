package scaler

import (
	"context"
	"testing"

	"github.com/asticode/go-astiav"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/avadapt/format"
	"github.com/xaionaro-go/avadapt/frame"
)

func TestSoftwareConvert(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	params := format.Pair[format.Video]{
		Input:  format.Video{Width: 640, Height: 480, PixelFormat: astiav.PixelFormatYuv420P},
		Output: format.Video{Width: 320, Height: 240, PixelFormat: astiav.PixelFormatRgba},
	}
	s := SoftwareFactory()(ctx, params).(*Software)
	require.Equal(t, params, s.Params())
	require.Nil(t, s.SoftwareScaleContext, "must not allocate before Setup")

	_, err := s.Convert(ctx, nil)
	require.Error(t, err)

	require.NoError(t, s.Setup(ctx))
	require.Error(t, s.Setup(ctx))
	t.Cleanup(func() { require.NoError(t, s.Close(ctx)) })

	w, h := s.DestinationResolution()
	require.Equal(t, uint32(320), w)
	require.Equal(t, uint32(240), h)
	require.Equal(t, astiav.PixelFormatYuv420P, s.SourcePixelFormat())

	in, err := frame.NewVideo(ctx, params.Input)
	require.NoError(t, err)
	defer frame.Release(in)
	require.NoError(t, in.ImageFillBlack())
	in.SetPts(90)

	out, err := s.Convert(ctx, in)
	require.NoError(t, err)
	require.Equal(t, params.Output, format.VideoFromFrame(out))
	require.Equal(t, int64(90), out.Pts())
}

func TestSoftwareCloseIsIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := NewSoftware(format.Pair[format.Video]{
		Input:  format.Video{Width: 64, Height: 64, PixelFormat: astiav.PixelFormatYuv420P},
		Output: format.Video{Width: 32, Height: 32, PixelFormat: astiav.PixelFormatYuv420P},
	})
	require.NoError(t, s.Setup(ctx))
	require.NoError(t, s.Close(ctx))
	require.NoError(t, s.Close(ctx))
	require.Nil(t, s.SoftwareScaleContext)
	require.Nil(t, s.ScaledFrame)

	require.Error(t, s.Setup(ctx), "a closed scaler cannot be set up again")
}
