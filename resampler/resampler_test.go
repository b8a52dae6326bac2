package resampler

import (
	"context"
	"testing"

	"github.com/asticode/go-astiav"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/avadapt/format"
	"github.com/xaionaro-go/avadapt/frame"
)

func defaultPair() format.Pair[format.Audio] {
	return format.Pair[format.Audio]{
		Input:  format.Audio{Channels: 1, SampleRate: 44100, SampleFormat: astiav.SampleFormatS16},
		Output: format.Audio{Channels: 2, SampleRate: 48000, SampleFormat: astiav.SampleFormatFltp},
	}
}

func TestResamplerConvert(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	params := defaultPair()
	r := Factory(ctx, params).(*Resampler)
	require.Equal(t, params, r.Params())
	require.Nil(t, r.SoftwareResampleContext, "must not allocate before Setup")

	require.NoError(t, r.Setup(ctx))
	t.Cleanup(func() { require.NoError(t, r.Close(ctx)) })

	in, err := frame.NewAudio(ctx, params.Input, 1024)
	require.NoError(t, err)
	defer frame.Release(in)
	require.NoError(t, in.SamplesFillSilence())
	in.SetPts(1024)

	out, err := r.Convert(ctx, in)
	require.NoError(t, err)
	require.NotNil(t, out)
	require.Equal(t, params.Output, format.AudioFromFrame(out))
	require.Positive(t, out.NbSamples())
	require.Equal(t, int64(1024), out.Pts())
}

func TestResamplerLifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := New(defaultPair())

	_, err := r.Convert(ctx, nil)
	require.Error(t, err, "not set up")

	require.NoError(t, r.Setup(ctx))
	require.Error(t, r.Setup(ctx))

	require.NoError(t, r.Close(ctx))
	require.NoError(t, r.Close(ctx))
	require.Nil(t, r.SoftwareResampleContext)
	require.Nil(t, r.ResampledFrame)

	_, err = r.Convert(ctx, nil)
	require.Error(t, err, "closed")
	require.Error(t, r.Setup(ctx))
}

func TestResamplerUnsupportedLayout(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	params := defaultPair()
	params.Output.Channels = 9
	r := New(params)
	require.Error(t, r.Setup(ctx))
	require.NoError(t, r.Close(ctx))
}

func TestResamplerSurroundDownmix(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	params := format.Pair[format.Audio]{
		Input:  format.Audio{Channels: 8, SampleRate: 48000, SampleFormat: astiav.SampleFormatFltp},
		Output: format.Audio{Channels: 2, SampleRate: 48000, SampleFormat: astiav.SampleFormatS16},
	}
	r := New(params)
	require.NoError(t, r.Setup(ctx))
	t.Cleanup(func() { require.NoError(t, r.Close(ctx)) })

	in, err := frame.NewAudio(ctx, params.Input, 480)
	require.NoError(t, err)
	defer frame.Release(in)
	require.NoError(t, in.SamplesFillSilence())

	out, err := r.Convert(ctx, in)
	require.NoError(t, err)
	require.NotNil(t, out)
	require.Equal(t, params.Output, format.AudioFromFrame(out))
}
