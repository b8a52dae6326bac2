package format

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestResolutionParse(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		in      string
		want    Resolution
		wantErr bool
	}{
		{in: "320x240", want: Resolution{Width: 320, Height: 240}},
		{in: " 1920X1080 ", want: Resolution{Width: 1920, Height: 1080}},
		{in: "0x240", wantErr: true},
		{in: "320", wantErr: true},
		{in: "axb", wantErr: true},
	} {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			var r Resolution
			err := r.Parse(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				require.True(t, r.IsZero())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, r)
			require.Equal(t, tc.want.String(), r.String())
		})
	}
}

func TestResolutionFlag(t *testing.T) {
	t.Parallel()

	var r Resolution
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Var(&r, "resolution", "")
	require.NoError(t, flags.Parse([]string{"--resolution", "640x480"}))
	require.Equal(t, Resolution{Width: 640, Height: 480}, r)

	var v Video
	v.SetResolution(r)
	require.Equal(t, r, v.Resolution())
}
