package format

import (
	"fmt"

	"github.com/xaionaro-go/avadapt/codec"
	"github.com/xaionaro-go/avadapt/types"
	"gopkg.in/yaml.v3"
)

type videoYAML struct {
	Width       uint32          `yaml:"width"`
	Height      uint32          `yaml:"height"`
	PixelFormat string          `yaml:"pixel_format"`
	FrameRate   *types.Rational `yaml:"frame_rate,omitempty"`
}

func (v Video) MarshalYAML() (any, error) {
	out := videoYAML{
		Width:       v.Width,
		Height:      v.Height,
		PixelFormat: v.PixelFormat.String(),
	}
	if !v.FrameRate.IsZero() {
		out.FrameRate = &v.FrameRate
	}
	return out, nil
}

func (v *Video) UnmarshalYAML(node *yaml.Node) error {
	var in videoYAML
	if err := node.Decode(&in); err != nil {
		return fmt.Errorf("unable to decode video parameters: %w", err)
	}
	pixFmt, err := codec.PixelFormatFromString(in.PixelFormat)
	if err != nil {
		return err
	}
	*v = Video{
		Width:       in.Width,
		Height:      in.Height,
		PixelFormat: pixFmt,
	}
	if in.FrameRate != nil {
		v.FrameRate = *in.FrameRate
	}
	return nil
}

type audioYAML struct {
	Channels     uint32 `yaml:"channels"`
	SampleRate   uint32 `yaml:"sample_rate"`
	SampleFormat string `yaml:"sample_format"`
}

func (a Audio) MarshalYAML() (any, error) {
	return audioYAML{
		Channels:     a.Channels,
		SampleRate:   a.SampleRate,
		SampleFormat: a.SampleFormat.String(),
	}, nil
}

func (a *Audio) UnmarshalYAML(node *yaml.Node) error {
	var in audioYAML
	if err := node.Decode(&in); err != nil {
		return fmt.Errorf("unable to decode audio parameters: %w", err)
	}
	sampleFmt, err := codec.SampleFormatFromString(in.SampleFormat)
	if err != nil {
		return err
	}
	*a = Audio{
		Channels:     in.Channels,
		SampleRate:   in.SampleRate,
		SampleFormat: sampleFmt,
	}
	return nil
}
