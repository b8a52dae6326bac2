// Package config describes the layouts the application wants to see on
// its side of the adaptation contexts.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/avadapt/format"
	"gopkg.in/yaml.v3"
)

// Config is the application-side layout; a nil section means "keep
// whatever the codec provides".
type Config struct {
	Video *format.Video `yaml:"video,omitempty"`
	Audio *format.Audio `yaml:"audio,omitempty"`
}

func Default() Config {
	return Config{}
}

// Load reads a YAML file, see Parse.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open the config file '%s': %w", path, err)
	}
	defer f.Close()

	cfg, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("unable to load '%s': %w", path, err)
	}
	return cfg, nil
}

func Read(r io.Reader) (*Config, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read the config: %w", err)
	}
	return Parse(b)
}

// Parse decodes and validates a YAML config. An empty document yields
// Default().
func Parse(b []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("unable to parse the config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func (cfg Config) Validate() error {
	var errs []error
	if v := cfg.Video; v != nil {
		if v.Width == 0 || v.Height == 0 {
			errs = append(errs, fmt.Errorf("video: invalid resolution %dx%d", v.Width, v.Height))
		}
		if v.PixelFormat == astiav.PixelFormatNone {
			errs = append(errs, fmt.Errorf("video: pixel format is not set"))
		}
		if v.FrameRate.Den == 0 && v.FrameRate.Num != 0 {
			errs = append(errs, fmt.Errorf("video: invalid frame rate %s", v.FrameRate))
		}
	}
	if a := cfg.Audio; a != nil {
		if _, err := a.ChannelLayout(); err != nil {
			errs = append(errs, fmt.Errorf("audio: %w", err))
		}
		if a.SampleRate == 0 {
			errs = append(errs, fmt.Errorf("audio: sample rate is not set"))
		}
		if a.SampleFormat == astiav.SampleFormatNone {
			errs = append(errs, fmt.Errorf("audio: sample format is not set"))
		}
	}
	return errors.Join(errs...)
}

// Bytes returns the YAML representation of the config.
func (cfg Config) Bytes() []byte {
	b, err := yaml.Marshal(cfg)
	if err != nil {
		panic(err)
	}
	return b
}
