package avcontext

import (
	"github.com/xaionaro-go/avadapt/conversion"
	"github.com/xaionaro-go/avadapt/format"
	"github.com/xaionaro-go/avadapt/resampler"
	"github.com/xaionaro-go/avadapt/scaler"
	"github.com/xaionaro-go/avadapt/types"
)

// Config is the set of knobs an Option may change.
type Config struct {
	ScalerFactory    conversion.Factory[format.Video]
	ResamplerFactory conversion.Factory[format.Audio]

	// CodecOptions are passed to CodecHandle.Open.
	CodecOptions types.DictionaryItems
}

func defaultConfig() Config {
	return Config{
		ScalerFactory:    scaler.SoftwareFactory(),
		ResamplerFactory: resampler.Factory,
	}
}

// Option modifies a Config; see the Option* types.
type Option interface {
	apply(*Config)
}

// Options applies a list of Option in order.
type Options []Option

func (opts Options) apply(cfg *Config) {
	for _, opt := range opts {
		opt.apply(cfg)
	}
}

func (opts Options) config() Config {
	cfg := defaultConfig()
	opts.apply(&cfg)
	return cfg
}

// OptionScalerFactory overrides how video converters are built.
type OptionScalerFactory conversion.Factory[format.Video]

func (o OptionScalerFactory) apply(cfg *Config) {
	cfg.ScalerFactory = conversion.Factory[format.Video](o)
}

// OptionResamplerFactory overrides how audio converters are built.
type OptionResamplerFactory conversion.Factory[format.Audio]

func (o OptionResamplerFactory) apply(cfg *Config) {
	cfg.ResamplerFactory = conversion.Factory[format.Audio](o)
}

// OptionCodecOptions appends codec options; later keys override earlier ones.
type OptionCodecOptions types.DictionaryItems

func (o OptionCodecOptions) apply(cfg *Config) {
	cfg.CodecOptions = append(cfg.CodecOptions, o...)
}
