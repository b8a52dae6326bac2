package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/asticode/go-astiav"
	"github.com/davecgh/go-spew/spew"
	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/spf13/pflag"
	"github.com/xaionaro-go/avadapt/avcontext"
	"github.com/xaionaro-go/avadapt/codec"
	"github.com/xaionaro-go/avadapt/format"
	avlogger "github.com/xaionaro-go/avadapt/logger"
	"github.com/xaionaro-go/avadapt/types"
	"gopkg.in/yaml.v3"
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "syntax: %s [flags] <encoder name>\n", os.Args[0])
		pflag.PrintDefaults()
	}

	loggerLevel := logger.LevelWarning
	pflag.Var(&loggerLevel, "log-level", "Log level")
	sampleFormat := pflag.String("sample-format", "fltp", "requested sample format (audio encoders)")
	channels := pflag.Uint32("channels", 2, "amount of audio channels")
	sampleRate := pflag.Uint32("sample-rate", 48000, "audio sample rate")
	pixelFormat := pflag.String("pixel-format", "yuv420p", "requested pixel format (video encoders)")
	resolution := format.Resolution{Width: 1280, Height: 720}
	pflag.Var(&resolution, "resolution", "video resolution")
	frameRate := pflag.String("frame-rate", "30", "video frame rate, e.g. 30, 30000/1001 or ~29.97")
	var codecOptions types.DictionaryItems
	pflag.Var(&codecOptions, "codec-option", "an encoder option passed on --open, can be repeated")
	doOpen := pflag.Bool("open", false, "open the encoder with the negotiated format and print what it reports")
	dump := pflag.Bool("dump", false, "dump the negotiated records with spew instead of YAML")
	pflag.Parse()
	if len(pflag.Args()) != 1 {
		pflag.Usage()
		os.Exit(1)
	}

	l := logrus.Default().WithLevel(loggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	logger.Default = func() logger.Logger {
		return l
	}
	defer belt.Flush(ctx)

	astiav.SetLogLevel(avlogger.LogLevelToAstiav(l.Level()))
	astiav.SetLogCallback(func(c astiav.Classer, level astiav.LogLevel, fmt, msg string) {
		var cs string
		if c != nil {
			if cl := c.Class(); cl != nil {
				cs = " - class: " + cl.String()
			}
		}
		l.Logf(
			avlogger.LogLevelFromAstiav(level),
			"%s%s",
			strings.TrimSpace(msg), cs,
		)
	})

	encoderName := pflag.Arg(0)
	encoder := astiav.FindEncoderByName(encoderName)
	if encoder == nil {
		l.Fatalf("encoder '%s' not found", encoderName)
	}

	var record any
	switch encoder.MediaType() {
	case astiav.MediaTypeAudio:
		record = probeAudio(ctx, encoder, *sampleFormat, *channels, *sampleRate, *doOpen, codecOptions)
	case astiav.MediaTypeVideo:
		fps, err := types.ParseRational(*frameRate)
		if err != nil {
			l.Fatal(err)
		}
		record = probeVideo(ctx, encoder, *pixelFormat, resolution, *fps, *doOpen, codecOptions)
	default:
		l.Fatalf("encoder '%s' is neither an audio nor a video encoder", encoderName)
	}

	if *dump {
		spew.Dump(record)
		return
	}
	b, err := yaml.Marshal(record)
	if err != nil {
		l.Fatal(err)
	}
	os.Stdout.Write(b)
}

func probeAudio(
	ctx context.Context,
	encoder *astiav.Codec,
	sampleFormatName string,
	channels uint32,
	sampleRate uint32,
	doOpen bool,
	codecOptions types.DictionaryItems,
) any {
	requested, err := codec.SampleFormatFromString(sampleFormatName)
	if err != nil {
		logger.Fatal(ctx, err)
	}
	selected, err := codec.RequireSampleFormat(encoder, requested)
	if err != nil {
		logger.Fatal(ctx, err)
	}
	logger.Debugf(ctx, "requested %s, selected %s (supported directly: %t)",
		requested, selected, codec.IsSampleFormatSupported(encoder, requested))

	params := format.Audio{
		Channels:     channels,
		SampleRate:   sampleRate,
		SampleFormat: selected,
	}
	if !doOpen {
		return params
	}

	layout, err := params.ChannelLayout()
	if err != nil {
		logger.Fatal(ctx, err)
	}
	codecCtx := astiav.AllocCodecContext(encoder)
	if codecCtx == nil {
		logger.Fatal(ctx, "unable to allocate a codec context")
	}
	codecCtx.SetSampleFormat(params.SampleFormat)
	codecCtx.SetSampleRate(int(params.SampleRate))
	codecCtx.SetChannelLayout(layout)
	codecCtx.SetTimeBase(astiav.NewRational(1, int(params.SampleRate)))

	a := avcontext.NewAudio(ctx, avcontext.OptionCodecOptions(codecOptions))
	defer a.Close(ctx)
	a.CodecContext = codecCtx
	a.Codec = encoder
	a.InputParams = params
	a.OutputParams = params
	if err := a.Open(ctx); err != nil {
		logger.Fatal(ctx, err)
	}
	return codec.AudioParamsFromContext(codecCtx)
}

func probeVideo(
	ctx context.Context,
	encoder *astiav.Codec,
	pixelFormatName string,
	resolution format.Resolution,
	frameRate types.Rational,
	doOpen bool,
	codecOptions types.DictionaryItems,
) any {
	requested, err := codec.PixelFormatFromString(pixelFormatName)
	if err != nil {
		logger.Fatal(ctx, err)
	}
	selected, err := codec.RequirePixelFormat(encoder, requested)
	if err != nil {
		logger.Fatal(ctx, err)
	}
	logger.Debugf(ctx, "requested %s, selected %s (supported directly: %t)",
		requested, selected, codec.IsPixelFormatSupported(encoder, requested))

	params := format.Video{
		Width:       resolution.Width,
		Height:      resolution.Height,
		PixelFormat: selected,
		FrameRate:   frameRate,
	}
	if !doOpen {
		return params
	}

	codecCtx := astiav.AllocCodecContext(encoder)
	if codecCtx == nil {
		logger.Fatal(ctx, "unable to allocate a codec context")
	}
	codecCtx.SetPixelFormat(params.PixelFormat)
	codecCtx.SetWidth(int(params.Width))
	codecCtx.SetHeight(int(params.Height))
	codecCtx.SetTimeBase(astiav.NewRational(frameRate.Den, frameRate.Num))
	codecCtx.SetFramerate(astiav.NewRational(frameRate.Num, frameRate.Den))

	v := avcontext.NewVideo(ctx, avcontext.OptionCodecOptions(codecOptions))
	defer v.Close(ctx)
	v.CodecContext = codecCtx
	v.Codec = encoder
	v.InputParams = params
	v.OutputParams = params
	if err := v.Open(ctx); err != nil {
		logger.Fatal(ctx, err)
	}
	return codec.VideoParamsFromContext(codecCtx)
}
