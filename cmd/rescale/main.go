package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/asticode/go-astiav"
	"github.com/asticode/go-astikit"
	"github.com/dustin/go-humanize"
	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/spf13/pflag"
	"github.com/xaionaro-go/avadapt/avcontext"
	"github.com/xaionaro-go/avadapt/config"
	"github.com/xaionaro-go/avadapt/format"
	"github.com/xaionaro-go/avadapt/frame"
	"github.com/xaionaro-go/avadapt/internal/stats"
	avlogger "github.com/xaionaro-go/avadapt/logger"
	"github.com/xaionaro-go/avadapt/scaler"
	"github.com/xaionaro-go/avadapt/types"
)

type adapter interface {
	Open(ctx context.Context) error
	Convert(ctx context.Context, f *astiav.Frame) (*astiav.Frame, error)
	SetPTS(ctx context.Context, pts int64) bool
	PTSSeconds() float64
	PTSDuration() time.Duration
	Close(ctx context.Context) error
}

type stream struct {
	index        int
	mediaType    astiav.MediaType
	codecContext *astiav.CodecContext
	adapter      adapter
	video        *avcontext.Video
	audio        *avcontext.Audio

	frames  uint64
	bytes   uint64
	latency *stats.Latency
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "syntax: %s [flags] <input file>\n", os.Args[0])
		pflag.PrintDefaults()
	}

	loggerLevel := logger.LevelWarning
	pflag.Var(&loggerLevel, "log-level", "Log level")
	configPath := pflag.String("config", "", "path to a YAML file with the output layouts")
	var resolution format.Resolution
	pflag.Var(&resolution, "resolution", "output video resolution, e.g. 320x240 (overrides the config)")
	var codecOptions types.DictionaryItems
	pflag.Var(&codecOptions, "decoder-option", "a decoder option, can be repeated")
	bicubic := pflag.Bool("bicubic", false, "use the bicubic scaling algorithm")
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

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			l.Fatal(err)
		}
		cfg = *loaded
	}
	if !resolution.IsZero() {
		if cfg.Video == nil {
			cfg.Video = &format.Video{PixelFormat: astiav.PixelFormatYuv420P}
		}
		cfg.Video.SetResolution(resolution)
		if err := cfg.Validate(); err != nil {
			l.Fatal(err)
		}
	}

	var scalerFlags []astiav.SoftwareScaleContextFlag
	if *bicubic {
		scalerFlags = append(scalerFlags, astiav.SoftwareScaleContextFlagBicubic)
	}

	closer := astikit.NewCloser()
	defer closer.Close()

	if err := run(ctx, closer, pflag.Arg(0), cfg, scalerFlags, codecOptions); err != nil {
		l.Fatal(err)
	}
}

func run(
	ctx context.Context,
	closer *astikit.Closer,
	inputPath string,
	cfg config.Config,
	scalerFlags []astiav.SoftwareScaleContextFlag,
	codecOptions types.DictionaryItems,
) error {
	formatContext := astiav.AllocFormatContext()
	if formatContext == nil {
		return errors.New("unable to allocate a format context")
	}
	closer.Add(formatContext.Free)

	if err := formatContext.OpenInput(inputPath, nil, nil); err != nil {
		return fmt.Errorf("unable to open '%s': %w", inputPath, err)
	}
	closer.Add(formatContext.CloseInput)

	if err := formatContext.FindStreamInfo(nil); err != nil {
		return fmt.Errorf("unable to find stream info: %w", err)
	}

	streams := map[int]*stream{}
	for _, inputStream := range formatContext.Streams() {
		s, err := openStream(ctx, inputStream, cfg, scalerFlags, codecOptions)
		if err != nil {
			return fmt.Errorf("unable to open stream #%d: %w", inputStream.Index(), err)
		}
		if s == nil {
			continue
		}
		closer.AddWithError(func() error {
			return s.adapter.Close(ctx)
		})
		streams[s.index] = s
	}
	if len(streams) == 0 {
		return fmt.Errorf("'%s' has no audio or video streams", inputPath)
	}

	pkt := astiav.AllocPacket()
	closer.Add(pkt.Free)
	decoded := frame.Pool.Get()
	defer frame.Pool.Put(decoded)

	for {
		if err := formatContext.ReadFrame(pkt); err != nil {
			if errors.Is(err, astiav.ErrEof) {
				break
			}
			return fmt.Errorf("unable to read a packet: %w", err)
		}

		s, ok := streams[pkt.StreamIndex()]
		if !ok {
			pkt.Unref()
			continue
		}
		err := s.codecContext.SendPacket(pkt)
		pkt.Unref()
		if err != nil {
			return fmt.Errorf("unable to send a packet to the decoder of stream #%d: %w", s.index, err)
		}
		if err := s.drain(ctx, decoded); err != nil {
			return err
		}
	}

	for _, s := range streams {
		if err := s.codecContext.SendPacket(nil); err != nil {
			return fmt.Errorf("unable to flush the decoder of stream #%d: %w", s.index, err)
		}
		if err := s.drain(ctx, decoded); err != nil {
			return err
		}
		if err := s.flushConverter(ctx); err != nil {
			return err
		}
		fmt.Printf(
			"stream #%d (%s): %d frames, %s, last pts: %.3fs (%s); conversion took %v on average (smoothed: %v, max: %v)\n",
			s.index, s.mediaType, s.frames, humanize.Bytes(s.bytes), s.adapter.PTSSeconds(), s.adapter.PTSDuration(),
			s.latency.Mean(), s.latency.Smoothed(), s.latency.Max(),
		)
	}
	poolStats := frame.Pool.Stats()
	logger.Debugf(ctx, "frame pool: %d allocated, %d outstanding, %d finalized",
		poolStats.Allocated, poolStats.Outstanding(), poolStats.Finalized)
	return nil
}

func openStream(
	ctx context.Context,
	inputStream *astiav.Stream,
	cfg config.Config,
	scalerFlags []astiav.SoftwareScaleContextFlag,
	codecOptions types.DictionaryItems,
) (*stream, error) {
	codecParams := inputStream.CodecParameters()
	mediaType := codecParams.MediaType()
	if mediaType != astiav.MediaTypeVideo && mediaType != astiav.MediaTypeAudio {
		logger.Debugf(ctx, "skipping stream #%d of type %s", inputStream.Index(), mediaType)
		return nil, nil
	}

	decoder := astiav.FindDecoder(codecParams.CodecID())
	if decoder == nil {
		return nil, fmt.Errorf("no decoder for %s", codecParams.CodecID())
	}
	codecContext := astiav.AllocCodecContext(decoder)
	if codecContext == nil {
		return nil, fmt.Errorf("unable to allocate a codec context: %w", avcontext.ErrAllocation)
	}
	if err := codecParams.ToCodecContext(codecContext); err != nil {
		codecContext.Free()
		return nil, fmt.Errorf("unable to copy the codec parameters: %w", err)
	}

	s := &stream{
		index:        inputStream.Index(),
		mediaType:    mediaType,
		codecContext: codecContext,
		latency:      stats.NewLatency(50),
	}
	switch mediaType {
	case astiav.MediaTypeVideo:
		v := avcontext.NewVideo(ctx,
			avcontext.OptionScalerFactory(scaler.SoftwareFactory(scalerFlags...)),
			avcontext.OptionCodecOptions(codecOptions),
		)
		v.Stream = inputStream
		v.CodecContext = codecContext
		v.Codec = decoder
		if cfg.Video != nil {
			v.OutputParams = *cfg.Video
		}
		s.video, s.adapter = v, v
	case astiav.MediaTypeAudio:
		a := avcontext.NewAudio(ctx, avcontext.OptionCodecOptions(codecOptions))
		a.Stream = inputStream
		a.CodecContext = codecContext
		a.Codec = decoder
		if cfg.Audio != nil {
			a.OutputParams = *cfg.Audio
		}
		s.audio, s.adapter = a, a
	}

	if err := s.adapter.Open(ctx); err != nil {
		s.adapter.Close(ctx)
		return nil, err
	}
	return s, nil
}

// drain passes every frame the decoder has ready through the adapter.
func (s *stream) drain(
	ctx context.Context,
	decoded *astiav.Frame,
) error {
	for {
		if err := s.codecContext.ReceiveFrame(decoded); err != nil {
			if errors.Is(err, astiav.ErrEof) || errors.Is(err, astiav.ErrEagain) {
				return nil
			}
			return fmt.Errorf("unable to receive a frame from the decoder of stream #%d: %w", s.index, err)
		}

		err := s.process(ctx, decoded)
		decoded.Unref()
		if err != nil {
			return fmt.Errorf("stream #%d: %w", s.index, err)
		}
	}
}

func (s *stream) process(
	ctx context.Context,
	decoded *astiav.Frame,
) error {
	switch {
	case s.video != nil:
		s.video.InputParams = format.VideoFromFrame(decoded)
		if s.video.OutputParams.Width == 0 {
			s.video.OutputParams = s.video.InputParams
		}
	case s.audio != nil:
		s.audio.InputParams = format.AudioFromFrame(decoded)
		if s.audio.OutputParams.SampleRate == 0 {
			s.audio.OutputParams = s.audio.InputParams
		}
	}

	startedAt := time.Now()
	out, err := s.adapter.Convert(ctx, decoded)
	s.latency.Since(startedAt)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	s.adapter.SetPTS(ctx, out.Pts())
	s.frames++
	s.bytes += uint64(frameSize(out))
	return nil
}

type flusher interface {
	Flush(ctx context.Context) (*astiav.Frame, error)
}

// flushConverter collects the samples the resampler is still holding.
func (s *stream) flushConverter(ctx context.Context) error {
	if s.audio == nil {
		return nil
	}
	f, ok := s.audio.Converter().(flusher)
	if !ok {
		return nil
	}
	out, err := f.Flush(ctx)
	if err != nil {
		return fmt.Errorf("unable to flush the resampler of stream #%d: %w", s.index, err)
	}
	if out != nil {
		s.frames++
		s.bytes += uint64(frameSize(out))
	}
	return nil
}

func frameSize(f *astiav.Frame) int {
	if f.NbSamples() > 0 {
		return f.NbSamples() * f.ChannelLayout().Channels() * f.SampleFormat().BytesPerSample()
	}
	size, err := f.ImageBufferSize(1)
	if err != nil {
		return 0
	}
	return size
}
