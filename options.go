package geograph

import (
	"log/slog"

	"github.com/hupe1980/geograph/codec"
	"github.com/hupe1980/geograph/persistence"
)

type options struct {
	codec            codec.Codec
	compression      persistence.Compression
	numWorkers       int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures pipeline behavior.
//
// Options exist to keep the API surface small: everything that is not part
// of the run's identity (source, field, output) is an option with a sane
// default.
type Option func(*options)

// WithCodec configures the codec used for snapshot payloads.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression configures the snapshot payload compression.
// The default is zstd.
func WithCompression(comp persistence.Compression) Option {
	return func(o *options) {
		o.compression = comp
	}
}

// WithNumWorkers bounds the number of goroutines evaluating group pairs
// concurrently during adjacency discovery.
//
// Pair evaluations are independent, so discovery scales with cores until
// the exact geometry tests saturate memory bandwidth. Values <= 0 fall back
// to GOMAXPROCS.
func WithNumWorkers(n int) Option {
	return func(o *options) {
		o.numWorkers = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring the
// pipeline stages. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for the pipeline stages.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		codec:            codec.Default,
		compression:      persistence.CompressionZstd,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
