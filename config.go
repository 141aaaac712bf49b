package exifwalk

import (
	"io"

	"github.com/sirupsen/logrus"
)

// defaultMaxRecursionDepth bounds the IFD/makernote recursion depth as a
// second line of defense behind the visited-offset cycle detector: total
// work is bounded by region length, but a pathological chain of distinct
// offsets could still recurse deeply.
const defaultMaxRecursionDepth = 64

// Config holds the walker's ambient behavior: logging, recursion limits,
// and strictness. Built with NewConfig and the With* options, following the
// teacher's functional-options-free Options struct (bep/imagemeta
// imagemeta.go) generalized to the usual With* constructor idiom seen
// across the pack.
type Config struct {
	log               *logrus.Entry
	maxRecursionDepth int
	strict            bool
}

// Option configures a Config.
type Option func(*Config)

// WithLogger sets the logger entry the walker emits Debug/Warn lines to.
// A nil entry is equivalent to not calling WithLogger.
func WithLogger(entry *logrus.Entry) Option {
	return func(c *Config) {
		if entry != nil {
			c.log = entry
		}
	}
}

// WithMaxRecursionDepth overrides the recursion depth ceiling.
func WithMaxRecursionDepth(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.maxRecursionDepth = n
		}
	}
}

// WithStrict enables additional Warn-level logging for faults that are
// otherwise silently recoverable (cycles, unsupported makernote vendors).
// It never changes the decoded result, only what is logged.
func WithStrict(strict bool) Option {
	return func(c *Config) {
		c.strict = strict
	}
}

// NewConfig builds a Config from the given options, defaulting to a
// discard logger.
func NewConfig(opts ...Option) *Config {
	c := &Config{
		log:               logrus.NewEntry(discardLogger()),
		maxRecursionDepth: defaultMaxRecursionDepth,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func (c *Config) logEntry() logEntry {
	return newLogEntry(c.log)
}
