package parser

import (
	"os"

	"github.com/sirupsen/logrus"
)

type htmlTokenizerConfig struct {
	logger  *logrus.Logger
	emitEOF bool
}

// Option configures a Tokenizer.
type Option func(*htmlTokenizerConfig)

// WithLogger sets the logger used for state tracing and diagnostics.
// Transitions are logged at trace level.
func WithLogger(l *logrus.Logger) Option {
	return func(c *htmlTokenizerConfig) {
		c.logger = l
	}
}

// WithEOFToken makes the tokenizer emit a single EOF token once the input is
// exhausted, before Next starts returning io.EOF.
func WithEOFToken() Option {
	return func(c *htmlTokenizerConfig) {
		c.emitEOF = true
	}
}

func newConfig(opts []Option) htmlTokenizerConfig {
	c := htmlTokenizerConfig{}
	for _, o := range opts {
		o(&c)
	}
	if c.logger == nil {
		c.logger = logrus.New()
		c.logger.SetOutput(os.Stderr)
		c.logger.SetLevel(logrus.WarnLevel)
	}
	return c
}
