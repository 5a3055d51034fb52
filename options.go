package lazyseq

// config defines all configuration options for a sequence.
type config struct {
	name    string  // reported in error diagnostics
	logger  Logger  // structured logging hook
	metrics Metrics // observability hook
}

// Option is a function that configures a sequence.
type Option func(*config)

// WithName sets the sequence name used in error diagnostics.
func WithName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.name = name
		}
	}
}

// WithLogger sets the logger used by forcing operations.
func WithLogger(l Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m Metrics) Option {
	return func(c *config) {
		if m != nil {
			c.metrics = m
		}
	}
}

// defaultConfig returns the default configuration.
func defaultConfig() config {
	return config{
		name:    "Sequence",
		logger:  NopLogger{},
		metrics: NopMetrics{},
	}
}
