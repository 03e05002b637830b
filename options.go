package lexgo

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
}

// Option configures Executor behavior.
type Option func(*options)

// WithLogger configures the logger used for execution logging.
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures the metrics collector notified after
// each collection pass and replay. If nil is passed, metrics are
// disabled.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}
