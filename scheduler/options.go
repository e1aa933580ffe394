package scheduler

import "github.com/ib2crun/ib2c/internal/rtlog"

// MetricsSink receives optional per-container instrumentation. Container
// never imports a metrics backend directly; see the metrics package for a
// Prometheus-backed implementation.
type MetricsSink interface {
	// ObserveUpdateDuration records how long one module's Update call took.
	ObserveUpdateDuration(moduleIndex int, nanos int64)
	// IncOverrun records that a module's Update took longer than its cycle
	// time, forcing the next deadline to collapse forward to now.
	IncOverrun(moduleIndex int)
}

type options struct {
	logger         *rtlog.Logger
	sink           MetricsSink
	metricsFactory func(containerID string) MetricsSink
}

func resolveOptions(opts []Option) *options {
	cfg := &options{logger: rtlog.Disabled()}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// Option configures a Container at construction time.
type Option func(*options)

// WithLogger attaches a logger used for overrun warnings. The default is a
// disabled logger (no output).
func WithLogger(l *rtlog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics attaches a fixed MetricsSink, ignoring the container's own
// generated ID. Suited to constructing a single Container directly.
func WithMetrics(sink MetricsSink) Option {
	return func(o *options) {
		o.sink = sink
	}
}

// WithMetricsFactory attaches a MetricsSink built lazily from the
// Container's generated ID. Passed through group.WithContainerOptions, it
// gives every container spawned for a tree its own correctly labeled sink,
// since the container ID does not exist until NewContainer runs.
func WithMetricsFactory(factory func(containerID string) MetricsSink) Option {
	return func(o *options) {
		o.metricsFactory = factory
	}
}
