// Package metrics wires the scheduler and fusion packages to Prometheus,
// the metrics stack carried over from the pack's cuemby-warren repo (which
// instruments its own containerd/raft subsystems the same way: a handful of
// CounterVec/HistogramVec collectors, registered once and labeled per
// instance rather than allocated per instance).
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ib2crun/ib2c/scheduler"
)

// Metrics bundles the collectors this runtime exposes: container overrun
// counts, per-module update latency, and fusion winner-switch counts.
type Metrics struct {
	overrunTotal         *prometheus.CounterVec
	updateDuration       *prometheus.HistogramVec
	fusionWinnerSwitches *prometheus.CounterVec
}

// New constructs an unregistered Metrics bundle.
func New() *Metrics {
	return &Metrics{
		overrunTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ib2c",
			Subsystem: "scheduler",
			Name:      "container_overrun_total",
			Help:      "Number of module updates that exceeded their declared cycle time.",
		}, []string{"container_id", "module_index"}),
		updateDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ib2c",
			Subsystem: "scheduler",
			Name:      "module_update_duration_seconds",
			Help:      "Duration of a single module Update call.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"container_id", "module_index"}),
		fusionWinnerSwitches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ib2c",
			Subsystem: "behavior",
			Name:      "fusion_winner_switch_total",
			Help:      "Number of times a fusion module's selected winning input changed.",
		}, []string{"fusion_id"}),
	}
}

// MustRegister registers every collector in the bundle against reg.
func (m *Metrics) MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(m.overrunTotal, m.updateDuration, m.fusionWinnerSwitches)
}

// ContainerSinkFactory returns a function suitable for
// scheduler.WithMetricsFactory / group.WithContainerOptions, so every
// container spawned from one group tree gets its own correctly labeled
// sink.
func (m *Metrics) ContainerSinkFactory() func(containerID string) scheduler.MetricsSink {
	return func(containerID string) scheduler.MetricsSink {
		return m.ContainerSink(containerID)
	}
}

// ContainerSink returns a scheduler.MetricsSink adapter scoped to one
// container.
func (m *Metrics) ContainerSink(containerID string) *ContainerSink {
	return &ContainerSink{metrics: m, containerID: containerID}
}

// ContainerSink adapts Metrics to scheduler.MetricsSink for one container.
type ContainerSink struct {
	metrics     *Metrics
	containerID string
}

// ObserveUpdateDuration implements scheduler.MetricsSink.
func (s *ContainerSink) ObserveUpdateDuration(moduleIndex int, nanos int64) {
	s.metrics.updateDuration.
		WithLabelValues(s.containerID, strconv.Itoa(moduleIndex)).
		Observe(float64(nanos) / 1e9)
}

// IncOverrun implements scheduler.MetricsSink.
func (s *ContainerSink) IncOverrun(moduleIndex int) {
	s.metrics.overrunTotal.
		WithLabelValues(s.containerID, strconv.Itoa(moduleIndex)).
		Inc()
}

// FusionSink adapts Metrics to behavior.WinnerSwitchSink for one fusion
// module.
type FusionSink struct {
	metrics  *Metrics
	fusionID string
}

// FusionSink returns an adapter scoped to one fusion module.
func (m *Metrics) FusionSink(fusionID string) *FusionSink {
	return &FusionSink{metrics: m, fusionID: fusionID}
}

// IncWinnerSwitch implements behavior.WinnerSwitchSink.
func (s *FusionSink) IncWinnerSwitch() {
	s.metrics.fusionWinnerSwitches.WithLabelValues(s.fusionID).Inc()
}
