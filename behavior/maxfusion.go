package behavior

import (
	"github.com/ib2crun/ib2c/metasignal"
	"github.com/ib2crun/ib2c/port"
)

// WinnerSwitchSink receives an optional notification every time
// MaximumFusion's selected winning input changes, for metrics. See the
// metrics package's FusionSink for a Prometheus-backed implementation.
type WinnerSwitchSink interface {
	IncWinnerSwitch()
}

// MaximumFusion is the FusionLogic policy that selects, among its competing
// (data, activity) pairs, the pair with the greatest activity, and connects
// the fusion's output to that pair's data port so writes and reads continue
// to hit the same endpoint the winner owns (no per-tick clone of D).
//
// Ties are broken by iteration order: the earlier-added pair wins, matching
// a simple left-to-right scan that only replaces the incumbent on a strict
// improvement.
type MaximumFusion[D any] struct {
	sink       WinnerSwitchSink
	lastWinner int
}

// NewMaximumFusion constructs a MaximumFusion. sink may be nil to disable
// winner-switch instrumentation.
func NewMaximumFusion[D any](sink WinnerSwitchSink) *MaximumFusion[D] {
	return &MaximumFusion[D]{sink: sink, lastWinner: -1}
}

// UpdatePorts implements module.PortUpdater. MaximumFusion has no input
// ports of its own beyond the ones Fusion already manages.
func (m *MaximumFusion[D]) UpdatePorts() {}

// Fuse implements FusionLogic.
func (m *MaximumFusion[D]) Fuse(dataPorts []*port.Receive[D], activityPorts []*port.Receive[metasignal.MetaSignal], output *port.Send[D]) metasignal.MetaSignal {
	if len(dataPorts) == 0 {
		return metasignal.LOW
	}

	winner := 0
	best := activityPorts[0].GetData()
	for idx := 1; idx < len(activityPorts); idx++ {
		if a := activityPorts[idx].GetData(); a > best {
			best = a
			winner = idx
		}
	}

	if winner != m.lastWinner {
		if m.sink != nil {
			m.sink.IncWinnerSwitch()
		}
		m.lastWinner = winner
	}

	output.ConnectToSource(dataPorts[winner].Inner())
	return best
}

// NewMaximumFusionModule is a convenience constructor combining
// NewMaximumFusion with NewFusion, for the common case of a fusion whose
// entire policy is "pick the highest-activity input".
func NewMaximumFusionModule[D any](zeroData D, sink WinnerSwitchSink) *Fusion[*MaximumFusion[D], D] {
	return NewFusion[*MaximumFusion[D], D](NewMaximumFusion[D](sink), zeroData)
}
