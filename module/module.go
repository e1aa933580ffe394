// Package module defines the Module contract, the builder that bundles a
// module with its scheduling policy, and the port-refresh contract user
// modules must satisfy.
package module

import "time"

// Module is any unit of work invoked periodically by a scheduler.Container.
type Module interface {
	// Update advances the module by one cycle.
	Update()
}

// PortUpdater is the contract a user module satisfies to refresh every one
// of its input (receive-kind) ports before Update runs. In a language with
// derive macros this is generated by reflecting over struct fields; here it
// is written by hand, or assembled from an explicit list of receive ports
// gathered at construction time.
type PortUpdater interface {
	UpdatePorts()
}

// SpawnMode is the per-child thread-placement policy used by a
// group.Builder when deciding which scheduler.Container a module or
// subgroup runs on.
type SpawnMode int

const (
	// GroupThread runs the child on the enclosing group's thread.
	GroupThread SpawnMode = iota
	// NewThread gives the child its own thread (its own scheduler.Container).
	NewThread
)

func (s SpawnMode) String() string {
	switch s {
	case GroupThread:
		return "GroupThread"
	case NewThread:
		return "NewThread"
	default:
		return "SpawnMode(unknown)"
	}
}

// Builder bundles a module with its cycle time and spawn policy. It is
// produced by user code and consumed exactly once by a group.Builder.
type Builder[M Module] struct {
	Module    M
	CycleTime time.Duration
	Spawn     SpawnMode
}

// NewBuilder validates and constructs a Builder. A nil module or a
// non-positive cycle time is a programmer error and panics, matching the
// runtime's "total surface, panic on misuse" stance.
func NewBuilder[M Module](m M, cycleTime time.Duration, spawn SpawnMode) Builder[M] {
	if any(m) == nil {
		panic("module: nil module")
	}
	if cycleTime <= 0 {
		panic("module: cycle time must be positive")
	}
	return Builder[M]{Module: m, CycleTime: cycleTime, Spawn: spawn}
}
