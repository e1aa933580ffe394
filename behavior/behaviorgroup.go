package behavior

import (
	"github.com/ib2crun/ib2c/group"
	"github.com/ib2crun/ib2c/metasignal"
	"github.com/ib2crun/ib2c/module"
	"github.com/ib2crun/ib2c/port"
)

// Group re-exports the same four meta-signal ports as Module and Fusion, so
// a whole subtree of behaviors and fusions composes externally as a single
// behavior module. State carries arbitrary group-level bookkeeping of type
// G, unrelated to the wiring itself.
type Group[G any] struct {
	State G

	Stimulation  *port.Receive[metasignal.MetaSignal]
	Inhibition   *port.Receive[metasignal.MetaSignal]
	Activity     *port.Send[metasignal.MetaSignal]
	TargetRating *port.Send[metasignal.MetaSignal]

	builder *group.Builder
}

// NewGroup creates a behavior group holding state, placed per spawn when it
// is later added as a subgroup of a parent group.Builder.
func NewGroup[G any](state G, spawn module.SpawnMode) *Group[G] {
	return &Group[G]{
		State:        state,
		Stimulation:  port.NewReceive(metasignal.HIGH),
		Inhibition:   port.NewReceive(metasignal.LOW),
		Activity:     port.NewSend(metasignal.LOW),
		TargetRating: port.NewSend(metasignal.LOW),
		builder:      group.NewBuilder(spawn),
	}
}

// Builder returns the underlying group.Builder, for AddModule/AddGroup
// calls that populate this group's interior.
func (g *Group[G]) Builder() *group.Builder { return g.builder }

// SetCharacteristicModule wires m's stimulation/inhibition to be driven by
// this group's external stimulation/inhibition, and wires this group's
// external activity/target_rating to reflect m's. After this call the group
// behaves, from outside, exactly like m.
func (g *Group[G]) SetCharacteristicModule(m MetaSignalPorts) {
	m.StimulationPort().ConnectToSource(g.Stimulation.Inner())
	m.InhibitionPort().ConnectToSource(g.Inhibition.Inner())
	g.Activity.ConnectToSource(m.ActivityPort().Inner())
	g.TargetRating.ConnectToSource(m.TargetRatingPort().Inner())
}

// StimulationPort implements MetaSignalPorts.
func (g *Group[G]) StimulationPort() *port.Receive[metasignal.MetaSignal] { return g.Stimulation }

// InhibitionPort implements MetaSignalPorts.
func (g *Group[G]) InhibitionPort() *port.Receive[metasignal.MetaSignal] { return g.Inhibition }

// ActivityPort implements MetaSignalPorts.
func (g *Group[G]) ActivityPort() *port.Send[metasignal.MetaSignal] { return g.Activity }

// TargetRatingPort implements MetaSignalPorts.
func (g *Group[G]) TargetRatingPort() *port.Send[metasignal.MetaSignal] { return g.TargetRating }
