package behavior

import (
	"time"

	"github.com/ib2crun/ib2c/metasignal"
	"github.com/ib2crun/ib2c/module"
	"github.com/ib2crun/ib2c/port"
)

// Inner is the contract a user module must satisfy to be wrapped by Module:
// it refreshes its own input ports (PortUpdater), runs its state/output
// update in Transfer, and reports its own target rating.
type Inner interface {
	module.PortUpdater
	// Transfer runs the module's own state and output update. It must
	// complete before TargetRating is read for this tick.
	Transfer()
	// TargetRating returns this tick's target rating, after Transfer has run.
	TargetRating() metasignal.MetaSignal
}

// Module is the shell implementing the iB2C behavior contract around a
// user module M: each tick it refreshes ports, runs M.Transfer, then
// publishes activity = min(min(stimulation, HIGH-inhibition), target) and
// target_rating = target.
type Module[M Inner] struct {
	inner M

	Stimulation  *port.Receive[metasignal.MetaSignal]
	Inhibition   *port.Receive[metasignal.MetaSignal]
	Activity     *port.Send[metasignal.MetaSignal]
	TargetRating *port.Send[metasignal.MetaSignal]
}

// NewModule wraps inner in a behavior shell, seeding stimulation HIGH and
// inhibition/activity/target_rating LOW so an unconnected module starts
// fully enabled but reporting no output.
func NewModule[M Inner](inner M) *Module[M] {
	if any(inner) == nil {
		panic("behavior: nil inner module")
	}
	return &Module[M]{
		inner:        inner,
		Stimulation:  port.NewReceive(metasignal.HIGH),
		Inhibition:   port.NewReceive(metasignal.LOW),
		Activity:     port.NewSend(metasignal.LOW),
		TargetRating: port.NewSend(metasignal.LOW),
	}
}

// Inner returns the wrapped module.
func (b *Module[M]) Inner() M { return b.inner }

// Update implements module.Module.
func (b *Module[M]) Update() {
	b.inner.UpdatePorts()
	b.Stimulation.Update()
	b.Inhibition.Update()

	b.inner.Transfer()
	target := b.inner.TargetRating()

	s := b.Stimulation.GetData()
	i := b.Inhibition.GetData()
	b.Activity.Send(activity(s, i, target))
	b.TargetRating.Send(target)
}

// LastUpdate returns the publication timestamp of the most recently
// published activity value, for introspection and debugging.
func (b *Module[M]) LastUpdate() time.Time {
	return b.Activity.Inner().ReadCached().Timestamp()
}

// StimulationPort implements MetaSignalPorts.
func (b *Module[M]) StimulationPort() *port.Receive[metasignal.MetaSignal] { return b.Stimulation }

// InhibitionPort implements MetaSignalPorts.
func (b *Module[M]) InhibitionPort() *port.Receive[metasignal.MetaSignal] { return b.Inhibition }

// ActivityPort implements MetaSignalPorts.
func (b *Module[M]) ActivityPort() *port.Send[metasignal.MetaSignal] { return b.Activity }

// TargetRatingPort implements MetaSignalPorts.
func (b *Module[M]) TargetRatingPort() *port.Send[metasignal.MetaSignal] { return b.TargetRating }
