package behavior

import (
	"github.com/ib2crun/ib2c/metasignal"
	"github.com/ib2crun/ib2c/module"
	"github.com/ib2crun/ib2c/port"
)

// FusionLogic is the policy a fusion module delegates to: given the
// fusion's own parallel data/activity input ports and its output port, it
// must publish to (or connect) the output and return the fusion's own
// target rating. It is passed the ports explicitly rather than modeled as
// a method receiving "self" (Go generics have no self-referential trait
// dispatch equivalent), but the effect is equivalent to the policy fusing
// its own inputs directly.
type FusionLogic[D any] interface {
	module.PortUpdater
	Fuse(dataPorts []*port.Receive[D], activityPorts []*port.Receive[metasignal.MetaSignal], output *port.Send[D]) metasignal.MetaSignal
}

// Fusion is the N-to-1 fusion module shell: it wraps a FusionLogic policy M
// plus parallel sequences of data and activity input ports and a single
// output port, and carries the same four meta-signal ports as a behavior
// module so a fusion composes like one.
type Fusion[M FusionLogic[D], D any] struct {
	inner M

	Stimulation  *port.Receive[metasignal.MetaSignal]
	Inhibition   *port.Receive[metasignal.MetaSignal]
	Activity     *port.Send[metasignal.MetaSignal]
	TargetRating *port.Send[metasignal.MetaSignal]
	Output       *port.Send[D]

	dataPorts     []*port.Receive[D]
	activityPorts []*port.Receive[metasignal.MetaSignal]
	zeroData      D
}

// NewFusion wraps inner. zeroData seeds every freshly created data
// ReceivePort (see AddModule) before its first Update.
func NewFusion[M FusionLogic[D], D any](inner M, zeroData D) *Fusion[M, D] {
	if any(inner) == nil {
		panic("behavior: nil fusion policy")
	}
	return &Fusion[M, D]{
		inner:        inner,
		Stimulation:  port.NewReceive(metasignal.HIGH),
		Inhibition:   port.NewReceive(metasignal.LOW),
		Activity:     port.NewSend(metasignal.LOW),
		TargetRating: port.NewSend(metasignal.LOW),
		Output:       port.NewSend(zeroData),
		zeroData:     zeroData,
	}
}

// Inner returns the wrapped fusion policy.
func (f *Fusion[M, D]) Inner() M { return f.inner }

// AddModule appends one competing behavior as a (data, activity) subscriber
// pair. Fresh Receive ports are created and connected to the given sources,
// so the fusion observes values through the standard port graph rather than
// by sharing mutable state directly.
//
// Invariant: len(dataPorts) == len(activityPorts) always holds after this
// call, since both grow together.
func (f *Fusion[M, D]) AddModule(dataSrc *port.Inner[D], activitySrc *port.Inner[metasignal.MetaSignal]) {
	dp := port.NewReceive(f.zeroData)
	dp.ConnectToSource(dataSrc)
	ap := port.NewReceive(metasignal.LOW)
	ap.ConnectToSource(activitySrc)
	f.dataPorts = append(f.dataPorts, dp)
	f.activityPorts = append(f.activityPorts, ap)
}

// Update implements module.Module.
func (f *Fusion[M, D]) Update() {
	f.inner.UpdatePorts()
	f.Stimulation.Update()
	f.Inhibition.Update()
	for _, dp := range f.dataPorts {
		dp.Update()
	}
	for _, ap := range f.activityPorts {
		ap.Update()
	}

	target := f.inner.Fuse(f.dataPorts, f.activityPorts, f.Output)

	s := f.Stimulation.GetData()
	i := f.Inhibition.GetData()
	f.Activity.Send(activity(s, i, target))
	f.TargetRating.Send(target)
}

// StimulationPort implements MetaSignalPorts.
func (f *Fusion[M, D]) StimulationPort() *port.Receive[metasignal.MetaSignal] { return f.Stimulation }

// InhibitionPort implements MetaSignalPorts.
func (f *Fusion[M, D]) InhibitionPort() *port.Receive[metasignal.MetaSignal] { return f.Inhibition }

// ActivityPort implements MetaSignalPorts.
func (f *Fusion[M, D]) ActivityPort() *port.Send[metasignal.MetaSignal] { return f.Activity }

// TargetRatingPort implements MetaSignalPorts.
func (f *Fusion[M, D]) TargetRatingPort() *port.Send[metasignal.MetaSignal] { return f.TargetRating }
