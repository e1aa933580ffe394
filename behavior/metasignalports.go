// Package behavior implements the iB2C meta-signal fusion algebra: behavior
// modules that compute activity from stimulation/inhibition/target-rating,
// fusion modules that combine competing behaviors, and behavior groups that
// re-export the same four meta-signal ports as a single behavior so
// subtrees compose arbitrarily.
package behavior

import (
	"github.com/ib2crun/ib2c/metasignal"
	"github.com/ib2crun/ib2c/port"
)

// MetaSignalPorts is the shape shared by Module, Fusion, and Group: the four
// iB2C meta-signal ports. Anything satisfying it can
// be wired into a fusion's inputs or a group's characteristic module.
type MetaSignalPorts interface {
	StimulationPort() *port.Receive[metasignal.MetaSignal]
	InhibitionPort() *port.Receive[metasignal.MetaSignal]
	ActivityPort() *port.Send[metasignal.MetaSignal]
	TargetRatingPort() *port.Send[metasignal.MetaSignal]
}

// activity computes min(min(stimulation, HIGH-inhibition), target), the
// formula shared by Module and Fusion.
func activity(stimulation, inhibition, target metasignal.MetaSignal) metasignal.MetaSignal {
	return metasignal.Min(metasignal.Min(stimulation, metasignal.HIGH.Sub(inhibition)), target)
}
