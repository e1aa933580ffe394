package behavior

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib2crun/ib2c/metasignal"
	"github.com/ib2crun/ib2c/port"
)

type fixedTargetModule struct {
	target metasignal.MetaSignal
}

func (m *fixedTargetModule) UpdatePorts()                        {}
func (m *fixedTargetModule) Transfer()                           {}
func (m *fixedTargetModule) TargetRating() metasignal.MetaSignal { return m.target }

func newBehavior(t *testing.T, target float64) *Module[*fixedTargetModule] {
	t.Helper()
	return NewModule[*fixedTargetModule](&fixedTargetModule{target: metasignal.New(target)})
}

func TestBehaviorModule_ActivityFormula(t *testing.T) {
	tests := []struct {
		name                            string
		stimulation, inhibition, target float64
		wantActivity                    float64
	}{
		{"full_stim_no_inhib", 1.0, 0.0, 0.7, 0.7},
		{"half_stim_no_inhib", 0.5, 0.0, 0.9, 0.5},
		{"full_stim_partial_inhib", 1.0, 0.4, 0.9, 0.6},
		{"full_stim_full_inhib", 1.0, 1.0, 0.9, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBehavior(t, tt.target)
			b.Stimulation.Inner().Write(port.New(metasignal.New(tt.stimulation)))
			b.Inhibition.Inner().Write(port.New(metasignal.New(tt.inhibition)))

			b.Update()

			got := b.Activity.Inner().ReadCached().Value()
			assert.InDelta(t, tt.wantActivity, float64(got), 1e-9)

			require.Equal(t, metasignal.New(tt.target), b.TargetRating.Inner().ReadCached().Value())
		})
	}
}

func TestBehaviorModule_Defaults(t *testing.T) {
	b := newBehavior(t, 1.0)
	require.Equal(t, metasignal.HIGH, b.Stimulation.GetData())
	require.Equal(t, metasignal.LOW, b.Inhibition.GetData())
}

func TestBehaviorModule_LastUpdateAdvances(t *testing.T) {
	b := newBehavior(t, 0.5)
	b.Update()
	first := b.LastUpdate()
	b.Update()
	second := b.LastUpdate()
	assert.False(t, second.Before(first))
}
