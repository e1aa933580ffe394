package module

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopModule struct {
	updates     int
	portRefresh int
}

func (m *noopModule) Update()      { m.updates++ }
func (m *noopModule) UpdatePorts() { m.portRefresh++ }

func TestBuilder_ValidatesInputs(t *testing.T) {
	m := &noopModule{}
	b := NewBuilder[*noopModule](m, 10*time.Millisecond, NewThread)
	require.Same(t, m, b.Module)
	require.Equal(t, 10*time.Millisecond, b.CycleTime)
	require.Equal(t, NewThread, b.Spawn)
}

func TestBuilder_PanicsOnNilModule(t *testing.T) {
	assert.Panics(t, func() {
		NewBuilder[*noopModule](nil, time.Millisecond, GroupThread)
	})
}

func TestBuilder_PanicsOnNonPositiveCycleTime(t *testing.T) {
	m := &noopModule{}
	assert.Panics(t, func() { NewBuilder[*noopModule](m, 0, GroupThread) })
	assert.Panics(t, func() { NewBuilder[*noopModule](m, -time.Second, GroupThread) })
}

func TestBasic_RefreshesPortsBeforeUpdate(t *testing.T) {
	m := &noopModule{}
	b := NewBasic[*noopModule](m)

	b.Update()

	require.Equal(t, 1, m.portRefresh)
	require.Equal(t, 1, m.updates)
	require.Same(t, m, b.Inner())
}

func TestSpawnMode_String(t *testing.T) {
	assert.Equal(t, "GroupThread", GroupThread.String())
	assert.Equal(t, "NewThread", NewThread.String())
}
