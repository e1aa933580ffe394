package group

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib2crun/ib2c/module"
)

type noopModule struct{}

func (noopModule) Update() {}

func TestSpawn_PlacementMatchesSpawnModes(t *testing.T) {
	root := NewBuilder(module.NewThread)

	AddModule[noopModule](root, module.NewBuilder[noopModule](noopModule{}, time.Hour, module.GroupThread))
	AddModule[noopModule](root, module.NewBuilder[noopModule](noopModule{}, time.Hour, module.GroupThread))
	AddModule[noopModule](root, module.NewBuilder[noopModule](noopModule{}, time.Hour, module.NewThread))
	AddModule[noopModule](root, module.NewBuilder[noopModule](noopModule{}, time.Hour, module.GroupThread))

	g, err := root.Spawn()
	require.NoError(t, err)
	g.Wait()

	containers := g.Containers()
	require.Len(t, containers, 2)

	counts := []int{containers[0].ModuleCount(), containers[1].ModuleCount()}
	assert.ElementsMatch(t, []int{3, 1}, counts)
}

func TestSpawn_NestedSubgroups(t *testing.T) {
	root := NewBuilder(module.NewThread)
	sub := NewBuilder(module.NewThread)
	AddModule[noopModule](sub, module.NewBuilder[noopModule](noopModule{}, time.Hour, module.GroupThread))
	AddModule[noopModule](sub, module.NewBuilder[noopModule](noopModule{}, time.Hour, module.GroupThread))
	root.AddGroup(sub)
	AddModule[noopModule](root, module.NewBuilder[noopModule](noopModule{}, time.Hour, module.GroupThread))

	g, err := root.Spawn()
	require.NoError(t, err)
	g.Wait()

	containers := g.Containers()
	require.Len(t, containers, 2)
	counts := []int{containers[0].ModuleCount(), containers[1].ModuleCount()}
	assert.ElementsMatch(t, []int{1, 2}, counts)
}

func TestSpawn_EmptyGroupStillStartsMainContainer(t *testing.T) {
	root := NewBuilder(module.NewThread)
	g, err := root.Spawn()
	require.NoError(t, err)
	g.Wait()
	require.Len(t, g.Containers(), 1)
	assert.Equal(t, 0, g.Containers()[0].ModuleCount())
}

func TestSpawn_CalledTwiceReturnsError(t *testing.T) {
	root := NewBuilder(module.NewThread)
	_, err := root.Spawn()
	require.NoError(t, err)

	_, err = root.Spawn()
	assert.ErrorIs(t, err, ErrAlreadySpawned)
}

func TestAddModule_PanicsAfterSpawn(t *testing.T) {
	root := NewBuilder(module.NewThread)
	_, err := root.Spawn()
	require.NoError(t, err)

	assert.Panics(t, func() {
		AddModule[noopModule](root, module.NewBuilder[noopModule](noopModule{}, time.Second, module.GroupThread))
	})
}
