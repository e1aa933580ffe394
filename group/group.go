// Package group implements the recursive composition tree that decides
// which modules and subgroups share a scheduler.Container thread, and the
// Spawn algorithm that realizes that tree as running containers.
package group

import (
	"sync/atomic"
	"time"

	"github.com/ib2crun/ib2c/module"
	"github.com/ib2crun/ib2c/scheduler"
)

type childKind uint8

const (
	childModule childKind = iota
	childGroup
)

type child struct {
	kind      childKind
	module    module.Module
	cycleTime time.Duration
	spawn     module.SpawnMode // meaningful only for kind == childModule
	sub       *Builder         // meaningful only for kind == childGroup
}

// Builder is a tree node: a set of module children and subgroup children,
// each carrying its own SpawnMode, plus the SpawnMode this builder itself
// should be placed with when it is added as someone else's child (via
// AddGroup). That field is ignored for whichever Builder ends up the root
// of a Spawn call, since the root always owns the "main" container
// regardless of its own declared SpawnMode.
type Builder struct {
	spawn    module.SpawnMode
	children []child
	spawned  atomic.Bool
}

// NewBuilder creates an empty group node with the given placement policy
// (used only if this Builder later becomes another Builder's child).
func NewBuilder(spawn module.SpawnMode) *Builder {
	return &Builder{spawn: spawn}
}

func (b *Builder) checkMutable() {
	if b.spawned.Load() {
		panic("group: builder modified after Spawn")
	}
}

// AddModule appends a module.Builder[M]'s module as a child of this group,
// with its declared cycle time and spawn mode. It is a free function
// because Go methods cannot introduce their own type parameters.
func AddModule[M module.Module](b *Builder, mb module.Builder[M]) {
	b.checkMutable()
	b.children = append(b.children, child{
		kind:      childModule,
		module:    mb.Module,
		cycleTime: mb.CycleTime,
		spawn:     mb.Spawn,
	})
}

// AddGroup appends sub as a subgroup child, placed per sub's own SpawnMode.
func (b *Builder) AddGroup(sub *Builder) {
	b.checkMutable()
	if sub == nil {
		panic("group: nil subgroup")
	}
	b.children = append(b.children, child{kind: childGroup, sub: sub})
}

// Spawn walks the tree rooted at b and distributes modules into
// scheduler.Containers: the root owns a "main" container; each GroupThread
// child joins the container currently being built, and each NewThread
// child (module or subgroup) gets a fresh container, started once its own
// subtree has been fully populated. It may be called exactly once per
// Builder.
func (b *Builder) Spawn(opts ...SpawnOption) (*Group, error) {
	if !b.spawned.CompareAndSwap(false, true) {
		return nil, ErrAlreadySpawned
	}

	cfg := resolveSpawnOptions(opts)
	main := scheduler.NewContainer(cfg.containerOptions...)
	g := &Group{containers: []*scheduler.Container{main}}

	if err := b.populate(main, g, cfg); err != nil {
		return nil, err
	}
	if err := main.Run(); err != nil {
		return nil, err
	}
	return g, nil
}

func (b *Builder) populate(current *scheduler.Container, g *Group, cfg *spawnConfig) error {
	for _, c := range b.children {
		switch c.kind {
		case childModule:
			target := current
			if c.spawn == module.NewThread {
				target = scheduler.NewContainer(cfg.containerOptions...)
				g.containers = append(g.containers, target)
			}
			target.AddModule(c.module, c.cycleTime)
			if target != current {
				if err := target.Run(); err != nil {
					return err
				}
			}

		case childGroup:
			c.sub.spawned.Store(true) // a spawned subgroup's Builder must not be reused independently
			target := current
			if c.sub.spawn == module.NewThread {
				target = scheduler.NewContainer(cfg.containerOptions...)
				g.containers = append(g.containers, target)
			}
			if err := c.sub.populate(target, g, cfg); err != nil {
				return err
			}
			if target != current {
				if err := target.Run(); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Group is the realized result of a Spawn call: the set of running
// containers that together execute the spawned tree.
type Group struct {
	containers []*scheduler.Container
}

// Containers returns every scheduler.Container spawned for this group, in
// creation order (the main container first).
func (g *Group) Containers() []*scheduler.Container {
	out := make([]*scheduler.Container, len(g.containers))
	copy(out, g.containers)
	return out
}

// Wait blocks until every container in the group has entered its
// scheduling loop (or, for an empty container, completed its no-op Run).
// It observes startup completion only; it does not wait for the
// containers to finish, since a running container's task heap does not
// empty in normal operation.
func (g *Group) Wait() {
	for _, c := range g.containers {
		<-c.Started()
	}
}
