// Package scheduler implements ThreadContainer: a single-goroutine,
// min-heap-driven cooperative scheduler that runs a set of modules at their
// declared cycle times.
package scheduler

import (
	"container/heap"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/ib2crun/ib2c/module"
)

type moduleSlot struct {
	module    module.Module
	cycleTime time.Duration
}

// Container is a single-thread scheduler: it owns a set of modules
// exclusively once Run starts, and drives them from a min-heap of deadlines
// on one dedicated goroutine. Modules within one Container always run
// strictly serially; there is no ordering guarantee across Containers
// beyond what the port graph's locks provide.
type Container struct {
	// ID distinguishes this container in logs and metrics once many
	// containers exist across a group tree.
	ID uuid.UUID

	opts *options

	mu    sync.Mutex // guards slots/tasks before Run starts
	slots []moduleSlot
	tasks taskHeap

	started   atomic.Bool
	startedCh chan struct{}
	doneCh    chan struct{}

	overruns atomic.Uint64
}

// NewContainer constructs an empty Container.
func NewContainer(opts ...Option) *Container {
	id := uuid.New()
	cfg := resolveOptions(opts)
	if cfg.sink == nil && cfg.metricsFactory != nil {
		cfg.sink = cfg.metricsFactory(id.String())
	}
	return &Container{
		ID:        id,
		opts:      cfg,
		startedCh: make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// AddModule registers m to run every cycleTime, with an initial deadline of
// now. It must not be called after Run has started: a Container owns its
// modules exclusively once running.
func (c *Container) AddModule(m module.Module, cycleTime time.Duration) {
	if m == nil {
		panic("scheduler: nil module")
	}
	if cycleTime <= 0 {
		panic("scheduler: cycle time must be positive")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.started.Load() {
		panic("scheduler: AddModule called after Run has started")
	}
	idx := len(c.slots)
	c.slots = append(c.slots, moduleSlot{module: m, cycleTime: cycleTime})
	heap.Push(&c.tasks, Task{Deadline: time.Now(), ModuleIndex: idx})
}

// ModuleCount reports how many modules have been added.
func (c *Container) ModuleCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.slots)
}

// OverrunCount reports how many times a module's Update exceeded its cycle
// time, forcing the next deadline to collapse to "now".
func (c *Container) OverrunCount() uint64 {
	return c.overruns.Load()
}

// Started returns a channel closed once the worker goroutine has entered
// its scheduling loop. For an empty container, it is already closed: Run is
// a no-op and never spawns a thread.
func (c *Container) Started() <-chan struct{} { return c.startedCh }

// Done returns a channel closed when the worker goroutine exits, which
// happens only once the task heap empties. With no way to remove a module,
// this does not happen in practice once at least one module was added.
func (c *Container) Done() <-chan struct{} { return c.doneCh }

// Run spawns the container's single worker goroutine, or does nothing if no
// modules have been added. Calling Run more than once returns
// ErrAlreadyRunning.
func (c *Container) Run() error {
	c.mu.Lock()
	if !c.started.CompareAndSwap(false, true) {
		c.mu.Unlock()
		return ErrAlreadyRunning
	}
	empty := len(c.slots) == 0
	c.mu.Unlock()
	if empty {
		close(c.startedCh)
		close(c.doneCh)
		return nil
	}

	go c.loop()
	return nil
}

func (c *Container) loop() {
	close(c.startedCh)
	defer close(c.doneCh)

	for {
		c.mu.Lock()
		if c.tasks.Len() == 0 {
			c.mu.Unlock()
			return
		}
		next := c.tasks[0]
		c.mu.Unlock()

		now := time.Now()
		if next.Deadline.After(now) {
			timer := time.NewTimer(next.Deadline.Sub(now))
			<-timer.C
			continue
		}

		c.mu.Lock()
		task := heap.Pop(&c.tasks).(Task)
		slot := c.slots[task.ModuleIndex]
		c.mu.Unlock()

		start := time.Now()
		slot.module.Update()
		elapsed := time.Since(start)

		if c.opts.sink != nil {
			c.opts.sink.ObserveUpdateDuration(task.ModuleIndex, int64(elapsed))
		}

		nextDeadline := task.Deadline.Add(slot.cycleTime)
		afterUpdate := time.Now()
		if nextDeadline.Before(afterUpdate) {
			c.overruns.Add(1)
			if c.opts.sink != nil {
				c.opts.sink.IncOverrun(task.ModuleIndex)
			}
			c.opts.logger.Warn().
				Str("container_id", c.ID.String()).
				Int("module_index", task.ModuleIndex).
				Dur("cycle_time", slot.cycleTime).
				Dur("update_duration", elapsed).
				Msg("module update exceeded cycle time, deadline collapsed to now")
			nextDeadline = afterUpdate
		}

		c.mu.Lock()
		heap.Push(&c.tasks, Task{Deadline: nextDeadline, ModuleIndex: task.ModuleIndex})
		c.mu.Unlock()
	}
}
