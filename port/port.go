// Package port implements the typed publish/subscribe port graph: endpoint
// ports that hold their own value, and pass-through ports that delegate
// reads and writes to another port, wired together at runtime and safe for
// concurrent access from multiple worker threads without tearing.
package port

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// ErrPortCycleDetected is returned (via panic, see EnableCycleDetection) when
// a pass-through chain exceeds the configured depth limit. Cycle detection
// is opt-in and disabled by default: the runtime's default posture is that
// building a pass-through cycle is a usage error the caller must avoid, not
// a condition the graph pays to detect on every read and write.
var ErrPortCycleDetected = errors.New("port: pass-through cycle detected")

// cycleDetectionDepth is the maximum pass-through chain depth before a
// recursive read or write panics with ErrPortCycleDetected. Zero disables
// detection entirely (the default).
var cycleDetectionDepth atomic.Int64

// EnableCycleDetection turns on pass-through cycle detection for every port
// in the process, bounding chain descent to maxDepth hops. Pass a
// non-positive maxDepth to disable detection again.
//
// This is process-global rather than per-port because a cycle, once built,
// involves ports that may have been constructed by unrelated code; there is
// no single port "owner" positioned to opt in on behalf of the whole chain.
func EnableCycleDetection(maxDepth int) {
	if maxDepth <= 0 {
		cycleDetectionDepth.Store(0)
		return
	}
	cycleDetectionDepth.Store(int64(maxDepth))
}

type kind uint8

const (
	kindEndpoint kind = iota
	kindPassThrough
)

// state is the tagged union backing a port: either it holds its own Data
// (Endpoint), or it delegates to another port (PassThrough).
type state[T any] struct {
	kind   kind
	data   Data[T]
	target *Inner[T]
}

// core is the lock-protected, shared part of a port. Each Inner owns exactly
// one core and its own local cache; other ports reach this core only through
// a pass-through target pointing at the owning Inner (see ConnectToSource).
type core[T any] struct {
	mu    sync.RWMutex
	state state[T]
}

// Inner is shared ownership of a lock-protected port state, plus a locally
// cached Data copy used to serve reads cheaply without locking on every
// call. The cache is refreshed explicitly via Update and is stale between
// updates by design: a fresh read always goes through ReadFromTerminal.
type Inner[T any] struct {
	core  *core[T]
	cache Data[T]
}

// NewInnerWithDefault creates a new endpoint port seeded with v.
func NewInnerWithDefault[T any](v T) *Inner[T] {
	d := New(v)
	return &Inner[T]{
		core:  &core[T]{state: state[T]{kind: kindEndpoint, data: d}},
		cache: d,
	}
}

// ConnectToSource atomically replaces this port's state with a pass-through
// to src. It is legal to call at any time; any reader holding a stale local
// cache keeps seeing that stale value until its next Update.
func (p *Inner[T]) ConnectToSource(src *Inner[T]) {
	p.core.mu.Lock()
	p.core.state = state[T]{kind: kindPassThrough, target: src}
	p.core.mu.Unlock()
}

// ReadFromTerminal walks the pass-through chain to its terminal endpoint and
// returns a copy of the Data found there. Each hop acquires and releases its
// own read lock before descending, so at most one lock is held at a time.
func (p *Inner[T]) ReadFromTerminal() Data[T] {
	return p.readFromTerminal(0)
}

func (p *Inner[T]) readFromTerminal(depth int) Data[T] {
	checkDepth(depth)
	p.core.mu.RLock()
	switch p.core.state.kind {
	case kindEndpoint:
		d := p.core.state.data
		p.core.mu.RUnlock()
		return d
	default:
		target := p.core.state.target
		p.core.mu.RUnlock()
		return target.readFromTerminal(depth + 1)
	}
}

// Update refreshes the local cache from ReadFromTerminal.
func (p *Inner[T]) Update() {
	p.cache = p.ReadFromTerminal()
}

// ReadCached returns the locally cached Data without acquiring any lock. It
// may be stale relative to the terminal endpoint's current value; call
// Update first to refresh it.
func (p *Inner[T]) ReadCached() Data[T] {
	return p.cache
}

// Write walks the pass-through chain and replaces the Data at the terminal
// endpoint, then refreshes this port's local cache to the written value.
func (p *Inner[T]) Write(v Data[T]) {
	p.write(v, 0)
	p.cache = v
}

func (p *Inner[T]) write(v Data[T], depth int) {
	checkDepth(depth)
	p.core.mu.Lock()
	if p.core.state.kind == kindEndpoint {
		p.core.state.data = v
		p.core.mu.Unlock()
		return
	}
	target := p.core.state.target
	p.core.mu.Unlock()
	target.write(v, depth+1)
}

func checkDepth(depth int) {
	limit := cycleDetectionDepth.Load()
	if limit > 0 && int64(depth) > limit {
		panic(fmt.Errorf("%w: exceeded %d hops", ErrPortCycleDetected, limit))
	}
}

// Send is a thin, directional facade over Inner used to publish values.
type Send[T any] struct {
	inner *Inner[T]
}

// NewSend creates a Send port seeded with def.
func NewSend[T any](def T) *Send[T] {
	return &Send[T]{inner: NewInnerWithDefault(def)}
}

// Inner exposes the underlying Inner port, so a Receive port elsewhere may
// ConnectToSource against it.
func (s *Send[T]) Inner() *Inner[T] { return s.inner }

// Send publishes v as a freshly timestamped Data.
func (s *Send[T]) Send(v T) { s.inner.Write(New(v)) }

// ConnectToSource makes this Send port a pass-through to src. This is the
// mechanism fusion modules use to forward writes to the winning source
// rather than copying values: see behavior.MaximumFusion for the rationale.
func (s *Send[T]) ConnectToSource(src *Inner[T]) { s.inner.ConnectToSource(src) }

// Receive is a thin, directional facade over Inner used to read values.
type Receive[T any] struct {
	inner *Inner[T]
}

// NewReceive creates a Receive port seeded with def.
func NewReceive[T any](def T) *Receive[T] {
	return &Receive[T]{inner: NewInnerWithDefault(def)}
}

// Inner exposes the underlying Inner port.
func (r *Receive[T]) Inner() *Inner[T] { return r.inner }

// ConnectToSource wires this Receive port to src.
func (r *Receive[T]) ConnectToSource(src *Inner[T]) { r.inner.ConnectToSource(src) }

// Update refreshes the local cache from the terminal endpoint.
func (r *Receive[T]) Update() { r.inner.Update() }

// GetData returns the cached value, which may be stale until the next Update.
func (r *Receive[T]) GetData() T { return r.inner.ReadCached().Value() }

// GetTimestamp returns the cached value's publication timestamp.
func (r *Receive[T]) GetTimestamp() time.Time {
	return r.inner.ReadCached().Timestamp()
}
