package module

// Inner is the constraint a user module must satisfy to be wrapped by
// Basic: it must both do its own work (Module) and know how to refresh its
// own input ports (PortUpdater).
type Inner interface {
	Module
	PortUpdater
}

// Basic is the shell for a user module M whose Update does not need
// meta-signal arithmetic. Each tick it refreshes M's input ports via the
// PortUpdater contract, then invokes M's own Update.
//
// Basic holds M by value/interface and forwards explicitly rather than via
// embedding, so that callers retain a typed handle to the wrapped module
// (e.g. to read output ports it exposes) without exporting Basic's own
// Update as the module's.
type Basic[M Inner] struct {
	inner M
}

// NewBasic wraps m.
func NewBasic[M Inner](m M) *Basic[M] {
	if any(m) == nil {
		panic("module: nil inner module")
	}
	return &Basic[M]{inner: m}
}

// Inner returns the wrapped module.
func (b *Basic[M]) Inner() M { return b.inner }

// Update refreshes M's input ports, then runs M's own Update.
func (b *Basic[M]) Update() {
	b.inner.UpdatePorts()
	b.inner.Update()
}
