package mounting

// ComponentViewDescriptor bundles a live native view with registry
// bookkeeping. The registry is the descriptor's sole owner: a descriptor is
// either bound to a tag in the active set or parked in the recycle pool,
// never both.
type ComponentViewDescriptor struct {
	// View is the native view instance.
	View ComponentView

	// handle is stamped at construction and never changes. The registry
	// checks it on release so pool partitions cannot be crossed.
	handle ComponentHandle

	// recycleCount is how many times this descriptor has been revived
	// from the pool.
	recycleCount int
}

func newDescriptor(handle ComponentHandle, view ComponentView) *ComponentViewDescriptor {
	return &ComponentViewDescriptor{View: view, handle: handle}
}

// Handle returns the component type the descriptor was created for.
func (d *ComponentViewDescriptor) Handle() ComponentHandle {
	return d.handle
}

// RecycleCount returns how many times the descriptor has been reused from
// the recycle pool. Zero for a freshly constructed view.
func (d *ComponentViewDescriptor) RecycleCount() int {
	return d.recycleCount
}
