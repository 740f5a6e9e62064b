package mounting

// Tag uniquely identifies a logical node in the render tree. Tags are
// assigned by the rendering engine and never reused while a view backing the
// node may still be referenced.
type Tag int64

// ComponentHandle identifies a component type (e.g. "text view"). It is
// stable for the lifetime of the type registration and partitions the
// recycle pool.
type ComponentHandle int64

// ComponentView is a native view instance managed by the registry.
type ComponentView interface {
	// ComponentHandle returns the component type this view was created for.
	ComponentHandle() ComponentHandle

	// PrepareForRecycle resets the view to its content-free baseline:
	// detached from any parent, content cleared, in-flight visual effects
	// cancelled. Called exactly once per release, before the view enters
	// the recycle pool.
	PrepareForRecycle()

	// Dispose releases the native resources held by the view. Called when
	// a pooled view is discarded by capacity policy or at teardown.
	Dispose()
}

// ViewProvider constructs component views of a single type. Providers are
// supplied at framework-initialization time and registered with a
// ComponentViewFactory.
type ViewProvider interface {
	// ComponentHandle returns the component type this provider serves.
	ComponentHandle() ComponentHandle

	// ComponentName returns the human-readable component name
	// (e.g. "Text", "Image"). Names key the prewarm configuration.
	ComponentName() string

	// CreateView allocates a fresh native view instance. Pure
	// construction: the view is not registered anywhere.
	CreateView() ComponentView
}
