package mounting

import "fmt"

// ComponentViewFactory creates fresh component views by type. It holds the
// per-type providers registered at framework-initialization time and is
// stateless across CreateView calls.
type ComponentViewFactory struct {
	providers map[ComponentHandle]ViewProvider
	byName    map[string]ComponentHandle
}

// NewComponentViewFactory returns an empty factory.
func NewComponentViewFactory() *ComponentViewFactory {
	return &ComponentViewFactory{
		providers: make(map[ComponentHandle]ViewProvider),
		byName:    make(map[string]ComponentHandle),
	}
}

// RegisterProvider registers a provider for its component type. Registering
// a second provider for the same handle or name replaces the first.
func (f *ComponentViewFactory) RegisterProvider(p ViewProvider) {
	f.providers[p.ComponentHandle()] = p
	f.byName[p.ComponentName()] = p.ComponentHandle()
}

// Provider returns the provider registered for handle, if any.
func (f *ComponentViewFactory) Provider(handle ComponentHandle) (ViewProvider, bool) {
	p, ok := f.providers[handle]
	return p, ok
}

// HandleByName returns the component handle registered under name, if any.
func (f *ComponentViewFactory) HandleByName(name string) (ComponentHandle, bool) {
	h, ok := f.byName[name]
	return h, ok
}

// CreateView constructs a brand-new view for the given component type.
//
// Asking for an unregistered handle is a wiring bug that would produce an
// invalid view graph, so CreateView panics rather than returning an error.
func (f *ComponentViewFactory) CreateView(handle ComponentHandle) ComponentView {
	p, ok := f.providers[handle]
	if !ok {
		panic(fmt.Sprintf("mounting: no view provider registered for component handle %d", handle))
	}
	return p.CreateView()
}
