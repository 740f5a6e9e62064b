// Package mounting binds logical render-tree nodes to native component views.
//
// The mounting layer allocates, recycles, and looks up the native view
// instances that back logical UI nodes produced by the rendering engine.
// Its centerpiece is ViewRegistry: a registry that maps stable node tags to
// live views, pools released views per component type, and guarantees
// at-most-one live binding per tag.
//
// # Quick Start
//
// Register a provider per component type, construct a registry, and
// acquire/release views around mount/unmount:
//
//	factory := mounting.NewComponentViewFactory()
//	factory.RegisterProvider(textProvider)
//
//	registry := mounting.NewViewRegistry(factory, mounting.DefaultConfig())
//
//	desc, err := registry.Dequeue(textHandle, tag)
//	if err != nil {
//	    // caller lifecycle bug: the tag is already mounted
//	}
//	// ... mount desc.View ...
//	registry.Enqueue(textHandle, tag, desc)
//
// # Threading
//
// The registry performs no internal locking. Every operation must run on the
// single UI thread; cross-thread callers marshal through Dispatch after the
// engine has installed a dispatch function with RegisterDispatch.
package mounting
