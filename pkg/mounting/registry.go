package mounting

import (
	"fmt"

	"github.com/go-drift/mounting/pkg/errors"
)

// ViewRegistry allocates, recycles, and looks up native component views.
//
// A dequeued descriptor is valid only until the matching Enqueue; callers
// must not cache it independently. The registry performs no internal
// locking: all operations must run on the UI thread (see Dispatch).
type ViewRegistry struct {
	factory *ComponentViewFactory
	pool    *recyclePool
	active  *activeRegistry
	config  Config
}

// NewViewRegistry returns a registry backed by the given factory.
func NewViewRegistry(factory *ComponentViewFactory, cfg Config) *ViewRegistry {
	return &ViewRegistry{
		factory: factory,
		pool:    newRecyclePool(cfg.MaxPoolSizePerType),
		active:  newActiveRegistry(),
		config:  cfg,
	}
}

// Dequeue returns a view descriptor for the given component type, bound to
// tag. The recycle pool is consulted first; a fresh view is constructed only
// when no reset instance of that type is available. Either way the returned
// view is indistinguishable from a fresh instance.
//
// Dequeuing a tag that is already bound fails with ErrTagAlreadyBound.
func (r *ViewRegistry) Dequeue(handle ComponentHandle, tag Tag) (*ComponentViewDescriptor, error) {
	if _, ok := r.active.lookup(tag); ok {
		err := fmt.Errorf("dequeue for live tag: %w", ErrTagAlreadyBound)
		r.report("mounting.Dequeue", handle, tag, err)
		return nil, err
	}

	d := r.pool.tryTake(handle)
	if d == nil {
		d = newDescriptor(handle, r.factory.CreateView(handle))
	} else {
		d.recycleCount++
	}

	if err := r.active.bind(tag, d); err != nil {
		// Unreachable: the liveness check above already rejected bound tags.
		r.report("mounting.Dequeue", handle, tag, err)
		return nil, err
	}
	return d, nil
}

// Enqueue releases the view bound to tag back to the recycle pool. The view
// is reset to baseline before it becomes eligible for reuse.
//
// Releasing an unbound tag fails with ErrTagNotFound; this signals a
// double-release upstream and is surfaced rather than swallowed. On any
// failure the registry state is unchanged.
func (r *ViewRegistry) Enqueue(handle ComponentHandle, tag Tag, d *ComponentViewDescriptor) error {
	bound, ok := r.active.lookup(tag)
	if !ok {
		err := fmt.Errorf("release of unbound tag: %w", ErrTagNotFound)
		r.report("mounting.Enqueue", handle, tag, err)
		return err
	}
	if bound != d {
		r.report("mounting.Enqueue", handle, tag, ErrDescriptorMismatch)
		return ErrDescriptorMismatch
	}
	if d.handle != handle {
		err := fmt.Errorf("%w: have %d, want %d", ErrComponentMismatch, d.handle, handle)
		r.report("mounting.Enqueue", handle, tag, err)
		return err
	}

	r.active.unbind(tag)
	d.View.PrepareForRecycle()
	r.pool.put(handle, d)
	return nil
}

// Lookup returns the view currently bound to tag. The second result is
// false when the tag has no live view; this is a normal negative result for
// nodes outside the mounted tree, never an error.
func (r *ViewRegistry) Lookup(tag Tag) (ComponentView, bool) {
	d, ok := r.active.lookup(tag)
	if !ok {
		return nil, false
	}
	return d.View, true
}

// ActiveDescriptor returns the descriptor bound to tag, failing with
// ErrTagNotFound when the tag has no live view. Callers that expect absence
// should use Lookup instead.
func (r *ViewRegistry) ActiveDescriptor(tag Tag) (*ComponentViewDescriptor, error) {
	d, ok := r.active.lookup(tag)
	if !ok {
		return nil, fmt.Errorf("descriptor query for unbound tag: %w", ErrTagNotFound)
	}
	return d, nil
}

// Prewarm constructs one view of the given type and parks it in the recycle
// pool through the same reset-and-store path as Enqueue, absorbing the
// allocation cost off the critical mounting path. Existing tag bindings are
// unaffected, and the pool capacity policy applies exactly as it does on
// release.
func (r *ViewRegistry) Prewarm(handle ComponentHandle) {
	d := newDescriptor(handle, r.factory.CreateView(handle))
	d.View.PrepareForRecycle()
	r.pool.put(handle, d)
}

// PrewarmFromConfig prewarms pools per the registry configuration: for each
// configured component name, the requested number of instances is
// constructed and pooled. Names with no registered provider are reported
// and skipped.
func (r *ViewRegistry) PrewarmFromConfig() {
	for name, count := range r.config.Prewarm {
		handle, ok := r.factory.HandleByName(name)
		if !ok {
			errors.Report(&errors.MountError{
				Op:        "mounting.PrewarmFromConfig",
				Kind:      errors.KindConfig,
				Component: name,
				Err:       fmt.Errorf("prewarm names unregistered component %q", name),
			})
			continue
		}
		for i := 0; i < count; i++ {
			r.Prewarm(handle)
		}
	}
}

// TrimPools disposes every pooled view and empties all recycle pools.
// Intended for memory-pressure handling; live bindings are untouched.
func (r *ViewRegistry) TrimPools() {
	r.pool.drain()
}

// PoolSize returns the number of pooled views for the given component type.
func (r *ViewRegistry) PoolSize(handle ComponentHandle) int {
	return r.pool.size(handle)
}

// ActiveCount returns the number of live tag bindings.
func (r *ViewRegistry) ActiveCount() int {
	return r.active.count()
}

// report surfaces a lifecycle violation through the global error handler
// before the error is returned to the caller.
func (r *ViewRegistry) report(op string, handle ComponentHandle, tag Tag, err error) {
	component := ""
	if p, ok := r.factory.Provider(handle); ok {
		component = p.ComponentName()
	}
	errors.Report(&errors.MountError{
		Op:        op,
		Kind:      errors.KindLifecycle,
		Component: component,
		Tag:       int64(tag),
		Err:       err,
	})
}
