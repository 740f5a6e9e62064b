package mounting

// recyclePool stores detached, reset descriptors per component type. Entries
// are kept in LIFO order so the most recently released native resources are
// handed out first.
type recyclePool struct {
	stacks map[ComponentHandle][]*ComponentViewDescriptor

	// maxPerType caps retained descriptors per component type.
	// Zero or negative means unlimited.
	maxPerType int
}

func newRecyclePool(maxPerType int) *recyclePool {
	return &recyclePool{
		stacks:     make(map[ComponentHandle][]*ComponentViewDescriptor),
		maxPerType: maxPerType,
	}
}

// tryTake removes and returns the most recently pooled descriptor for the
// given component type, or nil if the pool is empty for that type.
func (p *recyclePool) tryTake(handle ComponentHandle) *ComponentViewDescriptor {
	stack := p.stacks[handle]
	if len(stack) == 0 {
		return nil
	}
	d := stack[len(stack)-1]
	stack[len(stack)-1] = nil
	p.stacks[handle] = stack[:len(stack)-1]
	return d
}

// put stores a descriptor for later reuse. The descriptor must already be
// reset to baseline. When the per-type cap is exceeded the oldest entry is
// discarded and its view disposed.
func (p *recyclePool) put(handle ComponentHandle, d *ComponentViewDescriptor) {
	stack := append(p.stacks[handle], d)
	if p.maxPerType > 0 && len(stack) > p.maxPerType {
		oldest := stack[0]
		copy(stack, stack[1:])
		stack[len(stack)-1] = nil
		stack = stack[:len(stack)-1]
		oldest.View.Dispose()
	}
	p.stacks[handle] = stack
}

// size returns the number of pooled descriptors for the given type.
func (p *recyclePool) size(handle ComponentHandle) int {
	return len(p.stacks[handle])
}

// drain disposes every pooled descriptor and empties the pool.
func (p *recyclePool) drain() {
	for handle, stack := range p.stacks {
		for _, d := range stack {
			d.View.Dispose()
		}
		delete(p.stacks, handle)
	}
}
