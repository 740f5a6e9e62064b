package mounting

// activeRegistry maps tags to the descriptors currently bound to them. It
// owns the association while a tag is live.
type activeRegistry struct {
	descriptors map[Tag]*ComponentViewDescriptor
}

func newActiveRegistry() *activeRegistry {
	return &activeRegistry{descriptors: make(map[Tag]*ComponentViewDescriptor)}
}

// bind associates tag with d. Binding an already-bound tag would silently
// leak the previous descriptor, so it fails instead.
func (a *activeRegistry) bind(tag Tag, d *ComponentViewDescriptor) error {
	if _, ok := a.descriptors[tag]; ok {
		return ErrTagAlreadyBound
	}
	a.descriptors[tag] = d
	return nil
}

// unbind removes and returns the descriptor bound to tag.
func (a *activeRegistry) unbind(tag Tag) (*ComponentViewDescriptor, error) {
	d, ok := a.descriptors[tag]
	if !ok {
		return nil, ErrTagNotFound
	}
	delete(a.descriptors, tag)
	return d, nil
}

// lookup returns the descriptor bound to tag without transferring ownership.
// Absence is a normal negative result, not an error: tags outside the
// currently mounted view are simply not here.
func (a *activeRegistry) lookup(tag Tag) (*ComponentViewDescriptor, bool) {
	d, ok := a.descriptors[tag]
	return d, ok
}

// count returns the number of live bindings.
func (a *activeRegistry) count() int {
	return len(a.descriptors)
}
