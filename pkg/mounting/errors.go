package mounting

import "errors"

// Sentinel errors for registry lifecycle violations. All of them indicate
// caller bugs, not transient conditions; none carry retry semantics.
var (
	// ErrTagAlreadyBound is returned by Dequeue when the tag already has a
	// live view. The registry never silently double-allocates.
	ErrTagAlreadyBound = errors.New("mounting: tag already bound")

	// ErrTagNotFound is returned when a release or descriptor query names
	// a tag with no active binding (typically a double-release upstream).
	ErrTagNotFound = errors.New("mounting: tag not bound")

	// ErrComponentMismatch is returned by Enqueue when the descriptor was
	// created for a different component type than the one being released.
	ErrComponentMismatch = errors.New("mounting: descriptor belongs to a different component type")

	// ErrDescriptorMismatch is returned by Enqueue when the descriptor is
	// not the one currently bound to the tag.
	ErrDescriptorMismatch = errors.New("mounting: descriptor is not bound to this tag")
)
