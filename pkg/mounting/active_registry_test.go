package mounting

import (
	"errors"
	"testing"
)

func TestActiveRegistryBindLookupUnbind(t *testing.T) {
	active := newActiveRegistry()
	d := stubDescriptor(1)

	if err := active.bind(5, d); err != nil {
		t.Fatalf("bind: %v", err)
	}
	if got, ok := active.lookup(5); !ok || got != d {
		t.Errorf("lookup(5) = (%v, %v), want bound descriptor", got, ok)
	}
	if active.count() != 1 {
		t.Errorf("count = %d, want 1", active.count())
	}

	got, err := active.unbind(5)
	if err != nil || got != d {
		t.Errorf("unbind(5) = (%v, %v), want bound descriptor", got, err)
	}
	if _, ok := active.lookup(5); ok {
		t.Error("lookup(5) positive after unbind")
	}
}

func TestActiveRegistryDuplicateBind(t *testing.T) {
	active := newActiveRegistry()
	first := stubDescriptor(1)
	if err := active.bind(5, first); err != nil {
		t.Fatalf("bind: %v", err)
	}

	err := active.bind(5, stubDescriptor(1))
	if !errors.Is(err, ErrTagAlreadyBound) {
		t.Fatalf("duplicate bind error = %v, want ErrTagAlreadyBound", err)
	}
	// The failed bind must not overwrite (and thereby leak) the original.
	if got, _ := active.lookup(5); got != first {
		t.Error("duplicate bind replaced the original descriptor")
	}
}

func TestActiveRegistryUnbindUnknown(t *testing.T) {
	active := newActiveRegistry()
	if _, err := active.unbind(5); !errors.Is(err, ErrTagNotFound) {
		t.Fatalf("unbind(5) error = %v, want ErrTagNotFound", err)
	}
}
