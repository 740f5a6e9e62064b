// Package errors provides structured error handling for the mounting layer.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindLifecycle indicates a view lifecycle contract violation
	// (double-acquire, double-release, unknown tag).
	KindLifecycle
	// KindFactory indicates a component view construction error.
	KindFactory
	// KindPool indicates a recycle pool error.
	KindPool
	// KindConfig indicates a configuration error.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindLifecycle:
		return "lifecycle"
	case KindFactory:
		return "factory"
	case KindPool:
		return "pool"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// MountError represents a structured error in the mounting layer.
type MountError struct {
	// Op is the operation that failed (e.g., "mounting.Dequeue").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Component is the component type name, if applicable.
	Component string
	// Tag is the logical node identifier involved, if applicable.
	Tag int64
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *MountError) Error() string {
	switch {
	case e.Component != "" && e.Tag != 0:
		return fmt.Sprintf("%s [%s] component=%s tag=%d: %v", e.Op, e.Kind, e.Component, e.Tag, e.Err)
	case e.Component != "":
		return fmt.Sprintf("%s [%s] component=%s: %v", e.Op, e.Kind, e.Component, e.Err)
	case e.Tag != 0:
		return fmt.Sprintf("%s [%s] tag=%d: %v", e.Op, e.Kind, e.Tag, e.Err)
	default:
		return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
	}
}

func (e *MountError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "mounting.Prewarm").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the mounting layer.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *MountError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
