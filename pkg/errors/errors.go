// Package errors provides structured error reporting for the glane engine.
//
// The engine itself is total: lookups against dead handles, type mismatches
// and unresolved apply entries return neutral values and are never
// reported. What flows through this package are conditions that indicate a
// bug (broken invariants, recovered widget panics) and failures of the
// ambient layers (configuration, font loading).
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
	// KindInput indicates a failure during input dispatch.
	KindInput
	// KindLayout indicates a failure during a layout pass.
	KindLayout
	// KindApply indicates a deferred mutation that could not run.
	KindApply
	// KindConfig indicates a configuration loading or validation failure.
	KindConfig
	// KindInit indicates an initialization error (fonts, measurers).
	KindInit
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindInvariant indicates an engine invariant was violated.
	KindInvariant
)

func (k ErrorKind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindLayout:
		return "layout"
	case KindApply:
		return "apply"
	case KindConfig:
		return "config"
	case KindInit:
		return "init"
	case KindPanic:
		return "panic"
	case KindInvariant:
		return "invariant"
	default:
		return "unknown"
	}
}

// EngineError represents a structured error in the glane engine.
type EngineError struct {
	// Op is the operation that failed (e.g., "core.Scene.Layout").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Widget is the id of the widget involved, if any.
	Widget uint64
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *EngineError) Error() string {
	if e.Widget != 0 {
		return fmt.Sprintf("%s [%s] widget=%d: %v", e.Op, e.Kind, e.Widget, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

// New returns an EngineError with the given fields.
func New(op string, kind ErrorKind, err error) *EngineError {
	return &EngineError{Op: op, Kind: kind, Err: err}
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "core.Scene.Input").
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

// InvariantError describes a violated engine invariant.
type InvariantError struct {
	Message string
}

func (e *InvariantError) Error() string {
	return "invariant violated: " + e.Message
}

// ErrorHandler receives errors reported by the engine.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *EngineError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
