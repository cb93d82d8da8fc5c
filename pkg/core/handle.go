package core

import (
	"fmt"
	"reflect"
)

// Handle is a typed, non-owning reference to a widget of type T. A handle
// stays a valid value after its widget is erased; it then resolves to
// nothing.
type Handle[T Widget] struct {
	id ID
}

// NewHandle captures w's identity.
func NewHandle[T Widget](w T) Handle[T] {
	return Handle[T]{id: w.ID()}
}

// ID returns the referenced widget's id.
func (h Handle[T]) ID() ID {
	return h.id
}

// Any erases the handle's static type, keeping T as the runtime tag.
func (h Handle[T]) Any() AnyHandle {
	return AnyHandle{id: h.id, tag: reflect.TypeFor[T]()}
}

// Is reports whether other refers to the same widget.
func (h Handle[T]) Is(other HasID) bool {
	return SameID(h, other)
}

func (h Handle[T]) String() string {
	return fmt.Sprintf("Handle[%s]%s", reflect.TypeFor[T](), h.id)
}

// AnyHandle is an untyped reference: an id plus the concrete type tag of the
// widget it was captured from.
type AnyHandle struct {
	id  ID
	tag reflect.Type
}

// AnyHandleOf captures w's id and concrete type.
func AnyHandleOf(w Widget) AnyHandle {
	return AnyHandle{id: w.ID(), tag: reflect.TypeOf(w)}
}

// ID returns the referenced widget's id.
func (h AnyHandle) ID() ID {
	return h.id
}

// Tag returns the runtime type tag. It is nil for the zero AnyHandle.
func (h AnyHandle) Tag() reflect.Type {
	return h.tag
}

// IsZero reports whether h was never assigned.
func (h AnyHandle) IsZero() bool {
	return h.id == 0
}

// Is reports whether other refers to the same widget. Type tags are not
// compared.
func (h AnyHandle) Is(other HasID) bool {
	return SameID(h, other)
}

func (h AnyHandle) String() string {
	if h.tag == nil {
		return "AnyHandle" + h.id.String()
	}
	return fmt.Sprintf("AnyHandle[%s]%s", h.tag, h.id)
}

// Downcast recovers a typed handle when h was captured from a T.
func Downcast[T Widget](h AnyHandle) (Handle[T], bool) {
	if h.tag == nil || h.tag != reflect.TypeFor[T]() {
		return Handle[T]{}, false
	}
	return Handle[T]{id: h.id}, true
}
