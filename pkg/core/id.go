package core

import (
	"fmt"
	"sync/atomic"
)

// ID uniquely identifies a widget instance for the lifetime of the process.
// IDs are never reused; zero is never assigned.
type ID uint64

var nextID atomic.Uint64

// NewID allocates the next id from the process-wide counter.
func NewID() ID {
	return ID(nextID.Add(1))
}

func (id ID) String() string {
	return fmt.Sprintf("#%d", uint64(id))
}

// HasID is implemented by widgets and by every handle form.
type HasID interface {
	ID() ID
}

// ID implements HasID so a bare ID can be used where a handle is expected.
func (id ID) ID() ID {
	return id
}

// Base carries a widget's identity. Embed it and initialize with NewBase:
//
//	type Label struct {
//	    core.Base
//	    Text string
//	}
//
//	func NewLabel(s string) *Label {
//	    return &Label{Base: core.NewBase(), Text: s}
//	}
type Base struct {
	id ID
}

// NewBase allocates a fresh identity.
func NewBase() Base {
	return Base{id: NewID()}
}

// ID returns the widget's identity.
func (b *Base) ID() ID {
	return b.id
}

// SameID reports whether a and b refer to the same widget. It is the only
// equality that holds across widgets, Handle and AnyHandle.
func SameID(a, b HasID) bool {
	if a == nil || b == nil {
		return false
	}
	return a.ID() == b.ID()
}
