package core

import (
	"fmt"

	"github.com/go-glane/glane/pkg/errors"
)

// maxDrainPasses bounds how many times a drain re-walks the tree for
// entries enqueued by other entries.
const maxDrainPasses = 8

type applyEntry struct {
	target AnyHandle
	f      func(Widget)
}

// ApplyFuncs is the deferred mutation queue. Entries run in FIFO order
// against the widget whose id they target, each exactly once, during a
// dedicated tree walk that happens before any input or layout traversal.
type ApplyFuncs struct {
	entries []applyEntry
	pending int
}

// Enqueue schedules f to run against the widget h refers to.
func Enqueue[T Widget](funcs *ApplyFuncs, h Handle[T], f func(T)) {
	target := h.Any()
	funcs.entries = append(funcs.entries, applyEntry{
		target: target,
		f: func(w Widget) {
			t, ok := w.(T)
			if !ok {
				errors.Report(&errors.EngineError{
					Op:     "core.ApplyFuncs.Apply",
					Kind:   errors.KindApply,
					Widget: uint64(target.ID()),
					Err:    fmt.Errorf("handle of %s resolved to %T", target.Tag(), w),
				})
				return
			}
			f(t)
		},
	})
	funcs.pending++
}

// Apply runs and consumes every pending entry targeting w, in the order
// they were enqueued. Widgets call it first thing in their Apply method.
func (a *ApplyFuncs) Apply(w Widget) {
	if a.pending == 0 {
		return
	}
	id := w.ID()
	for i := 0; i < len(a.entries); i++ {
		e := a.entries[i]
		if e.f == nil || e.target.ID() != id {
			continue
		}
		a.entries[i].f = nil
		a.pending--
		e.f(w)
	}
}

// Len returns the number of entries not yet run.
func (a *ApplyFuncs) Len() int {
	return a.pending
}

// drain walks the tree from root until the queue is empty. Entries whose
// target never resolves are dropped.
func (a *ApplyFuncs) drain(root Widget) {
	for pass := 0; a.pending > 0; pass++ {
		if pass == maxDrainPasses {
			errors.Invariant("core.ApplyFuncs.drain", false,
				"apply entries still enqueueing after %d passes", maxDrainPasses)
			break
		}
		walked := len(a.entries)
		root.Apply(a)
		a.compact(walked)
	}
	a.entries = a.entries[:0]
	a.pending = 0
}

// compact drops the first n entries, keeping pending ones enqueued after
// them.
func (a *ApplyFuncs) compact(n int) {
	kept := a.entries[:0]
	for _, e := range a.entries[n:] {
		if e.f != nil {
			kept = append(kept, e)
		}
	}
	clear(a.entries[len(kept):])
	a.entries = kept
	a.pending = len(kept)
}
