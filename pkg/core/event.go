package core

import (
	"iter"
	"slices"
)

// StateChanged is emitted when a widget's interaction state changes.
type StateChanged struct {
	Current WidgetState
	Prev    WidgetState
}

// SetFocus asks the scene to focus the producing widget. It only takes
// effect for events produced while dispatching a pointer press.
type SetFocus struct{}

// Event is one message tagged with its producer.
type Event struct {
	producer AnyHandle
	payload  any
}

// NewEvent creates an event produced by w.
func NewEvent(w Widget, payload any) Event {
	return Event{producer: AnyHandleOf(w), payload: payload}
}

// Producer returns the handle of the widget that emitted the event.
func (e Event) Producer() AnyHandle {
	return e.producer
}

// Payload returns the raw payload.
func (e Event) Payload() any {
	return e.payload
}

// IsSetFocus reports whether the event requests focus.
func (e Event) IsSetFocus() bool {
	_, ok := e.payload.(SetFocus)
	return ok
}

// StateChanged returns the payload when e is a state change produced by h.
func (e Event) StateChanged(h HasID) (StateChanged, bool) {
	return Message[StateChanged](e, h)
}

// Message returns e's payload as an M when e was produced by the widget h
// refers to. Both the producer id and the payload type must match.
func Message[M any](e Event, h HasID) (M, bool) {
	var zero M
	if h == nil || e.producer.ID() != h.ID() {
		return zero, false
	}
	m, ok := e.payload.(M)
	if !ok {
		return zero, false
	}
	return m, true
}

// Events is the ordered batch produced by one input dispatch.
type Events struct {
	list []Event
}

// NewEvents returns an empty batch.
func NewEvents() *Events {
	return &Events{}
}

// Push appends an event produced by w.
func (es *Events) Push(w Widget, payload any) {
	es.list = append(es.list, NewEvent(w, payload))
}

// PushMessage appends a widget-specific message.
func (es *Events) PushMessage(w Widget, m any) {
	es.Push(w, m)
}

// PushEvent appends an existing event, keeping its producer.
func (es *Events) PushEvent(e Event) {
	es.list = append(es.list, e)
}

// PushStateChanged appends a StateChanged event when current differs from
// prev and returns current either way, so callers can write
//
//	w.state = events.PushStateChanged(w, next, w.state)
func (es *Events) PushStateChanged(w Widget, current, prev WidgetState) WidgetState {
	if current != prev {
		es.Push(w, StateChanged{Current: current, Prev: prev})
	}
	return current
}

// Pop removes and returns the last event.
func (es *Events) Pop() (Event, bool) {
	if len(es.list) == 0 {
		return Event{}, false
	}
	last := es.list[len(es.list)-1]
	es.list = es.list[:len(es.list)-1]
	return last, true
}

// Remove deletes and returns the event at i, preserving the order of the
// rest.
func (es *Events) Remove(i int) Event {
	e := es.list[i]
	es.list = slices.Delete(es.list, i, i+1)
	return e
}

// At returns the event at i.
func (es *Events) At(i int) Event {
	return es.list[i]
}

// Len returns the number of events.
func (es *Events) Len() int {
	return len(es.list)
}

// IsEmpty reports whether the batch has no events.
func (es *Events) IsEmpty() bool {
	return len(es.list) == 0
}

// Clear empties the batch, keeping its storage.
func (es *Events) Clear() {
	clear(es.list)
	es.list = es.list[:0]
}

// All iterates front to back.
func (es *Events) All() iter.Seq2[int, Event] {
	return slices.All(es.list)
}

// Backward iterates back to front.
func (es *Events) Backward() iter.Seq2[int, Event] {
	return slices.Backward(es.list)
}

// FindMessage returns the index and payload of the first M produced by h.
func FindMessage[M any](es *Events, h HasID) (int, M, bool) {
	for i, e := range es.list {
		if m, ok := Message[M](e, h); ok {
			return i, m, true
		}
	}
	var zero M
	return -1, zero, false
}
