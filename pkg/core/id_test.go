package core

import (
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIDUniqueAcrossGoroutines(t *testing.T) {
	const workers, perWorker = 8, 200

	var mu sync.Mutex
	seen := make(map[ID]struct{}, workers*perWorker)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]ID, 0, perWorker)
			for range perWorker {
				b := NewBase()
				local = append(local, b.ID())
			}
			mu.Lock()
			defer mu.Unlock()
			for _, id := range local {
				seen[id] = struct{}{}
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
	_, zero := seen[0]
	assert.False(t, zero, "zero id must never be assigned")
}

func TestSameID(t *testing.T) {
	b := newBox(1, 1)
	other := newBox(1, 1)

	assert.True(t, SameID(b, NewHandle(b)))
	assert.True(t, SameID(NewHandle(b), AnyHandleOf(b)))
	assert.True(t, SameID(b.ID(), b))
	assert.False(t, SameID(b, other))
	assert.False(t, SameID(nil, b))
}

func TestHandleDowncastRoundTrip(t *testing.T) {
	b := newBox(1, 1)
	h := NewHandle(b)

	erased := h.Any()
	assert.Equal(t, reflect.TypeOf(b), erased.Tag())

	back, ok := Downcast[*box](erased)
	require.True(t, ok)
	assert.Equal(t, h, back)
	assert.True(t, back.Is(b))
}

func TestHandleDowncastWrongType(t *testing.T) {
	b := newBox(1, 1)

	_, ok := Downcast[*otherBox](AnyHandleOf(b))
	assert.False(t, ok)

	_, ok = Downcast[*box](AnyHandle{})
	assert.False(t, ok)
}

func TestAnyHandleOfMatchesHandleAny(t *testing.T) {
	b := &otherBox{box: *newBox(1, 1)}
	assert.Equal(t, NewHandle(b).Any(), AnyHandleOf(b))
}

func TestAnyHandleZero(t *testing.T) {
	var h AnyHandle
	assert.True(t, h.IsZero())
	assert.Nil(t, h.Tag())
	assert.Equal(t, "AnyHandle#0", h.String())

	assert.False(t, AnyHandleOf(newBox(1, 1)).IsZero())
}
