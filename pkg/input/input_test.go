package input

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-glane/glane/pkg/graphics"
)

func TestMouseButtonsSet(t *testing.T) {
	s := ButtonsOf(MouseButtonLeft, MouseButtonMiddle)
	assert.True(t, s.Contains(MouseButtonLeft))
	assert.True(t, s.Contains(MouseButtonMiddle))
	assert.False(t, s.Contains(MouseButtonRight))
}

func TestIsPress(t *testing.T) {
	assert.True(t, IsPress(MouseInput{ButtonState: Pressed}))
	assert.False(t, IsPress(MouseInput{ButtonState: Released}))
	assert.False(t, IsPress(KeyInput{Key: KeyEnter, State: Pressed}))
}

func TestPointer(t *testing.T) {
	p := graphics.Point{X: 3, Y: 4}
	ms, ok := Pointer(CursorMoved{MouseState: MouseState{Position: p}})
	assert.True(t, ok)
	assert.Equal(t, p, ms.Position)

	_, ok = Pointer(CharInput{Char: 'a'})
	assert.False(t, ok)
}
