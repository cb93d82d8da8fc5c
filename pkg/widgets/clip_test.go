package widgets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-glane/glane/pkg/core"
	"github.com/go-glane/glane/pkg/graphics"
	glanetest "github.com/go-glane/glane/pkg/testing"
	"github.com/go-glane/glane/pkg/widgets"
)

func threeLines() *widgets.Column {
	return widgets.ColumnOf(widgets.TextOf("a"), widgets.TextOf("b"), widgets.TextOf("c"))
}

func TestClip_BracketsChild(t *testing.T) {
	tester := glanetest.NewSceneTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 100, Height: 50})
	clip := widgets.ClipOf(threeLines())
	require.NoError(t, tester.PumpWidget(clip))

	l := tester.Layout()
	require.Equal(t, 6, l.Len())
	assert.IsType(t, &core.StartClipping{}, l.At(0))
	assert.IsType(t, &core.EndClipping{}, l.At(l.Len()-1))

	// Content below the window is laid out but clipped.
	assert.Equal(t, []string{"a", "b", "c"}, tester.Texts())
	clipRect, ok := l.ClipAt(l.Len() - 2)
	require.True(t, ok)
	assert.Equal(t, graphics.RectFromLTWH(0, 0, 100, 50), clipRect)
}

func TestClip_WheelScrollsByLine(t *testing.T) {
	tester := glanetest.NewSceneTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 100, Height: 50})
	clip := widgets.ClipOf(threeLines())
	require.NoError(t, tester.PumpWidget(clip))

	tester.Wheel(graphics.Point{X: 10, Y: 10}, 1)
	assert.Equal(t, 20.0, clip.Offset())
	require.NoError(t, tester.Pump())
	assert.Equal(t, -20.0, tester.Find(glanetest.ByText("a")).Rect().Top)

	tester.Wheel(graphics.Point{X: 10, Y: 10}, -1)
	assert.Equal(t, 0.0, clip.Offset())
}

func TestClip_OffsetClampedToContent(t *testing.T) {
	tester := glanetest.NewSceneTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 100, Height: 50})
	clip := widgets.ClipOf(threeLines())
	clip.ScrollTo(500)
	require.NoError(t, tester.PumpWidget(clip))

	// 80 of content in a 50 window.
	assert.Equal(t, -30.0, tester.Find(glanetest.ByText("a")).Rect().Top)
}

func TestClip_NoScrollWhenContentFits(t *testing.T) {
	tester := glanetest.NewSceneTesterWithT(t)
	clip := widgets.ClipOf(widgets.ColumnOf(widgets.TextOf("a")))
	require.NoError(t, tester.PumpWidget(clip))

	tester.Wheel(graphics.Point{X: 10, Y: 10}, 3)
	assert.Equal(t, 0.0, clip.Offset())
}

func TestClip_HidesPointerOutsideWindow(t *testing.T) {
	tester := glanetest.NewSceneTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 200, Height: 100})
	btn := widgets.ButtonOf("hidden")
	clip := widgets.ClipOf(widgets.ColumnOf(widgets.TextOf("a"), widgets.TextOf("b"), btn))
	require.NoError(t, tester.PumpWidget(widgets.MaxSizeOf(0, 30, clip)))

	// The button is laid out at y=60, below the 30 high window.
	require.Equal(t, 60.0, tester.Find(glanetest.ByOwner(btn)).Rect().Top)

	tester.MoveTo(graphics.Point{X: 10, Y: 70})
	assert.Equal(t, core.StateNone, btn.State())

	clip.ScrollTo(60)
	require.NoError(t, tester.Pump())
	tester.MoveTo(graphics.Point{X: 10, Y: 10})
	assert.Equal(t, core.StateHover, btn.State())
}
